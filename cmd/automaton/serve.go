package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpAdapter "github.com/aretw0/automaton/pkg/adapters/http"
	"github.com/aretw0/automaton/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Long:  `Exposes the catalog as a JSON API over HTTP, with Prometheus metrics on /metrics.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			port, _ := cmd.Flags().GetString("port")

			reg := prometheus.NewRegistry()
			reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
			metrics := observability.NewMetrics(reg)
			streams := httpAdapter.NewStreamManager()

			s, err := openSession(cmd, metrics.Hooks(), streams.Hooks())
			if err != nil {
				return err
			}
			defer s.Close()

			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
			mux.Handle("/", httpAdapter.NewHandler(s.Catalog,
				httpAdapter.WithStreams(streams),
				httpAdapter.WithLogger(s.Logger),
			))

			srv := &http.Server{
				Addr:    ":" + port,
				Handler: mux,
			}

			// Channel to listen for errors coming from the listener.
			serverErrors := make(chan error, 1)
			go func() {
				s.Logger.Info("Starting Automaton Server", "address", srv.Addr)
				serverErrors <- srv.ListenAndServe()
			}()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			select {
			case err := <-serverErrors:
				return fmt.Errorf("server error: %w", err)
			case <-ctx.Done():
				s.Logger.Info("Start shutdown...")

				// Give outstanding requests a deadline for completion.
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()

				if err := srv.Shutdown(shutdownCtx); err != nil {
					s.Logger.Error("Graceful shutdown did not complete", "error", err)
					if err := srv.Close(); err != nil && !errors.Is(err, http.ErrServerClosed) {
						return err
					}
				}
				s.Logger.Info("Automaton Server stopped gracefully")
				return nil
			}
		},
	}
	cmd.Flags().StringP("port", "p", "8080", "Port to listen on")
	return cmd
}
