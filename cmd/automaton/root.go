package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/automaton"
	"github.com/aretw0/automaton/internal/logging"
	"github.com/aretw0/automaton/pkg/adapters/file"
	loamAdapter "github.com/aretw0/automaton/pkg/adapters/loam"
	"github.com/aretw0/automaton/pkg/adapters/redis"
	"github.com/aretw0/automaton/pkg/domain"
	"github.com/aretw0/automaton/pkg/observability"
	"github.com/aretw0/automaton/pkg/ports"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Definition sources selectable with --source.
const (
	sourceFile  = "file"
	sourceLoam  = "loam"
	sourceRedis = "redis"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "automaton",
		Short: "Automaton builds, runs and transforms deterministic finite automata",
		Long: `Automaton reads DFA definitions (YAML, JSON or markdown documents) and lets you
inspect them, decide which strings they accept, swap symbols, and serve them over HTTP or MCP.`,
		SilenceUsage: true,
	}

	// Persistent flags (available to all commands)
	flags := rootCmd.PersistentFlags()
	flags.String("dir", ".", "Directory containing the automaton definitions")
	flags.String("source", sourceFile, "Definition source: 'file', 'loam' or 'redis'")
	flags.String("redis", "localhost:6379", "Redis address (for --source redis and push)")
	flags.String("redis-prefix", "", "Key prefix of the redis store (default automaton:def:)")
	flags.Bool("debug", false, "Enable debug logging")

	rootCmd.AddCommand(
		newListCmd(),
		newShowCmd(),
		newAcceptsCmd(),
		newRunCmd(),
		newSwapCmd(),
		newGraphCmd(),
		newValidateCmd(),
		newPushCmd(),
		newServeCmd(),
		newMCPCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// session bundles what a command needs to reach the definitions.
type session struct {
	Catalog *automaton.Catalog
	// Store is nil when the source is read-only.
	Store  ports.DefinitionStore
	Logger *slog.Logger
	close  func() error
}

func (s *session) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// openSession builds the catalog selected by the persistent flags.
func openSession(cmd *cobra.Command, hooks ...domain.LifecycleHooks) (*session, error) {
	dir, _ := cmd.Flags().GetString("dir")
	source, _ := cmd.Flags().GetString("source")
	debug, _ := cmd.Flags().GetBool("debug")

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger := logging.NewWriter(cmd.ErrOrStderr(), level)

	s := &session{Logger: logger}
	var loader ports.DefinitionLoader
	switch source {
	case sourceFile:
		store := file.New(dir)
		s.Store, loader = store, store
	case sourceLoam:
		l, err := loamAdapter.Open(dir)
		if err != nil {
			return nil, err
		}
		loader = l
	case sourceRedis:
		store := openRedis(cmd)
		s.Store, loader, s.close = store, store, store.Close
	default:
		return nil, fmt.Errorf("unknown source %q (supported: file, loam, redis)", source)
	}

	opts := []automaton.Option{
		automaton.WithLoader(loader),
		automaton.WithLogger(logger),
	}
	if debug {
		opts = append(opts, automaton.WithHooks(observability.AuditHooks(logger)))
	}
	for _, h := range hooks {
		opts = append(opts, automaton.WithHooks(h))
	}

	cat, err := automaton.New(dir, opts...)
	if err != nil {
		s.Close()
		return nil, err
	}
	s.Catalog = cat
	logger.Debug("catalog opened", "source", source, "dir", dir)
	return s, nil
}

func openRedis(cmd *cobra.Command, opts ...redis.Option) *redis.Store {
	addr, _ := cmd.Flags().GetString("redis")
	if prefix, _ := cmd.Flags().GetString("redis-prefix"); prefix != "" {
		opts = append(opts, redis.WithPrefix(prefix))
	}
	return redis.New(addr, os.Getenv("AUTOMATON_REDIS_PASSWORD"), 0, opts...)
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
