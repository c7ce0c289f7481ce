package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aretw0/automaton"
	"github.com/aretw0/automaton/internal/presentation/graph"
	"github.com/aretw0/automaton/pkg/dfa"
	"github.com/aretw0/automaton/pkg/domain"
	"github.com/aretw0/automaton/pkg/ports"
	"github.com/aretw0/automaton/pkg/schema"
	"github.com/go-chi/chi/v5"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 1 << 20

// Server serves a catalog over HTTP.
type Server struct {
	Catalog ports.Catalog
	Streams *StreamManager
	Logger  *slog.Logger
}

// Option configures the Server.
type Option func(*Server)

// WithStreams shares a StreamManager whose Hooks feed the catalog.
func WithStreams(sm *StreamManager) Option {
	return func(s *Server) {
		s.Streams = sm
	}
}

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.Logger = logger
	}
}

// NewHandler creates a new HTTP handler for the catalog.
func NewHandler(catalog ports.Catalog, opts ...Option) http.Handler {
	s := &Server{Catalog: catalog}
	for _, opt := range opts {
		opt(s)
	}
	if s.Streams == nil {
		s.Streams = NewStreamManager()
	}
	if s.Logger == nil {
		s.Logger = slog.Default()
	}
	return enableCORS(s.Routes())
}

// Routes mounts the API on a chi router.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		w.Write(rawSpec)
	})
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(swaggerHTML))
	})

	r.Get("/health", s.GetHealth)
	r.Get("/info", s.GetInfo)
	r.Get("/events", s.SubscribeEvents)

	r.Route("/automata", func(r chi.Router) {
		r.Get("/", s.ListAutomata)
		r.Route("/{name}", func(r chi.Router) {
			r.Get("/", s.GetAutomaton)
			r.Post("/accepts", s.Accepts)
			r.Post("/swap", s.Swap)
			r.Get("/graph", s.GetGraph)
		})
	})
	return r
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

const swaggerHTML = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>Automaton API Documentation</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui.css" />
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui-bundle.js" crossorigin></script>
<script>
    window.onload = () => {
    window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui',
    });
    };
</script>
</body>
</html>
`

// AcceptRequest is the body of POST /automata/{name}/accepts.
type AcceptRequest struct {
	Input string `json:"input"`
}

// AcceptResponse reports one acceptance decision.
type AcceptResponse struct {
	Automaton string   `json:"automaton"`
	Input     string   `json:"input"`
	Accepted  bool     `json:"accepted"`
	Path      []string `json:"path,omitempty"`
	Consumed  int      `json:"consumed"`
	Reason    string   `json:"reason,omitempty"`
}

// SwapRequest is the body of POST /automata/{name}/swap.
type SwapRequest struct {
	A string `json:"a"`
	B string `json:"b"`
}

// ListAutomata handles the GET /automata request.
func (s *Server) ListAutomata(w http.ResponseWriter, r *http.Request) {
	names, err := s.Catalog.List(r.Context())
	if err != nil {
		s.fail(w, "List", err)
		return
	}
	if names == nil {
		names = []string{}
	}
	writeJSON(w, map[string][]string{"automata": names})
}

// GetAutomaton handles the GET /automata/{name} request.
func (s *Server) GetAutomaton(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	d, err := s.Catalog.Get(r.Context(), name)
	if err != nil {
		s.fail(w, "GetAutomaton", err)
		return
	}
	s.writeAutomaton(w, r, name, d)
}

// Accepts handles the POST /automata/{name}/accepts request.
func (s *Server) Accepts(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	var body AcceptRequest
	if err := decodeBody(r, "AcceptRequest", &body); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		s.Logger.Warn("Accepts: Invalid request body", "error", err)
		return
	}

	run, err := s.Catalog.Trace(r.Context(), name, body.Input)
	if err != nil {
		s.fail(w, "Accepts", err)
		return
	}

	resp := AcceptResponse{
		Automaton: name,
		Input:     body.Input,
		Accepted:  run.Accepted(),
		Path:      run.Path,
		Consumed:  run.Consumed,
	}
	if run.Err != nil {
		resp.Reason = run.Err.Error()
	}
	writeJSON(w, resp)
}

// Swap handles the POST /automata/{name}/swap request.
func (s *Server) Swap(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	var body SwapRequest
	if err := decodeBody(r, "SwapRequest", &body); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		s.Logger.Warn("Swap: Invalid request body", "error", err)
		return
	}
	a, errA := schema.ParseSymbol(body.A)
	b, errB := schema.ParseSymbol(body.B)
	if err := errors.Join(errA, errB); err != nil {
		http.Error(w, fmt.Sprintf("Invalid symbol: %v", err), http.StatusBadRequest)
		return
	}

	swapped, err := s.Catalog.Swap(r.Context(), name, a, b)
	if err != nil {
		s.fail(w, "Swap", err)
		return
	}
	s.writeAutomaton(w, r, name, swapped)
}

// GetGraph handles the GET /automata/{name}/graph request.
func (s *Server) GetGraph(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	d, err := s.Catalog.Get(r.Context(), name)
	if err != nil {
		s.fail(w, "GetGraph", err)
		return
	}

	var overlay *graph.GraphOverlay
	if r.URL.Query().Has("input") {
		overlay = graph.RunOverlay(d.Trace(r.URL.Query().Get("input")))
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(graph.GenerateMermaid(d, overlay)))
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	apiVersion := "unknown"
	if swagger, err := GetSwagger(); err == nil && swagger.Info != nil {
		apiVersion = swagger.Info.Version
	}
	writeJSON(w, map[string]string{
		"app":         "automaton-http",
		"version":     strings.TrimSpace(automaton.Version),
		"api_version": apiVersion,
	})
}

// SubscribeEvents handles the GET /events request (SSE).
func (s *Server) SubscribeEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		s.Logger.Error("SubscribeEvents: Streaming not supported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ch, unsubscribe := s.Streams.Subscribe(r.URL.Query().Get("automaton"))
	defer unsubscribe()

	fmt.Fprintf(w, "event: ping\ndata: connected\n\n")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			s.Logger.Debug("SSE Client Disconnected")
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			fmt.Fprintf(w, "data: %s\n\n", msg)
			flusher.Flush()
		}
	}
}

// -- Helpers --

func (s *Server) writeAutomaton(w http.ResponseWriter, r *http.Request, name string, d *dfa.DFA) {
	if r.URL.Query().Get("format") == "json" {
		writeJSON(w, schema.Export(name, d))
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(d.String()))
}

// fail maps catalog errors to status codes.
func (s *Server) fail(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrAutomatonNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, domain.ErrMalformed):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		s.Logger.Warn(op+": invalid definition", "error", err)
	default:
		http.Error(w, fmt.Sprintf("%s error: %v", op, err), http.StatusInternalServerError)
		s.Logger.Error(op+" failed", "error", err)
	}
}

// decodeBody reads a JSON object, validates it against the named schema and decodes it into dst.
func decodeBody(r *http.Request, schemaName string, dst any) error {
	var raw map[string]any
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	if err := validateBody(schemaName, raw); err != nil {
		return err
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dst)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("response encode failed", "error", err)
	}
}
