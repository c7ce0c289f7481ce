package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/automaton"
	"github.com/aretw0/automaton/internal/presentation/graph"
	"github.com/aretw0/automaton/pkg/ports"
	"github.com/aretw0/automaton/pkg/schema"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// catalogURI is the resource listing every automaton.
const catalogURI = "automaton://catalog"

// AcceptResponse aligns with the OpenAPI schema and provides a unified structure across adapters.
type AcceptResponse struct {
	Automaton string   `json:"automaton" jsonschema_description:"Name of the automaton"`
	Input     string   `json:"input" jsonschema_description:"The input string that was run"`
	Accepted  bool     `json:"accepted" jsonschema_description:"True if the input belongs to the language"`
	Path      []string `json:"path,omitempty" jsonschema_description:"States visited, beginning with the start state"`
	Consumed  int      `json:"consumed" jsonschema_description:"Number of symbols that had a transition"`
	Reason    string   `json:"reason,omitempty" jsonschema_description:"Why the walk stopped early, if it did"`
}

// CheckResponse reports the validation of a definition document.
type CheckResponse struct {
	Valid     bool     `json:"valid" jsonschema_description:"True if the definition builds and every case passes"`
	Problems  []string `json:"problems,omitempty" jsonschema_description:"Validation errors and failing cases"`
	Canonical string   `json:"canonical,omitempty" jsonschema_description:"Canonical text of the built automaton"`
}

// Server wraps a Catalog and exposes it as an MCP Server.
type Server struct {
	catalog   ports.Catalog
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(catalog ports.Catalog) *Server {
	s := &Server{
		catalog:   catalog,
		mcpServer: server.NewMCPServer("automaton-mcp", strings.TrimSpace(automaton.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)
	go func() {
		slog.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		slog.Info("Shutdown signal received, shutting down MCP server")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	// TOOL: list_automata
	s.mcpServer.AddTool(mcp.NewTool("list_automata",
		mcp.WithDescription("List the names of the available automata."),
	), s.handleList)

	// TOOL: describe_automaton
	s.mcpServer.AddTool(mcp.NewTool("describe_automaton",
		mcp.WithDescription("Show an automaton: its states, alphabet, transition table, start and final states."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Automaton name")),
		mcp.WithString("format", mcp.Description("'text' (canonical table, default) or 'json' (definition document)")),
	), s.handleDescribe)

	// TOOL: accepts
	acceptsTool := mcp.NewTool("accepts",
		mcp.WithDescription("Decide whether an input string belongs to the language of an automaton."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Automaton name")),
		mcp.WithString("input", mcp.Required(), mcp.Description("Input string; each character is one symbol")),
		mcp.WithOutputSchema[AcceptResponse](),
	)
	s.mcpServer.AddTool(acceptsTool, mcp.NewStructuredToolHandler(s.handleAccepts))

	// TOOL: swap
	s.mcpServer.AddTool(mcp.NewTool("swap",
		mcp.WithDescription("Build a new automaton whose transitions on two symbols are interchanged. The stored automaton is not modified."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Automaton name")),
		mcp.WithString("a", mcp.Required(), mcp.Description("First symbol (one character)")),
		mcp.WithString("b", mcp.Required(), mcp.Description("Second symbol (one character)")),
	), s.handleSwap)

	// TOOL: graph
	s.mcpServer.AddTool(mcp.NewTool("graph",
		mcp.WithDescription("Render an automaton as a Mermaid flowchart, optionally highlighting the path of an input."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Automaton name")),
		mcp.WithString("input", mcp.Description("Input whose path is highlighted (optional)")),
	), s.handleGraph)

	// TOOL: check_definition
	checkTool := mcp.NewTool("check_definition",
		mcp.WithDescription("Validate an automaton definition (JSON object with states, sigma, start, final, transitions, cases) without storing it."),
		mcp.WithString("definition", mcp.Required(), mcp.Description("Definition document as a JSON object")),
		mcp.WithOutputSchema[CheckResponse](),
	)
	s.mcpServer.AddTool(checkTool, mcp.NewStructuredToolHandler(s.handleCheck))
}

func (s *Server) handleList(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	names, err := s.catalog.List(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("list failed: %v", err)), nil
	}
	jsonBytes, _ := json.Marshal(names)
	return mcp.NewToolResultText(string(jsonBytes)), nil
}

func (s *Server) handleDescribe(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	name, _ := args["name"].(string)
	format, _ := args["format"].(string)

	d, err := s.catalog.Get(ctx, name)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("describe failed: %v", err)), nil
	}
	if format == "json" {
		jsonBytes, _ := json.Marshal(schema.Export(name, d))
		return mcp.NewToolResultText(string(jsonBytes)), nil
	}
	return mcp.NewToolResultText(d.String()), nil
}

// Handler methods for structured tools

func (s *Server) handleAccepts(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (AcceptResponse, error) {
	name, _ := args["name"].(string)
	input, _ := args["input"].(string)

	run, err := s.catalog.Trace(ctx, name, input)
	if err != nil {
		return AcceptResponse{}, fmt.Errorf("accepts failed: %w", err)
	}

	resp := AcceptResponse{
		Automaton: name,
		Input:     input,
		Accepted:  run.Accepted(),
		Path:      run.Path,
		Consumed:  run.Consumed,
	}
	if run.Err != nil {
		resp.Reason = run.Err.Error()
	}
	return resp, nil
}

func (s *Server) handleSwap(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	name, _ := args["name"].(string)
	rawA, _ := args["a"].(string)
	rawB, _ := args["b"].(string)

	a, errA := schema.ParseSymbol(rawA)
	b, errB := schema.ParseSymbol(rawB)
	if err := errors.Join(errA, errB); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid symbol: %v", err)), nil
	}

	swapped, err := s.catalog.Swap(ctx, name, a, b)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("swap failed: %v", err)), nil
	}
	return mcp.NewToolResultText(swapped.String()), nil
}

func (s *Server) handleGraph(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	name, _ := args["name"].(string)

	d, err := s.catalog.Get(ctx, name)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("graph failed: %v", err)), nil
	}

	var overlay *graph.GraphOverlay
	if input, ok := args["input"].(string); ok {
		overlay = graph.RunOverlay(d.Trace(input))
	}
	return mcp.NewToolResultText(graph.GenerateMermaid(d, overlay)), nil
}

func (s *Server) handleCheck(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (CheckResponse, error) {
	raw, _ := args["definition"].(string)

	var doc map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return CheckResponse{Problems: []string{fmt.Sprintf("definition is not a JSON object: %v", err)}}, nil
	}

	def, err := schema.DecodeMap(doc)
	if err != nil {
		return CheckResponse{Problems: []string{err.Error()}}, nil
	}

	d, err := schema.Build(def)
	if err != nil {
		return CheckResponse{Problems: problems(err)}, nil
	}
	resp := CheckResponse{Valid: true, Canonical: d.String()}
	if err := schema.Check(def, d); err != nil {
		resp.Valid = false
		resp.Problems = problems(err)
	}
	return resp, nil
}

// problems flattens joined and aggregated errors into messages.
func problems(err error) []string {
	var out []string
	if list := schema.ValidationErrors(err); len(list) > 0 {
		for _, e := range list {
			out = append(out, e.Error())
		}
		return out
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			out = append(out, e.Error())
		}
		return out
	}
	return []string{err.Error()}
}

func (s *Server) registerResources() {
	// EXPOSE: automaton://catalog
	s.mcpServer.AddResource(mcp.NewResource(catalogURI, "Automaton Catalog",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		names, err := s.catalog.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list automata: %w", err)
		}
		jsonBytes, _ := json.Marshal(names)

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      catalogURI,
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
