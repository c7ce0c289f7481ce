package ports

import (
	"context"

	"github.com/aretw0/automaton/pkg/dfa"
)

// Catalog defines the operations that transports (HTTP, MCP) expose.
type Catalog interface {
	// List returns the names of the available automata.
	List(ctx context.Context) ([]string, error)

	// Get loads and builds the named automaton.
	Get(ctx context.Context, name string) (*dfa.DFA, error)

	// Trace runs input through the named automaton.
	Trace(ctx context.Context, name, input string) (dfa.Run, error)

	// Swap returns a new automaton with symbols a and b interchanged.
	Swap(ctx context.Context, name string, a, b dfa.Symbol) (*dfa.DFA, error)
}
