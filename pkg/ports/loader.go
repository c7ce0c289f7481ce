package ports

import (
	"context"

	"github.com/aretw0/automaton/pkg/domain"
)

// DefinitionLoader defines how the catalog retrieves automaton definitions.
type DefinitionLoader interface {
	// Get retrieves a definition by name.
	// Returns domain.ErrAutomatonNotFound if no definition has that name.
	Get(ctx context.Context, name string) (*domain.Definition, error)

	// List returns the names of all available definitions, sorted.
	List(ctx context.Context) ([]string, error)
}
