package ports

import (
	"context"

	"github.com/aretw0/automaton/pkg/domain"
)

// DefinitionStore is a DefinitionLoader that can also persist definitions.
type DefinitionStore interface {
	DefinitionLoader

	// Save persists def under def.Name, replacing any previous version.
	Save(ctx context.Context, def *domain.Definition) error

	// Delete removes the named definition. Deleting a missing name is not an error.
	Delete(ctx context.Context, name string) error
}
