package loam

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aretw0/automaton/pkg/domain"
	"github.com/aretw0/loam"
)

// Loader adapts the Loam library to the ports.DefinitionLoader interface.
// Definitions are markdown documents with frontmatter, or plain JSON/YAML documents.
type Loader struct {
	Repo *loam.TypedRepository[Metadata]
}

// New creates a new Loam adapter.
func New(repo *loam.TypedRepository[Metadata]) *Loader {
	return &Loader{
		Repo: repo,
	}
}

// Open initializes a read-only, strict Loam repository at path and wraps it.
func Open(path string) (*Loader, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("invalid path: %w", err)
	}

	// Strict mode keeps numeric types consistent across adapters; read-only
	// avoids Loam's sandbox behavior since definitions are never written here.
	repo, err := loam.Init(absPath,
		loam.WithStrict(true),
		loam.WithReadOnly(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize loam: %w", err)
	}
	return New(loam.NewTypedRepository[Metadata](repo)), nil
}

// Get returns the named definition.
func (l *Loader) Get(ctx context.Context, name string) (*domain.Definition, error) {
	defs, err := l.load(ctx)
	if err != nil {
		return nil, err
	}
	def, ok := defs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrAutomatonNotFound, name)
	}
	return def, nil
}

// List returns the names of all definitions in the repository, sorted.
func (l *Loader) List(ctx context.Context) ([]string, error) {
	defs, err := l.load(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(defs))
	for name := range defs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (l *Loader) load(ctx context.Context) (map[string]*domain.Definition, error) {
	docs, err := l.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loam list failed: %w", err)
	}

	seen := make(map[string]string)
	defs := make(map[string]*domain.Definition, len(docs))

	for _, doc := range docs {
		// Use the name from metadata if available, otherwise the document ID.
		name := doc.Data.Name
		if name == "" {
			name = trimExtension(doc.ID)
		}

		if existingPath, ok := seen[name]; ok {
			return nil, fmt.Errorf("collision detected: automaton '%s' is defined in both '%s' and '%s'", name, existingPath, doc.ID)
		}
		seen[name] = doc.ID
		defs[name] = doc.Data.definition(name, strings.TrimSpace(doc.Content))
	}
	return defs, nil
}

func trimExtension(id string) string {
	ext := filepath.Ext(id)
	if ext != "" {
		return filepath.ToSlash(strings.TrimSuffix(id, ext))
	}
	return filepath.ToSlash(id)
}
