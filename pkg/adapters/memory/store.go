package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/aretw0/automaton/pkg/domain"
)

// Store implements ports.DefinitionStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]*domain.Definition
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store, optionally seeded with definitions.
func NewStore(defs ...*domain.Definition) *Store {
	s := &Store{
		data: make(map[string]*domain.Definition),
	}
	for _, def := range defs {
		if def != nil && def.Name != "" {
			s.data[def.Name] = def.Clone()
		}
	}
	return s
}

// Save stores a copy of def so later caller mutations do not leak in.
func (s *Store) Save(ctx context.Context, def *domain.Definition) error {
	if def == nil || def.Name == "" {
		return fmt.Errorf("definition name cannot be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[def.Name] = def.Clone()
	return nil
}

// Get retrieves a copy of the named definition.
func (s *Store) Get(ctx context.Context, name string) (*domain.Definition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	def, ok := s.data[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrAutomatonNotFound, name)
	}
	return def.Clone(), nil
}

// Delete removes the definition.
func (s *Store) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, name)
	return nil
}

// List returns the stored names in sorted order.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.data))
	for name := range s.data {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
