package tests

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/automaton/pkg/domain"
	"github.com/aretw0/automaton/pkg/ports"
)

// LoaderContractTest is a reusable test suite that verifies if an adapter complies with ports.DefinitionLoader.
// want maps every definition name the loader holds to its expected contents.
func LoaderContractTest(t *testing.T, loader ports.DefinitionLoader, want map[string]*domain.Definition) {
	t.Helper()
	ctx := context.Background()

	t.Run("Get_Success", func(t *testing.T) {
		for name, expected := range want {
			def, err := loader.Get(ctx, name)
			if err != nil {
				t.Fatalf("unexpected error getting %s: %v", name, err)
			}
			if def.Name != name {
				t.Errorf("name mismatch: got %q, want %q", def.Name, name)
			}
			if len(def.States) != len(expected.States) || len(def.Transitions) != len(expected.Transitions) {
				t.Errorf("content mismatch for %s: got %+v, want %+v", name, def, expected)
			}
			if def.Start != expected.Start {
				t.Errorf("start mismatch for %s: got %q, want %q", name, def.Start, expected.Start)
			}
		}
	})

	t.Run("Get_NotFound", func(t *testing.T) {
		_, err := loader.Get(ctx, "non-existent-automaton")
		if !errors.Is(err, domain.ErrAutomatonNotFound) {
			t.Errorf("expected ErrAutomatonNotFound, got %v", err)
		}
	})

	t.Run("List", func(t *testing.T) {
		names, err := loader.List(ctx)
		if err != nil {
			t.Fatalf("unexpected error listing definitions: %v", err)
		}

		if len(names) != len(want) {
			t.Errorf("expected %d definitions, got %d", len(want), len(names))
		}

		lookup := make(map[string]bool)
		for _, name := range names {
			lookup[name] = true
		}
		for name := range want {
			if !lookup[name] {
				t.Errorf("definition %s missing from list", name)
			}
		}
	})
}
