package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/automaton/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contractDefinition(name string) *domain.Definition {
	return &domain.Definition{
		Name:   name,
		States: []string{"even", "odd"},
		Sigma:  []string{"1", "0"},
		Start:  "even",
		Final:  []string{"even"},
		Transitions: []domain.Transition{
			{From: "even", To: "odd", On: "1"},
			{From: "odd", To: "even", On: "1"},
			{From: "even", To: "even", On: "0"},
		},
		Cases: []domain.Case{{Input: "11", Accept: true}},
	}
}

// RunDefinitionStoreContract runs a suite of tests to verify that a DefinitionStore
// implementation adheres to the defined interface contract.
func RunDefinitionStoreContract(t *testing.T, store DefinitionStore) {
	ctx := context.Background()
	name := "contract-" + time.Now().Format("20060102150405")

	t.Run("Save and Get", func(t *testing.T) {
		def := contractDefinition(name)

		err := store.Save(ctx, def)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Get(ctx, name)
		require.NoError(t, err, "Get should not return error")
		assert.Equal(t, def, loaded, "definitions must survive a round trip, order included")

		// The store must not alias the caller's value.
		def.States[0] = "mutated"
		again, err := store.Get(ctx, name)
		require.NoError(t, err)
		assert.Equal(t, "even", again.States[0])
	})

	t.Run("Save Overwrites", func(t *testing.T) {
		def := contractDefinition(name)
		def.Description = "second version"
		require.NoError(t, store.Save(ctx, def))

		loaded, err := store.Get(ctx, name)
		require.NoError(t, err)
		assert.Equal(t, "second version", loaded.Description)
	})

	t.Run("Save Requires Name", func(t *testing.T) {
		err := store.Save(ctx, contractDefinition(""))
		assert.Error(t, err)
	})

	t.Run("Get Non-Existent", func(t *testing.T) {
		_, err := store.Get(ctx, "non-existent-"+name)
		assert.ErrorIs(t, err, domain.ErrAutomatonNotFound)
	})

	t.Run("List", func(t *testing.T) {
		id1 := name + "-a"
		id2 := name + "-b"
		require.NoError(t, store.Save(ctx, contractDefinition(id2)))
		require.NoError(t, store.Save(ctx, contractDefinition(id1)))

		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		names, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, names, id1)
		assert.Contains(t, names, id2)
		assert.IsNonDecreasing(t, names, "List must be sorted")
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, contractDefinition(name)))

		err := store.Delete(ctx, name)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Get(ctx, name)
		assert.ErrorIs(t, err, domain.ErrAutomatonNotFound, "Get after Delete should return ErrAutomatonNotFound")

		assert.NoError(t, store.Delete(ctx, name), "deleting twice is not an error")
	})
}
