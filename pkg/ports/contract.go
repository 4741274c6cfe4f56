package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/asciiwalk/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunResultStoreContract runs a suite of tests to verify that a ResultStore implementation
// adheres to the defined interface contract.
func RunResultStoreContract(t *testing.T, store ResultStore) {
	ctx := context.Background()
	key := domain.MapKey("contract-test-" + time.Now().Format("20060102150405.000000000"))

	sample := &domain.Result{
		Letters:    "ACB",
		Characters: "@---A---+|C|+---+|+-B-x",
		Steps:      22,
		Status:     domain.StatusTerminated,
		Trace:      []domain.Position{{Row: 1, Col: 0}, {Row: 1, Col: 1}},
	}

	t.Run("Save and Load", func(t *testing.T) {
		err := store.Save(ctx, key, sample)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, key)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, sample.Letters, loaded.Letters)
		assert.Equal(t, sample.Characters, loaded.Characters)
		assert.Equal(t, sample.Steps, loaded.Steps)
		assert.Equal(t, sample.Status, loaded.Status)
		assert.Equal(t, sample.Trace, loaded.Trace)
	})

	t.Run("Load Is Isolated", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, key, sample))

		loaded, err := store.Load(ctx, key)
		require.NoError(t, err)
		loaded.Letters = "mutated"
		if len(loaded.Trace) > 0 {
			loaded.Trace[0] = domain.Position{Row: 99, Col: 99}
		}

		again, err := store.Load(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, "ACB", again.Letters)
		assert.Equal(t, domain.Position{Row: 1, Col: 0}, again.Trace[0])
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+key)
		assert.ErrorIs(t, err, domain.ErrResultNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, key, sample))

		err := store.Delete(ctx, key)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, key)
		assert.ErrorIs(t, err, domain.ErrResultNotFound, "Load after Delete should return ErrResultNotFound")
	})

	t.Run("List", func(t *testing.T) {
		k1 := key + "-1"
		k2 := key + "-2"
		_ = store.Save(ctx, k1, sample)
		_ = store.Save(ctx, k2, sample)

		defer func() {
			_ = store.Delete(ctx, k1)
			_ = store.Delete(ctx, k2)
		}()

		keys, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, keys, k1)
		assert.Contains(t, keys, k2)
	})
}
