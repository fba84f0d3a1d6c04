package main

import (
	"context"
	"github.com/stretchr/testify/assert"
	"scMicroservice/contracts"
	"testing"
)

// _assertCellStoreContract runs the behaviour every backend shares against an empty store.
func _assertCellStoreContract(t *testing.T, store contracts.CellStore) {
	ctx := context.Background()

	t.Run("lookup_missing", func(t *testing.T) {
		formula, found, err := store.Lookup(ctx, "A1")

		assert.NoError(t, err)
		assert.False(t, found)
		assert.Empty(t, formula)
	})

	t.Run("list_empty", func(t *testing.T) {
		cellIds, err := store.List(ctx)

		assert.NoError(t, err)
		assert.Empty(t, cellIds)
	})

	t.Run("put_creates", func(t *testing.T) {
		created, err := store.Put(ctx, "A1", "10")

		assert.NoError(t, err)
		assert.True(t, created)

		formula, found, err := store.Lookup(ctx, "A1")
		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "10", formula)
	})

	t.Run("put_updates", func(t *testing.T) {
		created, err := store.Put(ctx, "A1", "B1 + 2*(C1-1)")

		assert.NoError(t, err)
		assert.False(t, created)

		formula, found, err := store.Lookup(ctx, "A1")
		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "B1 + 2*(C1-1)", formula)
	})

	t.Run("list", func(t *testing.T) {
		for _, cellId := range []string{"B2", "A10"} {
			_, err := store.Put(ctx, cellId, "1")
			assert.NoError(t, err)
		}

		cellIds, err := store.List(ctx)

		assert.NoError(t, err)
		assert.Equal(t, []string{"A1", "A10", "B2"}, cellIds)
	})

	t.Run("delete", func(t *testing.T) {
		assert.NoError(t, store.Delete(ctx, "A1"))

		_, found, err := store.Lookup(ctx, "A1")
		assert.NoError(t, err)
		assert.False(t, found)

		err = store.Delete(ctx, "A1")
		assert.ErrorIs(t, err, contracts.CellNotFoundError)
		assert.NotErrorIs(t, err, contracts.StorageUnavailableError)

		cellIds, err := store.List(ctx)
		assert.NoError(t, err)
		assert.Equal(t, []string{"A10", "B2"}, cellIds)
	})
}
