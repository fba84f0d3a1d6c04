package main

import (
	"context"
	"github.com/stretchr/testify/assert"
	"path/filepath"
	"scMicroservice/contracts"
	"testing"
)

func TestSqliteCellStore(t *testing.T) {
	t.Run("contract", func(t *testing.T) {
		store, err := NewSqliteCellStore(filepath.Join(t.TempDir(), "cells.db"))
		assert.NoError(t, err)
		defer store.Close()

		_assertCellStoreContract(t, store)
	})

	t.Run("in_memory", func(t *testing.T) {
		store, err := NewSqliteCellStore(":memory:")
		assert.NoError(t, err)
		defer store.Close()

		_assertCellStoreContract(t, store)
	})

	t.Run("persisted_between_opens", func(t *testing.T) {
		ctx := context.Background()
		path := filepath.Join(t.TempDir(), "cells.db")

		store, err := NewSqliteCellStore(path)
		assert.NoError(t, err)
		_, err = store.Put(ctx, "C3", "A1*2")
		assert.NoError(t, err)
		assert.NoError(t, store.Close())

		reopened, err := NewSqliteCellStore(path)
		assert.NoError(t, err)
		defer reopened.Close()

		formula, found, err := reopened.Lookup(ctx, "C3")
		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "A1*2", formula)
	})

	t.Run("closed_database", func(t *testing.T) {
		store, err := NewSqliteCellStore(filepath.Join(t.TempDir(), "cells.db"))
		assert.NoError(t, err)
		assert.NoError(t, store.Close())

		_, _, err = store.Lookup(context.Background(), "A1")
		assert.ErrorIs(t, err, contracts.StorageUnavailableError)

		_, err = store.Put(context.Background(), "A1", "1")
		assert.ErrorIs(t, err, contracts.StorageUnavailableError)
	})

	t.Run("invalid_path", func(t *testing.T) {
		_, err := NewSqliteCellStore(filepath.Join(t.TempDir(), "missing", "dir", "cells.db"))

		assert.ErrorIs(t, err, contracts.StorageUnavailableError)
	})
}
