package main

import (
	"context"
	"github.com/stretchr/testify/assert"
	"go.etcd.io/bbolt"
	"path/filepath"
	"scMicroservice/contracts"
	"testing"
)

func _createTmpBoltStore(t *testing.T) (*BoltCellStore, string) {
	path := filepath.Join(t.TempDir(), "cells.bolt")
	store, err := NewBoltCellStore(path, NewCellBinarySerializer())
	assert.NoError(t, err)
	return store, path
}

func TestBoltCellStore(t *testing.T) {
	t.Run("contract", func(t *testing.T) {
		store, _ := _createTmpBoltStore(t)
		defer store.Close()

		_assertCellStoreContract(t, store)
	})

	t.Run("persisted_between_opens", func(t *testing.T) {
		ctx := context.Background()
		store, path := _createTmpBoltStore(t)

		_, err := store.Put(ctx, "AB12", "7")
		assert.NoError(t, err)
		assert.NoError(t, store.Close())

		reopened, err := NewBoltCellStore(path, NewCellBinarySerializer())
		assert.NoError(t, err)
		defer reopened.Close()

		formula, found, err := reopened.Lookup(ctx, "AB12")
		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "7", formula)
	})

	t.Run("corrupted_record", func(t *testing.T) {
		store, _ := _createTmpBoltStore(t)
		defer store.Close()

		err := store.db.Update(func(tx *bbolt.Tx) error {
			return tx.Bucket(cellsBucket).Put([]byte("A1"), []byte{0xff})
		})
		assert.NoError(t, err)

		_, found, err := store.Lookup(context.Background(), "A1")
		assert.ErrorIs(t, err, contracts.StorageUnavailableError)
		assert.ErrorIs(t, err, SerializerError)
		assert.False(t, found)
	})

	t.Run("record_under_wrong_key", func(t *testing.T) {
		store, _ := _createTmpBoltStore(t)
		defer store.Close()

		err := store.db.Update(func(tx *bbolt.Tx) error {
			return tx.Bucket(cellsBucket).Put([]byte("A1"), NewCellBinarySerializer().Marshal("B1", "5"))
		})
		assert.NoError(t, err)

		formula, found, err := store.Lookup(context.Background(), "A1")
		assert.ErrorIs(t, err, contracts.StorageUnavailableError)
		assert.ErrorIs(t, err, CellRecordMismatchError)
		assert.False(t, found)
		assert.Empty(t, formula)
	})

	t.Run("closed_database", func(t *testing.T) {
		store, _ := _createTmpBoltStore(t)
		assert.NoError(t, store.Close())

		_, err := store.List(context.Background())
		assert.ErrorIs(t, err, contracts.StorageUnavailableError)
	})
}
