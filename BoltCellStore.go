package main

import (
	"context"
	"errors"
	"fmt"
	"go.etcd.io/bbolt"
	"scMicroservice/contracts"
	"time"
)

var cellsBucket = []byte("cells")

var CellRecordMismatchError = errors.New("stored record belongs to another cell")

const boltOpenTimeout = time.Second

// BoltCellStore keeps cells in a local bbolt file, one key per cell id.
type BoltCellStore struct {
	db         *bbolt.DB
	serializer contracts.CellSerializer
}

func NewBoltCellStore(path string, serializer contracts.CellSerializer) (*BoltCellStore, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: boltOpenTimeout})
	if err != nil {
		return nil, wrapStorageError("open bolt", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(cellsBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, wrapStorageError("create bucket", err)
	}

	return &BoltCellStore{db: db, serializer: serializer}, nil
}

func (s *BoltCellStore) Lookup(_ context.Context, cellId string) (formula string, found bool, err error) {
	err = s.db.View(func(tx *bbolt.Tx) error {
		byteValue := tx.Bucket(cellsBucket).Get([]byte(cellId))
		if byteValue == nil {
			return nil
		}

		storedId, storedFormula, err := s.serializer.Unmarshal(byteValue)
		if err != nil {
			return err
		}
		if storedId != cellId {
			return fmt.Errorf("%w: key %s holds %s", CellRecordMismatchError, cellId, storedId)
		}

		formula, found = storedFormula, true
		return nil
	})

	if err != nil {
		return "", false, wrapStorageError("lookup "+cellId, err)
	}

	return
}

func (s *BoltCellStore) Put(_ context.Context, cellId string, formula string) (created bool, err error) {
	key := []byte(cellId)
	serializedData := s.serializer.Marshal(cellId, formula)

	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(cellsBucket)
		created = bucket.Get(key) == nil
		return bucket.Put(key, serializedData)
	})

	if err != nil {
		return false, wrapStorageError("put "+cellId, err)
	}

	return
}

func (s *BoltCellStore) Delete(_ context.Context, cellId string) error {
	key := []byte(cellId)
	found := false

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(cellsBucket)
		if bucket.Get(key) == nil {
			return nil
		}

		found = true
		return bucket.Delete(key)
	})

	if err != nil {
		return wrapStorageError("delete "+cellId, err)
	}
	if !found {
		return cellNotFound(cellId)
	}

	return nil
}

func (s *BoltCellStore) List(_ context.Context) ([]string, error) {
	cellIds := make([]string, 0)

	err := s.db.View(func(tx *bbolt.Tx) error {
		c := tx.Bucket(cellsBucket).Cursor()
		for k, _ := c.First(); k != nil; k, _ = c.Next() {
			cellIds = append(cellIds, string(k))
		}
		return nil
	})

	if err != nil {
		return nil, wrapStorageError("list", err)
	}

	return cellIds, nil
}

func (s *BoltCellStore) Close() error {
	return s.db.Close()
}
