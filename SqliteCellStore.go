package main

import (
	"context"
	"database/sql"
	"errors"
	_ "modernc.org/sqlite"
)

const sqliteDriverName = "sqlite"

const cellsSchema = `CREATE TABLE IF NOT EXISTS cells (
	id TEXT PRIMARY KEY,
	formula TEXT NOT NULL
)`

// SqliteCellStore keeps cells in a single relational table.
type SqliteCellStore struct {
	db *sql.DB
}

func NewSqliteCellStore(path string) (*SqliteCellStore, error) {
	db, err := sql.Open(sqliteDriverName, path)
	if err != nil {
		return nil, wrapStorageError("open sqlite", err)
	}

	// one connection: sqlite serializes writers anyway and ":memory:" is per connection
	db.SetMaxOpenConns(1)

	if _, err = db.Exec(cellsSchema); err != nil {
		_ = db.Close()
		return nil, wrapStorageError("create schema", err)
	}

	return &SqliteCellStore{db: db}, nil
}

func (s *SqliteCellStore) Lookup(ctx context.Context, cellId string) (formula string, found bool, err error) {
	err = s.db.QueryRowContext(ctx, "SELECT formula FROM cells WHERE id = ?", cellId).Scan(&formula)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, wrapStorageError("lookup "+cellId, err)
	}

	return formula, true, nil
}

func (s *SqliteCellStore) Put(ctx context.Context, cellId string, formula string) (created bool, err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, wrapStorageError("put "+cellId, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var exists int
	err = tx.QueryRowContext(ctx, "SELECT 1 FROM cells WHERE id = ?", cellId).Scan(&exists)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return false, wrapStorageError("put "+cellId, err)
	}
	created = errors.Is(err, sql.ErrNoRows)

	if created {
		_, err = tx.ExecContext(ctx, "INSERT INTO cells (id, formula) VALUES (?, ?)", cellId, formula)
	} else {
		_, err = tx.ExecContext(ctx, "UPDATE cells SET formula = ? WHERE id = ?", formula, cellId)
	}
	if err != nil {
		return false, wrapStorageError("put "+cellId, err)
	}

	if err = tx.Commit(); err != nil {
		return false, wrapStorageError("put "+cellId, err)
	}

	return created, nil
}

func (s *SqliteCellStore) Delete(ctx context.Context, cellId string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM cells WHERE id = ?", cellId)
	if err != nil {
		return wrapStorageError("delete "+cellId, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return wrapStorageError("delete "+cellId, err)
	}
	if affected == 0 {
		return cellNotFound(cellId)
	}

	return nil
}

func (s *SqliteCellStore) List(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id FROM cells ORDER BY id")
	if err != nil {
		return nil, wrapStorageError("list", err)
	}
	defer rows.Close()

	cellIds := make([]string, 0)
	for rows.Next() {
		var cellId string
		if err = rows.Scan(&cellId); err != nil {
			return nil, wrapStorageError("list", err)
		}
		cellIds = append(cellIds, cellId)
	}

	if err = rows.Err(); err != nil {
		return nil, wrapStorageError("list", err)
	}

	return cellIds, nil
}

func (s *SqliteCellStore) Close() error {
	return s.db.Close()
}
