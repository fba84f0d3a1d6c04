package contracts

import "context"

// CellLookup is the only storage capability the formula evaluator needs.
type CellLookup interface {
	Lookup(ctx context.Context, cellId string) (formula string, found bool, err error)
}

type CellStore interface {
	CellLookup
	// Put reports created=true when the cell did not exist before.
	Put(ctx context.Context, cellId string, formula string) (created bool, err error)
	// Delete returns CellNotFoundError when there is nothing to delete.
	Delete(ctx context.Context, cellId string) error
	List(ctx context.Context) ([]string, error)
	Close() error
}
