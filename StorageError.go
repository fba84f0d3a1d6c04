package main

import (
	"fmt"
	"scMicroservice/contracts"
)

func wrapStorageError(operation string, err error) error {
	return fmt.Errorf("%w: %s: %w", contracts.StorageUnavailableError, operation, err)
}

func cellNotFound(cellId string) error {
	return fmt.Errorf("%s: %w", cellId, contracts.CellNotFoundError)
}
