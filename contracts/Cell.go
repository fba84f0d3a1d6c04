package contracts

import (
	"errors"
	"fmt"
)

type Cell struct {
	Id      string `json:"id"`
	Formula string `json:"formula"`
}

var CellNotFoundError = errors.New("cell not found")

var EvaluationError = errors.New("evaluation error")

var DivisionByZeroError = fmt.Errorf("%w: %s", EvaluationError, "division by zero")

// CycleDetectedError is kept apart from EvaluationError: the formula text is valid, the reference graph is not.
var CycleDetectedError = errors.New("reference cycle detected")

var StorageUnavailableError = errors.New("storage unavailable")
