package contracts

import "context"

type FormulaEvaluator interface {
	Evaluate(ctx context.Context, cellId string, formula string) (string, error)
}
