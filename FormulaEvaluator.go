package main

import (
	"context"
	"errors"
	"fmt"
	"scMicroservice/contracts"
	"strconv"
	"strings"
	"time"
)

// MissingReferenceValue is what a reference to a cell with no stored formula resolves to.
const MissingReferenceValue = 0.0

type FormulaEvaluator struct {
	store      contracts.CellLookup
	scanner    *ReferenceScanner
	arithmetic *ArithmeticEvaluator
	metrics    *Metrics
}

// resolutionPath holds the cells currently being resolved by one Evaluate call.
type resolutionPath map[string]bool

func NewFormulaEvaluator(
	store contracts.CellLookup, scanner *ReferenceScanner,
	arithmetic *ArithmeticEvaluator, metrics *Metrics,
) *FormulaEvaluator {
	return &FormulaEvaluator{
		store:      store,
		scanner:    scanner,
		arithmetic: arithmetic,
		metrics:    metrics,
	}
}

func (e *FormulaEvaluator) Evaluate(ctx context.Context, cellId string, formula string) (result string, err error) {
	started := time.Now()
	defer func() {
		e.metrics.ObserveEvaluation(started, err)
	}()

	if literal, ok := plainIntegerLiteral(formula); ok {
		return literal, nil
	}

	value, err := e.resolve(ctx, cellId, formula, resolutionPath{cellId: true})
	if err != nil {
		return "", err
	}

	return FormatNumber(value), nil
}

func (e *FormulaEvaluator) resolve(ctx context.Context, cellId string, formula string, path resolutionPath) (float64, error) {
	if literal, ok := plainIntegerLiteral(formula); ok {
		value, err := strconv.ParseFloat(literal, 64)
		if err != nil {
			return 0, fmt.Errorf("%s: %w: %s", cellId, contracts.EvaluationError, err)
		}
		return value, nil
	}

	if err := e.arithmetic.CheckSyntax(formula); err != nil {
		return 0, fmt.Errorf("%s: %w", cellId, err)
	}

	references := e.scanner.Scan(formula)
	operands := make(map[string]string, len(references))

	for _, reference := range references {
		value, err := e.resolveReference(ctx, reference, path)
		if err != nil {
			return 0, err
		}
		operands[reference] = operandLiteral(value)
	}

	expression := e.scanner.Replace(formula, func(reference string) string {
		return operands[reference]
	})

	value, err := e.arithmetic.Evaluate(expression)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", cellId, err)
	}

	return value, nil
}

func (e *FormulaEvaluator) resolveReference(ctx context.Context, reference string, path resolutionPath) (float64, error) {
	if path[reference] {
		return 0, fmt.Errorf("%s: %w", reference, contracts.CycleDetectedError)
	}

	formula, found, err := e.store.Lookup(ctx, reference)
	if err != nil {
		if !errors.Is(err, contracts.StorageUnavailableError) {
			err = fmt.Errorf("%w: %w", contracts.StorageUnavailableError, err)
		}
		return 0, fmt.Errorf("%s: %w", reference, err)
	}

	if !found {
		return MissingReferenceValue, nil
	}

	path[reference] = true
	defer delete(path, reference)

	return e.resolve(ctx, reference, formula, path)
}

// plainIntegerLiteral reports whether formula is a non-negative integer literal, ignoring surrounding spaces.
func plainIntegerLiteral(formula string) (string, bool) {
	literal := strings.TrimSpace(formula)
	if literal == "" {
		return "", false
	}

	for _, char := range literal {
		if char < '0' || char > '9' {
			return "", false
		}
	}

	return literal, true
}

// FormatNumber renders the shortest decimal representation: 14, 2.5, -3.
func FormatNumber(value float64) string {
	if value == 0 {
		// no "-0"
		value = 0
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// operandLiteral renders a resolved value for substitution: always a float literal,
// parenthesized when negative.
func operandLiteral(value float64) string {
	literal := FormatNumber(value)
	if !strings.Contains(literal, ".") {
		literal += ".0"
	}

	if value < 0 {
		return "(" + literal + ")"
	}
	return literal
}
