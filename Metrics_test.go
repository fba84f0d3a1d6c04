package main

import (
	"errors"
	"fmt"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"scMicroservice/contracts"
	"testing"
	"time"
)

func TestEvaluationResult(t *testing.T) {
	assert.Equal(t, EvaluationResultOk, EvaluationResult(nil))
	assert.Equal(t, EvaluationResultError, EvaluationResult(contracts.DivisionByZeroError))
	assert.Equal(t, EvaluationResultCycle, EvaluationResult(fmt.Errorf("A1: %w", contracts.CycleDetectedError)))
	assert.Equal(t, EvaluationResultStorageUnavailable, EvaluationResult(wrapStorageError("lookup", errors.New("test"))))
}

func TestMetrics_ObserveEvaluation(t *testing.T) {
	t.Run("counts_by_result", func(t *testing.T) {
		metrics := NewMetrics()

		metrics.ObserveEvaluation(time.Now(), nil)
		metrics.ObserveEvaluation(time.Now(), nil)
		metrics.ObserveEvaluation(time.Now(), contracts.CycleDetectedError)

		assert.Equal(t, 2.0, testutil.ToFloat64(metrics.evaluations.WithLabelValues(EvaluationResultOk)))
		assert.Equal(t, 1.0, testutil.ToFloat64(metrics.evaluations.WithLabelValues(EvaluationResultCycle)))
		assert.Equal(t, 0.0, testutil.ToFloat64(metrics.evaluations.WithLabelValues(EvaluationResultError)))
	})

	t.Run("nil_metrics", func(t *testing.T) {
		var metrics *Metrics

		assert.NotPanics(t, func() {
			metrics.ObserveEvaluation(time.Now(), nil)
			metrics.ObserveRequest("GET", "/cells", 200)
		})
	})
}
