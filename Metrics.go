package main

import (
	"errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"net/http"
	"scMicroservice/contracts"
	"strconv"
	"time"
)

const metricsNamespace = "sc"

const (
	EvaluationResultOk                 = "ok"
	EvaluationResultError              = "evaluation_error"
	EvaluationResultCycle              = "cycle"
	EvaluationResultStorageUnavailable = "storage_unavailable"
)

// Metrics owns its registry, so several containers can live in one process (tests).
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry           *prometheus.Registry
	evaluations        *prometheus.CounterVec
	evaluationDuration prometheus.Histogram
	requests           *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		evaluations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "evaluations_total",
			Help:      "Formula evaluations by result",
		}, []string{"result"}),
		evaluationDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "evaluation_duration_seconds",
			Help:      "Formula evaluation latency including storage lookups",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 14), // 0.1ms to ~800ms
		}),
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status",
		}, []string{"method", "route", "status"}),
	}
}

func (m *Metrics) ObserveEvaluation(started time.Time, err error) {
	if m == nil {
		return
	}

	m.evaluationDuration.Observe(time.Since(started).Seconds())
	m.evaluations.WithLabelValues(EvaluationResult(err)).Inc()
}

func (m *Metrics) ObserveRequest(method string, route string, status int) {
	if m == nil {
		return
	}

	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func EvaluationResult(err error) string {
	switch {
	case err == nil:
		return EvaluationResultOk
	case errors.Is(err, contracts.CycleDetectedError):
		return EvaluationResultCycle
	case errors.Is(err, contracts.StorageUnavailableError):
		return EvaluationResultStorageUnavailable
	default:
		return EvaluationResultError
	}
}
