package observability

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// OperationMetrics records the outcome of service operations. Each module
// gets its own instance so dashboards can slice by module without parsing
// operation names.
type OperationMetrics interface {
	RecordOperationAttempt(ctx context.Context, operation string)
	RecordOperationSuccess(ctx context.Context, operation string)
	RecordOperationFailure(ctx context.Context, operation string)
	RecordOperationDuration(ctx context.Context, operation string, d time.Duration)
}

type prometheusMetrics struct {
	attempts  *prometheus.CounterVec
	successes *prometheus.CounterVec
	failures  *prometheus.CounterVec
	durations *prometheus.HistogramVec
}

// NewOperationMetrics registers and returns prometheus-backed metrics for one
// module. Registering the same module twice panics, matching prometheus
// semantics, so wiring mistakes surface at startup.
func NewOperationMetrics(reg prometheus.Registerer, module string) OperationMetrics {
	labels := prometheus.Labels{"module": module}
	m := &prometheusMetrics{
		attempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "gridrank_operation_attempts_total",
			Help:        "Operations attempted, by operation name.",
			ConstLabels: labels,
		}, []string{"operation"}),
		successes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "gridrank_operation_successes_total",
			Help:        "Operations that completed successfully.",
			ConstLabels: labels,
		}, []string{"operation"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "gridrank_operation_failures_total",
			Help:        "Operations that failed or returned a failure result.",
			ConstLabels: labels,
		}, []string{"operation"}),
		durations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "gridrank_operation_duration_seconds",
			Help:        "Operation wall-clock duration.",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"operation"}),
	}
	reg.MustRegister(m.attempts, m.successes, m.failures, m.durations)
	return m
}

func (m *prometheusMetrics) RecordOperationAttempt(_ context.Context, operation string) {
	m.attempts.WithLabelValues(operation).Inc()
}

func (m *prometheusMetrics) RecordOperationSuccess(_ context.Context, operation string) {
	m.successes.WithLabelValues(operation).Inc()
}

func (m *prometheusMetrics) RecordOperationFailure(_ context.Context, operation string) {
	m.failures.WithLabelValues(operation).Inc()
}

func (m *prometheusMetrics) RecordOperationDuration(_ context.Context, operation string, d time.Duration) {
	m.durations.WithLabelValues(operation).Observe(d.Seconds())
}

type noopMetrics struct{}

// NewNoopMetrics returns metrics that discard everything. Used in tests.
func NewNoopMetrics() OperationMetrics { return noopMetrics{} }

func (noopMetrics) RecordOperationAttempt(context.Context, string)                {}
func (noopMetrics) RecordOperationSuccess(context.Context, string)                {}
func (noopMetrics) RecordOperationFailure(context.Context, string)                {}
func (noopMetrics) RecordOperationDuration(context.Context, string, time.Duration) {}
