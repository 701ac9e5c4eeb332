// Package metrics provides Prometheus metrics recording for internal packages.
// This package exists to avoid import cycles between service and middleware packages.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Operation outcomes
const (
	OutcomeSuccess        = "success"
	OutcomeInvalidNumber  = "invalid_number"
	OutcomeDivisionByZero = "division_by_zero"
	OutcomeInvalidRoot    = "invalid_root"
	OutcomeInternal       = "internal_error"
)

var (
	// operationsTotal tracks calculations by operation and outcome
	operationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "calculator_operations_total",
			Help: "Total number of calculations by operation and outcome",
		},
		[]string{"operation", "outcome"},
	)

	// operationDuration tracks time spent parsing, validating and evaluating
	operationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "calculator_operation_duration_seconds",
			Help:    "Calculation duration in seconds",
			Buckets: []float64{.00001, .00005, .0001, .0005, .001, .005, .01},
		},
		[]string{"operation"},
	)

	// nonFiniteResults tracks successful calculations whose result is NaN or Inf
	nonFiniteResults = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "calculator_non_finite_results_total",
			Help: "Total number of calculations that produced NaN or Inf",
		},
		[]string{"operation"},
	)
)

// RecordOperation records the outcome and duration of a calculation
func RecordOperation(operation, outcome string, duration time.Duration) {
	operationsTotal.WithLabelValues(operation, outcome).Inc()
	operationDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordNonFinite records a NaN or Inf result
func RecordNonFinite(operation string) {
	nonFiniteResults.WithLabelValues(operation).Inc()
}

// OperationsCounter returns the counter for an operation and outcome pair
func OperationsCounter(operation, outcome string) prometheus.Counter {
	return operationsTotal.WithLabelValues(operation, outcome)
}
