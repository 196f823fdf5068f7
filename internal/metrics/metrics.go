package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels for inventory operations.
const (
	ResultOK       = "ok"
	ResultInvalid  = "invalid"
	ResultNotFound = "not_found"
	ResultError    = "error"
)

var (
	operationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inventory_operations_total",
			Help: "Total number of inventory operations by entity, operation and result",
		},
		[]string{"entity", "operation", "result"},
	)

	operationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "inventory_operation_duration_seconds",
			Help:    "Duration of inventory operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"entity", "operation"},
	)

	eventsPublishFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "inventory_event_publish_failures_total",
			Help: "Total number of inventory events that could not be published",
		},
	)
)

func init() {
	prometheus.MustRegister(operationsTotal)
	prometheus.MustRegister(operationDuration)
	prometheus.MustRegister(eventsPublishFailures)
}

// ObserveOperation records one finished operation.
func ObserveOperation(entity, operation, result string, started time.Time) {
	operationsTotal.WithLabelValues(entity, operation, result).Inc()
	operationDuration.WithLabelValues(entity, operation).Observe(time.Since(started).Seconds())
}

// EventPublishFailed counts an event that was dropped.
func EventPublishFailed() {
	eventsPublishFailures.Inc()
}
