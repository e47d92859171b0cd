package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	requestsProcessed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "dispatch",
			Subsystem: "kafka_consumer",
			Name:      "ride_requests_processed_total",
			Help:      "Total number of ride requests turned into orders",
		},
	)

	requestsFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "dispatch",
			Subsystem: "kafka_consumer",
			Name:      "ride_requests_failed_total",
			Help:      "Total number of ride requests that could not be decoded or validated",
		},
	)

	requestsDuplicate = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "dispatch",
			Subsystem: "kafka_consumer",
			Name:      "ride_requests_duplicate_total",
			Help:      "Total number of redelivered ride requests skipped",
		},
	)

	requestsDLQ = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "dispatch",
			Subsystem: "kafka_consumer",
			Name:      "ride_requests_dlq_total",
			Help:      "Total number of ride requests written to DLQ",
		},
	)

	commitErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "dispatch",
			Subsystem: "kafka_consumer",
			Name:      "commit_errors_total",
			Help:      "Total number of Kafka commit errors",
		},
	)

	requestProcessingDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "dispatch",
			Subsystem: "kafka_consumer",
			Name:      "ride_request_processing_duration_seconds",
			Help:      "Histogram of ride request processing durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	requestsInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "dispatch",
			Subsystem: "kafka_consumer",
			Name:      "ride_requests_in_progress",
			Help:      "Number of ride requests currently being processed",
		},
	)
)

func RegisterMetrics(reg prometheus.Registerer) {
	reg.MustRegister(
		requestsProcessed,
		requestsFailed,
		requestsDuplicate,
		requestsDLQ,
		commitErrors,
		requestProcessingDuration,
		requestsInProgress,
	)
}
