package service

import "github.com/prometheus/client_golang/prometheus"

var (
	ordersSubmitted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "dispatch",
			Subsystem: "orders",
			Name:      "submitted_total",
			Help:      "Total number of submitted ride orders",
		},
	)

	orderStatusChanges = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dispatch",
			Subsystem: "orders",
			Name:      "status_changes_total",
			Help:      "Total number of order status changes by new status",
		},
		[]string{"status"},
	)

	interestsRecorded = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "dispatch",
			Subsystem: "orders",
			Name:      "interests_recorded_total",
			Help:      "Total number of driver interests recorded",
		},
	)

	profileFlushFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dispatch",
			Subsystem: "profiles",
			Name:      "flush_failures_total",
			Help:      "Total number of failed profile document writes",
		},
		[]string{"kind"},
	)
)

func RegisterMetrics(reg prometheus.Registerer) {
	reg.MustRegister(
		ordersSubmitted,
		orderStatusChanges,
		interestsRecorded,
		profileFlushFailures,
	)
}
