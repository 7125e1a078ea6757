package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ordersConsumed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "boba_service",
			Subsystem: "kafka_consumer",
			Name:      "orders_consumed_total",
			Help:      "Total number of orders accepted from Kafka",
		},
	)

	ordersRejected = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "boba_service",
			Subsystem: "kafka_consumer",
			Name:      "orders_rejected_total",
			Help:      "Total number of Kafka messages that did not form a valid order",
		},
	)

	ordersDLQ = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "boba_service",
			Subsystem: "kafka_consumer",
			Name:      "orders_dlq_total",
			Help:      "Total number of orders written to DLQ",
		},
	)

	commitErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "boba_service",
			Subsystem: "kafka_consumer",
			Name:      "commit_errors_total",
			Help:      "Total number of Kafka commit errors",
		},
	)

	orderProcessingDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "boba_service",
			Subsystem: "kafka_consumer",
			Name:      "order_processing_duration_seconds",
			Help:      "Histogram of order processing durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	ordersInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "boba_service",
			Subsystem: "kafka_consumer",
			Name:      "orders_in_progress",
			Help:      "Number of orders currently being processed",
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		ordersConsumed,
		ordersRejected,
		ordersDLQ,
		commitErrors,
		orderProcessingDuration,
		ordersInProgress,
	)
}
