// Package monitoring exposes prometheus metrics for the front end.
// File: monitoring/metrics.go
package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	backendRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "backend_request_duration_seconds",
			Help:    "Latency of calls to the ticketing backend",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "outcome"},
	)

	ticketPurchases = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ticket_purchases_total",
			Help: "Ticket purchase attempts by outcome",
		},
		[]string{"outcome"},
	)

	ticketValidations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ticket_validations_total",
			Help: "Ticket validation attempts by result",
		},
		[]string{"result"},
	)

	sessionTeardowns = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "session_teardowns_total",
			Help: "Sessions cleared by the fail-closed 401 policy",
		},
	)
)

// ObserveBackendRequest records one backend round trip. Outcome is one of
// "success", "network_error", "server_error", "unauthorized",
// "request_error".
func ObserveBackendRequest(method, outcome string, d time.Duration) {
	backendRequestDuration.WithLabelValues(method, outcome).Observe(d.Seconds())
}

// RecordPurchase counts a purchase attempt.
func RecordPurchase(outcome string) {
	ticketPurchases.WithLabelValues(outcome).Inc()
}

// RecordValidation counts a validation attempt. Result is one of
// "validated", "already_used", "failed".
func RecordValidation(result string) {
	ticketValidations.WithLabelValues(result).Inc()
}

// RecordSessionTeardown counts a fail-closed session teardown.
func RecordSessionTeardown() {
	sessionTeardowns.Inc()
}
