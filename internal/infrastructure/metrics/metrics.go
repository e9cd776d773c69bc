package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Discovery API metrics
var (
	// Request counters
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fooddash",
			Subsystem: "discovery_api",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	// Searches by outcome (ok | fallback)
	SearchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fooddash",
			Subsystem: "discovery_api",
			Name:      "searches_total",
			Help:      "Total restaurant searches by provider and outcome",
		},
		[]string{"provider", "outcome"},
	)

	// Provider errors
	ProviderErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fooddash",
			Subsystem: "discovery_api",
			Name:      "provider_errors_total",
			Help:      "Total upstream provider call failures",
		},
		[]string{"provider", "error_type"},
	)

	// Mock-data substitutions
	FallbackSubstitutionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "fooddash",
			Subsystem: "discovery_api",
			Name:      "fallback_substitutions_total",
			Help:      "Total searches answered with the mock fallback set",
		},
	)

	// Request duration histogram
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "fooddash",
			Subsystem: "discovery_api",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
		},
		[]string{"method", "endpoint", "status"},
	)

	// Upstream availability as seen by the health probe (1 up, 0 down)
	ProviderUp = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "fooddash",
			Subsystem: "discovery_api",
			Name:      "provider_up",
			Help:      "Whether the upstream provider answered the last health probe",
		},
		[]string{"provider"},
	)
)

// RecordRequest records one served HTTP request.
func RecordRequest(method, endpoint, status string, duration float64) {
	RequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	RequestDuration.WithLabelValues(method, endpoint, status).Observe(duration)
}

// RecordSearch records one search by outcome.
func RecordSearch(provider, outcome string) {
	SearchesTotal.WithLabelValues(provider, outcome).Inc()
}

// RecordProviderError records one upstream failure.
func RecordProviderError(provider, errorType string) {
	ProviderErrorsTotal.WithLabelValues(provider, errorType).Inc()
}

// RecordFallback records one mock-data substitution.
func RecordFallback() {
	FallbackSubstitutionsTotal.Inc()
}

// SetProviderUp publishes the health probe result.
func SetProviderUp(provider string, up bool) {
	value := 0.0
	if up {
		value = 1.0
	}
	ProviderUp.WithLabelValues(provider).Set(value)
}
