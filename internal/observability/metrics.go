package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for the normalization
// engine.
type Metrics struct {
	GeocodeRequests    *prometheus.CounterVec   // labels: command={search_places,reverse_geocode}, outcome={success,empty,provider_failure}
	ProviderFailures   *prometheus.CounterVec   // labels: failure_code
	DroppedRecords     prometheus.Counter       // provider records that failed the required-field gate
	APIDuration        *prometheus.HistogramVec // labels: command
	AddressesPublished prometheus.Counter
}

// NewMetrics creates and registers all engine metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		GeocodeRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "addrnorm",
			Name:      "geocode_requests_total",
			Help:      "Provider API requests by command and outcome.",
		}, []string{"command", "outcome"}),
		ProviderFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "addrnorm",
			Name:      "provider_failures_total",
			Help:      "Classified provider failures by internal failure code.",
		}, []string{"failure_code"}),
		DroppedRecords: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "addrnorm",
			Name:      "dropped_records_total",
			Help:      "Provider records discarded for missing a resolvable country or sub-division.",
		}),
		APIDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "addrnorm",
			Name:      "provider_api_duration_seconds",
			Help:      "Provider API request duration in seconds.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"command"}),
		AddressesPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "addrnorm",
			Name:      "addresses_published_total",
			Help:      "Normalized addresses published to the sink topic.",
		}),
	}

	prometheus.MustRegister(
		m.GeocodeRequests,
		m.ProviderFailures,
		m.DroppedRecords,
		m.APIDuration,
		m.AddressesPublished,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		GeocodeRequests:    prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "addrnorm", Name: "geocode_requests_total"}, []string{"command", "outcome"}),
		ProviderFailures:   prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "addrnorm", Name: "provider_failures_total"}, []string{"failure_code"}),
		DroppedRecords:     prometheus.NewCounter(prometheus.CounterOpts{Namespace: "addrnorm", Name: "dropped_records_total"}),
		APIDuration:        prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: "addrnorm", Name: "provider_api_duration_seconds"}, []string{"command"}),
		AddressesPublished: prometheus.NewCounter(prometheus.CounterOpts{Namespace: "addrnorm", Name: "addresses_published_total"}),
	}
}
