// Package observability holds the Prometheus instrumentation for the
// assistant service.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Chat request outcome labels.
const (
	OutcomeAnswered = "answered"
	OutcomeRejected = "rejected"
	OutcomeNoData   = "no_data"
	OutcomeError    = "error"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// chat pipeline.
type Metrics struct {
	ChatRequests *prometheus.CounterVec // label: outcome={answered,rejected,no_data,error}

	RetrievedRecords prometheus.Histogram
	ModelDuration    prometheus.Histogram

	StoreRecords prometheus.Gauge
}

// NewMetrics creates and registers all service metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		ChatRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tfm_api",
			Name:      "chat_requests_total",
			Help:      "Chat requests by outcome.",
		}, []string{"outcome"}),
		RetrievedRecords: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "tfm_api",
			Name:      "retrieved_records",
			Help:      "Number of records selected by the retrieval pipeline per query.",
			Buckets:   []float64{0, 1, 4, 8, 12, 20, 50, 84, 150},
		}),
		ModelDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "tfm_api",
			Name:      "model_call_duration_seconds",
			Help:      "Duration of a model generation call, including retries.",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}),
		StoreRecords: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "tfm_api",
			Name:      "store_records",
			Help:      "Number of records in the in-memory store.",
		}),
	}

	prometheus.MustRegister(
		m.ChatRequests,
		m.RetrievedRecords,
		m.ModelDuration,
		m.StoreRecords,
	)

	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics across tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		ChatRequests:     prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "tfm_api", Name: "chat_requests_total"}, []string{"outcome"}),
		RetrievedRecords: prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "tfm_api", Name: "retrieved_records"}),
		ModelDuration:    prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "tfm_api", Name: "model_call_duration_seconds"}),
		StoreRecords:     prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "tfm_api", Name: "store_records"}),
	}
}
