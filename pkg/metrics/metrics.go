// Package metrics defines the Prometheus metric collectors used across the
// engine and exposes an HTTP handler for scraping.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus collectors for the engine.
type Metrics struct {
	WordChecksTotal  *prometheus.CounterVec
	DiagnosticsTotal *prometheus.CounterVec
	DeriveLatency    prometheus.Histogram
	TextCheckLatency prometheus.Histogram
	TextCheckBytes   prometheus.Histogram
	LexiconSize      prometheus.Gauge
}

// NewWith creates the collectors and registers them with reg.
func NewWith(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		WordChecksTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orthography_word_checks_total",
				Help: "Total word checks by outcome (correct, corrected, unknown).",
			},
			[]string{"outcome"},
		),
		DiagnosticsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orthography_diagnostics_total",
				Help: "Total diagnostics emitted by rule category.",
			},
			[]string{"category"},
		),
		DeriveLatency: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "orthography_derive_latency_seconds",
				Help:    "Single-word derivation latency in seconds.",
				Buckets: []float64{1e-6, 5e-6, 1e-5, 5e-5, 1e-4, 5e-4, 1e-3, 5e-3},
			},
		),
		TextCheckLatency: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "orthography_text_check_latency_seconds",
				Help:    "Full text-check latency in seconds.",
				Buckets: []float64{1e-4, 5e-4, 1e-3, 5e-3, 0.01, 0.05, 0.1, 0.5, 1},
			},
		),
		TextCheckBytes: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "orthography_text_check_bytes",
				Help:    "Size of checked documents in bytes.",
				Buckets: prometheus.ExponentialBuckets(64, 4, 8),
			},
		),
		LexiconSize: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "orthography_lexicon_entries",
				Help: "Number of entries in the loaded lexicon.",
			},
		),
	}

	reg.MustRegister(
		m.WordChecksTotal,
		m.DiagnosticsTotal,
		m.DeriveLatency,
		m.TextCheckLatency,
		m.TextCheckBytes,
		m.LexiconSize,
	)

	return m
}

var (
	defaultOnce    sync.Once
	defaultMetrics *Metrics
)

// Default registers the collectors with the default Prometheus registry
// once and returns them.
func Default() *Metrics {
	defaultOnce.Do(func() {
		defaultMetrics = NewWith(prometheus.DefaultRegisterer)
	})
	return defaultMetrics
}

// Handler returns the Prometheus scrape HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
