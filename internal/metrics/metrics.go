// Package metrics records per-run contrast check counters and writes them in
// the Prometheus text format for the node_exporter textfile collector.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder holds the metrics of a single invocation in its own registry
type Recorder struct {
	registry *prometheus.Registry

	// checks counts completed checks by summary level
	checks *prometheus.CounterVec

	// parses counts parsed colors by input grammar
	parses *prometheus.CounterVec

	// parseErrors counts rejected inputs by which flag carried them
	parseErrors *prometheus.CounterVec

	lastRatio prometheus.Gauge
}

// New creates a Recorder backed by a fresh registry
func New() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,
		checks: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "wcag_contrast_checks_total",
			Help: "Completed contrast checks by highest level met",
		}, []string{"level"}),
		parses: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "wcag_contrast_parse_total",
			Help: "Parsed colors by input format",
		}, []string{"format"}),
		parseErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "wcag_contrast_parse_errors_total",
			Help: "Rejected color inputs by role",
		}, []string{"input"}),
		lastRatio: factory.NewGauge(prometheus.GaugeOpts{
			Name: "wcag_contrast_last_ratio",
			Help: "Contrast ratio of the most recent check",
		}),
	}
}

// ObserveParse records a successfully parsed color
func (r *Recorder) ObserveParse(format string) {
	r.parses.WithLabelValues(format).Inc()
}

// ObserveParseError records a rejected input; role is "foreground" or "background"
func (r *Recorder) ObserveParseError(role string) {
	r.parseErrors.WithLabelValues(role).Inc()
}

// ObserveCheck records a completed check
func (r *Recorder) ObserveCheck(level string, ratio float64) {
	r.checks.WithLabelValues(level).Inc()
	r.lastRatio.Set(ratio)
}

// WriteTextfile atomically writes all metrics to path
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
