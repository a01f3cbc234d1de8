package server

import (
	"github.com/prometheus/client_golang/prometheus"
)

// metrics holds the server's Prometheus collectors. Each Server owns a
// registry so tests can run servers side by side without duplicate
// registration panics.
type metrics struct {
	registry       *prometheus.Registry
	rendersTotal   *prometheus.CounterVec
	renderDuration prometheus.Histogram
	lastSegments   prometheus.Gauge
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		rendersTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "lsys_renders_total",
			Help: "Completed renders by trigger.",
		}, []string{"trigger"}),
		renderDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "lsys_render_duration_seconds",
			Help:    "Wall time of the expand/interpret/fit pipeline.",
			Buckets: prometheus.DefBuckets,
		}),
		lastSegments: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "lsys_last_render_segments",
			Help: "Segment count of the most recent render.",
		}),
	}
	m.registry.MustRegister(m.rendersTotal, m.renderDuration, m.lastSegments)
	return m
}

func (m *metrics) observe(trigger string, seconds float64, segments int) {
	m.rendersTotal.WithLabelValues(trigger).Inc()
	m.renderDuration.Observe(seconds)
	m.lastSegments.Set(float64(segments))
}
