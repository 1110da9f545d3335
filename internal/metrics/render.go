package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	renderTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "searchview",
			Name:      "render_requests_total",
			Help:      "Total select responses by writer, template, and outcome",
		},
		[]string{"writer", "template", "status"},
	)

	renderDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "searchview",
			Name:      "render_duration_seconds",
			Help:      "Response rendering duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"writer", "template"},
	)
)

// RegisterRenderMetrics registers render metrics explicitly (no init()).
func RegisterRenderMetrics() {
	prometheus.MustRegister(renderTotal)
	prometheus.MustRegister(renderDuration)
}

// ObserveRender records one response-writer invocation.
func ObserveRender(writer, template, status string, d time.Duration) {
	renderTotal.WithLabelValues(writer, template, status).Inc()
	renderDuration.WithLabelValues(writer, template).Observe(d.Seconds())
}
