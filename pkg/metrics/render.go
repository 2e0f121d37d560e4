package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Render outcomes recorded on render_total.
const (
	OutcomeOK     = "ok"
	OutcomeCached = "cached"
	OutcomeError  = "error"
)

// RenderMetrics records chart render timings and outcomes.
type RenderMetrics struct {
	duration *prometheus.HistogramVec
	total    *prometheus.CounterVec
	points   *prometheus.HistogramVec
}

// NewRenderMetrics registers the render collectors on the provided registerer.
// A nil registerer yields a no-op recorder.
func NewRenderMetrics(reg prometheus.Registerer) *RenderMetrics {
	if reg == nil {
		return &RenderMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "render_duration_seconds",
		Help:    "Duration of chart renders in seconds.",
		Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5},
	}, []string{"chart"})
	total := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "render_total",
		Help: "Chart render attempts by outcome.",
	}, []string{"chart", "outcome"})
	points := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "render_dataset_points",
		Help:    "Number of points in the aggregated dataset handed to the renderer.",
		Buckets: []float64{1, 2, 3, 5, 10, 25, 50, 100},
	}, []string{"chart"})
	reg.MustRegister(duration, total, points)
	return &RenderMetrics{
		duration: duration,
		total:    total,
		points:   points,
	}
}

// ObserveDuration records how long the named chart took to produce.
func (m *RenderMetrics) ObserveDuration(chart string, duration time.Duration) {
	if m == nil || m.duration == nil {
		return
	}
	m.duration.WithLabelValues(normalizeLabel(chart)).Observe(duration.Seconds())
}

// IncOutcome increments render_total for the chart and outcome.
func (m *RenderMetrics) IncOutcome(chart, outcome string) {
	if m == nil || m.total == nil {
		return
	}
	m.total.WithLabelValues(normalizeLabel(chart), normalizeLabel(outcome)).Inc()
}

// ObservePoints records the dataset size for the named chart.
func (m *RenderMetrics) ObservePoints(chart string, n int) {
	if m == nil || m.points == nil {
		return
	}
	m.points.WithLabelValues(normalizeLabel(chart)).Observe(float64(n))
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
