package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/flagkit/flagkit/pkg/engine"
)

// Metrics is an engine observer exporting evaluation counters and latency
// histograms to Prometheus.
type Metrics struct {
	evaluations *prometheus.CounterVec
	duration    *prometheus.HistogramVec
}

var _ engine.Observer = (*Metrics)(nil)

// NewMetrics registers the flagkit metric vectors on reg and returns the
// observer. Panics if the metrics are already registered, so construct it
// once per registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		evaluations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "flagkit_evaluations_total",
			Help: "Flag evaluations by namespace, feature and decision kind.",
		}, []string{"namespace", "feature", "decision"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "flagkit_evaluation_duration_seconds",
			Help:    "Flag evaluation latency by namespace and decision kind.",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 10),
		}, []string{"namespace", "decision"}),
	}
}

// Observe implements engine.Observer.
func (m *Metrics) Observe(rec engine.Record) {
	kind := string(rec.Kind)
	m.evaluations.WithLabelValues(rec.Namespace, rec.FeatureKey, kind).Inc()
	m.duration.WithLabelValues(rec.Namespace, kind).Observe(rec.Elapsed.Seconds())
}
