package bench

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the collectors of one benchmark run, registered on their own
// registry so that runs do not collide.
type Metrics struct {
	Registry   *prometheus.Registry
	Ops        *prometheus.CounterVec
	Latency    *prometheus.HistogramVec
	TableSize  prometheus.Gauge
	TreeHeight prometheus.Gauge
}

func NewMetrics(kind string) *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)
	labels := prometheus.Labels{"kind": kind}
	return &Metrics{
		Registry: registry,
		Ops: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "symtab_ops_total",
			Help:        "number of symbol table operations performed",
			ConstLabels: labels,
		}, []string{"op"}),
		Latency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "symtab_op_duration_seconds",
			Help:        "latency of symbol table operations",
			ConstLabels: labels,
			Buckets:     prometheus.ExponentialBuckets(50e-9, 4, 10),
		}, []string{"op"}),
		TableSize: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "symtab_size",
			Help:        "number of distinct keys in the table",
			ConstLabels: labels,
		}),
		TreeHeight: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "symtab_tree_height",
			Help:        "height of the table when it is a tree",
			ConstLabels: labels,
		}),
	}
}

func (m *Metrics) observe(op string, d time.Duration) {
	m.Ops.WithLabelValues(op).Inc()
	m.Latency.WithLabelValues(op).Observe(d.Seconds())
}
