package core

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics are the host's Prometheus series. They are registered on the
// registerer passed to NewMetrics so tests can use a private registry.
type Metrics struct {
	ticks         prometheus.Counter
	jumps         prometheus.Counter
	landings      prometheus.Counter
	rejectedSteps prometheus.Counter
	characters    prometheus.Gauge
	tickDuration  prometheus.Histogram
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ticks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "slipstep",
			Name:      "ticks_total",
			Help:      "Host ticks processed.",
		}),
		jumps: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "slipstep",
			Name:      "jumps_total",
			Help:      "Jump impulses applied across all characters.",
		}),
		landings: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "slipstep",
			Name:      "landings_total",
			Help:      "Airborne to grounded transitions across all characters.",
		}),
		rejectedSteps: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "slipstep",
			Name:      "rejected_steps_total",
			Help:      "Motion steps refused, for example on an invalid delta time.",
		}),
		characters: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "slipstep",
			Name:      "characters",
			Help:      "Characters currently spawned.",
		}),
		tickDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "slipstep",
			Name:      "tick_duration_seconds",
			Help:      "Wall time spent inside Tick.",
			Buckets:   prometheus.ExponentialBuckets(0.00005, 2, 12),
		}),
	}

	if reg != nil {
		reg.MustRegister(m.ticks, m.jumps, m.landings, m.rejectedSteps, m.characters, m.tickDuration)
	}
	return m
}
