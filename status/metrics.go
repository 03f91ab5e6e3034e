package status

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/lixenwraith/beat-judge/core"
	"github.com/lixenwraith/beat-judge/event"
)

const metricsNamespace = "beat_judge"

// Metrics exports judge outcomes to Prometheus
// Fed from router dispatch; scraping is safe from any goroutine
type Metrics struct {
	// BeatsTotal counts observed beat boundaries
	BeatsTotal prometheus.Counter

	// HitsTotal counts judged inputs. Labels: accuracy
	HitsTotal *prometheus.CounterVec

	// HitOffsetSeconds measures distance from the boundary for judged inputs
	HitOffsetSeconds prometheus.Histogram

	// CombosResolvedTotal counts matched sequences. Labels: combo, action
	CombosResolvedTotal *prometheus.CounterVec

	// CombosFailedTotal counts abandoned attempts. Labels: kind
	CombosFailedTotal *prometheus.CounterVec

	// SpawnsTotal counts projectile requests. Labels: prefab
	SpawnsTotal *prometheus.CounterVec

	// ComboCount is the current streak
	ComboCount prometheus.Gauge

	// Multiplier is the running damage multiplier
	Multiplier prometheus.Gauge
}

// NewMetrics creates and registers metrics on reg
// Panics on duplicate registration, as promauto does
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	m := &Metrics{
		BeatsTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "beats_total",
			Help:      "Beat boundaries observed by the judge",
		}),
		HitsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "hits_total",
			Help:      "Judged inputs by accuracy tier",
		}, []string{"accuracy"}),
		HitOffsetSeconds: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "hit_offset_seconds",
			Help:      "Absolute offset of judged inputs from the last beat boundary",
			Buckets:   []float64{0.01, 0.025, 0.05, 0.075, 0.1, 0.12, 0.15, 0.2, 0.3, 0.5},
		}),
		CombosResolvedTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "combos_resolved_total",
			Help:      "Resolved combos by definition",
		}, []string{"combo", "action"}),
		CombosFailedTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "combos_failed_total",
			Help:      "Failed combo attempts by failure kind",
		}, []string{"kind"}),
		SpawnsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "spawns_total",
			Help:      "Projectile spawn requests by prefab",
		}, []string{"prefab"}),
		ComboCount: f.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "combo_count",
			Help:      "Current combo streak",
		}),
		Multiplier: f.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "multiplier",
			Help:      "Running damage multiplier",
		}),
	}

	// Pre-create accuracy series so rates start at zero
	for a := core.AccuracyPerfect; a < core.AccuracyCount; a++ {
		m.HitsTotal.WithLabelValues(a.String())
	}
	m.Multiplier.Set(1)
	return m
}

// EventTypes implements event.Handler
func (m *Metrics) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventBeatTick,
		event.EventHitJudged,
		event.EventComboResolved,
		event.EventComboUpdated,
		event.EventComboFailed,
		event.EventComboMultiplierReset,
		event.EventSpawnRequested,
	}
}

// HandleEvent implements event.Handler
func (m *Metrics) HandleEvent(ev event.Event) {
	switch p := ev.Payload.(type) {
	case *event.BeatTickPayload:
		m.BeatsTotal.Inc()
	case *event.HitJudgedPayload:
		m.HitsTotal.WithLabelValues(p.Accuracy.String()).Inc()
		m.HitOffsetSeconds.Observe(p.Delta.Seconds())
	case *event.ComboResolvedPayload:
		m.CombosResolvedTotal.WithLabelValues(p.Definition.ID, p.Definition.Action.Kind.String()).Inc()
	case *event.ComboUpdatedPayload:
		m.ComboCount.Set(float64(p.Count))
		m.Multiplier.Set(p.Multiplier)
	case *event.ComboFailedPayload:
		m.CombosFailedTotal.WithLabelValues(p.Kind.String()).Inc()
		m.ComboCount.Set(0)
	case *event.MultiplierResetPayload:
		m.Multiplier.Set(p.Multiplier)
	case *event.SpawnRequestedPayload:
		m.SpawnsTotal.WithLabelValues(p.Projectile.Spec.Prefab).Inc()
	}
}

// Register subscribes the metrics to the router
func (m *Metrics) Register(r *event.Router) event.SubscriptionID {
	return r.Register(m)
}
