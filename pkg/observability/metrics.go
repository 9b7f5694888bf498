package observability

import (
	"strconv"

	"github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors fed by planner hooks.
type Metrics struct {
	mutations   *prometheus.CounterVec
	rejections  *prometheus.CounterVec
	tierChanges *prometheus.CounterVec
	pointsSpent prometheus.Histogram
}

// NewMetrics creates the collectors and registers them on reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		mutations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "skilltree_mutations_total",
				Help: "Total number of applied build mutations",
			},
			[]string{"action"},
		),
		rejections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "skilltree_rejections_total",
				Help: "Total number of ignored actions by denial reason",
			},
			[]string{"action", "reason"},
		),
		tierChanges: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "skilltree_tier_changes_total",
				Help: "Total number of expedition tier changes",
			},
			[]string{"over_limit"},
		),
		pointsSpent: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "skilltree_points_spent",
				Help:    "Points spent by a build after each mutation",
				Buckets: prometheus.LinearBuckets(0, 10, 11),
			},
		),
	}
	if reg != nil {
		reg.MustRegister(m.Collectors()...)
	}
	return m
}

// Collectors returns every collector owned by m.
func (m *Metrics) Collectors() []prometheus.Collector {
	return []prometheus.Collector{m.mutations, m.rejections, m.tierChanges, m.pointsSpent}
}

// Hooks returns lifecycle hooks that record into m.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnMutation: func(e *domain.MutationEvent) {
			m.mutations.WithLabelValues(string(e.Type)).Inc()
			m.pointsSpent.Observe(float64(e.TotalPoints))
		},
		OnRejected: func(e *domain.RejectionEvent) {
			m.rejections.WithLabelValues(string(e.Type), string(e.Reason)).Inc()
		},
		OnTierChange: func(e *domain.TierEvent) {
			m.tierChanges.WithLabelValues(strconv.FormatBool(e.OverLimit)).Inc()
		},
	}
}
