package observability

import (
	"context"

	"github.com/aretw0/automaton/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors fed by catalog events.
type Metrics struct {
	Decisions *prometheus.CounterVec
	PathSteps *prometheus.HistogramVec
	Swaps     *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Decisions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "automaton_decisions_total",
				Help: "Total number of acceptance decisions",
			},
			[]string{"automaton", "verdict"},
		),
		PathSteps: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "automaton_path_steps",
				Help:    "Number of transitions taken per decision",
				Buckets: prometheus.ExponentialBuckets(1, 2, 10),
			},
			[]string{"automaton"},
		),
		Swaps: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "automaton_swaps_total",
				Help: "Total number of symbol swaps",
			},
			[]string{"automaton"},
		),
	}
	if reg != nil {
		reg.MustRegister(m.Decisions, m.PathSteps, m.Swaps)
	}
	return m
}

// Hooks returns lifecycle hooks that record into m.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnAccept: func(_ context.Context, e *domain.AcceptEvent) {
			m.Decisions.WithLabelValues(e.Automaton, Verdict(e.Accepted)).Inc()
			if steps := len(e.Path) - 1; steps >= 0 {
				m.PathSteps.WithLabelValues(e.Automaton).Observe(float64(steps))
			}
		},
		OnSwap: func(_ context.Context, e *domain.SwapEvent) {
			m.Swaps.WithLabelValues(e.Automaton).Inc()
		},
	}
}

// Verdict is the label value of an acceptance decision.
func Verdict(accepted bool) string {
	if accepted {
		return "accept"
	}
	return "reject"
}
