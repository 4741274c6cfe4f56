package observability

import (
	"context"
	"errors"

	"github.com/aretw0/asciiwalk/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Walk outcomes used as the "outcome" label.
const (
	OutcomeCompleted = "completed"
	OutcomeStepLimit = "step_limit"
	OutcomeAborted   = "aborted"
)

// Metrics holds the collectors updated by the walker lifecycle hooks.
type Metrics struct {
	WalksStarted prometheus.Counter
	Walks        *prometheus.CounterVec
	Steps        prometheus.Counter
	Letters      prometheus.Counter
	WalkLength   prometheus.Histogram
	CacheHits    prometheus.Counter
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		WalksStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "asciiwalk_walks_started_total",
			Help: "Total number of walks that found a start marker",
		}),
		Walks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "asciiwalk_walks_total",
				Help: "Total number of finished walks by outcome",
			},
			[]string{"outcome"},
		),
		Steps: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "asciiwalk_steps_total",
			Help: "Total number of cells stepped onto",
		}),
		Letters: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "asciiwalk_letters_total",
			Help: "Total number of waypoint letters collected",
		}),
		WalkLength: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "asciiwalk_walk_steps",
			Help:    "Number of steps per finished walk",
			Buckets: prometheus.ExponentialBuckets(4, 2, 10),
		}),
		CacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "asciiwalk_cache_hits_total",
			Help: "Total number of walks answered from the result store",
		}),
	}
	reg.MustRegister(m.WalksStarted, m.Walks, m.Steps, m.Letters, m.WalkLength, m.CacheHits)
	return m
}

// Hooks returns lifecycle hooks that record into m.
// Walks served from a result store count as walks and cache hits but add no steps.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnWalkStart: func(ctx context.Context, e *domain.WalkEvent) {
			m.WalksStarted.Inc()
		},
		OnStep: func(ctx context.Context, e *domain.StepEvent) {
			m.Steps.Inc()
			if e.NewLetter {
				m.Letters.Inc()
			}
		},
		OnWalkEnd: func(ctx context.Context, e *domain.WalkEvent) {
			if e.Cached {
				m.CacheHits.Inc()
			}
			m.Walks.WithLabelValues(outcome(e.Err)).Inc()
			m.WalkLength.Observe(float64(e.Steps))
		},
	}
}

func outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeCompleted
	case errors.Is(err, domain.ErrStepLimitExceeded):
		return OutcomeStepLimit
	default:
		return OutcomeAborted
	}
}

// Chain merges several hook sets; each callback runs in the given order.
func Chain(hooks ...domain.LifecycleHooks) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnWalkStart: func(ctx context.Context, e *domain.WalkEvent) {
			for _, h := range hooks {
				if h.OnWalkStart != nil {
					h.OnWalkStart(ctx, e)
				}
			}
		},
		OnStep: func(ctx context.Context, e *domain.StepEvent) {
			for _, h := range hooks {
				if h.OnStep != nil {
					h.OnStep(ctx, e)
				}
			}
		},
		OnWalkEnd: func(ctx context.Context, e *domain.WalkEvent) {
			for _, h := range hooks {
				if h.OnWalkEnd != nil {
					h.OnWalkEnd(ctx, e)
				}
			}
		},
	}
}
