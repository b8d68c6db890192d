package observability

import (
	"context"

	"github.com/aretw0/placeholder/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "placeholder"

// Metrics holds the browser's collectors.
type Metrics struct {
	Registry *prometheus.Registry

	LevelVisits   *prometheus.CounterVec
	FetchDuration *prometheus.HistogramVec
	FetchFailures *prometheus.CounterVec
	InputRejected *prometheus.CounterVec
	CommentsAdded prometheus.Counter
}

// NewMetrics creates and registers the collectors on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		LevelVisits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "level_visits_total",
				Help:      "Total number of times each level was entered",
			},
			[]string{"level"},
		),
		FetchDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "fetch_duration_seconds",
				Help:      "Duration of data source fetches",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"kind"},
		),
		FetchFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "fetch_failures_total",
				Help:      "Total number of failed data source fetches",
			},
			[]string{"kind"},
		),
		InputRejected: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "input_rejected_total",
				Help:      "Total number of answers rejected by validation",
			},
			[]string{"level"},
		),
		CommentsAdded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "comments_added_total",
			Help:      "Total number of comments appended locally",
		}),
	}
	m.Registry.MustRegister(m.LevelVisits, m.FetchDuration, m.FetchFailures, m.InputRejected, m.CommentsAdded)
	return m
}

// Hooks returns lifecycle hooks that record into m. Safe for concurrent use.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnLevelEnter: func(_ context.Context, e *domain.LevelEvent) {
			m.LevelVisits.WithLabelValues(string(e.Level)).Inc()
		},
		OnFetchReturn: func(_ context.Context, e *domain.FetchEvent) {
			kind := string(e.Kind)
			m.FetchDuration.WithLabelValues(kind).Observe(e.Duration.Seconds())
			if e.Err != nil {
				m.FetchFailures.WithLabelValues(kind).Inc()
			}
		},
		OnInputRejected: func(_ context.Context, e *domain.InputEvent) {
			m.InputRejected.WithLabelValues(string(e.Level)).Inc()
		},
		OnCommentAdded: func(_ context.Context, _ *domain.CommentEvent) {
			m.CommentsAdded.Inc()
		},
	}
}
