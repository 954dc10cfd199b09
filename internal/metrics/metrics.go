// Package metrics holds the Prometheus collectors shared by the generation
// pipelines and the HTTP server.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "socialgen"

var (
	CompletionRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "completion_requests_total",
		Help:      "Completion calls by model and outcome.",
	}, []string{"model", "outcome"})

	CompletionDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "completion_duration_seconds",
		Help:      "Latency of completion calls.",
		Buckets:   []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32, 64},
	}, []string{"model"})

	Generations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "generations_total",
		Help:      "Pipeline invocations by tool and result kind.",
	}, []string{"tool", "result"})

	SongCache = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "song_cache_lookups_total",
		Help:      "Trending song cache lookups by outcome.",
	}, []string{"outcome"})
)

const (
	OutcomeOK        = "ok"
	OutcomeHTTPError = "http_error"
	OutcomeError     = "error"

	ResultList     = "list"
	ResultCards    = "cards"
	ResultText     = "text"
	ResultFallback = "fallback"
	ResultFailed   = "failed"

	CacheHit      = "hit"
	CacheMiss     = "miss"
	CacheFallback = "fallback"
)
