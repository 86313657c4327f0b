// Package metrics exposes prometheus instruments around bake and decode operations.
// Grounded on jinterlante1206-AleutianLocal's services/trace/graph/hld_path_updates.go
// (promauto.NewCounterVec/NewHistogramVec pattern).
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	decodeDurationSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "vntrhmm_decode_duration_seconds",
		Help:    "Duration of hmm decode calls by kind.",
		Buckets: prometheus.ExponentialBuckets(0.0001, 2, 16),
	}, []string{"kind"})

	decodeTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vntrhmm_decode_total",
		Help: "Total hmm decode calls by kind and result.",
	}, []string{"kind", "result"})

	bakeDurationSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "vntrhmm_bake_duration_seconds",
		Help:    "Duration of Model.Bake calls.",
		Buckets: prometheus.ExponentialBuckets(0.0001, 2, 16),
	})
)

// ObserveDecode runs fn, recording its duration and outcome under the given kind
// ("viterbi", "forward", "subseq").
func ObserveDecode(kind string, fn func() error) error {
	start := time.Now()
	err := fn()
	decodeDurationSeconds.WithLabelValues(kind).Observe(time.Since(start).Seconds())
	result := "ok"
	if err != nil {
		result = "error"
	}
	decodeTotal.WithLabelValues(kind, result).Inc()
	return err
}

// ObserveBake runs fn, recording its duration under the bake histogram.
func ObserveBake(fn func()) {
	start := time.Now()
	fn()
	bakeDurationSeconds.Observe(time.Since(start).Seconds())
}
