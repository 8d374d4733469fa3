package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "fixture_insights"

// Recorder exports ingestion and cache counters to Prometheus.
// A nil Recorder is valid and records nothing.
type Recorder struct {
	recordsKept    *prometheus.CounterVec
	recordsDropped *prometheus.CounterVec
	viewsBuilt     *prometheus.CounterVec
	buildFailures  *prometheus.CounterVec
	cacheLookups   *prometheus.CounterVec
}

// NewRecorder creates a Recorder and registers its collectors with reg
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		recordsKept: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_kept_total",
			Help:      "Upstream records that passed normalization.",
		}, []string{"kind"}),
		recordsDropped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_dropped_total",
			Help:      "Upstream records dropped as malformed.",
		}, []string{"kind"}),
		viewsBuilt: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "views_built_total",
			Help:      "Views built from upstream payloads.",
		}, []string{"kind"}),
		buildFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "view_build_failures_total",
			Help:      "Upstream payloads that could not be built into a view.",
		}, []string{"kind"}),
		cacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_lookups_total",
			Help:      "View cache lookups by result.",
		}, []string{"kind", "result"}),
	}

	reg.MustRegister(r.recordsKept, r.recordsDropped, r.viewsBuilt, r.buildFailures, r.cacheLookups)
	return r
}

// RecordBuild counts a built view and the records it kept and dropped
func (r *Recorder) RecordBuild(kind string, kept, dropped int) {
	if r == nil {
		return
	}
	r.viewsBuilt.WithLabelValues(kind).Inc()
	r.recordsKept.WithLabelValues(kind).Add(float64(kept))
	r.recordsDropped.WithLabelValues(kind).Add(float64(dropped))
}

// RecordBuildFailure counts a payload rejected by the builder
func (r *Recorder) RecordBuildFailure(kind string) {
	if r == nil {
		return
	}
	r.buildFailures.WithLabelValues(kind).Inc()
}

// RecordCacheHit counts a view served from cache
func (r *Recorder) RecordCacheHit(kind string) {
	if r == nil {
		return
	}
	r.cacheLookups.WithLabelValues(kind, "hit").Inc()
}

// RecordCacheMiss counts a view lookup that found nothing
func (r *Recorder) RecordCacheMiss(kind string) {
	if r == nil {
		return
	}
	r.cacheLookups.WithLabelValues(kind, "miss").Inc()
}

// RecordCacheError counts a lookup that failed against the cache backend
func (r *Recorder) RecordCacheError(kind string) {
	if r == nil {
		return
	}
	r.cacheLookups.WithLabelValues(kind, "error").Inc()
}
