package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)

// AnalyticsMetrics records how the dashboard views are derived and served.
type AnalyticsMetrics struct {
	duration *prometheus.HistogramVec
	cache    *prometheus.CounterVec
	failure  *prometheus.CounterVec
}

// NewAnalyticsMetrics registers the analytics metrics on the provided registerer.
// A nil registerer yields a no-op recorder.
func NewAnalyticsMetrics(reg prometheus.Registerer) *AnalyticsMetrics {
	if reg == nil {
		return &AnalyticsMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "workshop_derivation_duration_seconds",
		Help:    "Time spent reading and deriving a dashboard view.",
		Buckets: prometheus.DefBuckets,
	}, []string{"view"})
	cache := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "workshop_dashboard_cache_total",
		Help: "Dashboard cache lookups by result.",
	}, []string{"view", "result"})
	failure := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "workshop_derivation_failures_total",
		Help: "Dashboard derivations aborted by a read failure.",
	}, []string{"view"})
	reg.MustRegister(duration, cache, failure)
	return &AnalyticsMetrics{
		duration: duration,
		cache:    cache,
		failure:  failure,
	}
}

func (m *AnalyticsMetrics) ObserveDerivation(view string, d time.Duration) {
	if m == nil || m.duration == nil {
		return
	}
	m.duration.WithLabelValues(normalizeLabel(view)).Observe(d.Seconds())
}

func (m *AnalyticsMetrics) IncCache(view, result string) {
	if m == nil || m.cache == nil {
		return
	}
	m.cache.WithLabelValues(normalizeLabel(view), normalizeLabel(result)).Inc()
}

func (m *AnalyticsMetrics) IncFailure(view string) {
	if m == nil || m.failure == nil {
		return
	}
	m.failure.WithLabelValues(normalizeLabel(view)).Inc()
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
