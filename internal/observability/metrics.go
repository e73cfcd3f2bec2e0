package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"gorm.io/gorm"
)

var (
	// RedisErrorRate counts Redis errors by operation type.
	RedisErrorRate = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "forum_redis_error_rate_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "forum_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// RecentPostsCacheHits counts recent-posts cache lookups served from memory.
	RecentPostsCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "forum_recent_posts_cache_hits_total",
		Help: "Total number of recent-posts cache hits",
	})

	// RecentPostsCacheMisses counts recent-posts cache lookups that fell through to the database.
	RecentPostsCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "forum_recent_posts_cache_misses_total",
		Help: "Total number of recent-posts cache misses",
	})

	// RecentPostsCacheInvalidations counts explicit recent-posts cache invalidations.
	RecentPostsCacheInvalidations = promauto.NewCounter(prometheus.CounterOpts{
		Name: "forum_recent_posts_cache_invalidations_total",
		Help: "Total number of recent-posts cache invalidations",
	})
)

// DatabaseMetrics wraps DB access for recording query latency.
type DatabaseMetrics struct {
	db *gorm.DB
}

// NewDatabaseMetrics returns a new DatabaseMetrics instance.
func NewDatabaseMetrics(db *gorm.DB) *DatabaseMetrics {
	return &DatabaseMetrics{db: db}
}

// ObserveQuery records the latency of a database query.
func (m *DatabaseMetrics) ObserveQuery(operation, table string, start time.Time) {
	latency := time.Since(start).Seconds()
	DatabaseQueryLatency.WithLabelValues(operation, table).Observe(latency)
}

// TrackQuery returns a function that records query latency when called (e.g. defer).
func (m *DatabaseMetrics) TrackQuery(operation, table string) func() {
	start := time.Now()
	return func() {
		m.ObserveQuery(operation, table, start)
	}
}
