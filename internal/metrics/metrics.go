// AngelaMos | 2026
// metrics.go

package metrics

import (
	"database/sql"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
)

type Metrics struct {
	registry *prometheus.Registry

	httpRequests  *prometheus.CounterVec
	httpDuration  *prometheus.HistogramVec
	actions       *prometheus.CounterVec
	viewCache     *prometheus.CounterVec
	invalidations *prometheus.CounterVec
	uploads       *prometheus.CounterVec
	rateLimited   prometheus.Counter
}

func New(namespace string) *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "HTTP requests by method, route and status.",
			},
			[]string{"method", "route", "status"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		actions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "actions_total",
				Help:      "Mutating actions by name and result.",
			},
			[]string{"action", "result"},
		),
		viewCache: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "view_cache_lookups_total",
				Help:      "View cache lookups by view and result.",
			},
			[]string{"view", "result"},
		),
		invalidations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "view_invalidations_total",
				Help:      "View invalidations by topic and result.",
			},
			[]string{"topic", "result"},
		),
		uploads: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "document_uploads_total",
				Help:      "Sponsor document uploads by kind and result.",
			},
			[]string{"kind", "result"},
		),
		rateLimited: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rate_limited_total",
				Help:      "Requests rejected by the rate limiter.",
			},
		),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests,
		m.httpDuration,
		m.actions,
		m.viewCache,
		m.invalidations,
		m.uploads,
		m.rateLimited,
	)

	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		Registry: m.registry,
	})
}

func (m *Metrics) ObserveHTTP(
	method, route string,
	status int,
	elapsed time.Duration,
) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (m *Metrics) RecordAction(action, result string) {
	m.actions.WithLabelValues(action, result).Inc()
}

func (m *Metrics) RecordCacheLookup(view string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	m.viewCache.WithLabelValues(view, result).Inc()
}

func (m *Metrics) RecordInvalidation(topic string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.invalidations.WithLabelValues(topic, result).Inc()
}

func (m *Metrics) RecordUpload(kind string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.uploads.WithLabelValues(kind, result).Inc()
}

func (m *Metrics) RecordRateLimited(*http.Request) {
	m.rateLimited.Inc()
}

// PoolSources exposes connection pool statistics as gauges sampled on
// scrape.
type PoolSources struct {
	DBStats    func() sql.DBStats
	RedisStats func() *redis.PoolStats
}

func (m *Metrics) RegisterPools(namespace string, src PoolSources) {
	if src.DBStats != nil {
		dbGauge := func(name, help string, read func(sql.DBStats) float64) prometheus.Collector {
			return prometheus.NewGaugeFunc(prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "db",
				Name:      name,
				Help:      help,
			}, func() float64 { return read(src.DBStats()) })
		}

		m.registry.MustRegister(
			dbGauge("open_connections", "Open database connections.",
				func(s sql.DBStats) float64 { return float64(s.OpenConnections) }),
			dbGauge("in_use_connections", "Database connections in use.",
				func(s sql.DBStats) float64 { return float64(s.InUse) }),
			dbGauge("idle_connections", "Idle database connections.",
				func(s sql.DBStats) float64 { return float64(s.Idle) }),
			dbGauge("wait_count", "Connections waited for.",
				func(s sql.DBStats) float64 { return float64(s.WaitCount) }),
			dbGauge("wait_seconds", "Time blocked waiting for a connection.",
				func(s sql.DBStats) float64 { return s.WaitDuration.Seconds() }),
		)
	}

	if src.RedisStats != nil {
		redisGauge := func(name, help string, read func(*redis.PoolStats) float64) prometheus.Collector {
			return prometheus.NewGaugeFunc(prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "redis",
				Name:      name,
				Help:      help,
			}, func() float64 { return read(src.RedisStats()) })
		}

		m.registry.MustRegister(
			redisGauge("total_connections", "Redis pool connections.",
				func(s *redis.PoolStats) float64 { return float64(s.TotalConns) }),
			redisGauge("idle_connections", "Idle redis pool connections.",
				func(s *redis.PoolStats) float64 { return float64(s.IdleConns) }),
			redisGauge("pool_hits", "Redis pool hits.",
				func(s *redis.PoolStats) float64 { return float64(s.Hits) }),
			redisGauge("pool_misses", "Redis pool misses.",
				func(s *redis.PoolStats) float64 { return float64(s.Misses) }),
			redisGauge("pool_timeouts", "Redis pool timeouts.",
				func(s *redis.PoolStats) float64 { return float64(s.Timeouts) }),
		)
	}
}
