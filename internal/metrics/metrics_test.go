// AngelaMos | 2026
// metrics_test.go

package metrics

import (
	"database/sql"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordAction(t *testing.T) {
	m := New("test")

	m.RecordAction("tier.create", "ok")
	m.RecordAction("tier.create", "ok")
	m.RecordAction("tier.create", "denied")

	assert.InDelta(t, 2, testutil.ToFloat64(m.actions.WithLabelValues("tier.create", "ok")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.actions.WithLabelValues("tier.create", "denied")), 0)
}

func TestObserveHTTPAndCache(t *testing.T) {
	m := New("test")

	m.ObserveHTTP(http.MethodGet, "/sponsor/{id}", http.StatusOK, 20*time.Millisecond)
	m.RecordCacheLookup("/sponsors", true)
	m.RecordCacheLookup("/sponsors", false)
	m.RecordInvalidation("tier", nil)
	m.RecordInvalidation("tier", errors.New("redis down"))
	m.RecordUpload("logo", nil)
	m.RecordRateLimited(nil)

	assert.InDelta(t, 1, testutil.ToFloat64(
		m.httpRequests.WithLabelValues(http.MethodGet, "/sponsor/{id}", "200"),
	), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.viewCache.WithLabelValues("/sponsors", "hit")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.invalidations.WithLabelValues("tier", "error")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.uploads.WithLabelValues("logo", "ok")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.rateLimited), 0)
}

func TestHandlerExposesPoolGauges(t *testing.T) {
	m := New("test")
	m.RegisterPools("test", PoolSources{
		DBStats: func() sql.DBStats {
			return sql.DBStats{OpenConnections: 7, InUse: 3, Idle: 4}
		},
		RedisStats: func() *redis.PoolStats {
			return &redis.PoolStats{TotalConns: 5, IdleConns: 2}
		},
	})

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, "test_db_open_connections 7"))
	assert.True(t, strings.Contains(body, "test_redis_total_connections 5"))
}
