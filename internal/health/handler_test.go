// AngelaMos | 2026
// handler_test.go

package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func healthy() Checker {
	return pingFunc(func(context.Context) error { return nil })
}

func failing() Checker {
	return pingFunc(func(context.Context) error { return errors.New("down") })
}

func serve(h *Handler, path string) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	h.RegisterRoutes(r)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestReadinessAllHealthy(t *testing.T) {
	h := NewHandler(
		Dependency{Name: "database", Checker: healthy()},
		Dependency{Name: "redis", Checker: healthy()},
	)

	rec := serve(h, "/readyz")
	require.Equal(t, http.StatusOK, rec.Code)

	var body ReadinessResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Status)
	require.Len(t, body.Checks, 2)
	assert.Equal(t, "database", body.Checks[0].Name)
	assert.Equal(t, "redis", body.Checks[1].Name)
}

func TestReadinessDegraded(t *testing.T) {
	h := NewHandler(
		Dependency{Name: "database", Checker: healthy()},
		Dependency{Name: "storage", Checker: failing()},
		Dependency{Name: "redis"},
	)

	rec := serve(h, "/readyz")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var body ReadinessResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "degraded", body.Status)
	assert.False(t, body.Checks[1].Healthy)
	assert.Equal(t, "ping failed", body.Checks[1].Message)
	assert.Equal(t, "redis checker not configured", body.Checks[2].Message)
}

func TestShutdownFailsProbes(t *testing.T) {
	h := NewHandler(Dependency{Name: "database", Checker: healthy()})
	assert.Equal(t, http.StatusOK, serve(h, "/healthz").Code)

	h.SetShutdown(true)
	assert.Equal(t, http.StatusServiceUnavailable, serve(h, "/livez").Code)
	assert.Equal(t, http.StatusServiceUnavailable, serve(h, "/readyz").Code)
}

func TestNotReady(t *testing.T) {
	h := NewHandler()
	h.SetReady(false)
	assert.Equal(t, http.StatusServiceUnavailable, serve(h, "/readyz").Code)
}
