// AngelaMos | 2026
// handler_test.go

package views

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/templates/sponsor-backend/internal/authz"
	"github.com/carterperez-dev/templates/sponsor-backend/internal/middleware"
)

func withCaller(caller *authz.Caller) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(middleware.WithCaller(r.Context(), caller)))
		})
	}
}

func TestViewRoutesCoexistWithActionRoutes(t *testing.T) {
	repo := &stubRepo{events: []EventRow{
		{ID: "e-1", Title: "Career Fair", Date: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)},
	}}
	cache, _, _ := newTestCache(t)

	r := chi.NewRouter()
	r.Use(withCaller(&authz.Caller{
		UserID:  "u-1",
		Profile: &authz.Snapshot{Role: authz.RoleManager, IsApproved: true},
	}))
	NewHandler(NewService(repo, cache)).RegisterRoutes(r)

	actionHit := false
	r.Post("/events/add", func(w http.ResponseWriter, r *http.Request) {
		actionHit = true
		w.WriteHeader(http.StatusSeeOther)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/events", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Career Fair")

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/events/add", nil))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.True(t, actionHit)
}

func TestViewErrorsMapToStatus(t *testing.T) {
	cache, _, _ := newTestCache(t)

	tests := []struct {
		name   string
		caller *authz.Caller
		path   string
		want   int
	}{
		{
			name:   "no caller",
			caller: nil,
			path:   "/events",
			want:   http.StatusUnauthorized,
		},
		{
			name:   "pending user",
			caller: &authz.Caller{UserID: "u-2", Profile: &authz.Snapshot{Role: authz.RoleUser}},
			path:   "/events",
			want:   http.StatusForbidden,
		},
		{
			name: "manager on admin view",
			caller: &authz.Caller{
				UserID:  "u-3",
				Profile: &authz.Snapshot{Role: authz.RoleManager, IsApproved: true},
			},
			path: "/manage/user-roles",
			want: http.StatusForbidden,
		},
		{
			name: "missing event",
			caller: &authz.Caller{
				UserID:  "u-4",
				Profile: &authz.Snapshot{Role: authz.RoleUser, IsApproved: true},
			},
			path: "/event/nope",
			want: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := chi.NewRouter()
			r.Use(withCaller(tt.caller))
			NewHandler(NewService(&stubRepo{}, cache)).RegisterRoutes(r)

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))
			assert.Equal(t, tt.want, rec.Code)
			assert.Contains(t, rec.Body.String(), `"success":false`)
			assert.NotContains(t, rec.Body.String(), `"code"`)
		})
	}
}
