// AngelaMos | 2026
// e2e_test.go

package memstore_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/templates/sponsor-backend/internal/authz"
	"github.com/carterperez-dev/templates/sponsor-backend/internal/event"
	"github.com/carterperez-dev/templates/sponsor-backend/internal/eventsponsor"
	"github.com/carterperez-dev/templates/sponsor-backend/internal/memstore"
	"github.com/carterperez-dev/templates/sponsor-backend/internal/middleware"
	"github.com/carterperez-dev/templates/sponsor-backend/internal/sponsor"
	"github.com/carterperez-dev/templates/sponsor-backend/internal/tier"
	"github.com/carterperez-dev/templates/sponsor-backend/internal/views"
)

type fixture struct {
	store   *memstore.Store
	inv     *memstore.Invalidations
	router  chi.Router
	manager *authz.Caller
}

func newFixture(t *testing.T, as func(*memstore.Store) *authz.Caller) *fixture {
	t.Helper()

	store := memstore.New()
	inv := &memstore.Invalidations{}
	caller := as(store)

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(middleware.WithCaller(r.Context(), caller)))
		})
	})

	event.NewHandler(event.NewService(store.Events(), inv), nil).RegisterRoutes(r)
	eventsponsor.NewHandler(eventsponsor.NewService(store.EventSponsors(), inv), nil).RegisterRoutes(r)

	return &fixture{store: store, inv: inv, router: r, manager: caller}
}

func asManager(s *memstore.Store) *authz.Caller {
	return s.Member("manager-1", authz.RoleManager, true)
}

func (f *fixture) post(t *testing.T, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func (f *fixture) seedSponsor(t *testing.T) sponsor.Sponsor {
	t.Helper()
	ctx := context.Background()
	admin := f.store.Member("admin-1", authz.RoleAdmin, true)

	_, err := tier.NewService(f.store.Tiers(), f.inv).Create(ctx, admin,
		tier.CreateTierRequest{Name: "Gold", Level: 1})
	require.NoError(t, err)

	gold, ok := f.store.TierByName("Gold")
	require.True(t, ok)

	_, err = sponsor.NewService(f.store.Sponsors(), f.inv).Create(ctx, f.manager,
		sponsor.CreateSponsorRequest{SponsorFields: sponsor.SponsorFields{
			Name:   "Acme",
			TierID: gold.ID,
		}})
	require.NoError(t, err)

	acme, ok := f.store.SponsorByName("Acme")
	require.True(t, ok)
	return acme
}

func TestEventLinkLifecycle(t *testing.T) {
	f := newFixture(t, asManager)
	acme := f.seedSponsor(t)

	rec := f.post(t, "/events/add", url.Values{
		"title": {"  Career Fair "},
		"date":  {"2025-03-01"},
	})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, event.ListPath, rec.Header().Get("Location"))

	created := f.store.EventsByTitle("Career Fair")
	require.Len(t, created, 1)
	fair := created[0]
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), fair.Date)

	link := url.Values{"event_id": {fair.ID}, "sponsor_id": {acme.ID}}

	rec = f.post(t, "/manage/event-sponsors/assign", link)
	assert.Equal(t, eventsponsor.ManagePath, rec.Header().Get("Location"))
	assert.Equal(t, 1, f.store.LinkCount())

	rec = f.post(t, "/manage/event-sponsors/assign", link)
	assert.Equal(t, eventsponsor.ManagePath, rec.Header().Get("Location"))
	assert.Equal(t, 1, f.store.LinkCount())

	rec = f.post(t, "/manage/event-sponsors/remove", link)
	assert.Equal(t, eventsponsor.ManagePath, rec.Header().Get("Location"))
	assert.Equal(t, 0, f.store.LinkCount())

	assert.Equal(t, 1, f.store.EventCount())
	assert.Equal(t, 1, f.store.SponsorCount())
	assert.Equal(t, 3, f.inv.Count(views.TopicEventSponsor))
}

func TestUnapprovedCallerIsSentToUnauthorized(t *testing.T) {
	f := newFixture(t, func(s *memstore.Store) *authz.Caller {
		return s.Member("pending-1", authz.RoleManager, false)
	})

	rec := f.post(t, "/events/add", url.Values{
		"title": {"Career Fair"},
		"date":  {"2025-03-01"},
	})

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/unauthorized", rec.Header().Get("Location"))
	assert.Equal(t, 0, f.store.EventCount())
	assert.Empty(t, f.inv.All())
}

func TestInvalidFormGoesToError(t *testing.T) {
	f := newFixture(t, asManager)

	rec := f.post(t, "/events/add", url.Values{
		"title": {"   "},
		"date":  {"2025-03-01"},
	})
	assert.Equal(t, "/error", rec.Header().Get("Location"))

	rec = f.post(t, "/events/add", url.Values{
		"title": {"Career Fair"},
		"date":  {"March 1st"},
	})
	assert.Equal(t, "/error", rec.Header().Get("Location"))
	assert.Equal(t, 0, f.store.EventCount())
}
