// AngelaMos | 2026
// service_test.go

package eventsponsor_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/templates/sponsor-backend/internal/authz"
	"github.com/carterperez-dev/templates/sponsor-backend/internal/core"
	"github.com/carterperez-dev/templates/sponsor-backend/internal/event"
	"github.com/carterperez-dev/templates/sponsor-backend/internal/eventsponsor"
	"github.com/carterperez-dev/templates/sponsor-backend/internal/memstore"
	"github.com/carterperez-dev/templates/sponsor-backend/internal/sponsor"
	"github.com/carterperez-dev/templates/sponsor-backend/internal/tier"
	"github.com/carterperez-dev/templates/sponsor-backend/internal/views"
)

type world struct {
	store     *memstore.Store
	inv       *memstore.Invalidations
	svc       *eventsponsor.Service
	manager   *authz.Caller
	eventID   string
	sponsorID string
}

func newWorld(t *testing.T) *world {
	t.Helper()
	ctx := context.Background()
	store := memstore.New()
	inv := &memstore.Invalidations{}
	admin := store.Member("admin-1", authz.RoleAdmin, true)
	manager := store.Member("m1", authz.RoleManager, true)

	_, err := tier.NewService(store.Tiers(), inv).Create(ctx, admin,
		tier.CreateTierRequest{Name: "Gold", Level: 1})
	require.NoError(t, err)
	gold, _ := store.TierByName("Gold")

	_, err = sponsor.NewService(store.Sponsors(), inv).Create(ctx, manager,
		sponsor.CreateSponsorRequest{SponsorFields: sponsor.SponsorFields{Name: "Acme", TierID: gold.ID}})
	require.NoError(t, err)
	acme, _ := store.SponsorByName("Acme")

	_, err = event.NewService(store.Events(), inv).Create(ctx, manager,
		event.CreateEventRequest{Title: "Career Fair", Date: "2025-03-01"})
	require.NoError(t, err)
	fair := store.EventsByTitle("Career Fair")
	require.Len(t, fair, 1)

	return &world{
		store:     store,
		inv:       inv,
		svc:       eventsponsor.NewService(store.EventSponsors(), inv),
		manager:   manager,
		eventID:   fair[0].ID,
		sponsorID: acme.ID,
	}
}

func (w *world) link() eventsponsor.LinkRequest {
	return eventsponsor.LinkRequest{EventID: w.eventID, SponsorID: w.sponsorID}
}

func TestDoubleAssignKeepsOneLink(t *testing.T) {
	w := newWorld(t)
	ctx := context.Background()

	for range 2 {
		out, err := w.svc.Assign(ctx, w.manager, w.link())
		require.NoError(t, err)
		assert.Equal(t, eventsponsor.ManagePath, out.Location)
	}

	assert.Equal(t, 1, w.store.LinkCount())
	assert.Equal(t, 2, w.inv.Count(views.TopicEventSponsor))
}

func TestRemoveMissingPairSucceeds(t *testing.T) {
	w := newWorld(t)

	out, err := w.svc.Remove(context.Background(), w.manager, w.link())
	require.NoError(t, err)
	assert.Equal(t, eventsponsor.ManagePath, out.Location)
	assert.Equal(t, 0, w.store.LinkCount())
}

func TestAssignUnknownReference(t *testing.T) {
	w := newWorld(t)

	_, err := w.svc.Assign(context.Background(), w.manager,
		eventsponsor.LinkRequest{EventID: "missing", SponsorID: w.sponsorID})
	assert.ErrorIs(t, err, core.ErrNotFound)

	_, err = w.svc.Assign(context.Background(), w.manager,
		eventsponsor.LinkRequest{EventID: w.eventID, SponsorID: "missing"})
	assert.ErrorIs(t, err, core.ErrNotFound)
	assert.Equal(t, 0, w.store.LinkCount())
}

func TestAssignRequiresStaff(t *testing.T) {
	w := newWorld(t)
	user := w.store.Member("u1", authz.RoleUser, true)

	_, err := w.svc.Assign(context.Background(), user, w.link())
	assert.ErrorIs(t, err, core.ErrForbidden)

	_, err = w.svc.Assign(context.Background(), w.manager, eventsponsor.LinkRequest{EventID: w.eventID})
	assert.ErrorIs(t, err, core.ErrInvalidInput)
}
