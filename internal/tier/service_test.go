// AngelaMos | 2026
// service_test.go

package tier_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/templates/sponsor-backend/internal/authz"
	"github.com/carterperez-dev/templates/sponsor-backend/internal/core"
	"github.com/carterperez-dev/templates/sponsor-backend/internal/memstore"
	"github.com/carterperez-dev/templates/sponsor-backend/internal/sponsor"
	"github.com/carterperez-dev/templates/sponsor-backend/internal/tier"
	"github.com/carterperez-dev/templates/sponsor-backend/internal/views"
)

func setup(t *testing.T) (*memstore.Store, *memstore.Invalidations, *tier.Service, *authz.Caller) {
	t.Helper()

	store := memstore.New()
	inv := &memstore.Invalidations{}
	admin := store.Member("admin-1", authz.RoleAdmin, true)

	_, err := tier.NewService(store.Tiers(), inv).Create(context.Background(), admin,
		tier.CreateTierRequest{Name: "Gold", Level: 1})
	require.NoError(t, err)

	return store, inv, tier.NewService(store.Tiers(), inv), admin
}

func TestCreateTrimsAndRedirects(t *testing.T) {
	store, _, svc, admin := setup(t)

	out, err := svc.Create(context.Background(), admin, tier.CreateTierRequest{
		Name:        "  Silver ",
		Level:       2,
		Description: core.StringPtr("   "),
	})
	require.NoError(t, err)
	assert.Equal(t, tier.ListPath, out.Location)

	silver, ok := store.TierByName("Silver")
	require.True(t, ok)
	assert.Nil(t, silver.Description)
}

func TestCreateWithClashingNameCreatesNothing(t *testing.T) {
	store, inv, svc, admin := setup(t)
	before := inv.Count(views.TopicTier)

	out, err := svc.Create(context.Background(), admin, tier.CreateTierRequest{
		Name:  "Gold",
		Level: 7,
	})
	require.NoError(t, err)
	assert.Equal(t, tier.ListPath, out.Location)
	assert.Equal(t, 1, store.TierCount())
	assert.Equal(t, before, inv.Count(views.TopicTier))
}

func TestCreateWithClashingLevelCreatesNothing(t *testing.T) {
	store, _, svc, admin := setup(t)

	_, err := svc.Create(context.Background(), admin, tier.CreateTierRequest{
		Name:  "Platinum",
		Level: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, store.TierCount())
}

func TestDeleteReferencedTierIsNoop(t *testing.T) {
	store, inv, svc, admin := setup(t)
	ctx := context.Background()
	gold, _ := store.TierByName("Gold")

	_, err := sponsor.NewService(store.Sponsors(), inv).Create(ctx, admin,
		sponsor.CreateSponsorRequest{SponsorFields: sponsor.SponsorFields{
			Name:   "Acme",
			TierID: gold.ID,
		}})
	require.NoError(t, err)

	out, err := svc.Delete(ctx, admin, tier.DeleteTierRequest{ID: gold.ID})
	require.NoError(t, err)
	assert.Equal(t, tier.ListPath, out.Location)
	assert.Equal(t, 1, store.TierCount())
	assert.Equal(t, 1, store.SponsorCount())
}

func TestDeleteUnusedTier(t *testing.T) {
	store, _, svc, admin := setup(t)
	gold, _ := store.TierByName("Gold")

	_, err := svc.Delete(context.Background(), admin, tier.DeleteTierRequest{ID: gold.ID})
	require.NoError(t, err)
	assert.Equal(t, 0, store.TierCount())
}

func TestUpdateKeepsOwnNameAndLevel(t *testing.T) {
	store, _, svc, admin := setup(t)
	gold, _ := store.TierByName("Gold")

	_, err := svc.Update(context.Background(), admin, tier.UpdateTierRequest{
		ID:          gold.ID,
		Name:        "Gold",
		Level:       1,
		Description: core.StringPtr("top tier"),
	})
	require.NoError(t, err)

	updated, _ := store.TierByName("Gold")
	require.NotNil(t, updated.Description)
	assert.Equal(t, "top tier", *updated.Description)
}

func TestTierActionsRequireAdmin(t *testing.T) {
	store, _, svc, _ := setup(t)
	manager := store.Member("manager-1", authz.RoleManager, true)

	_, err := svc.Create(context.Background(), manager, tier.CreateTierRequest{
		Name:  "Bronze",
		Level: 3,
	})
	assert.ErrorIs(t, err, core.ErrForbidden)
	assert.Equal(t, core.UnauthorizedPath, core.FailureLocation(err))

	_, err = svc.Create(context.Background(), nil, tier.CreateTierRequest{Name: "Bronze", Level: 3})
	assert.ErrorIs(t, err, core.ErrUnauthorized)
	assert.Equal(t, 1, store.TierCount())
}

func TestCreateRejectsInvalidLevel(t *testing.T) {
	_, _, svc, admin := setup(t)

	_, err := svc.Create(context.Background(), admin, tier.CreateTierRequest{
		Name:  "Bronze",
		Level: 0,
	})
	assert.ErrorIs(t, err, core.ErrInvalidInput)
}
