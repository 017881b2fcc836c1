// AngelaMos | 2026
// service_test.go

package profile_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/templates/sponsor-backend/internal/authz"
	"github.com/carterperez-dev/templates/sponsor-backend/internal/core"
	"github.com/carterperez-dev/templates/sponsor-backend/internal/memstore"
	"github.com/carterperez-dev/templates/sponsor-backend/internal/profile"
	"github.com/carterperez-dev/templates/sponsor-backend/internal/views"
)

type fakeIdentity struct {
	deleted []string
	err     error
}

func (f *fakeIdentity) DeleteUser(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return f.err
}

type env struct {
	store *memstore.Store
	inv   *memstore.Invalidations
	ids   *fakeIdentity
	svc   *profile.Service
	admin *authz.Caller
}

func newEnv() *env {
	store := memstore.New()
	inv := &memstore.Invalidations{}
	ids := &fakeIdentity{}
	return &env{
		store: store,
		inv:   inv,
		ids:   ids,
		svc:   profile.NewService(store.Profiles(), ids, inv),
		admin: store.Member("admin-1", authz.RoleAdmin, true),
	}
}

func target(id string) profile.TargetRequest {
	return profile.TargetRequest{UserID: id}
}

func TestApprovePendingUser(t *testing.T) {
	e := newEnv()
	e.store.Member("u1", authz.RoleUser, false)

	out, err := e.svc.Approve(context.Background(), e.admin, target("u1"))
	require.NoError(t, err)
	assert.Equal(t, profile.ApprovalsPath, out.Location)

	p, _ := e.store.Profile("u1")
	assert.True(t, p.IsApproved)
	assert.Equal(t, 1, e.inv.Count(views.TopicApproval))
}

func TestApproveAlreadyApprovedIsRejected(t *testing.T) {
	e := newEnv()
	e.store.Member("u1", authz.RoleUser, true)
	before, _ := e.store.Profile("u1")

	_, err := e.svc.Approve(context.Background(), e.admin, target("u1"))
	assert.ErrorIs(t, err, core.ErrPrecondition)
	assert.Equal(t, core.ErrorPath, core.FailureLocation(err))

	after, _ := e.store.Profile("u1")
	assert.Equal(t, before, after)
	assert.Zero(t, e.inv.Count(views.TopicApproval))
}

func TestManagerMayReviewSignups(t *testing.T) {
	e := newEnv()
	manager := e.store.Member("m1", authz.RoleManager, true)
	e.store.Member("u1", authz.RoleUser, false)

	_, err := e.svc.Approve(context.Background(), manager, target("u1"))
	require.NoError(t, err)
}

func TestRejectDeletesProfileAndIdentity(t *testing.T) {
	e := newEnv()
	e.store.Member("u1", authz.RoleUser, false)

	_, err := e.svc.Reject(context.Background(), e.admin, target("u1"))
	require.NoError(t, err)

	_, ok := e.store.Profile("u1")
	assert.False(t, ok)
	assert.Equal(t, []string{"u1"}, e.ids.deleted)
}

func TestRejectSurvivesIdentityFailure(t *testing.T) {
	e := newEnv()
	e.ids.err = errors.New("identity backend down")
	e.store.Member("u1", authz.RoleUser, false)

	out, err := e.svc.Reject(context.Background(), e.admin, target("u1"))
	require.NoError(t, err)
	assert.Equal(t, profile.ApprovalsPath, out.Location)

	_, ok := e.store.Profile("u1")
	assert.False(t, ok)
}

func TestRejectApprovedUserIsRefused(t *testing.T) {
	e := newEnv()
	e.store.Member("u1", authz.RoleUser, true)

	_, err := e.svc.Reject(context.Background(), e.admin, target("u1"))
	assert.ErrorIs(t, err, core.ErrPrecondition)

	_, ok := e.store.Profile("u1")
	assert.True(t, ok)
	assert.Empty(t, e.ids.deleted)
}

func TestPromoteAndDemote(t *testing.T) {
	e := newEnv()
	e.store.Member("u1", authz.RoleUser, true)
	ctx := context.Background()

	out, err := e.svc.Promote(ctx, e.admin, target("u1"))
	require.NoError(t, err)
	assert.Equal(t, profile.RolesPath, out.Location)
	p, _ := e.store.Profile("u1")
	assert.Equal(t, authz.RoleManager, p.Role)

	_, err = e.svc.Demote(ctx, e.admin, target("u1"))
	require.NoError(t, err)
	p, _ = e.store.Profile("u1")
	assert.Equal(t, authz.RoleUser, p.Role)
	assert.Equal(t, 2, e.inv.Count(views.TopicRole))
}

func TestPromoteManagerIsRejected(t *testing.T) {
	e := newEnv()
	e.store.Member("m1", authz.RoleManager, true)

	_, err := e.svc.Promote(context.Background(), e.admin, target("m1"))
	assert.ErrorIs(t, err, core.ErrPrecondition)

	p, _ := e.store.Profile("m1")
	assert.Equal(t, authz.RoleManager, p.Role)
}

func TestPromoteUnapprovedIsRejected(t *testing.T) {
	e := newEnv()
	e.store.Member("u1", authz.RoleUser, false)

	_, err := e.svc.Promote(context.Background(), e.admin, target("u1"))
	assert.ErrorIs(t, err, core.ErrPrecondition)
}

func TestSelfDemoteIsRejected(t *testing.T) {
	e := newEnv()

	_, err := e.svc.Demote(context.Background(), e.admin, target("admin-1"))
	assert.ErrorIs(t, err, core.ErrInvalidInput)

	p, _ := e.store.Profile("admin-1")
	assert.Equal(t, authz.RoleAdmin, p.Role)
}

func TestRoleChangesRequireAdmin(t *testing.T) {
	e := newEnv()
	manager := e.store.Member("m1", authz.RoleManager, true)
	e.store.Member("u1", authz.RoleUser, true)

	_, err := e.svc.Promote(context.Background(), manager, target("u1"))
	assert.ErrorIs(t, err, core.ErrForbidden)
}

func TestUpdateOwn(t *testing.T) {
	e := newEnv()
	pending := e.store.Member("u1", authz.RoleUser, false)

	out, err := e.svc.UpdateOwn(context.Background(), pending, profile.UpdateOwnRequest{
		FullName: core.StringPtr("  Ada Lovelace "),
		Email:    " ada@example.com ",
	})
	require.NoError(t, err)
	assert.Equal(t, profile.ProfilePath, out.Location)

	p, _ := e.store.Profile("u1")
	require.NotNil(t, p.FullName)
	assert.Equal(t, "Ada Lovelace", *p.FullName)
	assert.Equal(t, "ada@example.com", p.Email)
}

func TestSnapshot(t *testing.T) {
	e := newEnv()
	e.store.Member("u1", authz.RoleManager, true)

	snap, err := e.svc.Snapshot(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, &authz.Snapshot{Role: authz.RoleManager, IsApproved: true}, snap)

	snap, err = e.svc.Snapshot(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Nil(t, snap)
}
