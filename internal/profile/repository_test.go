// AngelaMos | 2026
// repository_test.go

package profile

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/templates/sponsor-backend/internal/authz"
	"github.com/carterperez-dev/templates/sponsor-backend/internal/core"
)

func newMockRepo(t *testing.T) (Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(sqlx.NewDb(db, "sqlmock")), mock
}

var columns = []string{
	"user_id", "full_name", "email", "role", "is_approved", "created_at", "updated_at",
}

func TestFindMatching(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("AND ($3 = '' OR role = $3)")).
		WithArgs("u1", true, "user").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("u1", nil, "u1@example.com", "user", true, now, now))

	p, err := repo.FindMatching(context.Background(), "u1", approvedUser)
	require.NoError(t, err)
	assert.Equal(t, authz.RoleUser, p.Role)
	assert.True(t, p.IsApproved)
}

func TestFindMatchingMiss(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM user_profiles")).
		WithArgs("u1", false, "").
		WillReturnRows(sqlmock.NewRows(columns))

	_, err := repo.FindMatching(context.Background(), "u1", pendingSignup)
	assert.ErrorIs(t, err, core.ErrPrecondition)
}

func TestApproveGuard(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("WHERE user_id = $1 AND is_approved = FALSE")).
		WithArgs("u1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("WHERE user_id = $1 AND is_approved = FALSE")).
		WithArgs("u1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Approve(context.Background(), "u1"))
	assert.ErrorIs(t, repo.Approve(context.Background(), "u1"), core.ErrPrecondition)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChangeRole(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("SET role = $3")).
		WithArgs("u1", "manager", "user").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.ChangeRole(context.Background(), "u1", authz.RoleManager, authz.RoleUser)
	require.NoError(t, err)
}

func TestGetByIDNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE user_id = $1")).
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows(columns))

	_, err := repo.GetByID(context.Background(), "ghost")
	assert.ErrorIs(t, err, core.ErrNotFound)
}
