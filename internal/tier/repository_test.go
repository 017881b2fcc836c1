// AngelaMos | 2026
// repository_test.go

package tier

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/templates/sponsor-backend/internal/core"
)

func newMockRepo(t *testing.T) (Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(sqlx.NewDb(db, "sqlmock")), mock
}

func TestRepositoryCreate(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO tiers")).
		WithArgs("t1", "Gold", 1, nil).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(now))

	tier := &Tier{ID: "t1", Name: "Gold", Level: 1}
	require.NoError(t, repo.Create(context.Background(), tier))
	assert.Equal(t, now, tier.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryCreateDuplicate(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO tiers")).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	err := repo.Create(context.Background(), &Tier{ID: "t1", Name: "Gold", Level: 1})
	assert.ErrorIs(t, err, core.ErrDuplicateKey)
}

func TestRepositoryConflictExists(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE (name = $1 OR level = $2) AND id::text <> $3")).
		WithArgs("Gold", 2, "t9").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	clash, err := repo.ConflictExists(context.Background(), "Gold", 2, "t9")
	require.NoError(t, err)
	assert.True(t, clash)
}

func TestRepositoryGetByIDNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM tiers")).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "level", "description", "created_at"}))

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestRepositoryDeleteMissing(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM tiers WHERE id = $1")).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestRepositoryInUse(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM sponsors WHERE tier_id = $1")).
		WithArgs("t1").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	used, err := repo.InUse(context.Background(), "t1")
	require.NoError(t, err)
	assert.False(t, used)
}
