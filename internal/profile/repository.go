// AngelaMos | 2026
// repository.go

package profile

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/carterperez-dev/templates/sponsor-backend/internal/authz"
	"github.com/carterperez-dev/templates/sponsor-backend/internal/core"
)

type Repository interface {
	GetByID(ctx context.Context, userID string) (*Profile, error)
	// FindMatching returns the profile only when it satisfies cond.
	FindMatching(
		ctx context.Context,
		userID string,
		cond Precondition,
	) (*Profile, error)
	Approve(ctx context.Context, userID string) error
	DeletePending(ctx context.Context, userID string) error
	ChangeRole(ctx context.Context, userID string, from, to authz.Role) error
	UpdateOwn(
		ctx context.Context,
		userID string,
		fullName *string,
		email string,
	) error
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const profileColumns = `user_id, full_name, email, role, is_approved,
		created_at, updated_at`

func (r *repository) GetByID(ctx context.Context, userID string) (*Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM user_profiles WHERE user_id = $1`

	var p Profile
	if err := r.db.GetContext(ctx, &p, query, userID); err != nil {
		return nil, core.NotFoundOr("get profile", err)
	}

	return &p, nil
}

func (r *repository) FindMatching(
	ctx context.Context,
	userID string,
	cond Precondition,
) (*Profile, error) {
	query := `SELECT ` + profileColumns + `
		FROM user_profiles
		WHERE user_id = $1 AND is_approved = $2 AND ($3 = '' OR role = $3)`

	var p Profile
	err := r.db.GetContext(ctx, &p, query, userID, cond.Approved, string(cond.Role))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("find profile: %w", core.ErrPrecondition)
	}
	if err != nil {
		return nil, fmt.Errorf("find profile: %w", err)
	}

	return &p, nil
}

func (r *repository) Approve(ctx context.Context, userID string) error {
	query := `
		UPDATE user_profiles
		SET is_approved = TRUE, updated_at = NOW()
		WHERE user_id = $1 AND is_approved = FALSE`

	return r.execGuarded(ctx, "approve profile", query, userID)
}

func (r *repository) DeletePending(ctx context.Context, userID string) error {
	query := `
		DELETE FROM user_profiles
		WHERE user_id = $1 AND is_approved = FALSE`

	return r.execGuarded(ctx, "delete pending profile", query, userID)
}

func (r *repository) ChangeRole(
	ctx context.Context,
	userID string,
	from, to authz.Role,
) error {
	query := `
		UPDATE user_profiles
		SET role = $3, updated_at = NOW()
		WHERE user_id = $1 AND is_approved = TRUE AND role = $2`

	return r.execGuarded(ctx, "change role", query, userID, string(from), string(to))
}

func (r *repository) UpdateOwn(
	ctx context.Context,
	userID string,
	fullName *string,
	email string,
) error {
	query := `
		UPDATE user_profiles
		SET full_name = $2, email = $3, updated_at = NOW()
		WHERE user_id = $1`

	result, err := r.db.ExecContext(ctx, query, userID, fullName, email)
	if err != nil {
		return fmt.Errorf("update own profile: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update own profile: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("update own profile: %w", core.ErrNotFound)
	}

	return nil
}

// execGuarded runs a write whose WHERE clause carries the state
// precondition. Zero affected rows means the target moved on.
func (r *repository) execGuarded(
	ctx context.Context,
	op, query string,
	args ...any,
) error {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if rows == 0 {
		return fmt.Errorf("%s: %w", op, core.ErrPrecondition)
	}

	return nil
}
