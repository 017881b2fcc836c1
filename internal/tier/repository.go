// AngelaMos | 2026
// repository.go

package tier

import (
	"context"
	"fmt"

	"github.com/carterperez-dev/templates/sponsor-backend/internal/core"
)

type Repository interface {
	GetByID(ctx context.Context, id string) (*Tier, error)
	ConflictExists(
		ctx context.Context,
		name string,
		level int,
		excludeID string,
	) (bool, error)
	Create(ctx context.Context, tier *Tier) error
	Update(ctx context.Context, tier *Tier) error
	Delete(ctx context.Context, id string) error
	InUse(ctx context.Context, id string) (bool, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) GetByID(ctx context.Context, id string) (*Tier, error) {
	query := `
		SELECT id, name, level, description, created_at
		FROM tiers
		WHERE id = $1`

	var t Tier
	if err := r.db.GetContext(ctx, &t, query, id); err != nil {
		return nil, core.NotFoundOr("get tier", err)
	}

	return &t, nil
}

// ConflictExists reports whether another tier shares the name or the level.
func (r *repository) ConflictExists(
	ctx context.Context,
	name string,
	level int,
	excludeID string,
) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM tiers
			WHERE (name = $1 OR level = $2) AND id::text <> $3
		)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, name, level, excludeID); err != nil {
		return false, fmt.Errorf("check tier conflict: %w", err)
	}

	return exists, nil
}

func (r *repository) Create(ctx context.Context, t *Tier) error {
	query := `
		INSERT INTO tiers (id, name, level, description)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at`

	err := r.db.GetContext(ctx, &t.CreatedAt, query,
		t.ID,
		t.Name,
		t.Level,
		t.Description,
	)
	if err != nil {
		if core.IsDuplicateKeyError(err) {
			return fmt.Errorf("create tier: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("create tier: %w", err)
	}

	return nil
}

func (r *repository) Update(ctx context.Context, t *Tier) error {
	query := `
		UPDATE tiers
		SET name = $2, level = $3, description = $4
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.Name,
		t.Level,
		t.Description,
	)
	if err != nil {
		if core.IsDuplicateKeyError(err) {
			return fmt.Errorf("update tier: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("update tier: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update tier: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("update tier: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tiers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete tier: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete tier: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("delete tier: %w", core.ErrNotFound)
	}

	return nil
}

// InUse probes for a single referencing sponsor rather than counting.
func (r *repository) InUse(ctx context.Context, id string) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT id FROM sponsors WHERE tier_id = $1 LIMIT 1
		)`

	var used bool
	if err := r.db.GetContext(ctx, &used, query, id); err != nil {
		return false, fmt.Errorf("check tier in use: %w", err)
	}

	return used, nil
}
