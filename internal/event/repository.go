// AngelaMos | 2026
// repository.go

package event

import (
	"context"
	"fmt"

	"github.com/carterperez-dev/templates/sponsor-backend/internal/core"
)

type Repository interface {
	GetByID(ctx context.Context, id string) (*Event, error)
	Create(ctx context.Context, event *Event) error
	Update(ctx context.Context, event *Event) error
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) GetByID(ctx context.Context, id string) (*Event, error) {
	query := `
		SELECT id, title, date, details, created_at
		FROM events
		WHERE id = $1`

	var e Event
	if err := r.db.GetContext(ctx, &e, query, id); err != nil {
		return nil, core.NotFoundOr("get event", err)
	}

	return &e, nil
}

func (r *repository) Create(ctx context.Context, e *Event) error {
	query := `
		INSERT INTO events (id, title, date, details)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at`

	err := r.db.GetContext(ctx, &e.CreatedAt, query,
		e.ID,
		e.Title,
		e.Date,
		e.Details,
	)
	if err != nil {
		return fmt.Errorf("create event: %w", err)
	}

	return nil
}

func (r *repository) Update(ctx context.Context, e *Event) error {
	query := `
		UPDATE events
		SET title = $2, date = $3, details = $4
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.Title,
		e.Date,
		e.Details,
	)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("update event: %w", core.ErrNotFound)
	}

	return nil
}
