// AngelaMos | 2026
// repository.go

package eventsponsor

import (
	"context"
	"fmt"

	"github.com/carterperez-dev/templates/sponsor-backend/internal/core"
)

type Repository interface {
	EventExists(ctx context.Context, eventID string) (bool, error)
	SponsorExists(ctx context.Context, sponsorID string) (bool, error)
	LinkExists(ctx context.Context, eventID, sponsorID string) (bool, error)
	// Insert is a no-op when the pair already exists.
	Insert(ctx context.Context, link *Link) error
	Delete(ctx context.Context, eventID, sponsorID string) (int64, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) exists(
	ctx context.Context,
	op, query string,
	args ...any,
) (bool, error) {
	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, args...); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return exists, nil
}

func (r *repository) EventExists(ctx context.Context, eventID string) (bool, error) {
	return r.exists(ctx, "check event exists",
		`SELECT EXISTS(SELECT 1 FROM events WHERE id = $1)`, eventID)
}

func (r *repository) SponsorExists(ctx context.Context, sponsorID string) (bool, error) {
	return r.exists(ctx, "check sponsor exists",
		`SELECT EXISTS(SELECT 1 FROM sponsors WHERE id = $1)`, sponsorID)
}

func (r *repository) LinkExists(
	ctx context.Context,
	eventID, sponsorID string,
) (bool, error) {
	return r.exists(ctx, "check link exists",
		`SELECT EXISTS(
			SELECT 1 FROM event_sponsors WHERE event_id = $1 AND sponsor_id = $2
		)`, eventID, sponsorID)
}

func (r *repository) Insert(ctx context.Context, l *Link) error {
	query := `
		INSERT INTO event_sponsors (id, event_id, sponsor_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (event_id, sponsor_id) DO NOTHING`

	if _, err := r.db.ExecContext(ctx, query, l.ID, l.EventID, l.SponsorID); err != nil {
		return fmt.Errorf("insert event sponsor: %w", err)
	}

	return nil
}

func (r *repository) Delete(
	ctx context.Context,
	eventID, sponsorID string,
) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM event_sponsors WHERE event_id = $1 AND sponsor_id = $2`,
		eventID, sponsorID)
	if err != nil {
		return 0, fmt.Errorf("delete event sponsor: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete event sponsor: %w", err)
	}

	return rows, nil
}
