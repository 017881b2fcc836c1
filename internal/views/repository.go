// AngelaMos | 2026
// repository.go

package views

import (
	"context"
	"fmt"

	"github.com/carterperez-dev/templates/sponsor-backend/internal/core"
)

const recentEventsLimit = 5

type Repository interface {
	Stats(ctx context.Context) (Stats, error)
	RecentEvents(ctx context.Context, limit int) ([]EventRow, error)
	ListSponsors(ctx context.Context, filter SponsorFilter) ([]SponsorRow, error)
	ListSponsorsByTier(ctx context.Context) ([]SponsorRow, error)
	GetSponsor(ctx context.Context, id string) (*SponsorRow, error)
	EventsForSponsor(ctx context.Context, sponsorID string) ([]EventRow, error)
	ListEvents(ctx context.Context, newestFirst bool) ([]EventRow, error)
	GetEvent(ctx context.Context, id string) (*EventRow, error)
	SponsorsForEvent(ctx context.Context, eventID string) ([]LinkedSponsor, error)
	ListLinks(ctx context.Context) ([]LinkedSponsor, error)
	ListTierSummaries(ctx context.Context) ([]TierSummary, error)
	ListSponsorOptions(ctx context.Context) ([]SponsorOption, error)
	ListPendingUsers(ctx context.Context) ([]UserRow, error)
	CountApprovedUsers(ctx context.Context) (int, error)
	ListApprovedUsers(ctx context.Context, excludeUserID string) ([]UserRow, error)
	GetUser(ctx context.Context, userID string) (*UserRow, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const sponsorSelect = `
	SELECT s.id, s.name, s.tier_id, t.name AS tier_name, t.level AS tier_level,
		s.contact_name, s.contact_email, s.contact_phone, s.address,
		s.logo_url, s.sponsorship_agreement_url, s.receipt_url,
		s.fulfilled, s.created_at, s.updated_at
	FROM sponsors s
	JOIN tiers t ON t.id = s.tier_id`

const linkedSponsorSelect = `
	SELECT es.id AS link_id, es.event_id, es.sponsor_id, s.name,
		t.name AS tier_name, t.level AS tier_level, s.fulfilled
	FROM event_sponsors es
	JOIN sponsors s ON s.id = es.sponsor_id
	JOIN tiers t ON t.id = s.tier_id`

const userSelect = `
	SELECT user_id, full_name, email, role, is_approved, created_at
	FROM user_profiles`

func (r *repository) Stats(ctx context.Context) (Stats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM events) AS total_events,
			(SELECT COUNT(*) FROM events WHERE date >= CURRENT_DATE) AS upcoming_events,
			(SELECT COUNT(*) FROM sponsors) AS total_sponsors,
			(SELECT COUNT(*) FROM sponsors WHERE fulfilled) AS fulfilled_sponsors`

	var stats Stats
	if err := r.db.GetContext(ctx, &stats, query); err != nil {
		return Stats{}, fmt.Errorf("dashboard stats: %w", err)
	}

	return stats, nil
}

func (r *repository) RecentEvents(ctx context.Context, limit int) ([]EventRow, error) {
	query := `
		SELECT id, title, date, details, created_at
		FROM events
		ORDER BY date DESC
		LIMIT $1`

	var events []EventRow
	if err := r.db.SelectContext(ctx, &events, query, limit); err != nil {
		return nil, fmt.Errorf("recent events: %w", err)
	}

	return events, nil
}

func (r *repository) ListSponsors(
	ctx context.Context,
	filter SponsorFilter,
) ([]SponsorRow, error) {
	query := sponsorSelect + `
		WHERE ($1 = '' OR s.name ILIKE $2 OR s.contact_name ILIKE $2 OR s.contact_email ILIKE $2)
		AND ($3 = '' OR s.tier_id::text = $3)
		AND ($4::boolean IS NULL OR s.fulfilled = $4)
		ORDER BY s.name ASC`

	pattern := "%" + core.EscapeLike(filter.Search) + "%"

	var sponsors []SponsorRow
	err := r.db.SelectContext(ctx, &sponsors, query,
		filter.Search, pattern, filter.TierID, filter.Fulfilled)
	if err != nil {
		return nil, fmt.Errorf("list sponsors: %w", err)
	}

	return sponsors, nil
}

func (r *repository) ListSponsorsByTier(ctx context.Context) ([]SponsorRow, error) {
	query := sponsorSelect + `
		ORDER BY t.level ASC, s.name ASC`

	var sponsors []SponsorRow
	if err := r.db.SelectContext(ctx, &sponsors, query); err != nil {
		return nil, fmt.Errorf("list sponsors by tier: %w", err)
	}

	return sponsors, nil
}

func (r *repository) GetSponsor(ctx context.Context, id string) (*SponsorRow, error) {
	query := sponsorSelect + `
		WHERE s.id = $1`

	var sponsor SponsorRow
	if err := r.db.GetContext(ctx, &sponsor, query, id); err != nil {
		return nil, core.NotFoundOr("get sponsor view", err)
	}

	return &sponsor, nil
}

func (r *repository) EventsForSponsor(
	ctx context.Context,
	sponsorID string,
) ([]EventRow, error) {
	query := `
		SELECT e.id, e.title, e.date, e.details, e.created_at
		FROM events e
		JOIN event_sponsors es ON es.event_id = e.id
		WHERE es.sponsor_id = $1
		ORDER BY e.date DESC`

	var events []EventRow
	if err := r.db.SelectContext(ctx, &events, query, sponsorID); err != nil {
		return nil, fmt.Errorf("events for sponsor: %w", err)
	}

	return events, nil
}

func (r *repository) ListEvents(ctx context.Context, newestFirst bool) ([]EventRow, error) {
	query := `
		SELECT id, title, date, details, created_at
		FROM events
		ORDER BY date ASC`
	if newestFirst {
		query = `
		SELECT id, title, date, details, created_at
		FROM events
		ORDER BY date DESC`
	}

	var events []EventRow
	if err := r.db.SelectContext(ctx, &events, query); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	return events, nil
}

func (r *repository) GetEvent(ctx context.Context, id string) (*EventRow, error) {
	query := `
		SELECT id, title, date, details, created_at
		FROM events
		WHERE id = $1`

	var event EventRow
	if err := r.db.GetContext(ctx, &event, query, id); err != nil {
		return nil, core.NotFoundOr("get event view", err)
	}

	return &event, nil
}

func (r *repository) SponsorsForEvent(
	ctx context.Context,
	eventID string,
) ([]LinkedSponsor, error) {
	query := linkedSponsorSelect + `
		WHERE es.event_id = $1
		ORDER BY t.level ASC, s.name ASC`

	var sponsors []LinkedSponsor
	if err := r.db.SelectContext(ctx, &sponsors, query, eventID); err != nil {
		return nil, fmt.Errorf("sponsors for event: %w", err)
	}

	return sponsors, nil
}

func (r *repository) ListLinks(ctx context.Context) ([]LinkedSponsor, error) {
	query := linkedSponsorSelect + `
		ORDER BY es.event_id ASC, t.level ASC, s.name ASC`

	var links []LinkedSponsor
	if err := r.db.SelectContext(ctx, &links, query); err != nil {
		return nil, fmt.Errorf("list links: %w", err)
	}

	return links, nil
}

func (r *repository) ListTierSummaries(ctx context.Context) ([]TierSummary, error) {
	query := `
		SELECT t.id, t.name, t.level, t.description, t.created_at,
			COUNT(s.id) AS sponsor_count
		FROM tiers t
		LEFT JOIN sponsors s ON s.tier_id = t.id
		GROUP BY t.id
		ORDER BY t.level ASC`

	var tiers []TierSummary
	if err := r.db.SelectContext(ctx, &tiers, query); err != nil {
		return nil, fmt.Errorf("list tier summaries: %w", err)
	}

	return tiers, nil
}

func (r *repository) ListSponsorOptions(ctx context.Context) ([]SponsorOption, error) {
	query := `SELECT id, name FROM sponsors ORDER BY name ASC`

	var options []SponsorOption
	if err := r.db.SelectContext(ctx, &options, query); err != nil {
		return nil, fmt.Errorf("list sponsor options: %w", err)
	}

	return options, nil
}

func (r *repository) ListPendingUsers(ctx context.Context) ([]UserRow, error) {
	query := userSelect + `
		WHERE is_approved = FALSE
		ORDER BY created_at ASC`

	var users []UserRow
	if err := r.db.SelectContext(ctx, &users, query); err != nil {
		return nil, fmt.Errorf("list pending users: %w", err)
	}

	return users, nil
}

func (r *repository) CountApprovedUsers(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM user_profiles WHERE is_approved = TRUE`

	var count int
	if err := r.db.GetContext(ctx, &count, query); err != nil {
		return 0, fmt.Errorf("count approved users: %w", err)
	}

	return count, nil
}

func (r *repository) ListApprovedUsers(
	ctx context.Context,
	excludeUserID string,
) ([]UserRow, error) {
	query := userSelect + `
		WHERE is_approved = TRUE AND user_id <> $1
		ORDER BY role ASC, full_name ASC`

	var users []UserRow
	if err := r.db.SelectContext(ctx, &users, query, excludeUserID); err != nil {
		return nil, fmt.Errorf("list approved users: %w", err)
	}

	return users, nil
}

func (r *repository) GetUser(ctx context.Context, userID string) (*UserRow, error) {
	query := userSelect + `
		WHERE user_id = $1`

	var user UserRow
	if err := r.db.GetContext(ctx, &user, query, userID); err != nil {
		return nil, core.NotFoundOr("get user view", err)
	}

	return &user, nil
}
