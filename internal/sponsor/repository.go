// AngelaMos | 2026
// repository.go

package sponsor

import (
	"context"
	"fmt"

	"github.com/carterperez-dev/templates/sponsor-backend/internal/core"
)

type Repository interface {
	GetByID(ctx context.Context, id string) (*Sponsor, error)
	TierExists(ctx context.Context, tierID string) (bool, error)
	Create(ctx context.Context, sponsor *Sponsor) error
	Update(ctx context.Context, sponsor *Sponsor) error
	SetDocumentURL(
		ctx context.Context,
		id string,
		kind DocumentKind,
		url string,
	) error
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const sponsorColumns = `id, name, tier_id, contact_name, contact_email,
		contact_phone, address, logo_url, sponsorship_agreement_url,
		receipt_url, fulfilled, created_at, updated_at`

func (r *repository) GetByID(ctx context.Context, id string) (*Sponsor, error) {
	query := `SELECT ` + sponsorColumns + ` FROM sponsors WHERE id = $1`

	var s Sponsor
	if err := r.db.GetContext(ctx, &s, query, id); err != nil {
		return nil, core.NotFoundOr("get sponsor", err)
	}

	return &s, nil
}

func (r *repository) TierExists(ctx context.Context, tierID string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		`SELECT EXISTS(SELECT 1 FROM tiers WHERE id = $1)`, tierID)
	if err != nil {
		return false, fmt.Errorf("check tier exists: %w", err)
	}

	return exists, nil
}

func (r *repository) Create(ctx context.Context, s *Sponsor) error {
	query := `
		INSERT INTO sponsors (
			id, name, tier_id, contact_name, contact_email, contact_phone,
			address, logo_url, sponsorship_agreement_url, receipt_url, fulfilled
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at, updated_at`

	row := r.db.QueryRowxContext(ctx, query,
		s.ID,
		s.Name,
		s.TierID,
		s.ContactName,
		s.ContactEmail,
		s.ContactPhone,
		s.Address,
		s.LogoURL,
		s.SponsorshipAgreementURL,
		s.ReceiptURL,
		s.Fulfilled,
	)
	if err := row.Scan(&s.CreatedAt, &s.UpdatedAt); err != nil {
		return fmt.Errorf("create sponsor: %w", err)
	}

	return nil
}

func (r *repository) Update(ctx context.Context, s *Sponsor) error {
	query := `
		UPDATE sponsors
		SET name = $2, tier_id = $3, contact_name = $4, contact_email = $5,
		    contact_phone = $6, address = $7, logo_url = $8,
		    sponsorship_agreement_url = $9, receipt_url = $10,
		    fulfilled = $11, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.GetContext(ctx, &s.UpdatedAt, query,
		s.ID,
		s.Name,
		s.TierID,
		s.ContactName,
		s.ContactEmail,
		s.ContactPhone,
		s.Address,
		s.LogoURL,
		s.SponsorshipAgreementURL,
		s.ReceiptURL,
		s.Fulfilled,
	)
	if err != nil {
		return core.NotFoundOr("update sponsor", err)
	}

	return nil
}

func (r *repository) SetDocumentURL(
	ctx context.Context,
	id string,
	kind DocumentKind,
	url string,
) error {
	column, ok := kind.Column()
	if !ok {
		return fmt.Errorf("set sponsor document %q: %w", kind, core.ErrInvalidInput)
	}

	query := fmt.Sprintf(
		`UPDATE sponsors SET %s = $2, updated_at = NOW() WHERE id = $1`,
		column,
	)

	result, err := r.db.ExecContext(ctx, query, id, url)
	if err != nil {
		return fmt.Errorf("set sponsor document: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("set sponsor document: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("set sponsor document: %w", core.ErrNotFound)
	}

	return nil
}
