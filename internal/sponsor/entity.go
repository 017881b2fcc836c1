// AngelaMos | 2026
// entity.go

package sponsor

import (
	"time"
)

type Sponsor struct {
	ID                      string    `db:"id"`
	Name                    string    `db:"name"`
	TierID                  string    `db:"tier_id"`
	ContactName             *string   `db:"contact_name"`
	ContactEmail            *string   `db:"contact_email"`
	ContactPhone            *string   `db:"contact_phone"`
	Address                 *string   `db:"address"`
	LogoURL                 *string   `db:"logo_url"`
	SponsorshipAgreementURL *string   `db:"sponsorship_agreement_url"`
	ReceiptURL              *string   `db:"receipt_url"`
	Fulfilled               bool      `db:"fulfilled"`
	CreatedAt               time.Time `db:"created_at"`
	UpdatedAt               time.Time `db:"updated_at"`
}

// DocumentKind names an uploadable sponsor document and the column that
// stores its URL.
type DocumentKind string

const (
	DocumentLogo      DocumentKind = "logo"
	DocumentAgreement DocumentKind = "agreement"
	DocumentReceipt   DocumentKind = "receipt"
)

func (k DocumentKind) Column() (string, bool) {
	switch k {
	case DocumentLogo:
		return "logo_url", true
	case DocumentAgreement:
		return "sponsorship_agreement_url", true
	case DocumentReceipt:
		return "receipt_url", true
	}
	return "", false
}

const ListPath = "/sponsors"

func DetailPath(id string) string {
	return "/sponsor/" + id
}
