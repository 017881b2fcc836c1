// AngelaMos | 2026
// dto.go

package sponsor

import (
	"io"
	"strings"

	"github.com/carterperez-dev/templates/sponsor-backend/internal/core"
)

// SponsorFields are the writable sponsor attributes shared by create and
// update forms.
type SponsorFields struct {
	Name                    string `validate:"required"`
	TierID                  string `validate:"required"`
	ContactName             *string
	ContactEmail            *string
	ContactPhone            *string
	Address                 *string
	LogoURL                 *string
	SponsorshipAgreementURL *string
	ReceiptURL              *string
	Fulfilled               bool
}

func (f *SponsorFields) Normalize() {
	f.Name = strings.TrimSpace(f.Name)
	f.TierID = strings.TrimSpace(f.TierID)
	f.ContactName = core.OptionalString(f.ContactName)
	f.ContactEmail = core.OptionalString(f.ContactEmail)
	f.ContactPhone = core.OptionalString(f.ContactPhone)
	f.Address = core.OptionalString(f.Address)
	f.LogoURL = core.OptionalString(f.LogoURL)
	f.SponsorshipAgreementURL = core.OptionalString(f.SponsorshipAgreementURL)
	f.ReceiptURL = core.OptionalString(f.ReceiptURL)
}

func (f *SponsorFields) apply(s *Sponsor) {
	s.Name = f.Name
	s.TierID = f.TierID
	s.ContactName = f.ContactName
	s.ContactEmail = f.ContactEmail
	s.ContactPhone = f.ContactPhone
	s.Address = f.Address
	s.LogoURL = f.LogoURL
	s.SponsorshipAgreementURL = f.SponsorshipAgreementURL
	s.ReceiptURL = f.ReceiptURL
	s.Fulfilled = f.Fulfilled
}

type CreateSponsorRequest struct {
	SponsorFields
}

type UpdateSponsorRequest struct {
	ID string `validate:"required"`
	SponsorFields
}

type UploadDocumentRequest struct {
	SponsorID   string       `validate:"required"`
	Kind        DocumentKind `validate:"required,oneof=logo agreement receipt"`
	Filename    string       `validate:"required"`
	ContentType string
	Size        int64 `validate:"gt=0"`
	Body        io.Reader
}
