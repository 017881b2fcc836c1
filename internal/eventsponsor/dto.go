// AngelaMos | 2026
// dto.go

package eventsponsor

import (
	"strings"
)

type LinkRequest struct {
	EventID   string `validate:"required"`
	SponsorID string `validate:"required"`
}

func (r *LinkRequest) Normalize() {
	r.EventID = strings.TrimSpace(r.EventID)
	r.SponsorID = strings.TrimSpace(r.SponsorID)
}
