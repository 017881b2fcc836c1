// AngelaMos | 2026
// dto.go

package event

import (
	"fmt"
	"strings"
	"time"

	"github.com/carterperez-dev/templates/sponsor-backend/internal/core"
)

type CreateEventRequest struct {
	Title   string `validate:"required"`
	Date    string `validate:"required"`
	Details *string
}

func (r *CreateEventRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Date = strings.TrimSpace(r.Date)
	r.Details = core.OptionalString(r.Details)
}

type UpdateEventRequest struct {
	ID      string `validate:"required"`
	Title   string `validate:"required"`
	Date    string `validate:"required"`
	Details *string
}

func (r *UpdateEventRequest) Normalize() {
	r.ID = strings.TrimSpace(r.ID)
	r.Title = strings.TrimSpace(r.Title)
	r.Date = strings.TrimSpace(r.Date)
	r.Details = core.OptionalString(r.Details)
}

var dateLayouts = []string{time.DateOnly, time.RFC3339}

// ParseDate accepts a calendar date or an RFC 3339 timestamp.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("parse date %q: %w", s, core.ErrInvalidInput)
}
