// AngelaMos | 2026
// dto.go

package tier

import (
	"strings"

	"github.com/carterperez-dev/templates/sponsor-backend/internal/core"
)

type CreateTierRequest struct {
	Name        string  `validate:"required"`
	Level       int     `validate:"required,min=1"`
	Description *string `validate:"omitempty"`
}

func (r *CreateTierRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Description = core.OptionalString(r.Description)
}

type UpdateTierRequest struct {
	ID          string  `validate:"required"`
	Name        string  `validate:"required"`
	Level       int     `validate:"required,min=1"`
	Description *string `validate:"omitempty"`
}

func (r *UpdateTierRequest) Normalize() {
	r.ID = strings.TrimSpace(r.ID)
	r.Name = strings.TrimSpace(r.Name)
	r.Description = core.OptionalString(r.Description)
}

type DeleteTierRequest struct {
	ID string `validate:"required"`
}

func (r *DeleteTierRequest) Normalize() {
	r.ID = strings.TrimSpace(r.ID)
}
