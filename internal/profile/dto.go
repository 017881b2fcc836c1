// AngelaMos | 2026
// dto.go

package profile

import (
	"strings"

	"github.com/carterperez-dev/templates/sponsor-backend/internal/core"
)

type TargetRequest struct {
	UserID string `validate:"required"`
}

func (r *TargetRequest) Normalize() {
	r.UserID = strings.TrimSpace(r.UserID)
}

type UpdateOwnRequest struct {
	FullName *string
	Email    string `validate:"required"`
}

func (r *UpdateOwnRequest) Normalize() {
	r.FullName = core.OptionalString(r.FullName)
	r.Email = strings.TrimSpace(r.Email)
}
