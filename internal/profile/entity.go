// AngelaMos | 2026
// entity.go

package profile

import (
	"time"

	"github.com/carterperez-dev/templates/sponsor-backend/internal/authz"
)

// Profile is the application-side record of an identity. Rows are created
// by the identity backend's sign-up trigger with role user and not approved.
type Profile struct {
	UserID     string     `db:"user_id"`
	FullName   *string    `db:"full_name"`
	Email      string     `db:"email"`
	Role       authz.Role `db:"role"`
	IsApproved bool       `db:"is_approved"`
	CreatedAt  time.Time  `db:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at"`
}

func (p *Profile) Snapshot() *authz.Snapshot {
	return &authz.Snapshot{Role: p.Role, IsApproved: p.IsApproved}
}

// Precondition is the state a target profile must be in for a lifecycle
// action. An empty Role matches any role.
type Precondition struct {
	Approved bool
	Role     authz.Role
}

func (c Precondition) Matches(p *Profile) bool {
	if p.IsApproved != c.Approved {
		return false
	}
	return c.Role == "" || p.Role == c.Role
}

var (
	pendingSignup = Precondition{Approved: false}
	approvedUser  = Precondition{Approved: true, Role: authz.RoleUser}
	activeManager = Precondition{Approved: true, Role: authz.RoleManager}
)

const (
	ApprovalsPath = "/manage/user-approvals"
	RolesPath     = "/manage/user-roles"
	ProfilePath   = "/profile"
)
