// AngelaMos | 2026
// authz.go

package authz

import (
	"fmt"
	"slices"

	"github.com/carterperez-dev/templates/sponsor-backend/internal/core"
)

type Role string

const (
	RoleUser    Role = "user"
	RoleManager Role = "manager"
	RoleAdmin   Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleManager, RoleAdmin:
		return true
	}
	return false
}

type Action string

const (
	ActionWriteEvent          Action = "event.write"
	ActionWriteSponsor        Action = "sponsor.write"
	ActionManageEventSponsors Action = "event_sponsor.manage"
	ActionManageTiers         Action = "tier.manage"
	ActionReviewSignups       Action = "signup.review"
	ActionManageRoles         Action = "role.manage"
	ActionViewProfile         Action = "profile.view"
	ActionViewListings        Action = "listing.view"
)

// Rule is one row of the permission table. An empty Roles slice admits any
// authenticated caller with a profile.
type Rule struct {
	Roles           []Role
	RequireApproved bool
}

var staff = []Role{RoleManager, RoleAdmin}

var rules = map[Action]Rule{
	ActionWriteEvent:          {Roles: staff, RequireApproved: true},
	ActionWriteSponsor:        {Roles: staff, RequireApproved: true},
	ActionManageEventSponsors: {Roles: staff, RequireApproved: true},
	ActionManageTiers:         {Roles: []Role{RoleAdmin}, RequireApproved: true},
	ActionReviewSignups:       {Roles: staff, RequireApproved: true},
	ActionManageRoles:         {Roles: []Role{RoleAdmin}, RequireApproved: true},
	ActionViewProfile:         {RequireApproved: false},
	ActionViewListings:        {RequireApproved: true},
}

func Actions() []Action {
	return []Action{
		ActionWriteEvent,
		ActionWriteSponsor,
		ActionManageEventSponsors,
		ActionManageTiers,
		ActionReviewSignups,
		ActionManageRoles,
		ActionViewProfile,
		ActionViewListings,
	}
}

func RuleFor(action Action) (Rule, bool) {
	rule, ok := rules[action]
	return rule, ok
}

// Snapshot is the slice of a profile row the rule engine reads.
type Snapshot struct {
	Role       Role
	IsApproved bool
}

// Caller is resolved once per request from the verified session. Profile is
// nil when the identity has no profile row.
type Caller struct {
	UserID  string
	Email   string
	Profile *Snapshot
}

func (c *Caller) Role() Role {
	if c == nil || c.Profile == nil {
		return ""
	}
	return c.Profile.Role
}

type Reason string

const (
	ReasonNoProfile     Reason = "no_profile"
	ReasonNotApproved   Reason = "not_approved"
	ReasonRole          Reason = "role_not_allowed"
	ReasonUnknownAction Reason = "unknown_action"
)

type DeniedError struct {
	Action Action
	Reason Reason
}

func (e *DeniedError) Error() string {
	return fmt.Sprintf("%s denied: %s", e.Action, e.Reason)
}

func (e *DeniedError) Unwrap() error {
	return core.ErrForbidden
}

// Authorize evaluates the permission table for caller. It never touches
// storage; the profile snapshot is loaded before the call.
func Authorize(caller *Caller, action Action) error {
	if caller == nil || caller.UserID == "" {
		return fmt.Errorf("authorize %s: %w", action, core.ErrUnauthorized)
	}

	rule, ok := rules[action]
	if !ok {
		return &DeniedError{Action: action, Reason: ReasonUnknownAction}
	}

	if caller.Profile == nil {
		return &DeniedError{Action: action, Reason: ReasonNoProfile}
	}

	if rule.RequireApproved && !caller.Profile.IsApproved {
		return &DeniedError{Action: action, Reason: ReasonNotApproved}
	}

	if len(rule.Roles) > 0 && !slices.Contains(rule.Roles, caller.Profile.Role) {
		return &DeniedError{Action: action, Reason: ReasonRole}
	}

	return nil
}

func Allowed(caller *Caller, action Action) bool {
	return Authorize(caller, action) == nil
}
