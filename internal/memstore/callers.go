// AngelaMos | 2026
// callers.go

package memstore

import (
	"github.com/carterperez-dev/templates/sponsor-backend/internal/authz"
	"github.com/carterperez-dev/templates/sponsor-backend/internal/profile"
)

// Caller builds an authz.Caller the way LoadCaller would for a stored
// profile.
func Caller(userID string, role authz.Role, approved bool) *authz.Caller {
	return &authz.Caller{
		UserID:  userID,
		Email:   userID + "@example.com",
		Profile: &authz.Snapshot{Role: role, IsApproved: approved},
	}
}

// Member seeds a profile and returns its caller.
func (s *Store) Member(userID string, role authz.Role, approved bool) *authz.Caller {
	s.SeedProfile(profile.Profile{
		UserID:     userID,
		Email:      userID + "@example.com",
		Role:       role,
		IsApproved: approved,
	})
	return Caller(userID, role, approved)
}
