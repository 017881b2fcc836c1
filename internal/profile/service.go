// AngelaMos | 2026
// service.go

package profile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"github.com/carterperez-dev/templates/sponsor-backend/internal/authz"
	"github.com/carterperez-dev/templates/sponsor-backend/internal/core"
	"github.com/carterperez-dev/templates/sponsor-backend/internal/views"
)

// IdentityAdmin removes identities from the hosted auth backend.
type IdentityAdmin interface {
	DeleteUser(ctx context.Context, userID string) error
}

type Service struct {
	repo      Repository
	identity  IdentityAdmin
	views     views.Invalidator
	validator *validator.Validate
}

func NewService(
	repo Repository,
	identity IdentityAdmin,
	invalidator views.Invalidator,
) *Service {
	return &Service{
		repo:      repo,
		identity:  identity,
		views:     invalidator,
		validator: core.NewValidator(),
	}
}

// Snapshot loads the caller's authorization state. A missing profile is
// not an error; the rule engine denies it.
func (s *Service) Snapshot(ctx context.Context, userID string) (*authz.Snapshot, error) {
	p, err := s.repo.GetByID(ctx, userID)
	if errors.Is(err, core.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p.Snapshot(), nil
}

func (s *Service) Approve(
	ctx context.Context,
	caller *authz.Caller,
	req TargetRequest,
) (core.Outcome, error) {
	if err := s.checkTarget(caller, authz.ActionReviewSignups, &req); err != nil {
		return core.Outcome{}, fmt.Errorf("approve user: %w", err)
	}

	if _, err := s.repo.FindMatching(ctx, req.UserID, pendingSignup); err != nil {
		return core.Outcome{}, fmt.Errorf("approve user: %w", err)
	}

	if err := s.repo.Approve(ctx, req.UserID); err != nil {
		return core.Outcome{}, err
	}

	s.views.Invalidate(ctx, views.TopicApproval, views.Params{views.ParamUserID: req.UserID})
	return core.RedirectTo(ApprovalsPath), nil
}

// Reject deletes a pending profile. Removing the backing identity is best
// effort; a failure is logged and the rejection still stands.
func (s *Service) Reject(
	ctx context.Context,
	caller *authz.Caller,
	req TargetRequest,
) (core.Outcome, error) {
	if err := s.checkTarget(caller, authz.ActionReviewSignups, &req); err != nil {
		return core.Outcome{}, fmt.Errorf("reject user: %w", err)
	}

	if _, err := s.repo.FindMatching(ctx, req.UserID, pendingSignup); err != nil {
		return core.Outcome{}, fmt.Errorf("reject user: %w", err)
	}

	if err := s.repo.DeletePending(ctx, req.UserID); err != nil {
		return core.Outcome{}, err
	}

	if s.identity != nil {
		if err := s.identity.DeleteUser(ctx, req.UserID); err != nil {
			slog.WarnContext(ctx, "identity removal failed after rejection",
				"user_id", req.UserID,
				"error", err,
			)
		}
	}

	s.views.Invalidate(ctx, views.TopicApproval, views.Params{views.ParamUserID: req.UserID})
	return core.RedirectTo(ApprovalsPath), nil
}

func (s *Service) Promote(
	ctx context.Context,
	caller *authz.Caller,
	req TargetRequest,
) (core.Outcome, error) {
	return s.changeRole(ctx, caller, req, approvedUser, authz.RoleManager, "promote user")
}

func (s *Service) Demote(
	ctx context.Context,
	caller *authz.Caller,
	req TargetRequest,
) (core.Outcome, error) {
	return s.changeRole(ctx, caller, req, activeManager, authz.RoleUser, "demote manager")
}

func (s *Service) changeRole(
	ctx context.Context,
	caller *authz.Caller,
	req TargetRequest,
	cond Precondition,
	to authz.Role,
	op string,
) (core.Outcome, error) {
	if err := s.checkTarget(caller, authz.ActionManageRoles, &req); err != nil {
		return core.Outcome{}, fmt.Errorf("%s: %w", op, err)
	}

	if _, err := s.repo.FindMatching(ctx, req.UserID, cond); err != nil {
		return core.Outcome{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.repo.ChangeRole(ctx, req.UserID, cond.Role, to); err != nil {
		return core.Outcome{}, err
	}

	s.views.Invalidate(ctx, views.TopicRole, views.Params{views.ParamUserID: req.UserID})
	return core.RedirectTo(RolesPath), nil
}

// UpdateOwn edits the caller's own name and contact email.
func (s *Service) UpdateOwn(
	ctx context.Context,
	caller *authz.Caller,
	req UpdateOwnRequest,
) (core.Outcome, error) {
	if err := authz.Authorize(caller, authz.ActionViewProfile); err != nil {
		return core.Outcome{}, err
	}

	req.Normalize()
	if err := core.ValidateStruct(s.validator, req); err != nil {
		return core.Outcome{}, fmt.Errorf("update own profile: %w", err)
	}

	if err := s.repo.UpdateOwn(ctx, caller.UserID, req.FullName, req.Email); err != nil {
		return core.Outcome{}, err
	}

	s.views.Invalidate(ctx, views.TopicProfile, views.Params{views.ParamUserID: caller.UserID})
	return core.RedirectTo(ProfilePath), nil
}

// checkTarget authorizes the caller and refuses actions aimed at the
// caller's own account.
func (s *Service) checkTarget(
	caller *authz.Caller,
	action authz.Action,
	req *TargetRequest,
) error {
	if err := authz.Authorize(caller, action); err != nil {
		return err
	}

	req.Normalize()
	if err := core.ValidateStruct(s.validator, req); err != nil {
		return err
	}

	if req.UserID == caller.UserID {
		return fmt.Errorf("target is the caller: %w", core.ErrInvalidInput)
	}

	return nil
}
