// AngelaMos | 2026
// service.go

package tier

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/carterperez-dev/templates/sponsor-backend/internal/authz"
	"github.com/carterperez-dev/templates/sponsor-backend/internal/core"
	"github.com/carterperez-dev/templates/sponsor-backend/internal/views"
)

type Service struct {
	repo      Repository
	views     views.Invalidator
	validator *validator.Validate
}

func NewService(repo Repository, invalidator views.Invalidator) *Service {
	return &Service{
		repo:      repo,
		views:     invalidator,
		validator: core.NewValidator(),
	}
}

// Create adds a tier. A name or level already taken by another tier is a
// soft conflict: nothing is written and the caller lands on the list.
func (s *Service) Create(
	ctx context.Context,
	caller *authz.Caller,
	req CreateTierRequest,
) (core.Outcome, error) {
	if err := authz.Authorize(caller, authz.ActionManageTiers); err != nil {
		return core.Outcome{}, err
	}

	req.Normalize()
	if err := core.ValidateStruct(s.validator, req); err != nil {
		return core.Outcome{}, fmt.Errorf("create tier: %w", err)
	}

	conflict, err := s.repo.ConflictExists(ctx, req.Name, req.Level, "")
	if err != nil {
		return core.Outcome{}, err
	}
	if conflict {
		slog.InfoContext(ctx, "tier name or level taken, create skipped",
			"name", req.Name,
			"level", req.Level,
		)
		return core.RedirectTo(ListPath), nil
	}

	t := &Tier{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Level:       req.Level,
		Description: req.Description,
	}

	if err := s.repo.Create(ctx, t); err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			return core.RedirectTo(ListPath), nil
		}
		return core.Outcome{}, err
	}

	s.views.Invalidate(ctx, views.TopicTier, nil)
	return core.RedirectTo(ListPath), nil
}

func (s *Service) Update(
	ctx context.Context,
	caller *authz.Caller,
	req UpdateTierRequest,
) (core.Outcome, error) {
	if err := authz.Authorize(caller, authz.ActionManageTiers); err != nil {
		return core.Outcome{}, err
	}

	req.Normalize()
	if err := core.ValidateStruct(s.validator, req); err != nil {
		return core.Outcome{}, fmt.Errorf("update tier: %w", err)
	}

	t, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return core.Outcome{}, err
	}

	conflict, err := s.repo.ConflictExists(ctx, req.Name, req.Level, t.ID)
	if err != nil {
		return core.Outcome{}, err
	}
	if conflict {
		slog.InfoContext(ctx, "tier name or level taken, update skipped",
			"tier_id", t.ID,
			"name", req.Name,
			"level", req.Level,
		)
		return core.RedirectTo(ListPath), nil
	}

	t.Name = req.Name
	t.Level = req.Level
	t.Description = req.Description

	if err := s.repo.Update(ctx, t); err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			return core.RedirectTo(ListPath), nil
		}
		return core.Outcome{}, err
	}

	s.views.Invalidate(ctx, views.TopicTier, views.Params{views.ParamID: t.ID})
	return core.RedirectTo(ListPath), nil
}

// Delete removes a tier unless a sponsor still references it, in which case
// it is a silent no-op.
func (s *Service) Delete(
	ctx context.Context,
	caller *authz.Caller,
	req DeleteTierRequest,
) (core.Outcome, error) {
	if err := authz.Authorize(caller, authz.ActionManageTiers); err != nil {
		return core.Outcome{}, err
	}

	req.Normalize()
	if err := core.ValidateStruct(s.validator, req); err != nil {
		return core.Outcome{}, fmt.Errorf("delete tier: %w", err)
	}

	if _, err := s.repo.GetByID(ctx, req.ID); err != nil {
		return core.Outcome{}, err
	}

	used, err := s.repo.InUse(ctx, req.ID)
	if err != nil {
		return core.Outcome{}, err
	}
	if used {
		slog.InfoContext(ctx, "tier referenced by sponsors, delete skipped",
			"tier_id", req.ID,
		)
		return core.RedirectTo(ListPath), nil
	}

	if err := s.repo.Delete(ctx, req.ID); err != nil {
		return core.Outcome{}, err
	}

	s.views.Invalidate(ctx, views.TopicTier, views.Params{views.ParamID: req.ID})
	return core.RedirectTo(ListPath), nil
}
