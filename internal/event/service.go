// AngelaMos | 2026
// service.go

package event

import (
	"context"
	"fmt"

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

func (s *Service) Create(
	ctx context.Context,
	caller *authz.Caller,
	req CreateEventRequest,
) (core.Outcome, error) {
	if err := authz.Authorize(caller, authz.ActionWriteEvent); err != nil {
		return core.Outcome{}, err
	}

	req.Normalize()
	if err := core.ValidateStruct(s.validator, req); err != nil {
		return core.Outcome{}, fmt.Errorf("create event: %w", err)
	}

	date, err := ParseDate(req.Date)
	if err != nil {
		return core.Outcome{}, fmt.Errorf("create event: %w", err)
	}

	e := &Event{
		ID:      uuid.New().String(),
		Title:   req.Title,
		Date:    date,
		Details: req.Details,
	}

	if err := s.repo.Create(ctx, e); err != nil {
		return core.Outcome{}, err
	}

	s.views.Invalidate(ctx, views.TopicEvent, views.Params{views.ParamID: e.ID})
	return core.RedirectTo(ListPath), nil
}

func (s *Service) Update(
	ctx context.Context,
	caller *authz.Caller,
	req UpdateEventRequest,
) (core.Outcome, error) {
	if err := authz.Authorize(caller, authz.ActionWriteEvent); err != nil {
		return core.Outcome{}, err
	}

	req.Normalize()
	if err := core.ValidateStruct(s.validator, req); err != nil {
		return core.Outcome{}, fmt.Errorf("update event: %w", err)
	}

	date, err := ParseDate(req.Date)
	if err != nil {
		return core.Outcome{}, fmt.Errorf("update event: %w", err)
	}

	e, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return core.Outcome{}, err
	}

	e.Title = req.Title
	e.Date = date
	e.Details = req.Details

	if err := s.repo.Update(ctx, e); err != nil {
		return core.Outcome{}, err
	}

	s.views.Invalidate(ctx, views.TopicEvent, views.Params{views.ParamID: e.ID})
	return core.RedirectTo(DetailPath(e.ID)), nil
}
