// AngelaMos | 2026
// service.go

package eventsponsor

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

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

// Assign links a sponsor to an event. Assigning an existing pair succeeds
// without writing.
func (s *Service) Assign(
	ctx context.Context,
	caller *authz.Caller,
	req LinkRequest,
) (core.Outcome, error) {
	if err := authz.Authorize(caller, authz.ActionManageEventSponsors); err != nil {
		return core.Outcome{}, err
	}

	req.Normalize()
	if err := core.ValidateStruct(s.validator, req); err != nil {
		return core.Outcome{}, fmt.Errorf("assign sponsor: %w", err)
	}

	if err := s.checkReferences(ctx, req); err != nil {
		return core.Outcome{}, err
	}

	linked, err := s.repo.LinkExists(ctx, req.EventID, req.SponsorID)
	if err != nil {
		return core.Outcome{}, err
	}

	if linked {
		slog.InfoContext(ctx, "sponsor already assigned to event",
			"event_id", req.EventID,
			"sponsor_id", req.SponsorID,
		)
	} else {
		link := &Link{
			ID:        uuid.New().String(),
			EventID:   req.EventID,
			SponsorID: req.SponsorID,
		}
		if err := s.repo.Insert(ctx, link); err != nil {
			return core.Outcome{}, err
		}
	}

	s.invalidate(ctx, req)
	return core.RedirectTo(ManagePath), nil
}

// Remove unlinks a sponsor from an event. A missing pair is not an error.
func (s *Service) Remove(
	ctx context.Context,
	caller *authz.Caller,
	req LinkRequest,
) (core.Outcome, error) {
	if err := authz.Authorize(caller, authz.ActionManageEventSponsors); err != nil {
		return core.Outcome{}, err
	}

	req.Normalize()
	if err := core.ValidateStruct(s.validator, req); err != nil {
		return core.Outcome{}, fmt.Errorf("remove sponsor: %w", err)
	}

	if _, err := s.repo.Delete(ctx, req.EventID, req.SponsorID); err != nil {
		return core.Outcome{}, err
	}

	s.invalidate(ctx, req)
	return core.RedirectTo(ManagePath), nil
}

// checkReferences looks up the event and the sponsor concurrently. Any
// failure collapses into a single not-found error.
func (s *Service) checkReferences(ctx context.Context, req LinkRequest) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return requireExists(s.repo.EventExists(gctx, req.EventID))
	})
	g.Go(func() error {
		return requireExists(s.repo.SponsorExists(gctx, req.SponsorID))
	})

	if err := g.Wait(); err != nil {
		slog.InfoContext(ctx, "assign reference check failed",
			"event_id", req.EventID,
			"sponsor_id", req.SponsorID,
			"error", err,
		)
		return fmt.Errorf("assign sponsor: event or sponsor: %w", core.ErrNotFound)
	}

	return nil
}

func requireExists(exists bool, err error) error {
	if err != nil {
		return err
	}
	if !exists {
		return core.ErrNotFound
	}
	return nil
}

func (s *Service) invalidate(ctx context.Context, req LinkRequest) {
	s.views.Invalidate(ctx, views.TopicEventSponsor, views.Params{
		views.ParamEventID:   req.EventID,
		views.ParamSponsorID: req.SponsorID,
	})
}
