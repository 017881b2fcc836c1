// AngelaMos | 2026
// service.go

package views

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/carterperez-dev/templates/sponsor-backend/internal/authz"
)

// Service composes read projections. Each view is authorized, then served
// from the cache or loaded and stored.
type Service struct {
	repo  Repository
	cache *Cache
	now   func() time.Time
}

func NewService(repo Repository, cache *Cache) *Service {
	return &Service{repo: repo, cache: cache, now: time.Now}
}

func (s *Service) serve(
	ctx context.Context,
	caller *authz.Caller,
	action authz.Action,
	route, field string,
	load func(ctx context.Context) (any, error),
) ([]byte, error) {
	if err := authz.Authorize(caller, action); err != nil {
		return nil, err
	}

	if s.cache != nil {
		if payload, ok := s.cache.Get(ctx, route, field); ok {
			return payload, nil
		}
	}

	data, err := load(ctx)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", route, err)
	}

	if s.cache != nil {
		s.cache.Set(ctx, route, field, payload)
	}

	return payload, nil
}

// Dashboard entries are keyed by day as well as role: the upcoming count
// moves at midnight without any write.
func (s *Service) Dashboard(ctx context.Context, caller *authz.Caller) ([]byte, error) {
	role := caller.Role()
	field := "role=" + string(role) + "&day=" + s.now().Format(time.DateOnly)

	return s.serve(ctx, caller, authz.ActionViewListings, RouteDashboard, field,
		func(ctx context.Context) (any, error) {
			view := Dashboard{
				Role:      role,
				CanManage: authz.Allowed(caller, authz.ActionWriteSponsor),
			}

			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				var err error
				view.Stats, err = s.repo.Stats(gctx)
				return err
			})
			g.Go(func() error {
				var err error
				view.RecentEvents, err = s.repo.RecentEvents(gctx, recentEventsLimit)
				return err
			})
			if err := g.Wait(); err != nil {
				return nil, err
			}

			view.RecentEvents = orEmpty(view.RecentEvents)
			return view, nil
		})
}

func (s *Service) Sponsors(
	ctx context.Context,
	caller *authz.Caller,
	filter SponsorFilter,
) ([]byte, error) {
	return s.serve(ctx, caller, authz.ActionViewListings, RouteSponsors, filter.CacheField(),
		func(ctx context.Context) (any, error) {
			return nonNil(s.repo.ListSponsors(ctx, filter))
		})
}

func (s *Service) SponsorsByTier(ctx context.Context, caller *authz.Caller) ([]byte, error) {
	return s.serve(ctx, caller, authz.ActionViewListings, RouteSponsorsTiers, "all",
		func(ctx context.Context) (any, error) {
			rows, err := s.repo.ListSponsorsByTier(ctx)
			if err != nil {
				return nil, err
			}
			return groupByTier(rows), nil
		})
}

func (s *Service) Sponsor(
	ctx context.Context,
	caller *authz.Caller,
	id string,
) ([]byte, error) {
	return s.serve(ctx, caller, authz.ActionViewListings, RouteSponsor, id,
		func(ctx context.Context) (any, error) {
			sponsor, err := s.repo.GetSponsor(ctx, id)
			if err != nil {
				return nil, err
			}

			events, err := s.repo.EventsForSponsor(ctx, id)
			if err != nil {
				return nil, err
			}

			return SponsorDetail{Sponsor: *sponsor, Events: orEmpty(events)}, nil
		})
}

func (s *Service) Events(ctx context.Context, caller *authz.Caller) ([]byte, error) {
	return s.serve(ctx, caller, authz.ActionViewListings, RouteEvents, "all",
		func(ctx context.Context) (any, error) {
			return nonNil(s.repo.ListEvents(ctx, true))
		})
}

func (s *Service) Event(
	ctx context.Context,
	caller *authz.Caller,
	id string,
) ([]byte, error) {
	return s.serve(ctx, caller, authz.ActionViewListings, RouteEvent, id,
		func(ctx context.Context) (any, error) {
			event, err := s.repo.GetEvent(ctx, id)
			if err != nil {
				return nil, err
			}

			sponsors, err := s.repo.SponsorsForEvent(ctx, id)
			if err != nil {
				return nil, err
			}

			return EventDetail{Event: *event, Sponsors: orEmpty(sponsors)}, nil
		})
}

func (s *Service) EventsWithSponsors(ctx context.Context, caller *authz.Caller) ([]byte, error) {
	return s.serve(ctx, caller, authz.ActionViewListings, RouteEventsSponsors, "all",
		func(ctx context.Context) (any, error) {
			var events []EventRow
			var links []LinkedSponsor

			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				var err error
				events, err = s.repo.ListEvents(gctx, true)
				return err
			})
			g.Go(func() error {
				var err error
				links, err = s.repo.ListLinks(gctx)
				return err
			})
			if err := g.Wait(); err != nil {
				return nil, err
			}

			return attachSponsors(events, links), nil
		})
}

func (s *Service) ManageTiers(ctx context.Context, caller *authz.Caller) ([]byte, error) {
	return s.serve(ctx, caller, authz.ActionManageTiers, RouteManageTiers, "all",
		func(ctx context.Context) (any, error) {
			return nonNil(s.repo.ListTierSummaries(ctx))
		})
}

func (s *Service) ManageLinks(ctx context.Context, caller *authz.Caller) ([]byte, error) {
	return s.serve(ctx, caller, authz.ActionManageEventSponsors, RouteManageLinks, "all",
		func(ctx context.Context) (any, error) {
			var board LinkBoard

			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				var err error
				board.Events, err = s.repo.ListEvents(gctx, false)
				return err
			})
			g.Go(func() error {
				var err error
				board.Sponsors, err = s.repo.ListSponsorOptions(gctx)
				return err
			})
			g.Go(func() error {
				var err error
				board.Links, err = s.repo.ListLinks(gctx)
				return err
			})
			if err := g.Wait(); err != nil {
				return nil, err
			}

			board.Events = orEmpty(board.Events)
			board.Sponsors = orEmpty(board.Sponsors)
			board.Links = orEmpty(board.Links)
			return board, nil
		})
}

func (s *Service) Approvals(ctx context.Context, caller *authz.Caller) ([]byte, error) {
	return s.serve(ctx, caller, authz.ActionReviewSignups, RouteManageApprovals, "all",
		func(ctx context.Context) (any, error) {
			pending, err := s.repo.ListPendingUsers(ctx)
			if err != nil {
				return nil, err
			}

			approved, err := s.repo.CountApprovedUsers(ctx)
			if err != nil {
				return nil, err
			}

			return ApprovalBoard{Pending: orEmpty(pending), ApprovedCount: approved}, nil
		})
}

// Roles lists approved users other than the caller, so the entry is keyed
// per caller.
func (s *Service) Roles(ctx context.Context, caller *authz.Caller) ([]byte, error) {
	field := ""
	if caller != nil {
		field = caller.UserID
	}

	return s.serve(ctx, caller, authz.ActionManageRoles, RouteManageRoles, field,
		func(ctx context.Context) (any, error) {
			return nonNil(s.repo.ListApprovedUsers(ctx, caller.UserID))
		})
}

func (s *Service) Profile(ctx context.Context, caller *authz.Caller) ([]byte, error) {
	field := ""
	if caller != nil {
		field = caller.UserID
	}

	return s.serve(ctx, caller, authz.ActionViewProfile, RouteProfile, field,
		func(ctx context.Context) (any, error) {
			return s.repo.GetUser(ctx, caller.UserID)
		})
}

func groupByTier(rows []SponsorRow) []TierGroup {
	groups := make([]TierGroup, 0)
	index := make(map[string]int)

	for _, row := range rows {
		i, ok := index[row.TierID]
		if !ok {
			i = len(groups)
			index[row.TierID] = i
			groups = append(groups, TierGroup{
				TierID:    row.TierID,
				TierName:  row.TierName,
				TierLevel: row.TierLevel,
				Sponsors:  []SponsorRow{},
			})
		}
		groups[i].Sponsors = append(groups[i].Sponsors, row)
	}

	return groups
}

func attachSponsors(events []EventRow, links []LinkedSponsor) []EventWithSponsors {
	byEvent := make(map[string][]LinkedSponsor, len(events))
	for _, link := range links {
		byEvent[link.EventID] = append(byEvent[link.EventID], link)
	}

	out := make([]EventWithSponsors, 0, len(events))
	for _, event := range events {
		out = append(out, EventWithSponsors{
			Event:    event,
			Sponsors: orEmpty(byEvent[event.ID]),
		})
	}

	return out
}

// orEmpty keeps empty collections encoded as [] rather than null.
func orEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

func nonNil[T any](items []T, err error) (any, error) {
	if err != nil {
		return nil, err
	}
	return orEmpty(items), nil
}
