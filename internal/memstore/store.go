// AngelaMos | 2026
// store.go

// Package memstore keeps every write-side repository in process memory. It
// backs the service and router tests and mirrors the SQL repositories'
// contracts, including guarded writes and unique pairs.
package memstore

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/carterperez-dev/templates/sponsor-backend/internal/authz"
	"github.com/carterperez-dev/templates/sponsor-backend/internal/core"
	"github.com/carterperez-dev/templates/sponsor-backend/internal/event"
	"github.com/carterperez-dev/templates/sponsor-backend/internal/eventsponsor"
	"github.com/carterperez-dev/templates/sponsor-backend/internal/profile"
	"github.com/carterperez-dev/templates/sponsor-backend/internal/sponsor"
	"github.com/carterperez-dev/templates/sponsor-backend/internal/tier"
)

type Store struct {
	mu       sync.RWMutex
	now      func() time.Time
	tiers    map[string]tier.Tier
	sponsors map[string]sponsor.Sponsor
	events   map[string]event.Event
	links    map[pair]eventsponsor.Link
	profiles map[string]profile.Profile
}

type pair struct {
	eventID   string
	sponsorID string
}

func New() *Store {
	return &Store{
		now:      time.Now,
		tiers:    make(map[string]tier.Tier),
		sponsors: make(map[string]sponsor.Sponsor),
		events:   make(map[string]event.Event),
		links:    make(map[pair]eventsponsor.Link),
		profiles: make(map[string]profile.Profile),
	}
}

func (s *Store) Tiers() tier.Repository { return tierRepo{s} }
func (s *Store) Sponsors() sponsor.Repository { return sponsorRepo{s} }
func (s *Store) Events() event.Repository { return eventRepo{s} }
func (s *Store) EventSponsors() eventsponsor.Repository { return linkRepo{s} }
func (s *Store) Profiles() profile.Repository { return profileRepo{s} }

// SeedProfile inserts or replaces a profile row.
func (s *Store) SeedProfile(p profile.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.CreatedAt.IsZero() {
		p.CreatedAt = s.now()
	}
	p.UpdatedAt = p.CreatedAt
	s.profiles[p.UserID] = p
}

func (s *Store) Profile(userID string) (profile.Profile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.profiles[userID]
	return p, ok
}

func (s *Store) TierCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tiers)
}

func (s *Store) SponsorCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sponsors)
}

func (s *Store) EventCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.events)
}

func (s *Store) LinkCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.links)
}

// EventsByTitle returns every event whose title equals title exactly.
func (s *Store) EventsByTitle(title string) []event.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []event.Event
	for _, e := range s.events {
		if e.Title == title {
			out = append(out, e)
		}
	}
	return out
}

func (s *Store) TierByName(name string) (tier.Tier, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.tiers {
		if t.Name == name {
			return t, true
		}
	}
	return tier.Tier{}, false
}

func (s *Store) SponsorByName(name string) (sponsor.Sponsor, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, sp := range s.sponsors {
		if sp.Name == name {
			return sp, true
		}
	}
	return sponsor.Sponsor{}, false
}

func notFound(op string) error {
	return fmt.Errorf("%s: %w", op, core.ErrNotFound)
}

type tierRepo struct{ s *Store }

func (r tierRepo) GetByID(_ context.Context, id string) (*tier.Tier, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	t, ok := r.s.tiers[id]
	if !ok {
		return nil, notFound("get tier")
	}
	return &t, nil
}

func (r tierRepo) ConflictExists(
	_ context.Context,
	name string,
	level int,
	excludeID string,
) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for id, t := range r.s.tiers {
		if id == excludeID {
			continue
		}
		if t.Name == name || t.Level == level {
			return true, nil
		}
	}
	return false, nil
}

func (r tierRepo) Create(ctx context.Context, t *tier.Tier) error {
	if clash, _ := r.ConflictExists(ctx, t.Name, t.Level, ""); clash {
		return fmt.Errorf("create tier: %w", core.ErrDuplicateKey)
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	t.CreatedAt = r.s.now()
	r.s.tiers[t.ID] = *t
	return nil
}

func (r tierRepo) Update(ctx context.Context, t *tier.Tier) error {
	if clash, _ := r.ConflictExists(ctx, t.Name, t.Level, t.ID); clash {
		return fmt.Errorf("update tier: %w", core.ErrDuplicateKey)
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.tiers[t.ID]; !ok {
		return notFound("update tier")
	}
	r.s.tiers[t.ID] = *t
	return nil
}

func (r tierRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.tiers[id]; !ok {
		return notFound("delete tier")
	}
	delete(r.s.tiers, id)
	return nil
}

func (r tierRepo) InUse(_ context.Context, id string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, sp := range r.s.sponsors {
		if sp.TierID == id {
			return true, nil
		}
	}
	return false, nil
}

type sponsorRepo struct{ s *Store }

func (r sponsorRepo) GetByID(_ context.Context, id string) (*sponsor.Sponsor, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	sp, ok := r.s.sponsors[id]
	if !ok {
		return nil, notFound("get sponsor")
	}
	return &sp, nil
}

func (r sponsorRepo) TierExists(_ context.Context, tierID string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	_, ok := r.s.tiers[tierID]
	return ok, nil
}

func (r sponsorRepo) Create(_ context.Context, sp *sponsor.Sponsor) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	now := r.s.now()
	sp.CreatedAt = now
	sp.UpdatedAt = now
	r.s.sponsors[sp.ID] = *sp
	return nil
}

func (r sponsorRepo) Update(_ context.Context, sp *sponsor.Sponsor) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.sponsors[sp.ID]; !ok {
		return notFound("update sponsor")
	}
	sp.UpdatedAt = r.s.now()
	r.s.sponsors[sp.ID] = *sp
	return nil
}

func (r sponsorRepo) SetDocumentURL(
	_ context.Context,
	id string,
	kind sponsor.DocumentKind,
	url string,
) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	sp, ok := r.s.sponsors[id]
	if !ok {
		return notFound("set sponsor document")
	}

	switch kind {
	case sponsor.DocumentLogo:
		sp.LogoURL = &url
	case sponsor.DocumentAgreement:
		sp.SponsorshipAgreementURL = &url
	case sponsor.DocumentReceipt:
		sp.ReceiptURL = &url
	default:
		return fmt.Errorf("set sponsor document %q: %w", kind, core.ErrInvalidInput)
	}

	sp.UpdatedAt = r.s.now()
	r.s.sponsors[id] = sp
	return nil
}

type eventRepo struct{ s *Store }

func (r eventRepo) GetByID(_ context.Context, id string) (*event.Event, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	e, ok := r.s.events[id]
	if !ok {
		return nil, notFound("get event")
	}
	return &e, nil
}

func (r eventRepo) Create(_ context.Context, e *event.Event) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	e.CreatedAt = r.s.now()
	r.s.events[e.ID] = *e
	return nil
}

func (r eventRepo) Update(_ context.Context, e *event.Event) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.events[e.ID]; !ok {
		return notFound("update event")
	}
	r.s.events[e.ID] = *e
	return nil
}

type linkRepo struct{ s *Store }

func (r linkRepo) EventExists(_ context.Context, eventID string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	_, ok := r.s.events[eventID]
	return ok, nil
}

func (r linkRepo) SponsorExists(_ context.Context, sponsorID string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	_, ok := r.s.sponsors[sponsorID]
	return ok, nil
}

func (r linkRepo) LinkExists(_ context.Context, eventID, sponsorID string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	_, ok := r.s.links[pair{eventID, sponsorID}]
	return ok, nil
}

func (r linkRepo) Insert(_ context.Context, link *eventsponsor.Link) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	key := pair{link.EventID, link.SponsorID}
	if _, ok := r.s.links[key]; ok {
		return nil
	}

	link.CreatedAt = r.s.now()
	r.s.links[key] = *link
	return nil
}

func (r linkRepo) Delete(_ context.Context, eventID, sponsorID string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	key := pair{eventID, sponsorID}
	if _, ok := r.s.links[key]; !ok {
		return 0, nil
	}
	delete(r.s.links, key)
	return 1, nil
}

type profileRepo struct{ s *Store }

func (r profileRepo) GetByID(_ context.Context, userID string) (*profile.Profile, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.profiles[userID]
	if !ok {
		return nil, notFound("get profile")
	}
	return &p, nil
}

func (r profileRepo) FindMatching(
	_ context.Context,
	userID string,
	cond profile.Precondition,
) (*profile.Profile, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.profiles[userID]
	if !ok || !cond.Matches(&p) {
		return nil, fmt.Errorf("find profile: %w", core.ErrPrecondition)
	}
	return &p, nil
}

// guarded applies fn only when the stored profile satisfies cond, the same
// contract as a conditional UPDATE.
func (r profileRepo) guarded(
	op, userID string,
	cond profile.Precondition,
	fn func(p *profile.Profile) bool,
) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.profiles[userID]
	if !ok || !cond.Matches(&p) {
		return fmt.Errorf("%s: %w", op, core.ErrPrecondition)
	}

	if keep := fn(&p); !keep {
		delete(r.s.profiles, userID)
		return nil
	}

	p.UpdatedAt = r.s.now()
	r.s.profiles[userID] = p
	return nil
}

func (r profileRepo) Approve(_ context.Context, userID string) error {
	return r.guarded("approve profile", userID, profile.Precondition{Approved: false},
		func(p *profile.Profile) bool {
			p.IsApproved = true
			return true
		})
}

func (r profileRepo) DeletePending(_ context.Context, userID string) error {
	return r.guarded("delete pending profile", userID, profile.Precondition{Approved: false},
		func(*profile.Profile) bool { return false })
}

func (r profileRepo) ChangeRole(
	_ context.Context,
	userID string,
	from, to authz.Role,
) error {
	return r.guarded("change role", userID, profile.Precondition{Approved: true, Role: from},
		func(p *profile.Profile) bool {
			p.Role = to
			return true
		})
}

func (r profileRepo) UpdateOwn(
	_ context.Context,
	userID string,
	fullName *string,
	email string,
) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.profiles[userID]
	if !ok {
		return notFound("update own profile")
	}

	p.FullName = fullName
	p.Email = email
	p.UpdatedAt = r.s.now()
	r.s.profiles[userID] = p
	return nil
}
