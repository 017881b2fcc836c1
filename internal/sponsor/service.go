// AngelaMos | 2026
// service.go

package sponsor

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/carterperez-dev/templates/sponsor-backend/internal/authz"
	"github.com/carterperez-dev/templates/sponsor-backend/internal/core"
	"github.com/carterperez-dev/templates/sponsor-backend/internal/views"
)

// DocumentStore persists an uploaded file and returns its public URL.
type DocumentStore interface {
	Put(
		ctx context.Context,
		key, contentType string,
		body io.Reader,
		size int64,
	) (string, error)
}

type UploadRecorder interface {
	RecordUpload(kind string, err error)
}

type Service struct {
	repo      Repository
	views     views.Invalidator
	documents DocumentStore
	uploads   UploadRecorder
	validator *validator.Validate
}

type ServiceOption func(*Service)

func WithDocumentStore(store DocumentStore, recorder UploadRecorder) ServiceOption {
	return func(s *Service) {
		s.documents = store
		s.uploads = recorder
	}
}

func NewService(
	repo Repository,
	invalidator views.Invalidator,
	opts ...ServiceOption,
) *Service {
	s := &Service{
		repo:      repo,
		views:     invalidator,
		validator: core.NewValidator(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) Create(
	ctx context.Context,
	caller *authz.Caller,
	req CreateSponsorRequest,
) (core.Outcome, error) {
	if err := authz.Authorize(caller, authz.ActionWriteSponsor); err != nil {
		return core.Outcome{}, err
	}

	req.Normalize()
	if err := core.ValidateStruct(s.validator, req); err != nil {
		return core.Outcome{}, fmt.Errorf("create sponsor: %w", err)
	}

	if err := s.requireTier(ctx, req.TierID); err != nil {
		return core.Outcome{}, fmt.Errorf("create sponsor: %w", err)
	}

	sp := &Sponsor{ID: uuid.New().String()}
	req.apply(sp)

	if err := s.repo.Create(ctx, sp); err != nil {
		return core.Outcome{}, err
	}

	s.views.Invalidate(ctx, views.TopicSponsor, views.Params{views.ParamID: sp.ID})
	return core.RedirectTo(ListPath), nil
}

func (s *Service) Update(
	ctx context.Context,
	caller *authz.Caller,
	req UpdateSponsorRequest,
) (core.Outcome, error) {
	if err := authz.Authorize(caller, authz.ActionWriteSponsor); err != nil {
		return core.Outcome{}, err
	}

	req.ID = strings.TrimSpace(req.ID)
	req.Normalize()
	if err := core.ValidateStruct(s.validator, req); err != nil {
		return core.Outcome{}, fmt.Errorf("update sponsor: %w", err)
	}

	if err := s.requireTier(ctx, req.TierID); err != nil {
		return core.Outcome{}, fmt.Errorf("update sponsor: %w", err)
	}

	sp, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return core.Outcome{}, err
	}

	req.apply(sp)

	if err := s.repo.Update(ctx, sp); err != nil {
		return core.Outcome{}, err
	}

	s.views.Invalidate(ctx, views.TopicSponsor, views.Params{views.ParamID: sp.ID})
	return core.RedirectTo(DetailPath(sp.ID)), nil
}

// UploadDocument stores a sponsor file and points the matching URL column
// at it.
func (s *Service) UploadDocument(
	ctx context.Context,
	caller *authz.Caller,
	req UploadDocumentRequest,
) (core.Outcome, error) {
	if err := authz.Authorize(caller, authz.ActionWriteSponsor); err != nil {
		return core.Outcome{}, err
	}

	req.SponsorID = strings.TrimSpace(req.SponsorID)
	if err := core.ValidateStruct(s.validator, req); err != nil {
		return core.Outcome{}, fmt.Errorf("upload sponsor document: %w", err)
	}

	if s.documents == nil {
		return core.Outcome{}, fmt.Errorf(
			"upload sponsor document: %w",
			core.ErrUnconfigured,
		)
	}

	contentType, err := DocumentContentType(req.Kind, req.Filename, req.ContentType)
	if err != nil {
		return core.Outcome{}, fmt.Errorf("upload sponsor document: %w", err)
	}

	if _, err := s.repo.GetByID(ctx, req.SponsorID); err != nil {
		return core.Outcome{}, err
	}

	key := documentKey(req.SponsorID, req.Kind, req.Filename)
	url, err := s.documents.Put(ctx, key, contentType, req.Body, req.Size)
	if s.uploads != nil {
		s.uploads.RecordUpload(string(req.Kind), err)
	}
	if err != nil {
		return core.Outcome{}, fmt.Errorf("upload sponsor document: %w", err)
	}

	if err := s.repo.SetDocumentURL(ctx, req.SponsorID, req.Kind, url); err != nil {
		return core.Outcome{}, err
	}

	s.views.Invalidate(ctx, views.TopicSponsor, views.Params{views.ParamID: req.SponsorID})
	return core.RedirectTo(DetailPath(req.SponsorID)), nil
}

func (s *Service) requireTier(ctx context.Context, tierID string) error {
	exists, err := s.repo.TierExists(ctx, tierID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("tier %s: %w", tierID, core.ErrNotFound)
	}
	return nil
}

func documentKey(sponsorID string, kind DocumentKind, filename string) string {
	ext := strings.ToLower(path.Ext(path.Base(filename)))
	return fmt.Sprintf("sponsors/%s/%s/%s%s", sponsorID, kind, uuid.New().String(), ext)
}
