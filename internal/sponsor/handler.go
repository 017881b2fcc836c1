// AngelaMos | 2026
// handler.go

package sponsor

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/carterperez-dev/templates/sponsor-backend/internal/core"
	"github.com/carterperez-dev/templates/sponsor-backend/internal/middleware"
)

type Handler struct {
	service        *Service
	recorder       core.ActionRecorder
	maxUploadBytes int64
}

func NewHandler(
	service *Service,
	recorder core.ActionRecorder,
	maxUploadBytes int64,
) *Handler {
	return &Handler{
		service:        service,
		recorder:       recorder,
		maxUploadBytes: maxUploadBytes,
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/sponsors/add", h.Create)
	r.Post("/sponsors/edit", h.Update)
	r.Post("/sponsors/documents", h.UploadDocument)
}

func fieldsFromForm(r *http.Request) SponsorFields {
	return SponsorFields{
		Name:                    r.FormValue("name"),
		TierID:                  r.FormValue("tier_id"),
		ContactName:             core.StringPtr(r.FormValue("contact_name")),
		ContactEmail:            core.StringPtr(r.FormValue("contact_email")),
		ContactPhone:            core.StringPtr(r.FormValue("contact_phone")),
		Address:                 core.StringPtr(r.FormValue("address")),
		LogoURL:                 core.StringPtr(r.FormValue("logo_url")),
		SponsorshipAgreementURL: core.StringPtr(r.FormValue("sponsorship_agreement_url")),
		ReceiptURL:              core.StringPtr(r.FormValue("receipt_url")),
		Fulfilled:               core.FormBool(r, "fulfilled"),
	}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	req := CreateSponsorRequest{SponsorFields: fieldsFromForm(r)}

	out, err := h.service.Create(r.Context(), middleware.GetCaller(r.Context()), req)
	core.Finish(w, r, h.recorder, "sponsor.create", out, err)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	req := UpdateSponsorRequest{
		ID:            r.FormValue("id"),
		SponsorFields: fieldsFromForm(r),
	}

	out, err := h.service.Update(r.Context(), middleware.GetCaller(r.Context()), req)
	core.Finish(w, r, h.recorder, "sponsor.update", out, err)
}

func (h *Handler) UploadDocument(w http.ResponseWriter, r *http.Request) {
	const action = "sponsor.upload_document"

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes+1<<20)
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		core.Finish(w, r, h.recorder, action, core.Outcome{},
			fmt.Errorf("parse upload: %v: %w", err, core.ErrInvalidInput))
		return
	}
	defer r.MultipartForm.RemoveAll() //nolint:errcheck // temp file cleanup

	file, header, err := r.FormFile("file")
	if err != nil {
		core.Finish(w, r, h.recorder, action, core.Outcome{},
			fmt.Errorf("read upload: %v: %w", err, core.ErrInvalidInput))
		return
	}
	defer file.Close() //nolint:errcheck // read-only

	if header.Size > h.maxUploadBytes {
		core.Finish(w, r, h.recorder, action, core.Outcome{},
			fmt.Errorf("upload too large: %w", core.ErrInvalidInput))
		return
	}

	req := UploadDocumentRequest{
		SponsorID:   r.FormValue("id"),
		Kind:        DocumentKind(r.FormValue("kind")),
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        file,
	}

	out, err := h.service.UploadDocument(r.Context(), middleware.GetCaller(r.Context()), req)
	core.Finish(w, r, h.recorder, action, out, err)
}
