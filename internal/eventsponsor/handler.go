// AngelaMos | 2026
// handler.go

package eventsponsor

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/carterperez-dev/templates/sponsor-backend/internal/core"
	"github.com/carterperez-dev/templates/sponsor-backend/internal/middleware"
)

type Handler struct {
	service  *Service
	recorder core.ActionRecorder
}

func NewHandler(service *Service, recorder core.ActionRecorder) *Handler {
	return &Handler{service: service, recorder: recorder}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/manage/event-sponsors/assign", h.Assign)
	r.Post("/manage/event-sponsors/remove", h.Remove)
}

func linkFromForm(r *http.Request) LinkRequest {
	return LinkRequest{
		EventID:   r.FormValue("event_id"),
		SponsorID: r.FormValue("sponsor_id"),
	}
}

func (h *Handler) Assign(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.Assign(
		r.Context(),
		middleware.GetCaller(r.Context()),
		linkFromForm(r),
	)
	core.Finish(w, r, h.recorder, "event_sponsor.assign", out, err)
}

func (h *Handler) Remove(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.Remove(
		r.Context(),
		middleware.GetCaller(r.Context()),
		linkFromForm(r),
	)
	core.Finish(w, r, h.recorder, "event_sponsor.remove", out, err)
}
