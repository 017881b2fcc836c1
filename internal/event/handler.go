// AngelaMos | 2026
// handler.go

package event

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
	r.Post("/events/add", h.Create)
	r.Post("/events/edit", h.Update)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	req := CreateEventRequest{
		Title:   r.FormValue("title"),
		Date:    r.FormValue("date"),
		Details: core.StringPtr(r.FormValue("details")),
	}

	out, err := h.service.Create(r.Context(), middleware.GetCaller(r.Context()), req)
	core.Finish(w, r, h.recorder, "event.create", out, err)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	req := UpdateEventRequest{
		ID:      r.FormValue("id"),
		Title:   r.FormValue("title"),
		Date:    r.FormValue("date"),
		Details: core.StringPtr(r.FormValue("details")),
	}

	out, err := h.service.Update(r.Context(), middleware.GetCaller(r.Context()), req)
	core.Finish(w, r, h.recorder, "event.update", out, err)
}
