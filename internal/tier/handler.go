// AngelaMos | 2026
// handler.go

package tier

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
	r.Post("/manage/tiers/create", h.Create)
	r.Post("/manage/tiers/update", h.Update)
	r.Post("/manage/tiers/delete", h.Delete)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	req := CreateTierRequest{
		Name:        r.FormValue("name"),
		Level:       core.FormInt(r, "level"),
		Description: core.StringPtr(r.FormValue("description")),
	}

	out, err := h.service.Create(r.Context(), middleware.GetCaller(r.Context()), req)
	core.Finish(w, r, h.recorder, "tier.create", out, err)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	req := UpdateTierRequest{
		ID:          r.FormValue("id"),
		Name:        r.FormValue("name"),
		Level:       core.FormInt(r, "level"),
		Description: core.StringPtr(r.FormValue("description")),
	}

	out, err := h.service.Update(r.Context(), middleware.GetCaller(r.Context()), req)
	core.Finish(w, r, h.recorder, "tier.update", out, err)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	req := DeleteTierRequest{ID: r.FormValue("id")}

	out, err := h.service.Delete(r.Context(), middleware.GetCaller(r.Context()), req)
	core.Finish(w, r, h.recorder, "tier.delete", out, err)
}
