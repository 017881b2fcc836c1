// AngelaMos | 2026
// handler.go

package profile

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
	r.Post("/profile/edit", h.UpdateOwn)

	r.Post("/manage/user-approvals/approve", h.Approve)
	r.Post("/manage/user-approvals/reject", h.Reject)
	r.Post("/manage/user-roles/promote", h.Promote)
	r.Post("/manage/user-roles/demote", h.Demote)
}

func targetFromForm(r *http.Request) TargetRequest {
	return TargetRequest{UserID: r.FormValue("user_id")}
}

func (h *Handler) Approve(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.Approve(r.Context(), middleware.GetCaller(r.Context()), targetFromForm(r))
	core.Finish(w, r, h.recorder, "user.approve", out, err)
}

func (h *Handler) Reject(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.Reject(r.Context(), middleware.GetCaller(r.Context()), targetFromForm(r))
	core.Finish(w, r, h.recorder, "user.reject", out, err)
}

func (h *Handler) Promote(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.Promote(r.Context(), middleware.GetCaller(r.Context()), targetFromForm(r))
	core.Finish(w, r, h.recorder, "user.promote", out, err)
}

func (h *Handler) Demote(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.Demote(r.Context(), middleware.GetCaller(r.Context()), targetFromForm(r))
	core.Finish(w, r, h.recorder, "user.demote", out, err)
}

func (h *Handler) UpdateOwn(w http.ResponseWriter, r *http.Request) {
	req := UpdateOwnRequest{
		FullName: core.StringPtr(r.FormValue("full_name")),
		Email:    r.FormValue("email"),
	}

	out, err := h.service.UpdateOwn(r.Context(), middleware.GetCaller(r.Context()), req)
	core.Finish(w, r, h.recorder, "profile.update", out, err)
}
