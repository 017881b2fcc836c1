// AngelaMos | 2026
// handler.go

package views

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/carterperez-dev/templates/sponsor-backend/internal/authz"
	"github.com/carterperez-dev/templates/sponsor-backend/internal/core"
	"github.com/carterperez-dev/templates/sponsor-backend/internal/middleware"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type viewFunc func(ctx context.Context, caller *authz.Caller) ([]byte, error)

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get(RouteDashboard, h.render("dashboard", h.service.Dashboard))
	r.Get(RouteProfile, h.render("profile", h.service.Profile))
	r.Get(RouteSponsors, h.Sponsors)
	r.Get(RouteSponsorsTiers, h.render("sponsors", h.service.SponsorsByTier))
	r.Get(RouteSponsor+"/{id}", h.Sponsor)
	r.Get(RouteEvents, h.render("events", h.service.Events))
	r.Get(RouteEventsSponsors, h.render("events", h.service.EventsWithSponsors))
	r.Get(RouteEvent+"/{id}", h.Event)
	r.Get(RouteManageTiers, h.render("tiers", h.service.ManageTiers))
	r.Get(RouteManageLinks, h.render("event sponsors", h.service.ManageLinks))
	r.Get(RouteManageApprovals, h.render("users", h.service.Approvals))
	r.Get(RouteManageRoles, h.render("users", h.service.Roles))
}

func (h *Handler) render(resource string, view viewFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, err := view(r.Context(), middleware.GetCaller(r.Context()))
		if err != nil {
			core.ViewError(w, resource, err)
			return
		}
		core.RawOK(w, payload)
	}
}

func (h *Handler) Sponsors(w http.ResponseWriter, r *http.Request) {
	filter := ParseSponsorFilter(r.URL.Query())

	payload, err := h.service.Sponsors(r.Context(), middleware.GetCaller(r.Context()), filter)
	if err != nil {
		core.ViewError(w, "sponsors", err)
		return
	}
	core.RawOK(w, payload)
}

func (h *Handler) Sponsor(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	payload, err := h.service.Sponsor(r.Context(), middleware.GetCaller(r.Context()), id)
	if err != nil {
		core.ViewError(w, "sponsor", err)
		return
	}
	core.RawOK(w, payload)
}

func (h *Handler) Event(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	payload, err := h.service.Event(r.Context(), middleware.GetCaller(r.Context()), id)
	if err != nil {
		core.ViewError(w, "event", err)
		return
	}
	core.RawOK(w, payload)
}
