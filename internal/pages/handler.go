// AngelaMos | 2026
// handler.go

package pages

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/carterperez-dev/templates/sponsor-backend/internal/core"
)

const (
	loginText = "You need to sign in to continue. Sign in with your account " +
		"and you will be returned to the platform.\n"
	errorText = "Something went wrong while handling your request. Nothing " +
		"was shown to you that you are not allowed to see. Go back and try again.\n"
	unauthorizedText = "Your account does not have access to this page. " +
		"If you recently signed up, an administrator still needs to approve you.\n"
)

// Handler serves the fixed landing pages that failed actions redirect to,
// plus logout.
type Handler struct {
	cookieName string
	secure     bool
}

func NewHandler(cookieName string, secure bool) *Handler {
	return &Handler{cookieName: cookieName, secure: secure}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get(core.LoginPath, text(loginText))
	r.Get(core.ErrorPath, text(errorText))
	r.Get(core.UnauthorizedPath, text(unauthorizedText))
	r.Post("/logout", h.Logout)
}

func text(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		w.WriteHeader(http.StatusOK)
		//nolint:errcheck // best-effort response write
		_, _ = w.Write([]byte(body))
	}
}

// Logout expires the session cookie. The identity backend owns the session
// itself.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, core.LoginPath, http.StatusSeeOther)
}
