// AngelaMos | 2026
// auth.go

package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/carterperez-dev/templates/sponsor-backend/internal/authz"
	"github.com/carterperez-dev/templates/sponsor-backend/internal/core"
	"github.com/carterperez-dev/templates/sponsor-backend/internal/identity"
)

const (
	IdentityKey contextKey = "identity"
	CallerKey   contextKey = "caller"
)

type SessionVerifier interface {
	Verify(ctx context.Context, token string) (*identity.Identity, error)
}

// ProfileLoader returns the authorization snapshot for a user, or nil with
// no error when the user has no profile row.
type ProfileLoader interface {
	Snapshot(ctx context.Context, userID string) (*authz.Snapshot, error)
}

// Authenticator resolves the session cookie or bearer token to an identity.
// Requests without a valid session are sent to the login page.
func Authenticator(
	verifier SessionVerifier,
	cookieName string,
) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := ExtractToken(r, cookieName)
			if token == "" {
				http.Redirect(w, r, core.LoginPath, http.StatusSeeOther)
				return
			}

			id, err := verifier.Verify(r.Context(), token)
			if err != nil {
				slog.DebugContext(r.Context(), "session rejected", "error", err)
				http.Redirect(w, r, core.LoginPath, http.StatusSeeOther)
				return
			}

			ctx := context.WithValue(r.Context(), IdentityKey, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// LoadCaller fetches the caller's profile exactly once per request and
// stores the resulting authz.Caller in the context.
func LoadCaller(loader ProfileLoader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := GetIdentity(r.Context())
			if id == nil {
				http.Redirect(w, r, core.LoginPath, http.StatusSeeOther)
				return
			}

			snapshot, err := loader.Snapshot(r.Context(), id.UserID)
			if err != nil {
				slog.ErrorContext(r.Context(), "load caller profile",
					"user_id", id.UserID,
					"error", err,
				)
				http.Redirect(w, r, core.ErrorPath, http.StatusSeeOther)
				return
			}

			caller := &authz.Caller{
				UserID:  id.UserID,
				Email:   id.Email,
				Profile: snapshot,
			}

			ctx := context.WithValue(r.Context(), CallerKey, caller)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Require gates a route group on a permission table action.
func Require(action authz.Action) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := authz.Authorize(GetCaller(r.Context()), action); err != nil {
				http.Redirect(w, r, core.FailureLocation(err), http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func ExtractToken(r *http.Request, cookieName string) string {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return strings.TrimSpace(parts[1])
		}
	}

	if cookieName == "" {
		return ""
	}

	cookie, err := r.Cookie(cookieName)
	if err != nil {
		return ""
	}

	return strings.TrimSpace(cookie.Value)
}

func GetIdentity(ctx context.Context) *identity.Identity {
	if id, ok := ctx.Value(IdentityKey).(*identity.Identity); ok {
		return id
	}
	return nil
}

func GetCaller(ctx context.Context) *authz.Caller {
	if caller, ok := ctx.Value(CallerKey).(*authz.Caller); ok {
		return caller
	}
	return nil
}

func GetUserID(ctx context.Context) string {
	if id := GetIdentity(ctx); id != nil {
		return id.UserID
	}
	return ""
}

func WithCaller(ctx context.Context, caller *authz.Caller) context.Context {
	return context.WithValue(ctx, CallerKey, caller)
}
