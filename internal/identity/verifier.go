// AngelaMos | 2026
// verifier.go

package identity

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/lestrrat-go/jwx/v3/jwk"
	"github.com/lestrrat-go/jwx/v3/jws"
	"github.com/lestrrat-go/jwx/v3/jwt"
	"golang.org/x/sync/singleflight"

	"github.com/carterperez-dev/templates/sponsor-backend/internal/config"
	"github.com/carterperez-dev/templates/sponsor-backend/internal/core"
)

// Identity is the verified subject of a session issued by the hosted auth
// backend.
type Identity struct {
	UserID string
	Email  string
}

type KeySource interface {
	Keys(ctx context.Context) (jwk.Set, error)
}

type Verifier struct {
	keys       KeySource
	requireKid bool
	issuer     string
	audience   string
}

func NewVerifier(cfg config.IdentityConfig) (*Verifier, error) {
	if cfg.PublicKeyPath != "" {
		pem, err := os.ReadFile(cfg.PublicKeyPath)
		if err != nil {
			return nil, fmt.Errorf("read public key: %w", err)
		}

		key, err := jwk.ParseKey(pem, jwk.WithPEM(true))
		if err != nil {
			return nil, fmt.Errorf("parse public key: %w", err)
		}

		set := jwk.NewSet()
		if err := set.AddKey(key); err != nil {
			return nil, fmt.Errorf("add key to set: %w", err)
		}

		v := NewVerifierWithKeys(StaticKeys(set), cfg.Issuer, cfg.Audience)
		v.requireKid = false
		return v, nil
	}

	if cfg.JWKSURL == "" {
		return nil, fmt.Errorf("identity verifier: %w", core.ErrUnconfigured)
	}

	return NewVerifierWithKeys(
		NewRemoteKeys(cfg.JWKSURL, cfg.JWKSRefresh),
		cfg.Issuer,
		cfg.Audience,
	), nil
}

func NewVerifierWithKeys(keys KeySource, issuer, audience string) *Verifier {
	return &Verifier{
		keys:       keys,
		requireKid: true,
		issuer:     issuer,
		audience:   audience,
	}
}

func (v *Verifier) Verify(
	ctx context.Context,
	tokenString string,
) (*Identity, error) {
	set, err := v.keys.Keys(ctx)
	if err != nil {
		return nil, fmt.Errorf("load signing keys: %w", err)
	}

	opts := []jwt.ParseOption{
		jwt.WithKeySet(
			set,
			jws.WithInferAlgorithmFromKey(true),
			jws.WithRequireKid(v.requireKid),
		),
		jwt.WithValidate(true),
		jwt.WithAcceptableSkew(30 * time.Second),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}
	if v.audience != "" {
		opts = append(opts, jwt.WithAudience(v.audience))
	}

	token, err := jwt.Parse([]byte(tokenString), opts...)
	if err != nil {
		if isTokenExpiredError(err) {
			return nil, fmt.Errorf("verify session: %w", core.ErrTokenExpired)
		}
		return nil, fmt.Errorf("verify session: %w", core.ErrTokenInvalid)
	}

	subject, ok := token.Subject()
	if !ok || subject == "" {
		return nil, fmt.Errorf(
			"verify session: missing subject: %w",
			core.ErrTokenInvalid,
		)
	}

	var email string
	//nolint:errcheck // email claim is optional
	_ = token.Get("email", &email)

	return &Identity{UserID: subject, Email: email}, nil
}

func isTokenExpiredError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "exp") &&
		strings.Contains(errStr, "not satisfied")
}

type staticKeys struct {
	set jwk.Set
}

func StaticKeys(set jwk.Set) KeySource {
	return &staticKeys{set: set}
}

func (s *staticKeys) Keys(context.Context) (jwk.Set, error) {
	return s.set, nil
}

// RemoteKeys fetches a JWKS document and reuses it until refresh elapses.
// Once stale, the last good set keeps being served while a single background
// fetch replaces it. Only the first load blocks callers.
type RemoteKeys struct {
	url     string
	refresh time.Duration
	now     func() time.Time
	group   singleflight.Group

	mu        sync.RWMutex
	set       jwk.Set
	fetchedAt time.Time
}

const (
	jwksFetchTimeout = 10 * time.Second
	jwksRetryDelay   = 30 * time.Second
)

func NewRemoteKeys(url string, refresh time.Duration) *RemoteKeys {
	if refresh <= 0 {
		refresh = 15 * time.Minute
	}
	return &RemoteKeys{url: url, refresh: refresh, now: time.Now}
}

func (r *RemoteKeys) Keys(ctx context.Context) (jwk.Set, error) {
	r.mu.RLock()
	set, fetchedAt := r.set, r.fetchedAt
	r.mu.RUnlock()

	if set != nil {
		if r.now().Sub(fetchedAt) >= r.refresh {
			r.group.DoChan(r.url, r.fetch)
		}
		return set, nil
	}

	select {
	case res := <-r.group.DoChan(r.url, r.fetch):
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(jwk.Set), nil
	case <-ctx.Done():
		return nil, fmt.Errorf("fetch jwks: %w", ctx.Err())
	}
}

func (r *RemoteKeys) fetch() (any, error) {
	ctx, cancel := context.WithTimeout(context.Background(), jwksFetchTimeout)
	defer cancel()

	set, err := jwk.Fetch(ctx, r.url)
	if err != nil {
		slog.Warn("jwks refresh failed", "url", r.url, "error", err)

		r.mu.Lock()
		if r.set != nil {
			r.fetchedAt = r.now().Add(min(jwksRetryDelay, r.refresh) - r.refresh)
		}
		r.mu.Unlock()

		return nil, fmt.Errorf("fetch jwks: %w", err)
	}

	r.mu.Lock()
	r.set = set
	r.fetchedAt = r.now()
	r.mu.Unlock()

	return set, nil
}
