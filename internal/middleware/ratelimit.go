// AngelaMos | 2026
// ratelimit.go

package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	redis_rate "github.com/go-redis/redis_rate/v10"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	"github.com/carterperez-dev/templates/sponsor-backend/internal/core"
)

const (
	bucketViews   = "views"
	bucketActions = "actions"
)

// RateLimitConfig carries separate budgets for page reads and form actions.
// A zero Actions limit falls back to the Views limit.
type RateLimitConfig struct {
	Views     redis_rate.Limit
	Actions   redis_rate.Limit
	KeyFunc   func(*http.Request) string
	FailOpen  bool
	OnLimited func(*http.Request)
}

type RateLimiter struct {
	limiter  *redis_rate.Limiter
	fallback *localLimiter
	config   RateLimitConfig
}

func NewRateLimiter(rdb *redis.Client, cfg RateLimitConfig) *RateLimiter {
	if cfg.KeyFunc == nil {
		cfg.KeyFunc = KeyByUser
	}
	if cfg.Actions.Rate == 0 {
		cfg.Actions = cfg.Views
	}

	return &RateLimiter{
		limiter:  redis_rate.NewLimiter(rdb),
		fallback: newLocalLimiter(),
		config:   cfg,
	}
}

// Handler limits per key and bucket. Form submissions over the limit land
// on the error page like any other failed action; reads get a 429 body.
func (rl *RateLimiter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limit, bucket := rl.bucketFor(r)
		key := rl.config.KeyFunc(r) + ":" + bucket

		res, err := rl.allow(r.Context(), key, limit)
		if err != nil {
			if rl.config.FailOpen {
				slog.WarnContext(r.Context(), "rate limiter error, failing open",
					"error", err,
					"key", key,
				)
				next.ServeHTTP(w, r)
				return
			}
			http.Redirect(w, r, core.ErrorPath, http.StatusSeeOther)
			return
		}

		setRateLimitHeaders(w, res, limit)

		if res.Allowed == 0 {
			if rl.config.OnLimited != nil {
				rl.config.OnLimited(r)
			}
			writeRateLimitExceeded(w, r, res)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) bucketFor(r *http.Request) (redis_rate.Limit, string) {
	if isAction(r) {
		return rl.config.Actions, bucketActions
	}
	return rl.config.Views, bucketViews
}

func isAction(r *http.Request) bool {
	switch r.Method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return false
	}
	return true
}

func (rl *RateLimiter) allow(
	ctx context.Context,
	key string,
	limit redis_rate.Limit,
) (*redis_rate.Result, error) {
	res, err := rl.limiter.Allow(ctx, key, limit)
	if err != nil {
		slog.DebugContext(ctx, "redis limiter unavailable, using local bucket",
			"error", err,
		)
		return rl.fallback.allow(key, limit)
	}
	return res, nil
}

func KeyByIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		ips := strings.Split(xff, ",")
		return "ratelimit:ip:" + strings.TrimSpace(ips[len(ips)-1])
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		ip = r.RemoteAddr
	}

	return "ratelimit:ip:" + ip
}

// KeyByUser keys on the verified identity when the limiter runs behind the
// authenticator, and on the client address otherwise.
func KeyByUser(r *http.Request) string {
	if userID := GetUserID(r.Context()); userID != "" {
		return "ratelimit:user:" + userID
	}
	return KeyByIP(r)
}

func setRateLimitHeaders(
	w http.ResponseWriter,
	res *redis_rate.Result,
	limit redis_rate.Limit,
) {
	h := w.Header()

	h.Set("X-RateLimit-Limit", strconv.Itoa(limit.Rate))
	h.Set("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))
	h.Set("X-RateLimit-Reset", strconv.FormatInt(
		time.Now().Add(res.ResetAfter).Unix(), 10))
	h.Set("RateLimit-Policy", fmt.Sprintf(`%d;w=%d`, limit.Rate, int(limit.Period.Seconds())))
}

func writeRateLimitExceeded(
	w http.ResponseWriter,
	r *http.Request,
	res *redis_rate.Result,
) {
	retryAfter := max(int(res.RetryAfter.Seconds()), 1)
	w.Header().Set("Retry-After", strconv.Itoa(retryAfter))

	if isAction(r) {
		http.Redirect(w, r, core.ErrorPath, http.StatusSeeOther)
		return
	}

	core.JSONError(w, core.NewAppError(
		nil,
		fmt.Sprintf("Rate limit exceeded. Retry after %d seconds.", retryAfter),
		http.StatusTooManyRequests,
		"RATE_LIMITED",
	))
}

const (
	sweepInterval = 5 * time.Minute
	entryTTL      = 10 * time.Minute
)

type bucketEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// localLimiter is the in-process fallback used while Redis is unreachable.
// Idle buckets are swept lazily on access.
type localLimiter struct {
	mu        sync.Mutex
	buckets   map[string]*bucketEntry
	lastSweep time.Time
	now       func() time.Time
}

func newLocalLimiter() *localLimiter {
	return &localLimiter{
		buckets: make(map[string]*bucketEntry),
		now:     time.Now,
	}
}

func (l *localLimiter) allow(
	key string,
	limit redis_rate.Limit,
) (*redis_rate.Result, error) {
	if limit.Rate <= 0 || limit.Period <= 0 {
		return nil, fmt.Errorf("local limiter: invalid limit %s", limit)
	}

	ratePerSec := float64(limit.Rate) / limit.Period.Seconds()
	now := l.now()

	l.mu.Lock()
	l.sweep(now)
	entry, ok := l.buckets[key]
	if !ok {
		entry = &bucketEntry{
			limiter: rate.NewLimiter(rate.Limit(ratePerSec), max(limit.Burst, 1)),
		}
		l.buckets[key] = entry
	}
	entry.lastSeen = now
	allowed := entry.limiter.AllowN(now, 1)
	remaining := max(int(entry.limiter.TokensAt(now)), 0)
	l.mu.Unlock()

	res := &redis_rate.Result{
		Limit:      limit,
		Remaining:  remaining,
		RetryAfter: -1,
		ResetAfter: time.Duration(float64(time.Second) / ratePerSec),
	}
	if allowed {
		res.Allowed = 1
	} else {
		res.RetryAfter = res.ResetAfter
	}

	return res, nil
}

func (l *localLimiter) sweep(now time.Time) {
	if now.Sub(l.lastSweep) < sweepInterval {
		return
	}
	l.lastSweep = now

	cutoff := now.Add(-entryTTL)
	for key, entry := range l.buckets {
		if entry.lastSeen.Before(cutoff) {
			delete(l.buckets, key)
		}
	}
}

// PerWindow builds a limit over the configured window, defaulting to one
// minute.
func PerWindow(rate, burst int, window time.Duration) redis_rate.Limit {
	if window <= 0 {
		window = time.Minute
	}
	return redis_rate.Limit{
		Rate:   rate,
		Burst:  burst,
		Period: window,
	}
}
