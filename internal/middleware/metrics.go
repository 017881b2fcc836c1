// AngelaMos | 2026
// metrics.go

package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

type HTTPObserver interface {
	ObserveHTTP(method, route string, status int, elapsed time.Duration)
}

// Metrics reports each request under its chi route pattern so path
// parameters do not explode label cardinality.
func Metrics(observer HTTPObserver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := wrapWriter(w)

			next.ServeHTTP(rec, r)

			route := "unmatched"
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if pattern := rctx.RoutePattern(); pattern != "" {
					route = pattern
				}
			}

			observer.ObserveHTTP(r.Method, route, rec.Status(), time.Since(start))
		})
	}
}
