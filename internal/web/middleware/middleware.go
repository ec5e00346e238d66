// Package middleware holds the HTTP wrappers shared by the kanafy API
// routes.
package middleware

import (
	"net/http"
	"net/netip"
	"slices"
	"strings"

	"github.com/jusunglee/kanafy/internal/web/respond"
)

type Middleware func(http.Handler) http.Handler

// Chain wraps handler so the first middleware runs first.
func Chain(handler http.Handler, middlewares ...Middleware) http.Handler {
	for _, mw := range slices.Backward(middlewares) {
		handler = mw(handler)
	}
	return handler
}

// CORS answers preflight requests and allows the listed origins. With no
// origins configured every origin is allowed.
func CORS(origins []string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			switch {
			case len(origins) == 0:
				w.Header().Set("Access-Control-Allow-Origin", "*")
			case slices.Contains(origins, origin):
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Add("Vary", "Origin")
			}
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-API-Key")
			w.Header().Set("Access-Control-Expose-Headers", "X-Words-Remaining, Retry-After")
			w.Header().Set("Access-Control-Max-Age", "86400")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// APIKeyAuth rejects requests whose X-API-Key header does not match key.
func APIKeyAuth(key string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch {
			case key == "":
				respond.Error(w, http.StatusInternalServerError, "API key not configured")
			case r.Header.Get("X-API-Key") != key:
				respond.Error(w, http.StatusUnauthorized, "unauthorized")
			default:
				next.ServeHTTP(w, r)
			}
		})
	}
}

// CacheControl sets the Cache-Control header on every response.
func CacheControl(value string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Cache-Control", value)
			next.ServeHTTP(w, r)
		})
	}
}

// ClientIP identifies the caller for quotas and logs. X-Real-IP is trusted
// when it holds an address because the reverse proxy sets it;
// X-Forwarded-For is ignored since clients can forge it.
func ClientIP(r *http.Request) string {
	if addr, err := netip.ParseAddr(strings.TrimSpace(r.Header.Get("X-Real-IP"))); err == nil {
		return addr.Unmap().String()
	}
	if ap, err := netip.ParseAddrPort(r.RemoteAddr); err == nil {
		return ap.Addr().Unmap().String()
	}
	return r.RemoteAddr
}
