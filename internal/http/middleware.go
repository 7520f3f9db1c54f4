package http

import (
	"net"
	"net/http"
	"strings"

	"github.com/mpdl-apps/cleaning-inventory/internal/auth"
	rl "github.com/mpdl-apps/cleaning-inventory/internal/http/rate_limiter"
)

var authService *auth.Service

// SetAuthService injects the token verifier used by RequireAuth.
func SetAuthService(s *auth.Service) {
	authService = s
}

// RequireAuth guards the destructive endpoints with a bearer token issued
// by POST /login.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			http.Error(w, "missing or invalid token", http.StatusUnauthorized)
			return
		}
		tokenStr := strings.TrimPrefix(header, "Bearer ")
		if _, err := authService.Verify(tokenStr); err != nil {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RateLimit applies the per-IP limiter to mutating routes.
func RateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}
		if !rl.GetVisitor(ip).Allow() {
			http.Error(w, "too many requests", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
