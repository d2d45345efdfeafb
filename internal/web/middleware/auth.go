package middleware

import (
	"log/slog"
	"net/http"

	"github.com/JonMunkholm/onboard/internal/core"
)

// unauthorizedBody is the exact response for a missing or wrong admin key.
const unauthorizedBody = `{"error":"unauthorized"}`

// AdminKey returns middleware that requires the X-API-Key header to equal
// secret. Missing and wrong keys get the same 401 response so callers cannot
// tell them apart. An empty secret rejects every request.
func AdminKey(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get("X-API-Key")
			if core.CheckAdminKey(key, secret) != nil {
				reason := "invalid API key"
				if key == "" {
					reason = "missing API key"
				}
				slog.Warn("auth: "+reason,
					"path", r.URL.Path,
					"method", r.Method,
					"ip", ClientIP(r),
				)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(unauthorizedBody))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
