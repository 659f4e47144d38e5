package httpx

import (
	"net/http"
	"slices"
	"strings"
)

// RequireAnyScope allows the request through when the caller holds at least
// one of the given scopes. Must run after AuthnMiddleware.
func RequireAnyScope(required ...string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			have := scopesFromCtx(r.Context())

			for _, s := range required {
				if slices.Contains(have, s) {
					next.ServeHTTP(w, r)
					return
				}
			}

			forbidden(w, required)
		})
	}
}

// forbidden writes an RFC 6750 insufficient_scope challenge plus the
// service's JSON error shape.
func forbidden(w http.ResponseWriter, required []string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="insufficient_scope", scope="`+strings.Join(required, " ")+`"`)
	WriteJSON(w, http.StatusForbidden, map[string]string{
		"message": "Insufficient permissions",
	})
}
