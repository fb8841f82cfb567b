package middleware

import (
	"net/http"
	"stonex_server/lib"
	"strings"

	"github.com/MonkyMars/gecho"
)

// RequireAdmin rejects requests without a valid admin session cookie
func (mw *Middleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		value, err := lib.GetCookieValue(lib.AdminCookieName, r)
		if err != nil || !mw.authService.ValidSession(value) {
			mw.logger.Warn("Rejected unauthenticated admin request",
				gecho.Field("method", r.Method),
				gecho.Field("path", r.URL.Path),
			)
			gecho.Unauthorized(w, gecho.WithMessage("Unauthorized"), gecho.Send())
			return
		}

		next.ServeHTTP(w, r)
	})
}

// AdminPageGate redirects admin sub pages to the login page when the session
// cookie is absent. Only presence is checked; API routes validate the value.
func (mw *Middleware) AdminPageGate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/admin/") && strings.TrimSuffix(r.URL.Path, "/") != "/admin" {
			if _, err := r.Cookie(lib.AdminCookieName); err != nil {
				http.Redirect(w, r, "/admin", http.StatusTemporaryRedirect)
				return
			}
		}

		next.ServeHTTP(w, r)
	})
}
