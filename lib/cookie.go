package lib

import (
	"net/http"
	"time"
)

// AdminCookieName holds the admin session
const AdminCookieName = "bd_admin"

type CookieOptions struct {
	Secure bool
	Domain string
}

// SetCookie sets an HttpOnly, SameSite=Lax cookie living for ttl
func SetCookie(key, val string, ttl time.Duration, opts CookieOptions, w http.ResponseWriter) {
	cookie := &http.Cookie{
		Name:     key,
		Value:    val,
		Expires:  time.Now().Add(ttl),
		MaxAge:   int(ttl.Seconds()),
		Path:     "/",
		Domain:   opts.Domain,
		Secure:   opts.Secure,
		SameSite: http.SameSiteLaxMode,
		HttpOnly: true,
	}

	http.SetCookie(w, cookie)
}

func GetCookieValue(key string, r *http.Request) (string, error) {
	cookie, err := r.Cookie(key)
	if err != nil {
		return "", err
	}
	return cookie.Value, nil
}

// ClearCookie removes the cookie from the browser
func ClearCookie(key string, opts CookieOptions, w http.ResponseWriter) {
	cookie := &http.Cookie{
		Name:     key,
		Value:    "",
		Path:     "/",
		Domain:   opts.Domain,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		Secure:   opts.Secure,
		SameSite: http.SameSiteLaxMode,
		HttpOnly: true,
	}

	http.SetCookie(w, cookie)
}
