package auth

import (
	"net/http"
	"stonex_server/lib"

	"github.com/MonkyMars/gecho"
)

func (ar *AuthRoutesManager) HandleLogout(w http.ResponseWriter, r *http.Request) {
	lib.ClearCookie(lib.AdminCookieName, ar.authService.CookieOptions(), w)

	gecho.Success(w,
		gecho.WithMessage("Logged out successfully"),
		gecho.WithData(map[string]any{"ok": true}),
		gecho.Send(),
	)
}
