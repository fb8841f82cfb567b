package auth

import (
	"net/http"
	"stonex_server/lib"
	"stonex_server/structs"

	"github.com/MonkyMars/gecho"
)

// HandleSession lets the admin shell decide between login form and editor
func (ar *AuthRoutesManager) HandleSession(w http.ResponseWriter, r *http.Request) {
	value, _ := lib.GetCookieValue(lib.AdminCookieName, r)

	gecho.Success(w,
		gecho.WithData(structs.SessionStatus{Authenticated: ar.authService.ValidSession(value)}),
		gecho.Send(),
	)
}
