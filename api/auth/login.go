package auth

import (
	"net/http"
	"stonex_server/lib"
	"stonex_server/structs"

	"github.com/MonkyMars/gecho"
)

func (ar *AuthRoutesManager) HandleLogin(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractBody[structs.LoginRequest](r)
	if err != nil || body.Password == "" {
		ar.logger.Warn("Login without password")
		gecho.BadRequest(w, gecho.WithMessage("Missing password"), gecho.Send())
		return
	}

	if !ar.authService.VerifyPassword(body.Password) {
		ar.logger.Warn("Admin login failed")
		gecho.Unauthorized(w, gecho.WithMessage("Invalid password"), gecho.Send())
		return
	}

	session, err := ar.authService.IssueSession()
	if err != nil {
		ar.logger.Error("Failed to issue admin session", gecho.Field("error", err))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to complete login. Please try again"), gecho.Send())
		return
	}

	lib.SetCookie(lib.AdminCookieName, session, ar.authService.SessionTTL(), ar.authService.CookieOptions(), w)

	ar.logger.Info("Admin logged in")
	gecho.Success(w,
		gecho.WithMessage("Login successful"),
		gecho.WithData(map[string]any{"ok": true}),
		gecho.Send(),
	)
}
