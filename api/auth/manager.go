package auth

import (
	"stonex_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type AuthRoutesManager struct {
	logger      *gecho.Logger
	authService *services.AuthService
}

func NewAuthRoutesManager(logger *gecho.Logger, authService *services.AuthService) *AuthRoutesManager {
	return &AuthRoutesManager{
		logger:      logger,
		authService: authService,
	}
}

func (ar *AuthRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/login", ar.HandleLogin)
		r.Post("/logout", ar.HandleLogout)
		r.Get("/session", ar.HandleSession)
	})
}
