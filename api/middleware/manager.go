package middleware

import (
	"stonex_server/services"
	"stonex_server/structs"

	"github.com/MonkyMars/gecho"
)

type Middleware struct {
	logger      *gecho.Logger
	cfg         *structs.Config
	authService *services.AuthService
}

func NewMiddleware(cfg *structs.Config, logger *gecho.Logger, authService *services.AuthService) *Middleware {
	return &Middleware{
		logger:      logger,
		cfg:         cfg,
		authService: authService,
	}
}
