package debug

import (
	"stonex_server/services"
	"stonex_server/structs"

	"github.com/go-chi/chi/v5"
)

type DebugRoutesManager struct {
	cfg          *structs.Config
	cacheService *services.CacheService
}

func NewDebugRoutesManager(cfg *structs.Config, cacheService *services.CacheService) *DebugRoutesManager {
	return &DebugRoutesManager{
		cfg:          cfg,
		cacheService: cacheService,
	}
}

func (drm *DebugRoutesManager) RegisterRoutes(r chi.Router) {
	// Debug routes - only in non-production environments
	if drm.cfg.Server.Environment == "production" {
		return
	}

	r.Route("/api/debug", func(r chi.Router) {
		r.Get("/env", drm.GetEnv)
		r.Post("/cache/clear", drm.ClearCache)
	})
}
