package admin

import (
	"stonex_server/api/middleware"
	"stonex_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type AdminRoutesManager struct {
	logger         *gecho.Logger
	catalogService *services.CatalogService
	exportService  *services.ExportService
	mw             *middleware.Middleware
}

func NewAdminRoutesManager(
	logger *gecho.Logger,
	catalogService *services.CatalogService,
	exportService *services.ExportService,
	mw *middleware.Middleware,
) *AdminRoutesManager {
	return &AdminRoutesManager{
		logger:         logger,
		catalogService: catalogService,
		exportService:  exportService,
		mw:             mw,
	}
}

func (ar *AdminRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/api/admin", func(r chi.Router) {
		r.Use(ar.mw.RequireAdmin)
		r.Post("/seed", ar.Seed)
		r.Get("/export", ar.Export)
	})
}
