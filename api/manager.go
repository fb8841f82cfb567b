package api

import (
	"stonex_server/api/admin"
	"stonex_server/api/auth"
	"stonex_server/api/catalog"
	"stonex_server/api/contact"
	"stonex_server/api/debug"
	"stonex_server/api/health"
	"stonex_server/api/media"
	"stonex_server/api/middleware"
	"stonex_server/api/web"
	"stonex_server/services"
	"stonex_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type routerManager struct {
	catalogRoutes *catalog.CatalogRoutesManager
	authRoutes    *auth.AuthRoutesManager
	mediaRoutes   *media.MediaRoutesManager
	adminRoutes   *admin.AdminRoutesManager
	contactRoutes *contact.ContactRoutesManager
	healthRoutes  *health.HealthRoutesManager
	debugRoutes   *debug.DebugRoutesManager
	webRoutes     *web.WebRoutesManager
}

func NewRouterManager(
	logger *gecho.Logger,
	cfg *structs.Config,
	sm *services.ServiceManager,
	mw *middleware.Middleware,
) *routerManager {
	return &routerManager{
		catalogRoutes: catalog.NewCatalogRoutesManager(logger, sm.CatalogService, mw),
		authRoutes:    auth.NewAuthRoutesManager(logger, sm.AuthService),
		mediaRoutes:   media.NewMediaRoutesManager(logger, sm.MediaService, mw),
		adminRoutes:   admin.NewAdminRoutesManager(logger, sm.CatalogService, sm.ExportService, mw),
		contactRoutes: contact.NewContactRoutesManager(logger, sm.EmailService),
		healthRoutes:  health.NewHealthRoutesManager(sm.HealthService),
		debugRoutes:   debug.NewDebugRoutesManager(cfg, sm.CacheService),
		webRoutes:     web.NewWebRoutesManager(logger, mw),
	}
}

func (rm *routerManager) RegisterRoutes(r chi.Router) {
	rm.catalogRoutes.RegisterRoutes(r)
	rm.authRoutes.RegisterRoutes(r)
	rm.mediaRoutes.RegisterRoutes(r)
	rm.adminRoutes.RegisterRoutes(r)
	rm.contactRoutes.RegisterRoutes(r)
	rm.healthRoutes.RegisterRoutes(r)
	rm.debugRoutes.RegisterRoutes(r)
	rm.webRoutes.RegisterRoutes(r)
}
