package services

import (
	"stonex_server/store"
	"stonex_server/structs"

	"github.com/MonkyMars/gecho"
)

type ServiceManager struct {
	AuthService    *AuthService
	CatalogService *CatalogService
	MediaService   *MediaService
	CacheService   *CacheService
	EmailService   *EmailService
	ExportService  *ExportService
	HealthService  *HealthService
}

func NewServiceManager(logger *gecho.Logger, cfg *structs.Config, st store.Store) *ServiceManager {
	authService := NewAuthService(cfg, logger)
	cacheService := NewCacheService(logger, cfg)
	mediaService := NewMediaService(logger, cfg)
	catalogService := NewCatalogService(logger, cfg, st, cacheService, mediaService)
	emailService := NewEmailService(logger, cfg)
	exportService := NewExportService(logger, catalogService)
	healthService := NewHealthService(logger, cfg.Catalog.Driver, st, cacheService)

	return &ServiceManager{
		AuthService:    authService,
		CatalogService: catalogService,
		MediaService:   mediaService,
		CacheService:   cacheService,
		EmailService:   emailService,
		ExportService:  exportService,
		HealthService:  healthService,
	}
}
