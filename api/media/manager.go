package media

import (
	"stonex_server/api/middleware"
	"stonex_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

const notConfiguredMessage = "Cloudinary not configured. Set CLOUDINARY_CLOUD_NAME and CLOUDINARY_UPLOAD_PRESET (or NEXT_PUBLIC_ equivalents)."

// maxMemory is the part of a multipart form kept in memory; the rest spills to disk
const maxMemory = 32 << 20

type MediaRoutesManager struct {
	logger       *gecho.Logger
	mediaService *services.MediaService
	mw           *middleware.Middleware
}

func NewMediaRoutesManager(
	logger *gecho.Logger,
	mediaService *services.MediaService,
	mw *middleware.Middleware,
) *MediaRoutesManager {
	return &MediaRoutesManager{
		logger:       logger,
		mediaService: mediaService,
		mw:           mw,
	}
}

func (mr *MediaRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/api/cloudinary", func(r chi.Router) {
		r.Use(mr.mw.RequireAdmin)
		r.Post("/upload", mr.Upload)
		r.Post("/upload-multiple", mr.UploadMultiple)
		r.Post("/delete", mr.Delete)
	})
}
