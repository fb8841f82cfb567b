package web

import (
	"io/fs"
	"net/http"
	"stonex_server/api/middleware"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type WebRoutesManager struct {
	logger *gecho.Logger
	mw     *middleware.Middleware
	dist   fs.FS
}

func NewWebRoutesManager(logger *gecho.Logger, mw *middleware.Middleware) *WebRoutesManager {
	dist, err := fs.Sub(AdminFS, "dist")
	if err != nil {
		logger.Fatal("Admin shell assets missing", gecho.Field("error", err))
	}

	return &WebRoutesManager{
		logger: logger,
		mw:     mw,
		dist:   dist,
	}
}

func (wr *WebRoutesManager) RegisterRoutes(r chi.Router) {
	// assets stay outside the gate so the login page can load them
	r.Get("/static/*", http.StripPrefix("/static/", http.FileServerFS(wr.dist)).ServeHTTP)

	r.Group(func(r chi.Router) {
		r.Use(wr.mw.AdminPageGate)
		r.Get("/admin", wr.ServeShell)
		r.Get("/admin/*", wr.ServeShell)
	})
}

// ServeShell serves the single page admin shell for /admin and every client side route below it
func (wr *WebRoutesManager) ServeShell(w http.ResponseWriter, r *http.Request) {
	page, err := fs.ReadFile(wr.dist, "index.html")
	if err != nil {
		wr.logger.Error("Failed to read admin shell", gecho.Field("error", err))
		gecho.InternalServerError(w, gecho.Send())
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.Write(page)
}
