package catalog

import (
	"stonex_server/api/middleware"
	"stonex_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

// flavour holds the envelope differences between the two catalog endpoints
type flavour struct {
	listKey       string
	itemKey       string
	deletedKey    string
	deleteOK      bool
	createdMsg    string
	updatedMsg    string
	deletedMsg    string
	notFoundMsg   string
	missingIDMsg  string
	missingMsg    string
	createOptions services.CreateOptions
}

var granite = flavour{
	listKey:      "items",
	itemKey:      "item",
	deletedKey:   "item",
	deleteOK:     true,
	notFoundMsg:  "Not found",
	missingIDMsg: "ID is required",
	missingMsg:   "Missing fields",
}

var marbles = flavour{
	listKey:      "marbles",
	itemKey:      "marble",
	deletedKey:   "deletedMarble",
	createdMsg:   "Marble created successfully",
	updatedMsg:   "Marble updated successfully",
	deletedMsg:   "Marble deleted successfully",
	notFoundMsg:  "Marble not found",
	missingIDMsg: "Marble ID is required",
	missingMsg:   "Missing required fields",
	createOptions: services.CreateOptions{
		RequireSpecifications: true,
		KeepClientID:          true,
	},
}

type CatalogRoutesManager struct {
	logger         *gecho.Logger
	catalogService *services.CatalogService
	mw             *middleware.Middleware
}

func NewCatalogRoutesManager(
	logger *gecho.Logger,
	catalogService *services.CatalogService,
	mw *middleware.Middleware,
) *CatalogRoutesManager {
	return &CatalogRoutesManager{
		logger:         logger,
		catalogService: catalogService,
		mw:             mw,
	}
}

func (crm *CatalogRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/api/granite", func(r chi.Router) {
		crm.register(r, granite)
	})

	r.Route("/api/marbles", func(r chi.Router) {
		r.Get("/featured", crm.ListFeatured)
		r.Get("/{id}", crm.GetMarble)
		crm.register(r, marbles)
	})
}

func (crm *CatalogRoutesManager) register(r chi.Router, f flavour) {
	r.Get("/", crm.List(f))

	r.Group(func(r chi.Router) {
		r.Use(crm.mw.RequireAdmin)
		r.Post("/", crm.Create(f))
		r.Put("/", crm.Update(f))
		r.Delete("/", crm.Delete(f))
	})
}
