package catalog

import (
	"errors"
	"net/http"
	"stonex_server/handling"
	"stonex_server/lib"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

func (crm *CatalogRoutesManager) List(f flavour) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := crm.catalogService.List(r.Context())
		if err != nil {
			handling.HandleError(err, "Unable to load the catalog", crm.logger, w)
			return
		}

		gecho.Success(w,
			gecho.WithData(map[string]any{f.listKey: items}),
			gecho.Send(),
		)
	}
}

// ListFeatured serves the homepage showcase
func (crm *CatalogRoutesManager) ListFeatured(w http.ResponseWriter, r *http.Request) {
	items, err := crm.catalogService.Featured(r.Context())
	if err != nil {
		handling.HandleError(err, "Unable to load featured marbles", crm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{"marbles": items}),
		gecho.Send(),
	)
}

// GetMarble serves one record with a few related ones for the detail page
func (crm *CatalogRoutesManager) GetMarble(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	item, related, err := crm.catalogService.Get(r.Context(), id)
	if errors.Is(err, lib.ErrNotFound) {
		gecho.NotFound(w, gecho.WithMessage(marbles.notFoundMsg), gecho.Send())
		return
	}
	if err != nil {
		handling.HandleError(err, "Unable to load marble", crm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{"marble": item, "related": related}),
		gecho.Send(),
	)
}
