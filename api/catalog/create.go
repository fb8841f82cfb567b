package catalog

import (
	"errors"
	"net/http"
	"stonex_server/handling"
	"stonex_server/lib"
	"stonex_server/structs"

	"github.com/MonkyMars/gecho"
)

func (crm *CatalogRoutesManager) Create(f flavour) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := lib.ExtractAndValidateBody[structs.CatalogItemRequest](r)
		if err != nil {
			handling.HandleBadBody(err, f.missingMsg, crm.logger, w)
			return
		}

		item, err := crm.catalogService.Create(r.Context(), body, f.createOptions)
		switch {
		case errors.Is(err, lib.ErrMissingFields):
			gecho.BadRequest(w, gecho.WithMessage(f.missingMsg), gecho.Send())
			return
		case errors.Is(err, lib.ErrFeaturedLimit):
			gecho.BadRequest(w, gecho.WithMessage(featuredLimitMessage(crm.catalogService.FeaturedLimit())), gecho.Send())
			return
		case err != nil:
			handling.HandleError(err, "Unable to create item. Please try again", crm.logger, w)
			return
		}

		respond(w, f.createdMsg, map[string]any{f.itemKey: item})
	}
}
