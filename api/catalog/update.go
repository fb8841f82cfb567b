package catalog

import (
	"errors"
	"net/http"
	"stonex_server/handling"
	"stonex_server/lib"
	"stonex_server/structs"

	"github.com/MonkyMars/gecho"
)

func (crm *CatalogRoutesManager) Update(f flavour) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := lib.ExtractAndValidateBody[structs.CatalogItem](r)
		if err != nil {
			handling.HandleBadBody(err, "Invalid request body", crm.logger, w)
			return
		}

		item, err := crm.catalogService.Update(r.Context(), *body)
		switch {
		case errors.Is(err, lib.ErrNotFound):
			gecho.NotFound(w, gecho.WithMessage(f.notFoundMsg), gecho.Send())
			return
		case errors.Is(err, lib.ErrFeaturedLimit):
			crm.logger.Warn("Rejected featured flag over limit", gecho.Field("id", body.ID))
			gecho.BadRequest(w, gecho.WithMessage(featuredLimitMessage(crm.catalogService.FeaturedLimit())), gecho.Send())
			return
		case err != nil:
			handling.HandleError(err, "Unable to update item. Please try again", crm.logger, w)
			return
		}

		respond(w, f.updatedMsg, map[string]any{f.itemKey: item})
	}
}
