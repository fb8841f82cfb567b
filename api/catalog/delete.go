package catalog

import (
	"errors"
	"net/http"
	"stonex_server/handling"
	"stonex_server/lib"
	"stonex_server/structs"

	"github.com/MonkyMars/gecho"
)

func (crm *CatalogRoutesManager) Delete(f flavour) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := lib.ExtractBody[structs.CatalogDeleteRequest](r)
		if err != nil {
			handling.HandleBadBody(err, f.missingIDMsg, crm.logger, w)
			return
		}

		removed, err := crm.catalogService.Delete(r.Context(), body.ID)
		switch {
		case errors.Is(err, lib.ErrMissingFields):
			gecho.BadRequest(w, gecho.WithMessage(f.missingIDMsg), gecho.Send())
			return
		case errors.Is(err, lib.ErrNotFound):
			gecho.NotFound(w, gecho.WithMessage(f.notFoundMsg), gecho.Send())
			return
		case err != nil:
			handling.HandleError(err, "Unable to delete item. Please try again", crm.logger, w)
			return
		}

		data := map[string]any{f.deletedKey: removed}
		if f.deleteOK {
			data["ok"] = true
		}
		respond(w, f.deletedMsg, data)
	}
}
