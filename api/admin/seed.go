package admin

import (
	"net/http"
	"stonex_server/handling"

	"github.com/MonkyMars/gecho"
)

// Seed replaces the whole catalog with the bundled collection
func (ar *AdminRoutesManager) Seed(w http.ResponseWriter, r *http.Request) {
	count, err := ar.catalogService.Reseed(r.Context())
	if err != nil {
		handling.HandleError(err, "Unable to seed the catalog", ar.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{"ok": true, "count": count}),
		gecho.Send(),
	)
}
