package debug

import (
	"net/http"

	"github.com/MonkyMars/gecho"
)

func (drm *DebugRoutesManager) ClearCache(w http.ResponseWriter, r *http.Request) {
	drm.cacheService.InvalidateCatalog(r.Context())

	gecho.Success(w,
		gecho.WithMessage("Catalog cache cleared"),
		gecho.WithData(drm.cacheService.GetConnectionStats()),
		gecho.Send(),
	)
}
