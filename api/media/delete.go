package media

import (
	"net/http"
	"stonex_server/lib"
	"stonex_server/services"
	"stonex_server/structs"

	"github.com/MonkyMars/gecho"
)

func (mr *MediaRoutesManager) Delete(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractBody[structs.DestroyRequest](r)
	if err != nil || body.PublicID == "" {
		gecho.BadRequest(w, gecho.WithMessage("Public ID is required"), gecho.Send())
		return
	}

	result, err := mr.mediaService.Destroy(r.Context(), body.PublicID)
	if err != nil {
		if upstream, ok := services.IsUpstreamError(err); ok {
			mr.logger.Warn("Media host rejected deletion", gecho.Field("public_id", body.PublicID), gecho.Field("status", upstream.Status))
			gecho.BadRequest(w,
				gecho.WithMessage("Failed to delete image from Cloudinary"),
				gecho.WithData(map[string]any{"details": upstream.Body}),
				gecho.Send(),
			)
			return
		}

		mr.logger.Error("Media deletion failed", gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("Internal server error during deletion"),
			gecho.WithData(map[string]any{"details": err.Error()}),
			gecho.Send(),
		)
		return
	}

	if result.Skipped {
		gecho.Success(w,
			gecho.WithMessage("Cloudinary not configured for deletion"),
			gecho.WithData(map[string]any{"success": true}),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Image deleted successfully"),
		gecho.WithData(map[string]any{"success": true, "result": result.Result}),
		gecho.Send(),
	)
}
