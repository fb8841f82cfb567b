package handling

import (
	"errors"
	"net/http"
	"stonex_server/lib"

	"github.com/MonkyMars/gecho"
)

func HandleError(err error, msg string, logger *gecho.Logger, w http.ResponseWriter) *gecho.Response {
	logger.Error("An error occurred", gecho.Field("error", err), gecho.Field("msg", msg), gecho.WithCallerSkip(3))

	return gecho.InternalServerError(w, gecho.WithMessage(msg), gecho.Send())
}

// HandleBadBody answers a body that failed to decode or validate. Field
// errors are passed back to the client under data.errors.
func HandleBadBody(err error, msg string, logger *gecho.Logger, w http.ResponseWriter) *gecho.Response {
	logger.Warn("Rejected request body", gecho.Field("error", err))

	var ve *lib.ValidationError
	if errors.As(err, &ve) {
		return gecho.BadRequest(w, gecho.WithMessage(msg), gecho.WithData(ve), gecho.Send())
	}
	return gecho.BadRequest(w, gecho.WithMessage(msg), gecho.Send())
}
