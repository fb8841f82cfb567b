package catalog

import (
	"fmt"
	"net/http"

	"github.com/MonkyMars/gecho"
)

// respond sends a success envelope, with a message only when one is set
func respond(w http.ResponseWriter, msg string, data map[string]any) {
	if msg == "" {
		gecho.Success(w, gecho.WithData(data), gecho.Send())
		return
	}
	gecho.Success(w, gecho.WithMessage(msg), gecho.WithData(data), gecho.Send())
}

func featuredLimitMessage(limit int) string {
	return fmt.Sprintf("Maximum of %d featured items allowed", limit)
}
