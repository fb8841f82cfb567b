package contact

import (
	"net/http"
	"stonex_server/handling"
	"stonex_server/lib"
	"stonex_server/structs"
	"strings"

	"github.com/MonkyMars/gecho"
)

func (cr *ContactRoutesManager) SubmitInquiry(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractBody[structs.ContactRequest](r)
	if err != nil {
		handling.HandleBadBody(err, "Please check your details and try again", cr.logger, w)
		return
	}

	body.Name = strings.TrimSpace(body.Name)
	body.Email = strings.TrimSpace(body.Email)
	body.Message = strings.TrimSpace(body.Message)

	if err := lib.Validate(body); err != nil {
		handling.HandleBadBody(err, "Please check your details and try again", cr.logger, w)
		return
	}

	id, err := cr.emailService.SubmitInquiry(body)
	if err != nil {
		handling.HandleError(err, "Unable to send your inquiry. Please try again", cr.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Thank you for your inquiry! We will contact you soon."),
		gecho.WithData(map[string]any{"id": id}),
		gecho.Send(),
	)
}
