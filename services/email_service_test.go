package services

import (
	"errors"
	"stonex_server/structs"
	"testing"

	"github.com/google/uuid"
	"github.com/resend/resend-go/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func inquiry() *structs.ContactRequest {
	return &structs.ContactRequest{
		Name:    "Asha <b>",
		Email:   "asha@example.com",
		Stone:   "Blue Pearl",
		Message: "Need a quote\nfor 3 slabs",
	}
}

func TestSubmitInquiryWithoutMail(t *testing.T) {
	es := NewEmailService(testLogger(), testConfig())
	assert.False(t, es.Enabled())

	id, err := es.SubmitInquiry(inquiry())
	require.NoError(t, err)
	_, err = uuid.Parse(id)
	assert.NoError(t, err)
}

func TestSubmitInquirySendsMail(t *testing.T) {
	cfg := testConfig()
	cfg.Email.Inbox = "sales@example.com"
	es := NewEmailService(testLogger(), cfg)

	var sent *resend.SendEmailRequest
	es.send = func(params *resend.SendEmailRequest) error {
		sent = params
		return nil
	}

	id, err := es.SubmitInquiry(inquiry())
	require.NoError(t, err)
	require.NotNil(t, sent)
	assert.Equal(t, []string{"sales@example.com"}, sent.To)
	assert.Equal(t, "New inquiry from Asha <b> about Blue Pearl", sent.Subject)
	assert.Contains(t, sent.Html, "Asha &lt;b&gt;")
	assert.Contains(t, sent.Html, "Need a quote<br>for 3 slabs")
	assert.Contains(t, sent.Html, id)
}

func TestSubmitInquiryMailFailure(t *testing.T) {
	cfg := testConfig()
	cfg.Email.Inbox = "sales@example.com"
	es := NewEmailService(testLogger(), cfg)
	es.send = func(params *resend.SendEmailRequest) error {
		return errors.New("resend unavailable")
	}

	_, err := es.SubmitInquiry(inquiry())
	assert.Error(t, err)
}
