package services

import (
	"fmt"
	"html"
	"stonex_server/structs"
	"strings"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
	"github.com/resend/resend-go/v3"
)

type EmailService struct {
	logger *gecho.Logger
	cfg    *structs.EmailConfig
	send   func(params *resend.SendEmailRequest) error
}

func NewEmailService(logger *gecho.Logger, cfg *structs.Config) *EmailService {
	es := &EmailService{
		logger: logger,
		cfg:    cfg.Email,
	}

	if cfg.Email.ApiKey != "" {
		client := resend.NewClient(cfg.Email.ApiKey)
		es.send = func(params *resend.SendEmailRequest) error {
			_, err := client.Emails.Send(params)
			return err
		}
	}
	return es
}

// Enabled reports whether inquiries are delivered by mail
func (es *EmailService) Enabled() bool {
	return es.send != nil && es.cfg.Inbox != ""
}

func (es *EmailService) SendEmail(to []string, subject string, body string) error {
	params := &resend.SendEmailRequest{
		From:    es.cfg.From,
		To:      to,
		Html:    body,
		Subject: subject,
	}

	if err := es.send(params); err != nil {
		es.logger.Error("Failed to send email", gecho.Field("error", err), gecho.Field("to", to))
		return err
	}
	return nil
}

// SubmitInquiry assigns an id to a contact inquiry and mails it to the inbox.
// Without mail configured the inquiry is only logged.
func (es *EmailService) SubmitInquiry(req *structs.ContactRequest) (string, error) {
	id := uuid.NewString()

	if !es.Enabled() {
		es.logger.Info("Contact inquiry received",
			gecho.Field("id", id),
			gecho.Field("name", req.Name),
			gecho.Field("email", req.Email),
			gecho.Field("stone", req.Stone),
		)
		return id, nil
	}

	subject := fmt.Sprintf("New inquiry from %s", req.Name)
	if req.Stone != "" {
		subject = fmt.Sprintf("New inquiry from %s about %s", req.Name, req.Stone)
	}

	if err := es.SendEmail([]string{es.cfg.Inbox}, subject, inquiryBody(id, req)); err != nil {
		return "", fmt.Errorf("failed to deliver inquiry: %w", err)
	}

	es.logger.Info("Contact inquiry delivered", gecho.Field("id", id))
	return id, nil
}

func inquiryBody(id string, req *structs.ContactRequest) string {
	phone := req.Phone
	if phone == "" {
		phone = "-"
	}
	stone := req.Stone
	if stone == "" {
		stone = "-"
	}
	message := strings.ReplaceAll(html.EscapeString(req.Message), "\n", "<br>")

	return fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<head>
			<meta charset="UTF-8">
			<style>
				body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
				.container { max-width: 600px; margin: 0 auto; padding: 20px; }
				.header { background-color: #1f2937; color: white; padding: 20px; }
				.content { padding: 20px; background-color: #f9f9f9; }
				.footer { padding: 20px; color: #666; font-size: 12px; }
			</style>
		</head>
		<body>
			<div class="container">
				<div class="header"><h2>New contact inquiry</h2></div>
				<div class="content">
					<p><strong>Name:</strong> %s</p>
					<p><strong>Email:</strong> %s</p>
					<p><strong>Phone:</strong> %s</p>
					<p><strong>Stone:</strong> %s</p>
					<p><strong>Message:</strong><br>%s</p>
				</div>
				<div class="footer">Inquiry %s</div>
			</div>
		</body>
		</html>`,
		html.EscapeString(req.Name),
		html.EscapeString(req.Email),
		html.EscapeString(phone),
		html.EscapeString(stone),
		message,
		id,
	)
}
