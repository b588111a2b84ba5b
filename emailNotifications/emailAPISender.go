package emailNotifications

import (
	"context"
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"mentorConnect/model"
)

type Sender interface {
	Send(ctx context.Context, message model.EmailMessage) error
}

type SendGridSender struct {
	client *sendgrid.Client
	from   *mail.Email
}

func NewSendGridSender(apiKey, fromName, fromAddress string) *SendGridSender {
	return &SendGridSender{
		client: sendgrid.NewSendClient(apiKey),
		from:   mail.NewEmail(fromName, fromAddress),
	}
}

func (s *SendGridSender) Send(ctx context.Context, message model.EmailMessage) error {
	to := mail.NewEmail(message.ToName, message.ToEmail)
	email := mail.NewSingleEmail(s.from, message.Subject, to, message.Body, "")

	response, err := s.client.SendWithContext(ctx, email)
	if err != nil {
		log.Printf("SendGridSender: failed to send %q to %s: %v\n", message.Subject, message.ToEmail, err)
		return err
	}
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		log.Printf("SendGridSender: failed to send email. Status: %d\n", response.StatusCode)
		return fmt.Errorf("sendgrid responded with status %d", response.StatusCode)
	}
	log.Printf("Email %q sent successfully to %s\n", message.Subject, message.ToEmail)
	return nil
}

// NoopSender only logs. It is used when no SendGrid key is configured.
type NoopSender struct{}

func (NoopSender) Send(_ context.Context, message model.EmailMessage) error {
	log.Printf("NoopSender: skipping email %q to %s\n", message.Subject, message.ToEmail)
	return nil
}
