package mail

import (
	"context"
	"fmt"

	gomail "gopkg.in/gomail.v2"

	"coursepay/internal/domain/models"
)

// SMTPMailer delivers through the host/port/credentials stored in the
// email settings record.
type SMTPMailer struct{}

func (SMTPMailer) Send(ctx context.Context, settings models.EmailSettings, msg Message) error {
	if settings.SMTPHost == "" {
		return fmt.Errorf("smtp host not configured")
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", settings.FromEmail, settings.FromName)
	m.SetAddressHeader("To", msg.To, msg.ToName)
	m.SetHeader("Subject", msg.Subject)
	if msg.Text != "" {
		m.SetBody("text/plain", msg.Text)
		m.AddAlternative("text/html", msg.HTML)
	} else {
		m.SetBody("text/html", msg.HTML)
	}

	dialer := gomail.NewDialer(settings.SMTPHost, settings.SMTPPort, settings.SMTPUsername, settings.SMTPPassword)

	// gomail has no context support; run the dial in a goroutine so a
	// cancelled dispatch does not hang the caller.
	done := make(chan error, 1)
	go func() { done <- dialer.DialAndSend(m) }()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("smtp send: %w", err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
