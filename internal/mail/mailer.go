// Package mail contains the outbound email transports. The dispatcher
// renders a message and hands it to one Mailer together with the
// admin-configured settings; which driver runs is a deployment choice.
package mail

import (
	"context"

	"go.uber.org/zap"

	"coursepay/internal/domain/models"
)

// Message is a fully rendered email ready for transport.
type Message struct {
	To      string
	ToName  string
	Subject string
	HTML    string
	Text    string
}

// Mailer sends one rendered message using the current settings record.
type Mailer interface {
	Send(ctx context.Context, settings models.EmailSettings, msg Message) error
}

// LogMailer only logs the message. Default for development and for
// deployments that have not wired a real transport yet.
type LogMailer struct {
	Log *zap.Logger
}

func (m LogMailer) Send(ctx context.Context, settings models.EmailSettings, msg Message) error {
	log := m.Log
	if log == nil {
		log = zap.NewNop()
	}
	log.Info("email send simulated",
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject),
		zap.String("smtp_host", settings.SMTPHost),
	)
	return nil
}
