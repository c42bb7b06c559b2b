package services

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"coursepay/internal/domain"
	"coursepay/internal/domain/models"
	"coursepay/internal/ledger"
	"coursepay/internal/mail"
	"coursepay/internal/repositories"
	"coursepay/internal/template"
	"coursepay/internal/utils"
)

// LedgerAppender is the external spreadsheet-like log.
type LedgerAppender interface {
	Configured() bool
	Append(ctx context.Context, e ledger.Entry) error
}

// NotifierService fans an accepted confirmation out to the two
// best-effort sinks. Neither leg may surface an error to the caller;
// everything is caught and logged here.
type NotifierService struct {
	Settings  repositories.SettingsRepository
	Templates repositories.TemplateRepository
	Mailer    mail.Mailer
	Ledger    LedgerAppender
	Log       *zap.Logger
	Clock     func() time.Time
}

// Dispatch runs both legs. They are independent: a missing template or
// dead SMTP host never blocks the ledger row, and vice versa.
func (s NotifierService) Dispatch(ctx context.Context, rec models.PaymentConfirmation) {
	log := s.logger().With(zap.String("confirmation_id", rec.ID))

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		if err := s.sendAcknowledgment(ctx, rec); err != nil {
			log.Warn("acknowledgment email failed", zap.Error(err))
		}
	}()

	go func() {
		defer wg.Done()
		if err := s.appendLedgerRow(ctx, rec); err != nil {
			log.Warn("ledger append failed", zap.Error(err))
		}
	}()

	wg.Wait()
}

func (s NotifierService) sendAcknowledgment(ctx context.Context, rec models.PaymentConfirmation) error {
	settings, err := s.Settings.Get(ctx)
	if err != nil {
		if domain.IsNotFound(err) {
			// valid state: nothing configured yet, nothing to send
			s.logger().Info("email settings absent, skipping acknowledgment",
				zap.String("confirmation_id", rec.ID))
			return nil
		}
		return err
	}

	tpl, err := s.Templates.GetByName(ctx, models.TemplatePaymentConfirmation)
	if err != nil {
		return err
	}

	rendered := template.Render(template.Template{
		Subject: tpl.Subject,
		HTML:    tpl.HTMLContent,
		Text:    tpl.TextContent,
	}, s.variables(rec))

	msg := mail.Message{
		To:      rec.Email,
		ToName:  rec.Name,
		Subject: rendered.Subject,
		HTML:    rendered.HTML,
		Text:    rendered.Text,
	}
	return s.Mailer.Send(ctx, settings, msg)
}

func (s NotifierService) appendLedgerRow(ctx context.Context, rec models.PaymentConfirmation) error {
	if s.Ledger == nil || !s.Ledger.Configured() {
		s.logger().Debug("ledger webhook not configured, skipping row",
			zap.String("confirmation_id", rec.ID))
		return nil
	}

	now := s.now()
	return s.Ledger.Append(ctx, ledger.Entry{
		Date:          utils.FormatDate(now),
		Time:          utils.FormatClock(now),
		PaymentAmount: utils.FormatUSD(rec.PaymentAmount),
		ReceiptNumber: rec.ReceiptNumber,
		Name:          rec.Name,
		Phone:         rec.Phone,
		Courses:       rec.Courses,
	})
}

// variables builds the placeholder mapping for the acknowledgment template.
func (s NotifierService) variables(rec models.PaymentConfirmation) map[string]string {
	return map[string]string{
		"name":           rec.Name,
		"email":          rec.Email,
		"receiptNumber":  rec.ReceiptNumber,
		"paymentAmount":  utils.FormatMoney(rec.PaymentAmount),
		"courses":        rec.Courses,
		"submissionDate": utils.FormatDate(s.now()),
	}
}

func (s NotifierService) now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return utils.NowUTC()
}

func (s NotifierService) logger() *zap.Logger {
	if s.Log != nil {
		return s.Log
	}
	return zap.NewNop()
}
