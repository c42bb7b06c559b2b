package services

import (
	"context"
	"fmt"
	"io"
	"math"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"coursepay/internal/domain"
	"coursepay/internal/domain/models"
	"coursepay/internal/repositories"
	"coursepay/internal/storage"
	"coursepay/internal/utils"
)

// Notifier is invoked once per accepted submission, off the request path.
type Notifier interface {
	Dispatch(ctx context.Context, rec models.PaymentConfirmation)
}

// SubmissionInput carries the seven required multipart parts.
type SubmissionInput struct {
	Name          string
	Phone         string
	Email         string
	Courses       string
	ReceiptNumber string
	PaymentAmount string

	File        io.Reader
	Filename    string
	Size        int64
	ContentType string
}

// SubmissionService is the top-level coordinator for one incoming
// submission: blob write, record insert, then best-effort fan-out. The
// record insert is the durability boundary; anything after it cannot
// undo the acceptance.
type SubmissionService struct {
	Repo          repositories.ConfirmationRepository
	Store         storage.ReceiptStore
	Notifier      Notifier
	Log           *zap.Logger
	NotifyTimeout time.Duration
	Clock         func() time.Time
}

// Submit validates and runs the pipeline, returning the created record.
// Validation failures perform no side effects at all.
func (s SubmissionService) Submit(ctx context.Context, in SubmissionInput) (models.PaymentConfirmation, error) {
	amount, err := s.validate(&in)
	if err != nil {
		return models.PaymentConfirmation{}, err
	}

	key := fmt.Sprintf("%d_%s", s.now().UnixMilli(), utils.SanitizeFilename(in.Filename))
	if err := s.Store.Save(ctx, key, in.File, in.Size, in.ContentType); err != nil {
		return models.PaymentConfirmation{}, err
	}

	rec := models.PaymentConfirmation{
		ID:             uuid.NewString(),
		Name:           in.Name,
		Phone:          in.Phone,
		Email:          in.Email,
		Courses:        in.Courses,
		ReceiptNumber:  in.ReceiptNumber,
		PaymentAmount:  amount,
		ReceiptFileURL: s.Store.PublicURL(key),
	}
	if err := s.Repo.Insert(ctx, &rec); err != nil {
		// the blob is orphaned now; acceptable, just leave a trace
		s.logger().Error("confirmation insert failed after blob write",
			zap.String("key", key), zap.Error(err))
		return models.PaymentConfirmation{}, err
	}

	s.dispatch(rec)
	return rec, nil
}

// dispatch launches the notifier without blocking the response. The
// detached context carries its own upper bound so a hung sink cannot
// leak goroutines forever.
func (s SubmissionService) dispatch(rec models.PaymentConfirmation) {
	if s.Notifier == nil {
		return
	}
	timeout := s.NotifyTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		s.Notifier.Dispatch(ctx, rec)
	}()
}

func (s SubmissionService) validate(in *SubmissionInput) (float64, error) {
	in.Name = utils.TrimOrEmpty(in.Name)
	in.Phone = utils.TrimOrEmpty(in.Phone)
	in.Email = utils.TrimOrEmpty(in.Email)
	in.Courses = utils.TrimOrEmpty(in.Courses)
	in.ReceiptNumber = utils.TrimOrEmpty(in.ReceiptNumber)
	in.PaymentAmount = utils.TrimOrEmpty(in.PaymentAmount)

	for _, f := range []struct {
		field, value string
	}{
		{"name", in.Name},
		{"phone", in.Phone},
		{"email", in.Email},
		{"courses", in.Courses},
		{"receiptNumber", in.ReceiptNumber},
		{"paymentAmount", in.PaymentAmount},
	} {
		if f.value == "" {
			return 0, domain.ValidationError{Field: f.field, Msg: "required"}
		}
	}
	if in.File == nil {
		return 0, domain.ValidationError{Field: "receiptFile", Msg: "required"}
	}

	// ParseFloat accepts "NaN" and "Inf" with a nil error
	amount, err := strconv.ParseFloat(in.PaymentAmount, 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return 0, domain.ValidationError{Field: "paymentAmount", Msg: "must be a positive number", Err: err}
	}
	return amount, nil
}

func (s SubmissionService) now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return utils.NowUTC()
}

func (s SubmissionService) logger() *zap.Logger {
	if s.Log != nil {
		return s.Log
	}
	return zap.NewNop()
}
