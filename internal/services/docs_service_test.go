package services

import (
	"bytes"
	"context"
	"testing"
	"time"

	"coursepay/internal/domain"
	"coursepay/internal/domain/models"
)

func TestConfirmationSheet(t *testing.T) {
	rec := models.PaymentConfirmation{
		ID:            "abc-123",
		Name:          "Jane Doe",
		Phone:         "5551234567",
		Email:         "jane@x.com",
		Courses:       "React Basics, Go 101",
		ReceiptNumber: "R 2026/07",
		PaymentAmount: 49.99,
		Status:        models.StatusVerified,
		Notes:         "checked against the bank statement",
		CreatedAt:     time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC),
	}

	svc := DocsService{
		Loader: func(ctx context.Context, id string) (models.PaymentConfirmation, error) {
			if id != rec.ID {
				t.Fatalf("loader asked for %q", id)
			}
			return rec, nil
		},
	}

	data, filename, err := svc.ConfirmationSheet(context.Background(), rec.ID)
	if err != nil {
		t.Fatalf("sheet error: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("empty PDF output")
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("output does not start with a PDF header: %q", data[:8])
	}
	if filename != "CONFIRMATION_R_2026_07.pdf" {
		t.Fatalf("filename = %q", filename)
	}
}

func TestConfirmationSheetNotFound(t *testing.T) {
	svc := DocsService{
		Loader: func(ctx context.Context, id string) (models.PaymentConfirmation, error) {
			return models.PaymentConfirmation{}, domain.NotFoundError{Resource: "payment confirmation"}
		},
	}

	_, _, err := svc.ConfirmationSheet(context.Background(), "missing")
	if !domain.IsNotFound(err) {
		t.Fatalf("err = %v, want not found", err)
	}
}
