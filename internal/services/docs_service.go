package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/phpdave11/gofpdf"

	"coursepay/internal/domain/models"
	"coursepay/internal/repositories"
	"coursepay/internal/utils"
)

// DocsService renders a printable confirmation sheet for one record.
type DocsService struct {
	Confirmations repositories.ConfirmationRepository
	Loader        func(ctx context.Context, id string) (models.PaymentConfirmation, error)
}

func (s DocsService) ConfirmationSheet(ctx context.Context, id string) ([]byte, string, error) {
	rec, err := s.load(ctx, id)
	if err != nil {
		return nil, "", err
	}
	return buildConfirmationPDF(rec)
}

func (s DocsService) load(ctx context.Context, id string) (models.PaymentConfirmation, error) {
	if s.Loader != nil {
		return s.Loader(ctx, id)
	}
	return s.Confirmations.GetByID(ctx, id)
}

func buildConfirmationPDF(rec models.PaymentConfirmation) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Payment Confirmation", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "PAYMENT CONFIRMATION")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Confirmation ID : %s", rec.ID),
		fmt.Sprintf("Name            : %s", safe(rec.Name, "-")),
		fmt.Sprintf("Phone           : %s", safe(rec.Phone, "-")),
		fmt.Sprintf("Email           : %s", safe(rec.Email, "-")),
		fmt.Sprintf("Courses         : %s", safe(rec.Courses, "-")),
		fmt.Sprintf("Receipt No      : %s", safe(rec.ReceiptNumber, "-")),
		fmt.Sprintf("Amount          : %s", utils.FormatUSD(rec.PaymentAmount)),
		fmt.Sprintf("Status          : %s", strings.ToUpper(safe(rec.Status, "-"))),
		fmt.Sprintf("Submitted       : %s", utils.FormatDateTime(rec.CreatedAt)),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	if rec.Notes != "" {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 7, "Reviewer notes:")
		pdf.Ln(7)
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, rec.Notes, "", "", false)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "This sheet summarizes a submitted payment confirmation. The attached receipt file remains the document of record.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	name := rec.ReceiptNumber
	if name == "" {
		name = rec.ID
	}
	filename := fmt.Sprintf("CONFIRMATION_%s.pdf", safeFilenamePart(name))
	return buf.Bytes(), filename, nil
}

func safe(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

func safeFilenamePart(s string) string {
	return utils.SanitizeFilename(strings.ReplaceAll(s, " ", "_"))
}
