package repositories

import (
	"context"
	"database/sql"
	"errors"

	intconfig "coursepay/internal/config"
	"coursepay/internal/domain"
	"coursepay/internal/domain/models"
	"coursepay/internal/utils"
)

type ConfirmationRepository struct {
	DB *sql.DB
}

func (r ConfirmationRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const confirmationColumns = `id,
       COALESCE(name,''),
       COALESCE(phone,''),
       COALESCE(email,''),
       COALESCE(courses,''),
       COALESCE(receipt_number,''),
       COALESCE(payment_amount,0),
       COALESCE(receipt_file_url,''),
       COALESCE(status,'pending'),
       COALESCE(notes,''),
       created_at,
       updated_at`

// Insert stores a new confirmation. Timestamps are assigned here so the
// returned struct matches what was written.
func (r ConfirmationRepository) Insert(ctx context.Context, rec *models.PaymentConfirmation) error {
	now := utils.NowUTC()
	rec.Status = models.StatusPending
	rec.CreatedAt = now
	rec.UpdatedAt = now

	_, err := r.db().ExecContext(ctx, `
		INSERT INTO payment_confirmations
			(id, name, phone, email, courses, receipt_number, payment_amount, receipt_file_url, status, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, NULL, ?, ?)`,
		rec.ID, rec.Name, rec.Phone, rec.Email, rec.Courses,
		rec.ReceiptNumber, rec.PaymentAmount, rec.ReceiptFileURL,
		rec.Status, rec.CreatedAt, rec.UpdatedAt,
	)
	if err != nil {
		return domain.PersistenceError{Op: "insert confirmation", Err: err}
	}
	return nil
}

// List returns every confirmation, newest first.
func (r ConfirmationRepository) List(ctx context.Context) ([]models.PaymentConfirmation, error) {
	rows, err := r.db().QueryContext(ctx, `
		SELECT `+confirmationColumns+`
		FROM payment_confirmations
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, domain.PersistenceError{Op: "list confirmations", Err: err}
	}
	defer rows.Close()

	out := []models.PaymentConfirmation{}
	for rows.Next() {
		var rec models.PaymentConfirmation
		if err := scanConfirmation(rows, &rec); err != nil {
			return nil, domain.PersistenceError{Op: "scan confirmation", Err: err}
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.PersistenceError{Op: "list confirmations", Err: err}
	}
	return out, nil
}

func (r ConfirmationRepository) GetByID(ctx context.Context, id string) (models.PaymentConfirmation, error) {
	var rec models.PaymentConfirmation
	row := r.db().QueryRowContext(ctx, `
		SELECT `+confirmationColumns+`
		FROM payment_confirmations
		WHERE id = ? LIMIT 1`, id)
	if err := scanConfirmation(row, &rec); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return rec, domain.NotFoundError{Resource: "payment confirmation"}
		}
		return rec, domain.PersistenceError{Op: "get confirmation", Err: err}
	}
	return rec, nil
}

// UpdateStatus sets the review outcome and notes, bumping updated_at.
// Concurrent updates to the same id are last-write-wins.
func (r ConfirmationRepository) UpdateStatus(ctx context.Context, id, status, notes string) (models.PaymentConfirmation, error) {
	rec, err := r.GetByID(ctx, id)
	if err != nil {
		return rec, err
	}

	now := utils.NowUTC()
	_, err = r.db().ExecContext(ctx, `
		UPDATE payment_confirmations
		SET status = ?, notes = ?, updated_at = ?
		WHERE id = ?`,
		status, nullIfEmpty(notes), now, id)
	if err != nil {
		return rec, domain.PersistenceError{Op: "update confirmation", Err: err}
	}

	rec.Status = status
	rec.Notes = notes
	rec.UpdatedAt = now
	return rec, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanConfirmation(row rowScanner, rec *models.PaymentConfirmation) error {
	return row.Scan(
		&rec.ID,
		&rec.Name,
		&rec.Phone,
		&rec.Email,
		&rec.Courses,
		&rec.ReceiptNumber,
		&rec.PaymentAmount,
		&rec.ReceiptFileURL,
		&rec.Status,
		&rec.Notes,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
}

// nullIfEmpty helps store optional strings without writing empty text.
func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
