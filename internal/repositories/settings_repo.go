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

// settingsRowID pins the email settings to a single row.
const settingsRowID = 1

type SettingsRepository struct {
	DB *sql.DB
}

func (r SettingsRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// Get returns the live settings record. A NotFoundError means no
// settings have been configured yet, which is a valid state.
func (r SettingsRepository) Get(ctx context.Context) (models.EmailSettings, error) {
	var s models.EmailSettings
	err := r.db().QueryRowContext(ctx, `
		SELECT COALESCE(smtp_host,''),
		       COALESCE(smtp_port,0),
		       COALESCE(smtp_username,''),
		       COALESCE(smtp_password,''),
		       COALESCE(from_email,''),
		       COALESCE(from_name,''),
		       updated_at
		FROM email_settings
		WHERE id = ? LIMIT 1`, settingsRowID).Scan(
		&s.SMTPHost,
		&s.SMTPPort,
		&s.SMTPUsername,
		&s.SMTPPassword,
		&s.FromEmail,
		&s.FromName,
		&s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return s, domain.NotFoundError{Resource: "email settings"}
		}
		return s, domain.PersistenceError{Op: "get email settings", Err: err}
	}
	return s, nil
}

// Upsert replaces the singleton record.
func (r SettingsRepository) Upsert(ctx context.Context, s models.EmailSettings) (models.EmailSettings, error) {
	s.UpdatedAt = utils.NowUTC()
	_, err := r.db().ExecContext(ctx, `
		INSERT INTO email_settings
			(id, smtp_host, smtp_port, smtp_username, smtp_password, from_email, from_name, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			smtp_host = VALUES(smtp_host),
			smtp_port = VALUES(smtp_port),
			smtp_username = VALUES(smtp_username),
			smtp_password = VALUES(smtp_password),
			from_email = VALUES(from_email),
			from_name = VALUES(from_name),
			updated_at = VALUES(updated_at)`,
		settingsRowID, s.SMTPHost, s.SMTPPort, s.SMTPUsername, s.SMTPPassword,
		s.FromEmail, s.FromName, s.UpdatedAt,
	)
	if err != nil {
		return s, domain.PersistenceError{Op: "upsert email settings", Err: err}
	}
	return s, nil
}
