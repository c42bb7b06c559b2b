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

type TemplateRepository struct {
	DB *sql.DB
}

func (r TemplateRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r TemplateRepository) GetByName(ctx context.Context, name string) (models.EmailTemplate, error) {
	var t models.EmailTemplate
	err := r.db().QueryRowContext(ctx, `
		SELECT name,
		       COALESCE(subject,''),
		       COALESCE(html_content,''),
		       COALESCE(text_content,''),
		       updated_at
		FROM email_templates
		WHERE name = ? LIMIT 1`, name).Scan(
		&t.Name,
		&t.Subject,
		&t.HTMLContent,
		&t.TextContent,
		&t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return t, domain.NotFoundError{Resource: "email template"}
		}
		return t, domain.PersistenceError{Op: "get email template", Err: err}
	}
	return t, nil
}

// Upsert inserts or replaces the template keyed by name.
func (r TemplateRepository) Upsert(ctx context.Context, t models.EmailTemplate) (models.EmailTemplate, error) {
	t.UpdatedAt = utils.NowUTC()
	_, err := r.db().ExecContext(ctx, `
		INSERT INTO email_templates
			(name, subject, html_content, text_content, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			subject = VALUES(subject),
			html_content = VALUES(html_content),
			text_content = VALUES(text_content),
			updated_at = VALUES(updated_at)`,
		t.Name, t.Subject, t.HTMLContent, nullIfEmpty(t.TextContent), t.UpdatedAt,
	)
	if err != nil {
		return t, domain.PersistenceError{Op: "upsert email template", Err: err}
	}
	return t, nil
}
