package repositories

import (
	"context"
	"database/sql"
	"errors"

	intconfig "coursepay/internal/config"
	"coursepay/internal/domain"
	"coursepay/internal/domain/models"
)

type AdminRepository struct {
	DB *sql.DB
}

func (r AdminRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// GetByEmail fetches an admin account including the stored bcrypt hash.
// Callers on the login path must fold the NotFoundError into the shared
// invalid-credentials error.
func (r AdminRepository) GetByEmail(ctx context.Context, email string) (models.AdminUser, error) {
	var a models.AdminUser
	err := r.db().QueryRowContext(ctx, `
		SELECT id,
		       COALESCE(email,''),
		       COALESCE(name,''),
		       COALESCE(password_hash,''),
		       created_at
		FROM admin_users
		WHERE email = ? LIMIT 1`, email).Scan(
		&a.ID,
		&a.Email,
		&a.Name,
		&a.PasswordHash,
		&a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return a, domain.NotFoundError{Resource: "admin user"}
		}
		return a, domain.PersistenceError{Op: "get admin user", Err: err}
	}
	return a, nil
}
