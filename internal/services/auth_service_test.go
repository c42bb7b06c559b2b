package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"coursepay/internal/domain"
	"coursepay/internal/repositories"
)

func adminCols() []string {
	return []string{"id", "email", "name", "password_hash", "created_at"}
}

func hashFor(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	return string(h)
}

func TestLoginIssuesToken(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery("FROM admin_users").
		WithArgs("admin@example.com").
		WillReturnRows(sqlmock.NewRows(adminCols()).
			AddRow("u1", "admin@example.com", "Admin One", hashFor(t, "s3cret"), now))

	secret := []byte("test-secret")
	svc := AuthService{
		Admins: repositories.AdminRepository{DB: db},
		Secret: secret,
		Clock:  func() time.Time { return now },
	}

	res, err := svc.Login(context.Background(), "admin@example.com", "s3cret")
	if err != nil {
		t.Fatalf("login error: %v", err)
	}
	if res.User.ID != "u1" || res.User.Email != "admin@example.com" || res.User.Name != "Admin One" {
		t.Fatalf("unexpected identity: %+v", res.User)
	}

	parsed, err := jwt.Parse(res.Token, func(tok *jwt.Token) (interface{}, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return now }))
	if err != nil || !parsed.Valid {
		t.Fatalf("token does not verify: %v", err)
	}

	claims := parsed.Claims.(jwt.MapClaims)
	if claims["sub"] != "u1" || claims["email"] != "admin@example.com" || claims["name"] != "Admin One" {
		t.Fatalf("unexpected claims: %v", claims)
	}
	exp := int64(claims["exp"].(float64))
	if got := exp - now.Unix(); got != int64((24 * time.Hour).Seconds()) {
		t.Fatalf("token lifetime = %ds", got)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM admin_users").
		WithArgs("admin@example.com").
		WillReturnRows(sqlmock.NewRows(adminCols()).
			AddRow("u1", "admin@example.com", "Admin One", hashFor(t, "s3cret"), time.Now()))

	svc := AuthService{
		Admins: repositories.AdminRepository{DB: db},
		Secret: []byte("test-secret"),
	}

	_, err = svc.Login(context.Background(), "admin@example.com", "wrong")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("err = %v, want invalid credentials", err)
	}
}

func TestLoginUnknownEmailSameError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM admin_users").
		WithArgs("nobody@example.com").
		WillReturnRows(sqlmock.NewRows(adminCols()))

	svc := AuthService{
		Admins: repositories.AdminRepository{DB: db},
		Secret: []byte("test-secret"),
	}

	// must be the same error as the wrong-password path
	_, err = svc.Login(context.Background(), "nobody@example.com", "whatever")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("err = %v, want invalid credentials", err)
	}
}

func TestLoginMissingFields(t *testing.T) {
	svc := AuthService{Secret: []byte("test-secret")}

	if _, err := svc.Login(context.Background(), "", "pw"); !domain.IsValidation(err) {
		t.Fatalf("blank email err = %v", err)
	}
	if _, err := svc.Login(context.Background(), "a@b.com", ""); !domain.IsValidation(err) {
		t.Fatalf("blank password err = %v", err)
	}
}
