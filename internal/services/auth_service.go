package services

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"coursepay/internal/domain"
	"coursepay/internal/domain/models"
	"coursepay/internal/repositories"
	"coursepay/internal/utils"
)

// timingPad is compared against when no account matches, so the
// unknown-email and wrong-password paths cost the same.
var timingPad, _ = bcrypt.GenerateFromPassword([]byte("coursepay-timing-pad"), bcrypt.DefaultCost)

type AuthService struct {
	Admins   repositories.AdminRepository
	Secret   []byte
	TokenTTL time.Duration
	Clock    func() time.Time
}

type LoginResult struct {
	Token string
	User  models.AdminIdentity
}

// Login checks the credentials and issues a signed session token. An
// unknown email and a wrong password are indistinguishable to the caller.
func (s AuthService) Login(ctx context.Context, email, password string) (LoginResult, error) {
	email = utils.TrimOrEmpty(email)
	if email == "" {
		return LoginResult{}, domain.ValidationError{Field: "email", Msg: "required"}
	}
	if password == "" {
		return LoginResult{}, domain.ValidationError{Field: "password", Msg: "required"}
	}

	admin, err := s.Admins.GetByEmail(ctx, email)
	if err != nil {
		if domain.IsNotFound(err) {
			_ = bcrypt.CompareHashAndPassword(timingPad, []byte(password))
			return LoginResult{}, domain.ErrInvalidCredentials
		}
		return LoginResult{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return LoginResult{}, domain.ErrInvalidCredentials
	}

	token, err := s.issueToken(admin)
	if err != nil {
		return LoginResult{}, domain.InternalError{Msg: "failed to sign session token", Err: err}
	}

	return LoginResult{
		Token: token,
		User: models.AdminIdentity{
			ID:    admin.ID,
			Email: admin.Email,
			Name:  admin.Name,
		},
	}, nil
}

func (s AuthService) issueToken(admin models.AdminUser) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"sub":   admin.ID,
		"email": admin.Email,
		"name":  admin.Name,
		"iat":   now.Unix(),
		"exp":   now.Add(s.ttl()).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.Secret)
}

func (s AuthService) now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return utils.NowUTC()
}

func (s AuthService) ttl() time.Duration {
	if s.TokenTTL > 0 {
		return s.TokenTTL
	}
	return 24 * time.Hour
}
