package service

import (
	"context"
	"time"

	"github.com/balaios/fast-zero-madr/internal/auth"
	apperr "github.com/balaios/fast-zero-madr/internal/errors"
	"github.com/balaios/fast-zero-madr/internal/model"
	"github.com/balaios/fast-zero-madr/internal/repository"
)

// AuthService issues bearer tokens for the catalog API.
type AuthService interface {
	Login(ctx context.Context, email, password string) (string, error)
	Refresh(ctx context.Context, user *model.User) (string, error)
}

type authService struct {
	users         repository.UserRepository
	jwtService    *auth.JWTService
	accessExpiry  time.Duration
	refreshExpiry time.Duration
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, jwtService *auth.JWTService, accessExpiry, refreshExpiry time.Duration) AuthService {
	return &authService{
		users:         users,
		jwtService:    jwtService,
		accessExpiry:  accessExpiry,
		refreshExpiry: refreshExpiry,
	}
}

// Login verifies the email/password pair and issues an access token whose
// subject is the user's email. An unknown email and a wrong password return
// the same error so the response does not reveal which field was wrong.
func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", apperr.ErrInvalidCredentials
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return "", apperr.ErrInvalidCredentials
	}

	return s.jwtService.GenerateToken(user.Email, s.accessExpiry)
}

// Refresh issues a new token with a fresh expiry window for an already
// authenticated user. The previous token stays valid until it expires on
// its own; there is no revocation list.
func (s *authService) Refresh(ctx context.Context, user *model.User) (string, error) {
	return s.jwtService.GenerateToken(user.Email, s.refreshExpiry)
}
