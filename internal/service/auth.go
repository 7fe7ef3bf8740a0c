package service

import (
	"context"

	"github.com/david-morgenstern/thundervarg/internal/db"
	"github.com/david-morgenstern/thundervarg/internal/model"
)

// AuthUserRepo is the slice of the user store the auth flow needs.
type AuthUserRepo interface {
	GetUserByName(ctx context.Context, name string) (*model.User, error)
}

// AuthService composes the credential hasher, the token service, and
// the user store into the login / identify flow. It holds no state
// between requests.
type AuthService struct {
	repo   AuthUserRepo
	tokens *TokenService
}

func NewAuthService(repo AuthUserRepo, tokens *TokenService) *AuthService {
	return &AuthService{repo: repo, tokens: tokens}
}

// Login checks the password and issues a bearer token whose subject is
// the username. A disabled account can still log in; gating happens on
// active-user-only routes.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.repo.GetUserByName(ctx, username)
	if err != nil {
		if db.IsNoRows(err) {
			return "", ErrUnauthorized
		}
		return "", err
	}

	if !CheckPassword(password, user.PasswordHash) {
		return "", ErrUnauthorized
	}

	return s.tokens.Issue(user.Name)
}

// VerifyToken validates the bearer token and returns its subject.
func (s *AuthService) VerifyToken(token string) (string, error) {
	return s.tokens.Verify(token)
}

// Identify resolves a verified subject back to its user record. A
// subject with no matching user is unauthorized, not missing.
func (s *AuthService) Identify(ctx context.Context, subject string) (*model.User, error) {
	user, err := s.repo.GetUserByName(ctx, subject)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}
	return user, nil
}

// IdentifyActive is Identify plus the disabled-account gate, for
// routes restricted to active users.
func (s *AuthService) IdentifyActive(ctx context.Context, subject string) (*model.User, error) {
	user, err := s.Identify(ctx, subject)
	if err != nil {
		return nil, err
	}
	if user.Disabled {
		return nil, ErrForbidden
	}
	return user, nil
}
