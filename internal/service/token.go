package service

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/david-morgenstern/thundervarg/internal/config"
)

// TokenService issues and verifies signed bearer tokens. Tokens carry
// only a subject and an expiry; validity is derived from the signature
// and the expiry check, never from storage. There is no revocation.
type TokenService struct {
	secret []byte
	method jwt.SigningMethod
	ttl    time.Duration
}

func NewTokenService(cfg config.AuthConfig) (*TokenService, error) {
	if cfg.TokenSecret == "" {
		return nil, fmt.Errorf("%w: TOKEN_SECRET is required", ErrMisconfigured)
	}

	method := jwt.GetSigningMethod(cfg.Algorithm)
	if method == nil {
		return nil, fmt.Errorf("%w: unknown TOKEN_ALGORITHM %q", ErrMisconfigured, cfg.Algorithm)
	}
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("%w: TOKEN_ALGORITHM %q is not an HMAC method", ErrMisconfigured, cfg.Algorithm)
	}

	minutes, err := strconv.Atoi(cfg.TTLMinutes)
	if err != nil || minutes < 0 {
		return nil, fmt.Errorf("%w: invalid TOKEN_TTL_MINUTES %q", ErrMisconfigured, cfg.TTLMinutes)
	}

	return &TokenService{
		secret: []byte(cfg.TokenSecret),
		method: method,
		ttl:    time.Duration(minutes) * time.Minute,
	}, nil
}

func (s *TokenService) TTL() time.Duration {
	return s.ttl
}

// Issue signs a token for subject expiring at now + the configured TTL.
func (s *TokenService) Issue(subject string) (string, error) {
	return s.IssueWithTTL(subject, s.ttl)
}

func (s *TokenService) IssueWithTTL(subject string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	token := jwt.NewWithClaims(s.method, claims)
	return token.SignedString(s.secret)
}

// Verify checks signature and expiry and extracts the subject. Any
// failure collapses to ErrUnauthorized.
func (s *TokenService) Verify(tokenStr string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrUnauthorized
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrUnauthorized
	}

	if claims.Subject == "" {
		return "", ErrUnauthorized
	}
	return claims.Subject, nil
}
