package service

import (
	"testing"
	"time"

	"github.com/david-morgenstern/thundervarg/internal/config"
)

func testTokenService(t *testing.T) *TokenService {
	t.Helper()
	svc, err := NewTokenService(config.AuthConfig{
		TokenSecret: "test-secret",
		Algorithm:   "HS256",
		TTLMinutes:  "30",
	})
	if err != nil {
		t.Fatalf("NewTokenService failed: %v", err)
	}
	return svc
}

func TestTokenRoundTrip(t *testing.T) {
	svc := testTokenService(t)

	token, err := svc.Issue("Davud")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	subject, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if subject != "Davud" {
		t.Fatalf("expected subject Davud, got %q", subject)
	}
}

func TestTokenExpired(t *testing.T) {
	svc := testTokenService(t)

	token, err := svc.IssueWithTTL("Davud", -time.Minute)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if _, err := svc.Verify(token); err != ErrUnauthorized {
		t.Fatalf("expected ErrUnauthorized for expired token, got %v", err)
	}
}

func TestTokenTampered(t *testing.T) {
	svc := testTokenService(t)

	token, err := svc.Issue("Davud")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	tampered := token[:len(token)-2] + "xx"
	if _, err := svc.Verify(tampered); err != ErrUnauthorized {
		t.Fatalf("expected ErrUnauthorized for tampered token, got %v", err)
	}

	if _, err := svc.Verify("not-a-token"); err != ErrUnauthorized {
		t.Fatalf("expected ErrUnauthorized for malformed token, got %v", err)
	}
}

func TestTokenWrongSecret(t *testing.T) {
	svc := testTokenService(t)

	other, err := NewTokenService(config.AuthConfig{
		TokenSecret: "another-secret",
		Algorithm:   "HS256",
		TTLMinutes:  "30",
	})
	if err != nil {
		t.Fatalf("NewTokenService failed: %v", err)
	}

	token, err := other.Issue("Davud")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if _, err := svc.Verify(token); err != ErrUnauthorized {
		t.Fatalf("expected ErrUnauthorized for foreign signature, got %v", err)
	}
}

func TestNewTokenServiceValidation(t *testing.T) {
	cases := []config.AuthConfig{
		{TokenSecret: "", Algorithm: "HS256", TTLMinutes: "30"},
		{TokenSecret: "s", Algorithm: "none", TTLMinutes: "30"},
		{TokenSecret: "s", Algorithm: "RS256", TTLMinutes: "30"},
		{TokenSecret: "s", Algorithm: "HS256", TTLMinutes: "soon"},
		{TokenSecret: "s", Algorithm: "HS256", TTLMinutes: "-5"},
	}
	for _, cfg := range cases {
		if _, err := NewTokenService(cfg); err == nil {
			t.Fatalf("expected error for config %+v", cfg)
		}
	}
}
