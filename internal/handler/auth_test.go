package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"

	"github.com/david-morgenstern/thundervarg/internal/config"
	"github.com/david-morgenstern/thundervarg/internal/model"
	"github.com/david-morgenstern/thundervarg/internal/service"
)

type fakeUserRepo struct {
	users map[string]*model.User
}

func (f *fakeUserRepo) GetUserByName(ctx context.Context, name string) (*model.User, error) {
	if user, ok := f.users[name]; ok {
		return user, nil
	}
	return nil, pgx.ErrNoRows
}

func newAuthRouter(t *testing.T, users ...*model.User) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := &fakeUserRepo{users: map[string]*model.User{}}
	for _, u := range users {
		repo.users[u.Name] = u
	}

	tokens, err := service.NewTokenService(config.AuthConfig{
		TokenSecret: "test-secret",
		Algorithm:   "HS256",
		TTLMinutes:  "30",
	})
	if err != nil {
		t.Fatalf("NewTokenService failed: %v", err)
	}
	auth := service.NewAuthService(repo, tokens)
	h := NewAuthHandler(auth)

	r := gin.New()
	r.POST("/token", h.Token)
	r.GET("/private/", AuthMiddleware(auth), h.Private)
	r.GET("/users/me", AuthMiddleware(auth), h.Me)
	return r
}

func hashedUser(t *testing.T, name, password string, disabled bool) *model.User {
	t.Helper()
	hash, err := service.HashPassword(password)
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	return &model.User{ID: 1, Name: name, PasswordHash: hash, Disabled: disabled}
}

func postToken(t *testing.T, r *gin.Engine, username, password string) *httptest.ResponseRecorder {
	t.Helper()
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.ServeHTTP(w, req)
	return w
}

func TestTokenEndpoint(t *testing.T) {
	r := newAuthRouter(t, hashedUser(t, "Davud", "admin", false))

	w := postToken(t, r, "Davud", "admin")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp model.TokenResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.TokenType != "bearer" {
		t.Fatalf("expected token_type bearer, got %q", resp.TokenType)
	}
	if resp.AccessToken == "" {
		t.Fatal("expected a non-empty access token")
	}
}

func TestTokenEndpointRejectsBadCredentials(t *testing.T) {
	r := newAuthRouter(t, hashedUser(t, "Davud", "admin", false))

	if w := postToken(t, r, "Davud", "wrong"); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong password, got %d", w.Code)
	}
	if w := postToken(t, r, "ghost", "admin"); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for unknown user, got %d", w.Code)
	}
	if w := postToken(t, r, "", ""); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty form, got %d", w.Code)
	}
}

func TestPrivateEchoesToken(t *testing.T) {
	r := newAuthRouter(t, hashedUser(t, "Davud", "admin", false))

	w := postToken(t, r, "Davud", "admin")
	var issued model.TokenResponse
	if err := json.Unmarshal(w.Body.Bytes(), &issued); err != nil {
		t.Fatalf("bad token response: %v", err)
	}

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/private/", nil)
	req.Header.Set("Authorization", "Bearer "+issued.AccessToken)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp model.PrivateResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Token != issued.AccessToken {
		t.Fatal("expected the presented token to be echoed")
	}
}

func TestAuthMiddlewareRejections(t *testing.T) {
	r := newAuthRouter(t, hashedUser(t, "Davud", "admin", false))

	cases := map[string]string{
		"missing header": "",
		"not bearer":     "Basic abc",
		"empty token":    "Bearer ",
		"garbage token":  "Bearer not-a-token",
	}
	for name, header := range cases {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/private/", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401, got %d", name, w.Code)
		}
	}
}

func TestMeRejectsDisabledUser(t *testing.T) {
	r := newAuthRouter(t, hashedUser(t, "Davud", "admin", true))

	// Login still succeeds for a disabled account.
	w := postToken(t, r, "Davud", "admin")
	if w.Code != http.StatusOK {
		t.Fatalf("expected disabled user to log in, got %d", w.Code)
	}
	var issued model.TokenResponse
	if err := json.Unmarshal(w.Body.Bytes(), &issued); err != nil {
		t.Fatalf("bad token response: %v", err)
	}

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req.Header.Set("Authorization", "Bearer "+issued.AccessToken)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for disabled user, got %d", w.Code)
	}
}

func TestMeReturnsUserWithoutHash(t *testing.T) {
	r := newAuthRouter(t, hashedUser(t, "Davud", "admin", false))

	w := postToken(t, r, "Davud", "admin")
	var issued model.TokenResponse
	if err := json.Unmarshal(w.Body.Bytes(), &issued); err != nil {
		t.Fatalf("bad token response: %v", err)
	}

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req.Header.Set("Authorization", "Bearer "+issued.AccessToken)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if body["name"] != "Davud" {
		t.Fatalf("expected name Davud, got %v", body["name"])
	}
	for key := range body {
		if strings.Contains(key, "password") {
			t.Fatalf("password material leaked under key %q", key)
		}
	}
}
