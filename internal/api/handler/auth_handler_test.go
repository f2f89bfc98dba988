package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/Lokeshnegi69/story-board-interior-backend/internal/api/middleware"
	"github.com/Lokeshnegi69/story-board-interior-backend/internal/core/domain"
	"github.com/Lokeshnegi69/story-board-interior-backend/internal/core/ports"
)

// stubAuthService scripts each lifecycle operation per test.
type stubAuthService struct {
	registerFn func(ports.RegisterInput) (*ports.AuthResult, error)
	loginFn    func(ports.LoginInput) (*ports.AuthResult, error)
	refreshFn  func(string) (*ports.TokenPair, error)
	profileFn  func(string) (*domain.User, error)
	updateFn   func(string, ports.ProfileUpdateInput) (*domain.User, error)
}

func (s *stubAuthService) Register(_ context.Context, input ports.RegisterInput) (*ports.AuthResult, error) {
	return s.registerFn(input)
}

func (s *stubAuthService) Login(_ context.Context, input ports.LoginInput) (*ports.AuthResult, error) {
	return s.loginFn(input)
}

func (s *stubAuthService) Refresh(_ context.Context, token string) (*ports.TokenPair, error) {
	return s.refreshFn(token)
}

func (s *stubAuthService) Profile(_ context.Context, userID string) (*domain.User, error) {
	return s.profileFn(userID)
}

func (s *stubAuthService) UpdateProfile(_ context.Context, userID string, input ports.ProfileUpdateInput) (*domain.User, error) {
	return s.updateFn(userID, input)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func doJSON(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func sampleUser() *domain.User {
	return &domain.User{ID: "u1", Email: "alice@example.com", FullName: "Alice", Role: domain.RoleClient, IsActive: true}
}

func TestAuthHandler_Register_Success(t *testing.T) {
	e := newTestEcho()
	svc := &stubAuthService{
		registerFn: func(input ports.RegisterInput) (*ports.AuthResult, error) {
			if input.Email != "alice@example.com" {
				t.Fatalf("unexpected email %q", input.Email)
			}
			return &ports.AuthResult{
				User:   sampleUser(),
				Tokens: ports.TokenPair{AccessToken: "acc", RefreshToken: "ref"},
			}, nil
		},
	}
	h := NewAuthHandler(svc)

	c, rec := doJSON(e, http.MethodPost, "/api/auth/register",
		`{"email":"alice@example.com","password":"s3cret-pass","full_name":"Alice"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			User         *domain.User `json:"user"`
			AccessToken  string       `json:"accessToken"`
			RefreshToken string       `json:"refreshToken"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success {
		t.Fatalf("expected success envelope")
	}
	// Tokens sit directly beside the user in data, not under a nested key.
	if resp.Data.AccessToken != "acc" || resp.Data.RefreshToken != "ref" {
		t.Fatalf("tokens missing from response data: %s", rec.Body.String())
	}
	if resp.Data.User.Email != "alice@example.com" {
		t.Fatalf("user missing from response")
	}
}

func TestAuthHandler_Register_ValidationErrors(t *testing.T) {
	e := newTestEcho()
	h := NewAuthHandler(&stubAuthService{
		registerFn: func(ports.RegisterInput) (*ports.AuthResult, error) {
			t.Fatalf("service must not be called on invalid payloads")
			return nil, nil
		},
	})

	cases := []string{
		`{"password":"s3cret-pass","full_name":"Alice"}`,                     // missing email
		`{"email":"not-an-email","password":"s3cret-pass"}`,                  // bad email
		`{"email":"a@example.com","password":"short"}`,                       // short password
		`{"email":"a@example.com","password":"s3cret-pass"}`,                 // missing name
		`{"email":"a@example.com","password":"s3cret-pass","full_name":"A"}`, // short name
	}
	for _, body := range cases {
		c, rec := doJSON(e, http.MethodPost, "/api/auth/register", body)
		if err := h.Register(c); err != nil {
			e.HTTPErrorHandler(err, c)
		}
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("body %s: expected 400, got %d", body, rec.Code)
		}
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	e := newTestEcho()
	h := NewAuthHandler(&stubAuthService{
		loginFn: func(ports.LoginInput) (*ports.AuthResult, error) {
			return nil, domain.ErrInvalidCredentials
		},
	})

	c, _ := doJSON(e, http.MethodPost, "/api/auth/login",
		`{"email":"ghost@example.com","password":"whatever"}`)
	err := h.Login(c)
	if err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials passthrough, got %v", err)
	}
}

func TestAuthHandler_Refresh(t *testing.T) {
	e := newTestEcho()
	h := NewAuthHandler(&stubAuthService{
		refreshFn: func(token string) (*ports.TokenPair, error) {
			if token != "the-refresh-token" {
				t.Fatalf("unexpected token %q", token)
			}
			return &ports.TokenPair{AccessToken: "new-acc", RefreshToken: "new-ref"}, nil
		},
	})

	c, rec := doJSON(e, http.MethodPost, "/api/auth/refresh", `{"refreshToken":"the-refresh-token"}`)
	if err := h.Refresh(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthHandler_Refresh_MissingToken(t *testing.T) {
	e := newTestEcho()
	h := NewAuthHandler(&stubAuthService{})

	c, rec := doJSON(e, http.MethodPost, "/api/auth/refresh", `{}`)
	if err := h.Refresh(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Profile_RequiresIdentity(t *testing.T) {
	e := newTestEcho()
	h := NewAuthHandler(&stubAuthService{})

	c, rec := doJSON(e, http.MethodGet, "/api/auth/profile", "")
	if err := h.Profile(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthHandler_Profile(t *testing.T) {
	e := newTestEcho()
	h := NewAuthHandler(&stubAuthService{
		profileFn: func(userID string) (*domain.User, error) {
			if userID != "u1" {
				t.Fatalf("unexpected user id %q", userID)
			}
			return sampleUser(), nil
		},
	})

	c, rec := doJSON(e, http.MethodGet, "/api/auth/profile", "")
	c.Set(middleware.IdentityKey, domain.Identity{UserID: "u1", Role: domain.RoleClient})
	if err := h.Profile(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"alice@example.com"`) {
		t.Fatalf("profile body missing user: %s", rec.Body.String())
	}
	if strings.Contains(rec.Body.String(), "password") {
		t.Fatalf("password hash must never be serialized: %s", rec.Body.String())
	}
}

func TestAuthHandler_UpdateProfile(t *testing.T) {
	e := newTestEcho()
	h := NewAuthHandler(&stubAuthService{
		updateFn: func(userID string, input ports.ProfileUpdateInput) (*domain.User, error) {
			if input.FullName == nil || *input.FullName != "New Name" {
				t.Fatalf("full name not passed through: %+v", input)
			}
			u := sampleUser()
			u.FullName = *input.FullName
			return u, nil
		},
	})

	c, rec := doJSON(e, http.MethodPut, "/api/auth/profile", `{"full_name":"New Name"}`)
	c.Set(middleware.IdentityKey, domain.Identity{UserID: "u1", Role: domain.RoleClient})
	if err := h.UpdateProfile(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
