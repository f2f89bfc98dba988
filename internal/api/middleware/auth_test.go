package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Lokeshnegi69/story-board-interior-backend/internal/core/domain"
	"github.com/Lokeshnegi69/story-board-interior-backend/internal/core/ports"
	"github.com/Lokeshnegi69/story-board-interior-backend/internal/core/service"
)

type stubUserRepo struct {
	users map[string]*domain.User
}

func (s *stubUserRepo) Create(context.Context, *domain.User) (*domain.User, error) {
	return nil, nil
}

func (s *stubUserRepo) FindByEmail(context.Context, string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (s *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := s.users[id]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func (s *stubUserRepo) Update(_ context.Context, u *domain.User) (*domain.User, error) {
	return u, nil
}

func (s *stubUserRepo) Delete(context.Context, string) error { return nil }

func (s *stubUserRepo) List(context.Context, ports.ListUsersFilter) ([]*domain.User, int64, error) {
	return nil, 0, nil
}

func (s *stubUserRepo) Count(context.Context, ports.ListUsersFilter) (int64, error) {
	return 0, nil
}

func testTokens() *service.TokenService {
	return service.NewTokenService("access-secret", "refresh-secret", time.Hour, time.Hour)
}

func accessTokenFor(t *testing.T, tokens *service.TokenService, user *domain.User) string {
	t.Helper()
	token, err := tokens.IssueAccessToken(ports.TokenClaims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return token
}

func activeAdmin() *domain.User {
	return &domain.User{ID: "u1", Email: "admin@example.com", Role: domain.RoleAdmin, IsActive: true}
}

func TestAuthenticate_ValidToken(t *testing.T) {
	e := echo.New()
	tokens := testTokens()
	user := activeAdmin()
	repo := &stubUserRepo{users: map[string]*domain.User{user.ID: user}}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+accessTokenFor(t, tokens, user))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Authenticate(tokens, repo)(func(c echo.Context) error {
		called = true
		identity := IdentityFrom(c)
		if identity.UserID != "u1" {
			t.Fatalf("expected user id u1, got %q", identity.UserID)
		}
		if identity.Role != domain.RoleAdmin {
			t.Fatalf("expected admin role, got %q", identity.Role)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Authenticate(testTokens(), &stubUserRepo{})(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthenticate_InvalidHeaderFormat(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Token abc")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Authenticate(testTokens(), &stubUserRepo{})(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthenticate_RefreshTokenRejected(t *testing.T) {
	e := echo.New()
	tokens := testTokens()
	user := activeAdmin()
	repo := &stubUserRepo{users: map[string]*domain.User{user.ID: user}}

	refresh, err := tokens.IssueRefreshToken(ports.TokenClaims{UserID: user.ID, Email: user.Email, Role: user.Role})
	if err != nil {
		t.Fatalf("issue refresh token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+refresh)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Authenticate(tokens, repo)(func(c echo.Context) error {
		t.Fatalf("refresh token must not pass the access gate")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthenticate_DeletedAccount(t *testing.T) {
	e := echo.New()
	tokens := testTokens()
	user := activeAdmin()
	// Token was minted before the account was removed.
	repo := &stubUserRepo{users: map[string]*domain.User{}}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+accessTokenFor(t, tokens, user))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Authenticate(tokens, repo)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthenticate_InactiveAccount(t *testing.T) {
	e := echo.New()
	tokens := testTokens()
	user := activeAdmin()
	user.IsActive = false
	repo := &stubUserRepo{users: map[string]*domain.User{user.ID: user}}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+accessTokenFor(t, tokens, user))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Authenticate(tokens, repo)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestOptionalAuthenticate_Anonymous(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := OptionalAuthenticate(testTokens(), &stubUserRepo{})(func(c echo.Context) error {
		called = true
		if identity := IdentityFrom(c); identity.UserID != "" {
			t.Fatalf("anonymous request must have empty identity")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestOptionalAuthenticate_BadTokenStillRejected(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := OptionalAuthenticate(testTokens(), &stubUserRepo{})(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
