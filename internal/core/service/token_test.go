package service

import (
	"testing"
	"time"

	"github.com/Lokeshnegi69/story-board-interior-backend/internal/core/domain"
	"github.com/Lokeshnegi69/story-board-interior-backend/internal/core/ports"
)

func testClaims() ports.TokenClaims {
	return ports.TokenClaims{UserID: "u1", Email: "u1@example.com", Role: domain.RoleAdmin}
}

func TestTokenService_IssueAndVerify(t *testing.T) {
	svc := NewTokenService("access", "refresh", time.Hour, time.Hour)

	pair, err := svc.IssuePair(testClaims())
	if err != nil {
		t.Fatalf("issue pair: %v", err)
	}

	claims, err := svc.VerifyAccessToken(pair.AccessToken)
	if err != nil {
		t.Fatalf("verify access: %v", err)
	}
	if claims.UserID != "u1" || claims.Email != "u1@example.com" || claims.Role != domain.RoleAdmin {
		t.Fatalf("claims do not round-trip: %+v", claims)
	}

	if _, err := svc.VerifyRefreshToken(pair.RefreshToken); err != nil {
		t.Fatalf("verify refresh: %v", err)
	}
}

func TestTokenService_ClassesAreNotInterchangeable(t *testing.T) {
	svc := NewTokenService("access", "refresh", time.Hour, time.Hour)

	pair, err := svc.IssuePair(testClaims())
	if err != nil {
		t.Fatalf("issue pair: %v", err)
	}

	if _, err := svc.VerifyAccessToken(pair.RefreshToken); err != domain.ErrInvalidToken {
		t.Fatalf("refresh token accepted as access token: %v", err)
	}
	if _, err := svc.VerifyRefreshToken(pair.AccessToken); err != domain.ErrInvalidToken {
		t.Fatalf("access token accepted as refresh token: %v", err)
	}
}

func TestTokenService_WrongSecret(t *testing.T) {
	issuer := NewTokenService("real-secret", "real-refresh", time.Hour, time.Hour)
	verifier := NewTokenService("other-secret", "other-refresh", time.Hour, time.Hour)

	token, err := issuer.IssueAccessToken(testClaims())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := verifier.VerifyAccessToken(token); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenService_Expired(t *testing.T) {
	// Built directly: the constructor replaces non-positive TTLs with defaults.
	svc := &TokenService{
		accessSecret:  []byte("access"),
		refreshSecret: []byte("refresh"),
		accessTTL:     -time.Minute,
		refreshTTL:    -time.Minute,
	}

	token, err := svc.IssueAccessToken(testClaims())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := svc.VerifyAccessToken(token); err != domain.ErrInvalidToken {
		t.Fatalf("expired token must fail with ErrInvalidToken, got %v", err)
	}
}

func TestTokenService_Malformed(t *testing.T) {
	svc := NewTokenService("access", "refresh", time.Hour, time.Hour)

	for _, token := range []string{"", "garbage", "a.b.c"} {
		if _, err := svc.VerifyAccessToken(token); err != domain.ErrInvalidToken {
			t.Fatalf("token %q: expected ErrInvalidToken, got %v", token, err)
		}
	}
}
