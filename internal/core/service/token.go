package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Lokeshnegi69/story-board-interior-backend/internal/core/domain"
	"github.com/Lokeshnegi69/story-board-interior-backend/internal/core/ports"
)

const (
	defaultAccessTTL  = 7 * 24 * time.Hour
	defaultRefreshTTL = 30 * 24 * time.Hour
)

// jwtClaims is the wire form of ports.TokenClaims plus registered fields.
type jwtClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies access and refresh tokens with HS256.
// The two classes use distinct secrets: a leaked access secret cannot forge
// refresh tokens and vice versa. Verification is pure computation, no I/O.
type TokenService struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewTokenService(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *TokenService {
	if accessTTL <= 0 {
		accessTTL = defaultAccessTTL
	}
	if refreshTTL <= 0 {
		refreshTTL = defaultRefreshTTL
	}
	return &TokenService{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

func (s *TokenService) IssueAccessToken(claims ports.TokenClaims) (string, error) {
	return s.sign(claims, s.accessSecret, s.accessTTL)
}

func (s *TokenService) IssueRefreshToken(claims ports.TokenClaims) (string, error) {
	return s.sign(claims, s.refreshSecret, s.refreshTTL)
}

// IssuePair issues both token classes for the same claim set. Called at
// registration, login and refresh.
func (s *TokenService) IssuePair(claims ports.TokenClaims) (ports.TokenPair, error) {
	access, err := s.IssueAccessToken(claims)
	if err != nil {
		return ports.TokenPair{}, err
	}
	refresh, err := s.IssueRefreshToken(claims)
	if err != nil {
		return ports.TokenPair{}, err
	}
	return ports.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *TokenService) VerifyAccessToken(token string) (*ports.TokenClaims, error) {
	return s.verify(token, s.accessSecret)
}

func (s *TokenService) VerifyRefreshToken(token string) (*ports.TokenClaims, error) {
	return s.verify(token, s.refreshSecret)
}

func (s *TokenService) sign(claims ports.TokenClaims, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, &jwtClaims{
		UserID: claims.UserID,
		Email:  claims.Email,
		Role:   claims.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   claims.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	})
	return t.SignedString(secret)
}

// verify collapses every failure mode (malformed, mis-signed, expired) into
// domain.ErrInvalidToken so callers cannot leak which check failed.
func (s *TokenService) verify(token string, secret []byte) (*ports.TokenClaims, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwtClaims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, domain.ErrInvalidToken
	}
	claims, ok := parsed.Claims.(*jwtClaims)
	if !ok {
		return nil, domain.ErrInvalidToken
	}
	return &ports.TokenClaims{UserID: claims.UserID, Email: claims.Email, Role: claims.Role}, nil
}
