package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Lokeshnegi69/story-board-interior-backend/internal/core/domain"
	"github.com/Lokeshnegi69/story-board-interior-backend/internal/core/ports"
)

// IdentityKey is the echo context key under which the authenticated caller's
// identity is stored.
const IdentityKey = "identity"

// Authenticate verifies the bearer access token and re-checks the account
// against the store on every request, so revoked or deactivated accounts are
// cut off immediately regardless of token lifetime.
func Authenticate(tokens ports.TokenService, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, err := resolveIdentity(c, tokens, users)
			if err != nil {
				return err
			}
			c.Set(IdentityKey, identity)
			return next(c)
		}
	}
}

// OptionalAuthenticate resolves the caller's identity when a valid bearer
// token is present and proceeds anonymously otherwise. Public listing routes
// use it so admins see drafts while everyone else sees published content.
func OptionalAuthenticate(tokens ports.TokenService, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Header.Get(echo.HeaderAuthorization) == "" {
				return next(c)
			}
			identity, err := resolveIdentity(c, tokens, users)
			if err != nil {
				return err
			}
			c.Set(IdentityKey, identity)
			return next(c)
		}
	}
}

func resolveIdentity(c echo.Context, tokens ports.TokenService, users ports.UserRepository) (domain.Identity, error) {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
	}

	claims, err := tokens.VerifyAccessToken(parts[1])
	if err != nil {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
	}

	user, err := users.FindByID(c.Request().Context(), claims.UserID)
	if err != nil {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "account no longer exists")
	}
	if !user.IsActive {
		return domain.Identity{}, echo.NewHTTPError(http.StatusForbidden, "account is deactivated")
	}

	return domain.Identity{UserID: user.ID, Email: user.Email, Role: user.Role}, nil
}

// IdentityFrom extracts the authenticated identity set by Authenticate. The
// zero Identity means the request is anonymous.
func IdentityFrom(c echo.Context) domain.Identity {
	identity, _ := c.Get(IdentityKey).(domain.Identity)
	return identity
}
