package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Lokeshnegi69/story-board-interior-backend/internal/api/middleware"
	"github.com/Lokeshnegi69/story-board-interior-backend/internal/core/domain"
)

// requireIdentity extracts the identity injected by the Authenticate
// middleware and fast-fails before any service call. An empty UserID means
// the middleware did not run on this route.
func requireIdentity(c echo.Context) (domain.Identity, error) {
	identity := middleware.IdentityFrom(c)
	if identity.UserID == "" {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return identity, nil
}

// callerIdentity returns whatever identity is on the context, zero-valued
// for anonymous requests. Used by public routes behind OptionalAuthenticate.
func callerIdentity(c echo.Context) domain.Identity {
	return middleware.IdentityFrom(c)
}
