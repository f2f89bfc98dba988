package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/Lokeshnegi69/story-board-interior-backend/internal/api/metrics"
)

// Limiter is the subset of the Redis rate limiter the middleware needs.
type Limiter interface {
	Allow(ctx context.Context, clientIP string) (bool, error)
}

// RateLimit rejects callers that exceed the fixed-window limit with 429.
// Redis failures fail open: a broken limiter must not take the API down.
func RateLimit(limiter Limiter, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ok, err := limiter.Allow(c.Request().Context(), c.RealIP())
			if err != nil {
				log.Warn().Err(err).Msg("rate limiter unavailable, allowing request")
				return next(c)
			}
			if !ok {
				metrics.RateLimitedTotal.Inc()
				return echo.NewHTTPError(http.StatusTooManyRequests, "too many requests, please try again later")
			}
			return next(c)
		}
	}
}
