package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/wimaserenity/gardens-api/internal/api/metrics"
	"github.com/wimaserenity/gardens-api/internal/core/domain"
	"github.com/wimaserenity/gardens-api/internal/infrastructure/ratelimit"
)

// RateLimit rejects requests whose client address has exhausted any of the
// given scopes. It runs before the guard and handlers; a rejected request
// never reaches them.
func RateLimit(limiter *ratelimit.Limiter, scopes ...ratelimit.Scope) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			allowed, scope, err := limiter.Allow(c.Request().Context(), c.RealIP(), scopes...)
			if err != nil {
				return err
			}
			if !allowed {
				metrics.RateLimitRejectionsTotal.WithLabelValues(scope).Inc()
				return domain.ErrRateLimited
			}
			return next(c)
		}
	}
}
