// Package middleware contains the request gates that run before any handler:
// the rate limiter and the role guard.
package middleware

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/wimaserenity/gardens-api/internal/api/metrics"
	"github.com/wimaserenity/gardens-api/internal/core/domain"
	"github.com/wimaserenity/gardens-api/internal/core/service"
)

// PrincipalKey is the echo context key under which the guard stores the
// resolved *domain.User.
const PrincipalKey = "principal"

// TokenVerifier resolves a raw bearer token to its claims.
type TokenVerifier interface {
	Verify(raw string) (*service.TokenClaims, error)
}

// PrincipalLoader reloads the acting principal by id.
type PrincipalLoader interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
}

// RequireRole gates a route behind a minimum role. The pipeline is: extract
// bearer token, verify it, reload the principal (it must still exist and be
// active), then compare its current role against min. The token's embedded
// role is a snapshot; the reload is what decides.
//
// Missing identity yields 401; a valid identity below min yields 403, logged
// at warn with the acting principal.
func RequireRole(tokens TokenVerifier, users PrincipalLoader, min domain.Role, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, ok := bearerToken(c)
			if !ok {
				metrics.AuthFailuresTotal.WithLabelValues("unauthorized").Inc()
				return domain.ErrUnauthorized
			}

			claims, err := tokens.Verify(raw)
			if err != nil {
				metrics.AuthFailuresTotal.WithLabelValues("unauthorized").Inc()
				return domain.ErrUnauthorized
			}

			user, err := users.FindByID(c.Request().Context(), claims.UserID)
			if err != nil || !user.IsActive {
				metrics.AuthFailuresTotal.WithLabelValues("unauthorized").Inc()
				log.Debug().Str("user_id", claims.UserID).Msg("token principal missing or deactivated")
				return domain.ErrUnauthorized
			}

			if !user.Role.AtLeast(min) {
				metrics.AuthFailuresTotal.WithLabelValues("forbidden").Inc()
				log.Warn().
					Str("user_id", user.ID).
					Str("email", user.Email).
					Str("role", string(user.Role)).
					Str("required", string(min)).
					Str("path", c.Path()).
					Msg("insufficient role")
				return domain.ErrForbidden
			}

			c.Set(PrincipalKey, user)
			return next(c)
		}
	}
}

func bearerToken(c echo.Context) (string, bool) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
