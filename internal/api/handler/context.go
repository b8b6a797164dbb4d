package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wimaserenity/gardens-api/internal/api/middleware"
	"github.com/wimaserenity/gardens-api/internal/core/domain"
)

// principal extracts the acting user injected by the RequireRole guard.
// Its presence proves the guard ran; a handler reached without it is a
// routing mistake, rejected with 401 rather than a panic.
func principal(c echo.Context) (*domain.User, error) {
	user, ok := c.Get(middleware.PrincipalKey).(*domain.User)
	if !ok || user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return user, nil
}

// respond writes the success envelope. Every payload key sits beside the
// success flag, mirroring the error envelope's flat shape.
func respond(c echo.Context, status int, payload echo.Map) error {
	body := echo.Map{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	return c.JSON(status, body)
}
