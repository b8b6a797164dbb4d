package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/wimaserenity/gardens-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Success   bool   `json:"success"`
	Error     string `json:"error"`
	ErrorType string `json:"error_type"`
}

// Error type discriminators. Each maps to exactly one HTTP status.
const (
	typeValidation       = "validation_error"     // 400
	typeBadRequest       = "bad_request"          // 400
	typeUnauthorized     = "unauthorized"         // 401
	typeForbidden        = "forbidden"            // 403
	typeNotFound         = "not_found"            // 404
	typeMethodNotAllowed = "method_not_allowed"   // 405
	typeRateLimit        = "rate_limit_exceeded"  // 429
	typeDatabase         = "database_error"       // 500
	typeInternal         = "internal_error"       // 500
)

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their status code and error_type.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"success": false, "error": ..., "error_type": ...}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, kind, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Success: false, Error: msg, ErrorType: kind})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string, string) {
	// Caller input errors carry the violated rule in the message.
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, typeValidation, ve.Message
	}

	// Known domain errors → deterministic codes and kinds.
	switch {
	case errors.Is(err, domain.ErrRateLimited):
		return http.StatusTooManyRequests, typeRateLimit, "rate limit exceeded, try again later"
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrAccountDeactivated),
		errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, typeUnauthorized, err.Error()
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, typeForbidden, err.Error()
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrRoomNotFound),
		errors.Is(err, domain.ErrInquiryNotFound),
		errors.Is(err, domain.ErrEventInquiryNotFound),
		errors.Is(err, domain.ErrPackageNotFound):
		return http.StatusNotFound, typeNotFound, err.Error()
	case errors.Is(err, domain.ErrUserExists),
		errors.Is(err, domain.ErrRoomSlugExists):
		return http.StatusBadRequest, typeValidation, err.Error()
	}

	// Echo's own errors (bind failures, 404/405 from the router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		kind := typeBadRequest
		switch he.Code {
		case http.StatusNotFound:
			kind = typeNotFound
		case http.StatusMethodNotAllowed:
			kind = typeMethodNotAllowed
		case http.StatusUnauthorized:
			kind = typeUnauthorized
		case http.StatusForbidden:
			kind = typeForbidden
		case http.StatusTooManyRequests:
			kind = typeRateLimit
		case http.StatusInternalServerError:
			kind = typeInternal
		}
		return he.Code, kind, fmt.Sprintf("%v", he.Message)
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, typeDatabase, "operation failed, please try again"
}
