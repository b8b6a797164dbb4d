package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/wimaserenity/gardens-api/internal/core/domain"
)

func render(t *testing.T, err error) (int, map[string]any) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/rooms", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return rec.Code, body
}

func TestErrorHandler_Mapping(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		code     int
		kind     string
	}{
		{"validation", domain.NewValidationError("Invalid email format"), http.StatusBadRequest, "validation_error"},
		{"rate limited", domain.ErrRateLimited, http.StatusTooManyRequests, "rate_limit_exceeded"},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "unauthorized"},
		{"deactivated", domain.ErrAccountDeactivated, http.StatusUnauthorized, "unauthorized"},
		{"unauthorized", domain.ErrUnauthorized, http.StatusUnauthorized, "unauthorized"},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden, "forbidden"},
		{"room missing", domain.ErrRoomNotFound, http.StatusNotFound, "not_found"},
		{"package missing", domain.ErrPackageNotFound, http.StatusNotFound, "not_found"},
		{"duplicate email", domain.ErrUserExists, http.StatusBadRequest, "validation_error"},
		{"router 404", echo.NewHTTPError(http.StatusNotFound, "not found"), http.StatusNotFound, "not_found"},
		{"router 405", echo.NewHTTPError(http.StatusMethodNotAllowed, "method not allowed"), http.StatusMethodNotAllowed, "method_not_allowed"},
		{"bad payload", echo.NewHTTPError(http.StatusBadRequest, "invalid payload"), http.StatusBadRequest, "bad_request"},
		{"unexpected", errors.New("mongo: socket closed"), http.StatusInternalServerError, "database_error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, body := render(t, tc.err)
			if code != tc.code {
				t.Fatalf("status = %d, want %d", code, tc.code)
			}
			if body["success"] != false {
				t.Fatalf("success = %v, want false", body["success"])
			}
			if body["error_type"] != tc.kind {
				t.Fatalf("error_type = %v, want %s", body["error_type"], tc.kind)
			}
			if body["error"] == "" {
				t.Fatalf("missing error message")
			}
		})
	}
}

func TestErrorHandler_ValidationMessagePassedThrough(t *testing.T) {
	_, body := render(t, domain.NewValidationError("Check-out date must be after check-in date"))
	if body["error"] != "Check-out date must be after check-in date" {
		t.Fatalf("rule message lost: %v", body["error"])
	}
}

func TestErrorHandler_InternalDetailNotLeaked(t *testing.T) {
	_, body := render(t, errors.New("connection refused: 10.0.0.5:27017"))
	if body["error"] == "connection refused: 10.0.0.5:27017" {
		t.Fatalf("internal error detail leaked to the caller")
	}
}
