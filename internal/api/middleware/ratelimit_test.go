package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/wimaserenity/gardens-api/internal/core/domain"
	"github.com/wimaserenity/gardens-api/internal/infrastructure/ratelimit"
)

func TestRateLimit_RejectsOverCeiling(t *testing.T) {
	store := ratelimit.NewMemoryStore()
	defer store.Close()
	limiter := ratelimit.NewLimiter(store, zerolog.Nop())

	mw := RateLimit(limiter, ratelimit.Scope{Name: "login", Limit: 2, Window: time.Minute})
	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	e := echo.New()

	call := func() error {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
		req.RemoteAddr = "10.1.2.3:5000"
		c := e.NewContext(req, httptest.NewRecorder())
		return mw(next)(c)
	}

	for i := 0; i < 2; i++ {
		if err := call(); err != nil {
			t.Fatalf("request %d: %v", i+1, err)
		}
	}
	if err := call(); !errors.Is(err, domain.ErrRateLimited) {
		t.Fatalf("third request: got %v, want rate limited", err)
	}

	// A different client address is unaffected.
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
	req.RemoteAddr = "10.9.9.9:5000"
	c := e.NewContext(req, httptest.NewRecorder())
	if err := mw(next)(c); err != nil {
		t.Fatalf("other address: %v", err)
	}
}
