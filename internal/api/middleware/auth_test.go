package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/wimaserenity/gardens-api/internal/core/domain"
	"github.com/wimaserenity/gardens-api/internal/core/service"
)

type stubLoader struct {
	users map[string]*domain.User
}

func (s *stubLoader) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func guardFixture(t *testing.T, users ...*domain.User) (*service.TokenService, *stubLoader) {
	t.Helper()
	loader := &stubLoader{users: make(map[string]*domain.User)}
	for _, u := range users {
		loader.users[u.ID] = u
	}
	return service.NewTokenService("test-secret", time.Hour, zerolog.Nop()), loader
}

func invoke(guard echo.MiddlewareFunc, authHeader string) (error, echo.Context) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/dashboard", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	c := e.NewContext(req, httptest.NewRecorder())

	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	return guard(next)(c), c
}

func TestRequireRole_MissingOrMalformedHeader(t *testing.T) {
	tokens, loader := guardFixture(t)
	guard := RequireRole(tokens, loader, domain.RoleStaff, zerolog.Nop())

	for _, header := range []string{"", "Basic abc", "Bearer", "Bearer "} {
		err, _ := invoke(guard, header)
		if !errors.Is(err, domain.ErrUnauthorized) {
			t.Fatalf("header %q: got %v, want unauthorized", header, err)
		}
	}
}

func TestRequireRole_InvalidToken(t *testing.T) {
	tokens, loader := guardFixture(t)
	guard := RequireRole(tokens, loader, domain.RoleStaff, zerolog.Nop())

	err, _ := invoke(guard, "Bearer not-a-real-token")
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("got %v, want unauthorized", err)
	}
}

func TestRequireRole_RoleFloor(t *testing.T) {
	staff := &domain.User{ID: "u1", Email: "staff@example.com", Role: domain.RoleStaff, IsActive: true}
	tokens, loader := guardFixture(t, staff)

	raw, err := tokens.Issue(staff)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	// A staff token is rejected by a manager guard and accepted by a staff guard.
	managerGuard := RequireRole(tokens, loader, domain.RoleManager, zerolog.Nop())
	if err, _ := invoke(managerGuard, "Bearer "+raw); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("manager guard: got %v, want forbidden", err)
	}

	staffGuard := RequireRole(tokens, loader, domain.RoleStaff, zerolog.Nop())
	err, c := invoke(staffGuard, "Bearer "+raw)
	if err != nil {
		t.Fatalf("staff guard: %v", err)
	}
	principal, ok := c.Get(PrincipalKey).(*domain.User)
	if !ok || principal.ID != "u1" {
		t.Fatalf("expected principal in context, got %v", c.Get(PrincipalKey))
	}
}

func TestRequireRole_DeactivatedPrincipal(t *testing.T) {
	user := &domain.User{ID: "u1", Email: "gone@example.com", Role: domain.RoleAdmin, IsActive: true}
	tokens, loader := guardFixture(t, user)

	raw, err := tokens.Issue(user)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	// Deactivation after issuance must reject the still-valid token.
	user.IsActive = false
	guard := RequireRole(tokens, loader, domain.RoleStaff, zerolog.Nop())
	if err, _ := invoke(guard, "Bearer "+raw); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("got %v, want unauthorized", err)
	}
}

func TestRequireRole_DeletedPrincipal(t *testing.T) {
	user := &domain.User{ID: "ghost", Email: "ghost@example.com", Role: domain.RoleAdmin, IsActive: true}
	tokens, loader := guardFixture(t)

	raw, err := tokens.Issue(user)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	guard := RequireRole(tokens, loader, domain.RoleStaff, zerolog.Nop())
	if err, _ := invoke(guard, "Bearer "+raw); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("got %v, want unauthorized", err)
	}
}

func TestRequireRole_CurrentRoleDecides(t *testing.T) {
	// Token carries a manager snapshot but the stored role was demoted since.
	user := &domain.User{ID: "u1", Email: "demoted@example.com", Role: domain.RoleManager, IsActive: true}
	tokens, loader := guardFixture(t, user)

	raw, err := tokens.Issue(user)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	user.Role = domain.RoleStaff
	guard := RequireRole(tokens, loader, domain.RoleManager, zerolog.Nop())
	if err, _ := invoke(guard, "Bearer "+raw); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("got %v, want forbidden from live role", err)
	}
}
