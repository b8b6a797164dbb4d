package ports

import (
	"context"

	"github.com/wimaserenity/gardens-api/internal/core/domain"
)

// CreateUserInput carries the fields for provisioning a new principal.
type CreateUserInput struct {
	Email    string
	Password string
	Name     string
	Role     string
}

// AuthService implements login and principal management.
type AuthService interface {
	// Login verifies credentials and returns a signed token together with
	// the authenticated user. Unknown email and wrong password are not
	// distinguished in the returned error.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)

	// ChangePassword re-checks the current password before setting the new one.
	ChangePassword(ctx context.Context, user *domain.User, current, next string) error

	// CreateUser provisions a principal; callers must already hold admin.
	CreateUser(ctx context.Context, in CreateUserInput) (*domain.User, error)

	// ListUsers returns every principal, active or not.
	ListUsers(ctx context.Context) ([]*domain.User, error)
}
