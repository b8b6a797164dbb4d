package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/wimaserenity/gardens-api/internal/core/domain"
	"github.com/wimaserenity/gardens-api/internal/core/ports"
	"github.com/wimaserenity/gardens-api/internal/core/validate"
)

const minPasswordLength = 8

// AuthService implements login, password changes and principal management.
type AuthService struct {
	users  ports.UserRepository
	tokens *TokenService
	log    zerolog.Logger
}

func NewAuthService(users ports.UserRepository, tokens *TokenService, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, log: log}
}

// Login authenticates by email and password. Unknown email, wrong password
// and a deactivated account all collapse into the same caller-visible error;
// the distinction lives in the log.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	email = strings.ToLower(validate.Sanitize(email, 100))
	if email == "" || password == "" {
		return "", nil, domain.NewValidationError("Missing required fields: email, password")
	}
	if !validate.Email(email) {
		return "", nil, domain.NewValidationError("Invalid email format")
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.log.Warn().Str("email", email).Msg("failed login attempt")
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.log.Warn().Str("email", email).Msg("failed login attempt")
		return "", nil, domain.ErrInvalidCredentials
	}

	if !user.IsActive {
		s.log.Warn().Str("email", email).Msg("inactive user login attempt")
		return "", nil, domain.ErrAccountDeactivated
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}

	now := time.Now().UTC()
	if err := s.users.UpdateLastLogin(ctx, user.ID, now); err != nil {
		// Login still succeeds; the timestamp is bookkeeping.
		s.log.Error().Err(err).Str("user_id", user.ID).Msg("update last login failed")
	} else {
		user.LastLogin = &now
	}

	s.log.Info().Str("email", email).Msg("user logged in")
	return token, user, nil
}

// ChangePassword re-verifies the current password before accepting the new one.
func (s *AuthService) ChangePassword(ctx context.Context, user *domain.User, current, next string) error {
	if current == "" || next == "" {
		return domain.NewValidationError("Missing required fields: current_password, new_password")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(current)) != nil {
		return domain.NewValidationError("Current password is incorrect")
	}
	if len(next) < minPasswordLength {
		return domain.NewValidationError("New password must be at least 8 characters long")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := s.users.UpdatePassword(ctx, user.ID, string(hash)); err != nil {
		return err
	}

	s.log.Info().Str("email", user.Email).Msg("password changed")
	return nil
}

// CreateUser provisions a new principal. The guard has already established
// the caller is an admin.
func (s *AuthService) CreateUser(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	missing := validate.MissingFields(map[string]any{
		"email":    in.Email,
		"password": in.Password,
		"name":     in.Name,
	}, []string{"email", "password", "name"})
	if len(missing) > 0 {
		return nil, validate.MissingFieldsError(missing)
	}

	email := strings.ToLower(validate.Sanitize(in.Email, 100))
	name := validate.Sanitize(in.Name, 100)
	roleStr := validate.Sanitize(in.Role, 20)
	if roleStr == "" {
		roleStr = string(domain.RoleStaff)
	}

	if !validate.Email(email) {
		return nil, domain.NewValidationError("Invalid email format")
	}
	if len(in.Password) < minPasswordLength {
		return nil, domain.NewValidationError("Password must be at least 8 characters long")
	}

	role, err := domain.ParseRole(roleStr)
	if err != nil {
		return nil, domain.NewValidationError(fmt.Sprintf(
			"Invalid role. Must be one of: %s, %s, %s",
			domain.RoleStaff, domain.RoleManager, domain.RoleAdmin))
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("email", email).Str("role", string(role)).Msg("user created")
	return created, nil
}

// ListUsers returns every principal, active or not.
func (s *AuthService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx)
}
