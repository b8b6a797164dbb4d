package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountDeactivated = errors.New("account is deactivated")
	ErrUnauthorized       = errors.New("authentication required")
	ErrForbidden          = errors.New("insufficient privileges")
	ErrRateLimited        = errors.New("rate limit exceeded")

	ErrUserNotFound         = errors.New("user not found")
	ErrUserExists           = errors.New("email already registered")
	ErrInvalidRole          = errors.New("invalid role")
	ErrRoomNotFound         = errors.New("room not found")
	ErrRoomSlugExists       = errors.New("room slug already exists")
	ErrInquiryNotFound      = errors.New("inquiry not found")
	ErrEventInquiryNotFound = errors.New("event inquiry not found")
	ErrPackageNotFound      = errors.New("package not found")
)

// ValidationError reports a caller-input rule violation. The message names
// the specific rule that failed and is safe to return to the caller.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NewValidationError builds a ValidationError with the given message.
func NewValidationError(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
