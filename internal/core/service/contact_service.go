package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/wimaserenity/gardens-api/internal/core/domain"
	"github.com/wimaserenity/gardens-api/internal/core/ports"
	"github.com/wimaserenity/gardens-api/internal/core/validate"
)

// ContactService relays contact-form submissions to the business inbox.
// Unlike inquiries there is no persisted record, so delivery failures are
// surfaced to the caller.
type ContactService struct {
	mailer        ports.Mailer
	businessEmail string
	log           zerolog.Logger
}

func NewContactService(mailer ports.Mailer, businessEmail string, log zerolog.Logger) *ContactService {
	return &ContactService{mailer: mailer, businessEmail: businessEmail, log: log}
}

// Submit validates the form and sends the message synchronously.
func (s *ContactService) Submit(ctx context.Context, in ports.ContactInput) error {
	missing := validate.MissingFields(map[string]any{
		"name":    in.Name,
		"email":   in.Email,
		"message": in.Message,
	}, []string{"name", "email", "message"})
	if len(missing) > 0 {
		return validate.MissingFieldsError(missing)
	}

	name := validate.Sanitize(in.Name, 100)
	email := validate.Sanitize(in.Email, 100)
	message := validate.Sanitize(in.Message, 2000)
	subject := validate.Sanitize(in.Subject, 200)
	phone := validate.Sanitize(in.Phone, 20)

	if !validate.Email(email) {
		return domain.NewValidationError("Invalid email format")
	}
	if len(message) < minMessageLength {
		return domain.NewValidationError("Message must be at least 10 characters long")
	}

	if subject == "" {
		subject = "General Inquiry"
	}
	if phone == "" {
		phone = "Not provided"
	}

	body := fmt.Sprintf(
		"New contact form message.\n\nName: %s\nEmail: %s\nPhone: %s\n\nMessage:\n%s\n",
		name, email, phone, message)

	mail := ports.Mail{
		To:      []string{s.businessEmail},
		ReplyTo: email,
		Subject: fmt.Sprintf("Contact Form: %s", subject),
		Body:    body,
	}
	if err := s.mailer.Send(ctx, mail); err != nil {
		s.log.Error().Err(err).Str("email", email).Msg("contact mail delivery failed")
		return fmt.Errorf("send contact mail: %w", err)
	}

	s.log.Info().Str("email", email).Msg("contact message relayed")
	return nil
}
