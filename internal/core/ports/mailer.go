package ports

import (
	"context"

	"github.com/wimaserenity/gardens-api/internal/core/domain"
)

// Mail is a single outbound message. Plain text only.
type Mail struct {
	To      []string
	ReplyTo string
	Subject string
	Body    string
}

// Mailer delivers a message synchronously.
type Mailer interface {
	Send(ctx context.Context, m Mail) error
}

// Notifier enqueues best-effort notifications about new inquiries. Delivery
// happens off the request path; a failed send is logged, never surfaced.
type Notifier interface {
	InquiryReceived(inq *domain.Inquiry)
	EventInquiryReceived(inq *domain.EventInquiry)
}

// ContactInput is the general contact form payload.
type ContactInput struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

// ContactService relays contact form submissions. There is no persisted
// record behind a contact message, so a failed delivery is surfaced.
type ContactService interface {
	Submit(ctx context.Context, in ContactInput) error
}
