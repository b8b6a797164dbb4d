package ports

import (
	"context"

	"github.com/wimaserenity/gardens-api/internal/core/domain"
)

// CreateInquiryInput is the guest-facing room inquiry payload. Dates and the
// guest count are optional; pointers distinguish absent from zero.
type CreateInquiryInput struct {
	Name        string
	Email       string
	Phone       string
	InquiryType string
	RoomID      string
	CheckIn     string
	CheckOut    string
	Guests      *int
	Message     string
}

// CreateEventInquiryInput is the guest-facing event venue inquiry payload.
type CreateEventInquiryInput struct {
	Name            string
	Email           string
	Phone           string
	EventType       string
	EventDate       string
	GuestCount      *int
	VenuePreference string
	Message         string
}

// InquiryService validates and records guest inquiries and exposes the admin
// triage operations over them.
type InquiryService interface {
	Create(ctx context.Context, in CreateInquiryInput) (*domain.Inquiry, error)
	CreateEvent(ctx context.Context, in CreateEventInquiryInput) (*domain.EventInquiry, error)

	List(ctx context.Context, filter InquiryFilter) ([]*domain.Inquiry, int64, error)
	Get(ctx context.Context, id string) (*domain.Inquiry, error)
	SetStatus(ctx context.Context, id, status string) (*domain.Inquiry, error)
	Archive(ctx context.Context, id string) error

	ListEvents(ctx context.Context, filter EventInquiryFilter) ([]*domain.EventInquiry, int64, error)
	GetEvent(ctx context.Context, id string) (*domain.EventInquiry, error)
	SetEventStatus(ctx context.Context, id, status string) (*domain.EventInquiry, error)
	ArchiveEvent(ctx context.Context, id string) error
}
