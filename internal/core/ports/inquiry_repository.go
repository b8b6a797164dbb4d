package ports

import (
	"context"
	"time"

	"github.com/wimaserenity/gardens-api/internal/core/domain"
)

// InquiryFilter narrows the admin inquiry listing. Zero values mean "any".
type InquiryFilter struct {
	Status string
	Type   string
	Limit  int
	Offset int
}

// InquiryRepository persists room booking inquiries.
type InquiryRepository interface {
	Create(ctx context.Context, inq *domain.Inquiry) (*domain.Inquiry, error)
	FindByID(ctx context.Context, id string) (*domain.Inquiry, error)
	// List returns a page of inquiries, newest first, and the total count
	// matching the filter before pagination.
	List(ctx context.Context, filter InquiryFilter) ([]*domain.Inquiry, int64, error)
	UpdateStatus(ctx context.Context, id string, status domain.InquiryStatus) (*domain.Inquiry, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status domain.InquiryStatus) (int64, error)
	CountSince(ctx context.Context, since time.Time) (int64, error)
}

// EventInquiryFilter narrows the admin event-inquiry listing.
type EventInquiryFilter struct {
	Status    string
	EventType string
	Limit     int
	Offset    int
}

// EventInquiryRepository persists event venue inquiries.
type EventInquiryRepository interface {
	Create(ctx context.Context, inq *domain.EventInquiry) (*domain.EventInquiry, error)
	FindByID(ctx context.Context, id string) (*domain.EventInquiry, error)
	List(ctx context.Context, filter EventInquiryFilter) ([]*domain.EventInquiry, int64, error)
	UpdateStatus(ctx context.Context, id string, status domain.InquiryStatus) (*domain.EventInquiry, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status domain.InquiryStatus) (int64, error)
	CountSince(ctx context.Context, since time.Time) (int64, error)
}
