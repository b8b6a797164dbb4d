package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/wimaserenity/gardens-api/internal/core/domain"
	"github.com/wimaserenity/gardens-api/internal/core/ports"
	"github.com/wimaserenity/gardens-api/internal/core/validate"
)

const (
	minMessageLength = 10
	defaultPageLimit = 50
	maxPageLimit     = 200
)

// InquiryService validates and records guest inquiries, and exposes the
// admin triage operations over both inquiry collections.
type InquiryService struct {
	inquiries ports.InquiryRepository
	events    ports.EventInquiryRepository
	rooms     ports.RoomRepository
	notifier  ports.Notifier
	log       zerolog.Logger
	now       func() time.Time
}

func NewInquiryService(
	inquiries ports.InquiryRepository,
	events ports.EventInquiryRepository,
	rooms ports.RoomRepository,
	notifier ports.Notifier,
	log zerolog.Logger,
) *InquiryService {
	return &InquiryService{
		inquiries: inquiries,
		events:    events,
		rooms:     rooms,
		notifier:  notifier,
		log:       log,
		now:       time.Now,
	}
}

// Create runs the full booking-inquiry validation pipeline, persists the
// inquiry, then hands it to the notifier. The record is the primary artifact;
// notification is best-effort and cannot fail the request.
func (s *InquiryService) Create(ctx context.Context, in ports.CreateInquiryInput) (*domain.Inquiry, error) {
	missing := validate.MissingFields(map[string]any{
		"name":         in.Name,
		"email":        in.Email,
		"phone":        in.Phone,
		"inquiry_type": in.InquiryType,
		"message":      in.Message,
	}, []string{"name", "email", "phone", "inquiry_type", "message"})
	if len(missing) > 0 {
		return nil, validate.MissingFieldsError(missing)
	}

	name := validate.Sanitize(in.Name, 100)
	email := validate.Sanitize(in.Email, 100)
	phone := validate.Sanitize(in.Phone, 20)
	message := validate.Sanitize(in.Message, 2000)
	inquiryType := validate.Sanitize(in.InquiryType, 50)

	if !validate.Email(email) {
		return nil, domain.NewValidationError("Invalid email format")
	}
	if !validate.Phone(phone) {
		return nil, domain.NewValidationError("Invalid phone format. Use format: +254700000000")
	}
	if !validate.InquiryType(inquiryType) {
		return nil, domain.NewValidationError(fmt.Sprintf(
			"Invalid inquiry type. Must be one of: %s", validate.AllowedInquiryTypes()))
	}
	if len(message) < minMessageLength {
		return nil, domain.NewValidationError("Message must be at least 10 characters long")
	}

	// A referenced room must exist and still be active; a stale id is the
	// caller's mistake, not a server failure.
	var roomRef *domain.RoomRef
	if in.RoomID != "" {
		room, err := s.rooms.FindByID(ctx, in.RoomID)
		if err != nil {
			if errors.Is(err, domain.ErrRoomNotFound) {
				return nil, domain.NewValidationError("Invalid room ID")
			}
			return nil, err
		}
		if !room.IsActive {
			return nil, domain.NewValidationError("Invalid room ID")
		}
		roomRef = &domain.RoomRef{ID: room.ID, Name: room.Name, Slug: room.Slug, Type: room.Type}
	}

	var checkIn, checkOut *time.Time
	if in.CheckIn != "" && in.CheckOut != "" {
		ok, msg := validate.CheckDates(in.CheckIn, in.CheckOut, s.now())
		if !ok {
			return nil, domain.NewValidationError(msg)
		}
		ci, _ := validate.ParseDate(in.CheckIn)
		co, _ := validate.ParseDate(in.CheckOut)
		checkIn, checkOut = &ci, &co
	}

	guests := 0
	if in.Guests != nil {
		if !validate.GuestCount(*in.Guests, domain.BookingMaxGuests) {
			return nil, domain.NewValidationError("Guest count must be between 1 and 10")
		}
		guests = *in.Guests
	}

	now := s.now().UTC()
	inquiry := &domain.Inquiry{
		Name:        name,
		Email:       email,
		Phone:       phone,
		InquiryType: domain.InquiryType(inquiryType),
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		Guests:      guests,
		Message:     message,
		Status:      domain.InquiryNew,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if roomRef != nil {
		inquiry.RoomID = roomRef.ID
		inquiry.Room = roomRef
	}

	created, err := s.inquiries.Create(ctx, inquiry)
	if err != nil {
		return nil, err
	}
	created.Room = roomRef

	s.log.Info().Str("inquiry_id", created.ID).Str("email", email).Msg("inquiry created")
	s.notifier.InquiryReceived(created)
	return created, nil
}

// CreateEvent runs the event-inquiry validation pipeline and persists the
// inquiry.
func (s *InquiryService) CreateEvent(ctx context.Context, in ports.CreateEventInquiryInput) (*domain.EventInquiry, error) {
	data := map[string]any{
		"name":       in.Name,
		"email":      in.Email,
		"phone":      in.Phone,
		"event_type": in.EventType,
		"event_date": in.EventDate,
		"message":    in.Message,
	}
	if in.GuestCount != nil {
		data["guest_count"] = *in.GuestCount
	}
	missing := validate.MissingFields(data, []string{
		"name", "email", "phone", "event_type", "event_date", "guest_count", "message",
	})
	if len(missing) > 0 {
		return nil, validate.MissingFieldsError(missing)
	}

	name := validate.Sanitize(in.Name, 100)
	email := validate.Sanitize(in.Email, 100)
	phone := validate.Sanitize(in.Phone, 20)
	message := validate.Sanitize(in.Message, 2000)
	eventType := validate.Sanitize(in.EventType, 50)
	venue := validate.Sanitize(in.VenuePreference, 50)

	if !validate.Email(email) {
		return nil, domain.NewValidationError("Invalid email format")
	}
	if !validate.Phone(phone) {
		return nil, domain.NewValidationError("Invalid phone format. Use format: +254700000000")
	}
	if !validate.EventType(eventType) {
		return nil, domain.NewValidationError(fmt.Sprintf(
			"Invalid event type. Must be one of: %s", validate.AllowedEventTypes()))
	}
	if !validate.DateNotPast(in.EventDate, s.now()) {
		return nil, domain.NewValidationError("Event date must be today or in the future")
	}
	if !validate.GuestCount(*in.GuestCount, domain.EventMaxGuests) {
		return nil, domain.NewValidationError("Guest count must be between 1 and 500")
	}
	if len(message) < minMessageLength {
		return nil, domain.NewValidationError("Message must be at least 10 characters long")
	}

	eventDate, _ := validate.ParseDate(in.EventDate)
	now := s.now().UTC()
	inquiry := &domain.EventInquiry{
		Name:            name,
		Email:           email,
		Phone:           phone,
		EventType:       domain.EventType(eventType),
		EventDate:       eventDate,
		GuestCount:      *in.GuestCount,
		VenuePreference: venue,
		Message:         message,
		Status:          domain.InquiryNew,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	created, err := s.events.Create(ctx, inquiry)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("inquiry_id", created.ID).Str("email", email).Msg("event inquiry created")
	s.notifier.EventInquiryReceived(created)
	return created, nil
}

// List returns a page of inquiries plus the pre-pagination total.
func (s *InquiryService) List(ctx context.Context, filter ports.InquiryFilter) ([]*domain.Inquiry, int64, error) {
	filter.Limit = clampLimit(filter.Limit)
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return s.inquiries.List(ctx, filter)
}

func (s *InquiryService) Get(ctx context.Context, id string) (*domain.Inquiry, error) {
	return s.inquiries.FindByID(ctx, id)
}

// SetStatus moves an inquiry through its triage lifecycle.
func (s *InquiryService) SetStatus(ctx context.Context, id, status string) (*domain.Inquiry, error) {
	st := domain.InquiryStatus(validate.Sanitize(status, 20))
	if !st.Valid() {
		return nil, domain.NewValidationError(
			"Invalid status. Must be one of: new, read, replied, archived")
	}
	return s.inquiries.UpdateStatus(ctx, id, st)
}

// Archive soft-deletes an inquiry; rows are never removed.
func (s *InquiryService) Archive(ctx context.Context, id string) error {
	_, err := s.inquiries.UpdateStatus(ctx, id, domain.InquiryArchived)
	return err
}

func (s *InquiryService) ListEvents(ctx context.Context, filter ports.EventInquiryFilter) ([]*domain.EventInquiry, int64, error) {
	filter.Limit = clampLimit(filter.Limit)
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return s.events.List(ctx, filter)
}

func (s *InquiryService) GetEvent(ctx context.Context, id string) (*domain.EventInquiry, error) {
	return s.events.FindByID(ctx, id)
}

func (s *InquiryService) SetEventStatus(ctx context.Context, id, status string) (*domain.EventInquiry, error) {
	st := domain.InquiryStatus(validate.Sanitize(status, 20))
	if !st.Valid() {
		return nil, domain.NewValidationError(
			"Invalid status. Must be one of: new, read, replied, archived")
	}
	return s.events.UpdateStatus(ctx, id, st)
}

func (s *InquiryService) ArchiveEvent(ctx context.Context, id string) error {
	_, err := s.events.UpdateStatus(ctx, id, domain.InquiryArchived)
	return err
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return defaultPageLimit
	case limit > maxPageLimit:
		return maxPageLimit
	default:
		return limit
	}
}
