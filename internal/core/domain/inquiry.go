package domain

import "time"

// InquiryStatus tracks how far staff have taken an inquiry. Archival is the
// terminal soft-delete state; rows are never removed.
type InquiryStatus string

const (
	InquiryNew      InquiryStatus = "new"
	InquiryRead     InquiryStatus = "read"
	InquiryReplied  InquiryStatus = "replied"
	InquiryArchived InquiryStatus = "archived"
)

// InquiryStatuses lists every valid inquiry status.
func InquiryStatuses() []InquiryStatus {
	return []InquiryStatus{InquiryNew, InquiryRead, InquiryReplied, InquiryArchived}
}

// Valid reports whether s is a known status.
func (s InquiryStatus) Valid() bool {
	for _, known := range InquiryStatuses() {
		if s == known {
			return true
		}
	}
	return false
}

// InquiryType classifies what a guest is asking about.
type InquiryType string

const (
	InquiryBooking InquiryType = "booking"
	InquiryEvent   InquiryType = "event"
	InquiryGeneral InquiryType = "general"
)

// InquiryTypes lists every valid inquiry type.
func InquiryTypes() []InquiryType {
	return []InquiryType{InquiryBooking, InquiryEvent, InquiryGeneral}
}

// Valid reports whether t is a known inquiry type.
func (t InquiryType) Valid() bool {
	for _, known := range InquiryTypes() {
		if t == known {
			return true
		}
	}
	return false
}

const (
	// BookingMaxGuests caps the guest count on a room booking inquiry.
	BookingMaxGuests = 10
	// EventMaxGuests caps the guest count on an event venue inquiry.
	EventMaxGuests = 500
)

// RoomRef is the subset of room fields embedded in inquiry responses.
type RoomRef struct {
	ID   string   `json:"id"`
	Name string   `json:"name"`
	Slug string   `json:"slug"`
	Type RoomType `json:"type"`
}

// Inquiry is a guest's room booking or general inquiry. Dates and the room
// reference are optional; when present they have already passed validation.
type Inquiry struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Email       string        `json:"email"`
	Phone       string        `json:"phone"`
	InquiryType InquiryType   `json:"inquiry_type"`
	RoomID      string        `json:"room_id,omitempty"`
	Room        *RoomRef      `json:"room,omitempty"`
	CheckIn     *time.Time    `json:"check_in,omitempty"`
	CheckOut    *time.Time    `json:"check_out,omitempty"`
	Guests      int           `json:"guests,omitempty"`
	Message     string        `json:"message"`
	Status      InquiryStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}
