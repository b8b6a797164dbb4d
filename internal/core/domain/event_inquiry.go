package domain

import "time"

// EventType classifies an event venue inquiry.
type EventType string

const (
	EventWedding    EventType = "wedding"
	EventCorporate  EventType = "corporate"
	EventBirthday   EventType = "birthday"
	EventReunion    EventType = "reunion"
	EventGraduation EventType = "graduation"
	EventOther      EventType = "other"
)

// EventTypes lists every valid event type.
func EventTypes() []EventType {
	return []EventType{
		EventWedding, EventCorporate, EventBirthday,
		EventReunion, EventGraduation, EventOther,
	}
}

// Valid reports whether t is a known event type.
func (t EventType) Valid() bool {
	for _, known := range EventTypes() {
		if t == known {
			return true
		}
	}
	return false
}

// EventInquiry is a request to book the venue grounds for an event.
// It shares the status lifecycle with Inquiry.
type EventInquiry struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	Email           string        `json:"email"`
	Phone           string        `json:"phone"`
	EventType       EventType     `json:"event_type"`
	EventDate       time.Time     `json:"event_date"`
	GuestCount      int           `json:"guest_count"`
	VenuePreference string        `json:"venue_preference,omitempty"`
	Message         string        `json:"message"`
	Status          InquiryStatus `json:"status"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}
