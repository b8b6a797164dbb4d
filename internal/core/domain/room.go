package domain

import (
	"strings"
	"time"
)

// RoomType categorises an accommodation. The allow-list mirrors what the
// property actually offers; admin room creation rejects anything else.
type RoomType string

const (
	RoomPremier   RoomType = "premier"
	RoomCottage   RoomType = "cottage"
	RoomDouble    RoomType = "double"
	RoomStandard  RoomType = "standard"
	RoomDeluxe    RoomType = "deluxe"
	RoomExecutive RoomType = "executive"
	RoomFamily    RoomType = "family"
)

// RoomTypes lists every valid room type.
func RoomTypes() []RoomType {
	return []RoomType{
		RoomPremier, RoomCottage, RoomDouble, RoomStandard,
		RoomDeluxe, RoomExecutive, RoomFamily,
	}
}

// Valid reports whether t is a known room type.
func (t RoomType) Valid() bool {
	for _, known := range RoomTypes() {
		if t == known {
			return true
		}
	}
	return false
}

const (
	// RoomMinCapacity and RoomMaxCapacity bound a room's guest capacity.
	RoomMinCapacity = 1
	RoomMaxCapacity = 20
)

// Room is a bookable guest room. Rooms referenced by historical inquiries are
// never hard-deleted; deactivation flips IsActive and the room drops out of
// public listings while staying resolvable for admins.
type Room struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Slug              string    `json:"slug"`
	Type              RoomType  `json:"type"`
	Description       string    `json:"description"`
	Capacity          int       `json:"capacity"`
	PricePerNight     int       `json:"price_per_night"`
	BreakfastIncluded bool      `json:"breakfast_included"`
	Amenities         []string  `json:"amenities"`
	Images            []string  `json:"images"`
	IsFeatured        bool      `json:"is_featured"`
	IsActive          bool      `json:"is_active"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// Slugify derives a URL-safe slug from a name or a caller-provided slug.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "-")
	return strings.ReplaceAll(s, "/", "-")
}
