package domain

import (
	"math"
	"time"
)

// Package is a bookable bundle, e.g. exclusive use of the whole property.
// OriginalPrice is the full price of booking the parts separately; zero means
// no comparison price was set.
type Package struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Slug              string    `json:"slug"`
	Tagline           string    `json:"tagline,omitempty"`
	ShortDescription  string    `json:"short_description"`
	LongDescription   string    `json:"long_description,omitempty"`
	PricePerNight     int       `json:"price_per_night"`
	OriginalPrice     int       `json:"original_price,omitempty"`
	RoomsIncluded     []string  `json:"rooms_included"`
	Capacity          int       `json:"capacity"`
	BreakfastIncluded bool      `json:"breakfast_included"`
	Amenities         []string  `json:"amenities"`
	Benefits          []string  `json:"benefits"`
	Images            []string  `json:"images"`
	IsFeatured        bool      `json:"is_featured"`
	IsActive          bool      `json:"is_active"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// Savings is the amount saved versus booking the included rooms separately.
// Never negative: a package priced above its comparison price saves nothing.
func (p *Package) Savings() int {
	if p.OriginalPrice <= p.PricePerNight {
		return 0
	}
	return p.OriginalPrice - p.PricePerNight
}

// DiscountPercentage is the rounded percentage discount versus the comparison
// price, clamped to zero when the comparison price is unset or not higher
// than the package price.
func (p *Package) DiscountPercentage() int {
	if p.OriginalPrice <= 0 || p.OriginalPrice <= p.PricePerNight {
		return 0
	}
	ratio := 1 - float64(p.PricePerNight)/float64(p.OriginalPrice)
	return int(math.Round(ratio * 100))
}
