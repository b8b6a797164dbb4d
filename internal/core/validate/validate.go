// Package validate holds the pure input validators used in front of every
// guest-facing mutation. Functions here never panic on missing or oddly typed
// input; a value that cannot be interpreted simply fails validation.
package validate

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/wimaserenity/gardens-api/internal/core/domain"
)

const dateLayout = "2006-01-02"

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phonePattern = regexp.MustCompile(`^\+?[1-9]\d{6,14}$`)
	phoneStrip   = regexp.MustCompile(`[\s\-()]`)
)

// Email reports whether s looks like a deliverable address: local part, @,
// domain, and a TLD of at least two letters, after trimming.
func Email(s string) bool {
	s = strings.TrimSpace(s)
	return s != "" && emailPattern.MatchString(s)
}

// Phone reports whether s is an E.164-shaped number: after stripping spaces,
// dashes and parentheses, an optional + followed by 7-15 digits with a
// non-zero leading digit.
func Phone(s string) bool {
	if s == "" {
		return false
	}
	cleaned := phoneStrip.ReplaceAllString(s, "")
	return phonePattern.MatchString(cleaned)
}

// DateFormat reports whether s is a strict YYYY-MM-DD date.
func DateFormat(s string) bool {
	if s == "" {
		return false
	}
	_, err := time.Parse(dateLayout, s)
	return err == nil
}

// ParseDate parses a strict YYYY-MM-DD date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

// DateNotPast reports whether s is a valid date falling on or after today,
// as seen by now.
func DateNotPast(s string, now time.Time) bool {
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		return false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return !d.Before(today)
}

// CheckDates validates a check-in/check-out pair. Rules apply in order —
// check-in format, check-out format, check-in not past, ordering — and the
// first failure's message is returned alone.
func CheckDates(checkIn, checkOut string, now time.Time) (bool, string) {
	if !DateFormat(checkIn) {
		return false, "Invalid check-in date format. Use YYYY-MM-DD."
	}
	if !DateFormat(checkOut) {
		return false, "Invalid check-out date format. Use YYYY-MM-DD."
	}
	if !DateNotPast(checkIn, now) {
		return false, "Check-in date cannot be in the past."
	}

	in, _ := time.Parse(dateLayout, checkIn)
	out, _ := time.Parse(dateLayout, checkOut)
	if !out.After(in) {
		return false, "Check-out date must be after check-in date."
	}
	return true, ""
}

// GuestCount reports whether n is within [1, maxCapacity].
func GuestCount(n, maxCapacity int) bool {
	return n >= 1 && n <= maxCapacity
}

// InquiryType reports whether s is an allowed inquiry type.
func InquiryType(s string) bool {
	return domain.InquiryType(s).Valid()
}

// EventType reports whether s is an allowed event type.
func EventType(s string) bool {
	return domain.EventType(s).Valid()
}

// RoomType reports whether s is an allowed room type.
func RoomType(s string) bool {
	return domain.RoomType(s).Valid()
}

// AllowedInquiryTypes returns the allow-list for error messages.
func AllowedInquiryTypes() string { return joinInquiryTypes() }

// AllowedEventTypes returns the allow-list for error messages.
func AllowedEventTypes() string {
	parts := make([]string, 0, len(domain.EventTypes()))
	for _, t := range domain.EventTypes() {
		parts = append(parts, string(t))
	}
	return strings.Join(parts, ", ")
}

// AllowedRoomTypes returns the allow-list for error messages.
func AllowedRoomTypes() string {
	parts := make([]string, 0, len(domain.RoomTypes()))
	for _, t := range domain.RoomTypes() {
		parts = append(parts, string(t))
	}
	return strings.Join(parts, ", ")
}

func joinInquiryTypes() string {
	parts := make([]string, 0, len(domain.InquiryTypes()))
	for _, t := range domain.InquiryTypes() {
		parts = append(parts, string(t))
	}
	return strings.Join(parts, ", ")
}

// Sanitize trims whitespace and truncates to maxLength runes. Empty or
// unusable input yields the empty string, never an error.
func Sanitize(s string, maxLength int) string {
	s = strings.TrimSpace(s)
	if maxLength >= 0 {
		if runes := []rune(s); len(runes) > maxLength {
			s = string(runes[:maxLength])
		}
	}
	return s
}

// MissingFields returns every required key that is absent, nil, or a string
// that is empty after trimming. All missing keys are reported in one pass.
func MissingFields(data map[string]any, required []string) []string {
	var missing []string
	for _, field := range required {
		v, ok := data[field]
		if !ok || v == nil {
			missing = append(missing, field)
			continue
		}
		if s, isStr := v.(string); isStr && strings.TrimSpace(s) == "" {
			missing = append(missing, field)
		}
	}
	return missing
}

// MissingFieldsError formats a missing-fields validation message.
func MissingFieldsError(missing []string) *domain.ValidationError {
	return domain.NewValidationError(
		fmt.Sprintf("Missing required fields: %s", strings.Join(missing, ", ")))
}
