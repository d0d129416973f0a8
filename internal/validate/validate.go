// Package validate centralizes request field validation. Handlers collect
// failures into a Fields map and surface them as the details of a
// VALIDATION_FAILED error; only the first failure per field is kept.
package validate

import (
	"net/mail"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the wire format for dates.
const DateLayout = "2006-01-02"

// Fields maps a field name to its first failure message.
type Fields map[string]string

// Ok reports whether no field failed.
func (f Fields) Ok() bool {
	return len(f) == 0
}

// Details converts the map for use as DomainError details.
func (f Fields) Details() map[string]any {
	out := make(map[string]any, len(f))
	for field, msg := range f {
		out[field] = msg
	}
	return out
}

func (f Fields) add(field, msg string) {
	if _, exists := f[field]; exists {
		return
	}
	f[field] = msg
}

// Require fails the field when the trimmed value is empty.
func (f Fields) Require(field, value string) bool {
	if strings.TrimSpace(value) == "" {
		f.add(field, "is required")
		return false
	}
	return true
}

// Email fails the field when the value is present but not a valid address.
// Empty values pass; combine with Require when the field is mandatory.
func (f Fields) Email(field, value string) bool {
	if strings.TrimSpace(value) == "" {
		return true
	}
	if _, err := mail.ParseAddress(value); err != nil {
		f.add(field, "must be a valid email address")
		return false
	}
	return true
}

// Date parses a required YYYY-MM-DD value.
func (f Fields) Date(field, value string) (time.Time, bool) {
	if !f.Require(field, value) {
		return time.Time{}, false
	}
	parsed, err := time.Parse(DateLayout, strings.TrimSpace(value))
	if err != nil {
		f.add(field, "must be a valid date (YYYY-MM-DD)")
		return time.Time{}, false
	}
	return parsed, true
}

// PositiveInt parses a required numeric value greater than zero.
func (f Fields) PositiveInt(field, value string) (int, bool) {
	if !f.Require(field, value) {
		return 0, false
	}
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		f.add(field, "must be a number")
		return 0, false
	}
	if parsed <= 0 {
		f.add(field, "must be positive")
		return 0, false
	}
	return parsed, true
}

// MinLength fails the field when the trimmed value is shorter than min runes.
func (f Fields) MinLength(field, value string, min int) bool {
	if len([]rune(strings.TrimSpace(value))) < min {
		f.add(field, "must be at least "+strconv.Itoa(min)+" characters")
		return false
	}
	return true
}

// PastDate fails the field unless the date falls strictly before today.
// A birthday equal to the current date is rejected.
func (f Fields) PastDate(field string, date, now time.Time) bool {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	candidate := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, now.Location())
	if !candidate.Before(today) {
		f.add(field, "must be before today")
		return false
	}
	return true
}

// FutureDate fails the field unless the date falls strictly after now.
func (f Fields) FutureDate(field string, date, now time.Time) bool {
	if !date.After(now) {
		f.add(field, "must be in the future")
		return false
	}
	return true
}
