package validate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequire(t *testing.T) {
	f := Fields{}
	assert.False(t, f.Require("name", ""))
	assert.False(t, f.Require("type", "   "))
	assert.True(t, f.Require("city", "Pune"))
	// Any non-empty value passes, format is not Require's concern.
	assert.True(t, f.Require("email", "not-an-email"))

	assert.False(t, f.Ok())
	assert.Equal(t, "is required", f["name"])
	assert.Equal(t, "is required", f["type"])
	assert.NotContains(t, f, "city")
}

func TestEmail(t *testing.T) {
	f := Fields{}
	assert.True(t, f.Email("email", "guest@example.com"))
	assert.True(t, f.Email("email", ""), "empty passes; Require handles mandatory fields")
	assert.False(t, f.Email("contact", "not-an-email"))
	assert.Equal(t, "must be a valid email address", f["contact"])
}

func TestDate(t *testing.T) {
	f := Fields{}
	parsed, ok := f.Date("event_date", "2026-09-14")
	require.True(t, ok)
	assert.Equal(t, 2026, parsed.Year())
	assert.Equal(t, time.September, parsed.Month())

	_, ok = f.Date("bad_date", "14/09/2026")
	assert.False(t, ok)
	_, ok = f.Date("missing_date", "")
	assert.False(t, ok)
	assert.Equal(t, "is required", f["missing_date"])
}

func TestPositiveInt(t *testing.T) {
	f := Fields{}
	n, ok := f.PositiveInt("guests", "120")
	require.True(t, ok)
	assert.Equal(t, 120, n)

	_, ok = f.PositiveInt("zero", "0")
	assert.False(t, ok)
	_, ok = f.PositiveInt("negative", "-3")
	assert.False(t, ok)
	_, ok = f.PositiveInt("word", "many")
	assert.False(t, ok)
	assert.Equal(t, "must be a number", f["word"])
}

func TestPastDate_Birthday(t *testing.T) {
	now := time.Date(2026, 8, 24, 15, 30, 0, 0, time.UTC)

	f := Fields{}
	assert.True(t, f.PastDate("birthday", now.AddDate(-30, 0, 0), now))
	assert.True(t, f.PastDate("birthday2", now.AddDate(0, 0, -1), now))

	// Equal to or after the current date is rejected.
	assert.False(t, f.PastDate("today", now, now))
	assert.False(t, f.PastDate("tomorrow", now.AddDate(0, 0, 1), now))
	assert.Equal(t, "must be before today", f["today"])
}

func TestFutureDate(t *testing.T) {
	now := time.Date(2026, 8, 24, 15, 30, 0, 0, time.UTC)

	f := Fields{}
	assert.True(t, f.FutureDate("event_date", now.AddDate(0, 1, 0), now))
	assert.False(t, f.FutureDate("past", now.AddDate(0, 0, -1), now))
	assert.False(t, f.FutureDate("same", now, now))
}

func TestFirstFailurePerFieldWins(t *testing.T) {
	f := Fields{}
	f.Require("email", "")
	f.Email("email", "still-bad")
	assert.Equal(t, "is required", f["email"])
	assert.Len(t, f, 1)
}

func TestDetails(t *testing.T) {
	f := Fields{}
	f.Require("name", "")
	details := f.Details()
	assert.Equal(t, map[string]any{"name": "is required"}, details)
}
