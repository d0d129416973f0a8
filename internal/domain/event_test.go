package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEventStatus_VisualClass(t *testing.T) {
	cases := []struct {
		status EventStatus
		class  string
	}{
		{EventStatusPending, "warning"},
		{EventStatusConfirmed, "success"},
		{EventStatusCancelled, "danger"},
		{EventStatusCompleted, "primary"},
		{EventStatus("SOMETHING_ELSE"), "primary"},
		{EventStatus(""), "primary"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.class, tc.status.VisualClass(), "status %q", tc.status)
	}
}

func TestValidTransition(t *testing.T) {
	cases := []struct {
		from, to EventStatus
		ok       bool
	}{
		{EventStatusPending, EventStatusConfirmed, true},
		{EventStatusPending, EventStatusCancelled, true},
		{EventStatusPending, EventStatusCompleted, false},
		{EventStatusConfirmed, EventStatusCompleted, true},
		{EventStatusConfirmed, EventStatusCancelled, true},
		{EventStatusConfirmed, EventStatusPending, false},
		{EventStatusCancelled, EventStatusPending, false},
		{EventStatusCancelled, EventStatusConfirmed, false},
		{EventStatusCompleted, EventStatusCancelled, false},
		{EventStatusCompleted, EventStatusConfirmed, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.ok, ValidTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestEvent_EditableAndDeletable(t *testing.T) {
	cases := []struct {
		status    EventStatus
		editable  bool
		deletable bool
	}{
		{EventStatusPending, true, true},
		{EventStatusConfirmed, true, false},
		{EventStatusCancelled, false, true},
		{EventStatusCompleted, false, false},
	}

	for _, tc := range cases {
		e := Event{Status: tc.status}
		assert.Equal(t, tc.editable, e.Editable(), "editable %s", tc.status)
		assert.Equal(t, tc.deletable, e.Deletable(), "deletable %s", tc.status)
	}
}

func TestEvent_Upcoming(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	future := Event{EventDate: now.AddDate(0, 1, 0), Status: EventStatusPending}
	assert.True(t, future.Upcoming(now))

	cancelled := Event{EventDate: now.AddDate(0, 1, 0), Status: EventStatusCancelled}
	assert.False(t, cancelled.Upcoming(now))

	past := Event{EventDate: now.AddDate(0, -1, 0), Status: EventStatusConfirmed}
	assert.False(t, past.Upcoming(now))
}

func TestEventStatus_Valid(t *testing.T) {
	for _, s := range []EventStatus{EventStatusPending, EventStatusConfirmed, EventStatusCancelled, EventStatusCompleted} {
		assert.True(t, s.Valid())
	}
	assert.False(t, EventStatus("APPROVED").Valid())
}
