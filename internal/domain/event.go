package domain

import "time"

// EventStatus enumerates lifecycle states for events.
type EventStatus string

const (
	EventStatusPending   EventStatus = "PENDING"
	EventStatusConfirmed EventStatus = "CONFIRMED"
	EventStatusCancelled EventStatus = "CANCELLED"
	EventStatusCompleted EventStatus = "COMPLETED"
)

// Valid reports whether the status is a known value.
func (s EventStatus) Valid() bool {
	switch s {
	case EventStatusPending, EventStatusConfirmed, EventStatusCancelled, EventStatusCompleted:
		return true
	}
	return false
}

// VisualClass maps a status to the visual class used by the listing view.
// The mapping is total: unknown values fall back to the default class.
func (s EventStatus) VisualClass() string {
	switch s {
	case EventStatusPending:
		return "warning"
	case EventStatusConfirmed:
		return "success"
	case EventStatusCancelled:
		return "danger"
	case EventStatusCompleted:
		return "primary"
	default:
		return "primary"
	}
}

var allowedTransitions = map[EventStatus][]EventStatus{
	EventStatusPending:   {EventStatusConfirmed, EventStatusCancelled},
	EventStatusConfirmed: {EventStatusCompleted, EventStatusCancelled},
	EventStatusCancelled: {},
	EventStatusCompleted: {},
}

// ValidTransition reports whether an event may move from current to next.
func ValidTransition(current, next EventStatus) bool {
	for _, candidate := range allowedTransitions[current] {
		if candidate == next {
			return true
		}
	}
	return false
}

// Event is the central aggregate: a client booking with optional venue and
// package selections.
type Event struct {
	ID              string
	OwnerID         string
	Name            string
	EventType       string
	Description     string
	EventDate       time.Time
	EventTime       string
	ExpectedGuests  int
	VenueID         *string
	PackageID       *string
	SpecialRequests string
	Status          EventStatus
	AdminNotes      string
	ConfirmedAt     *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Editable reports whether the owner may still modify the event.
func (e *Event) Editable() bool {
	return e.Status == EventStatusPending || e.Status == EventStatusConfirmed
}

// Deletable reports whether the owner may delete the event.
func (e *Event) Deletable() bool {
	return e.Status == EventStatusPending || e.Status == EventStatusCancelled
}

// Upcoming reports whether the event lies in the future and is not cancelled.
func (e *Event) Upcoming(now time.Time) bool {
	return e.EventDate.After(now) && e.Status != EventStatusCancelled
}
