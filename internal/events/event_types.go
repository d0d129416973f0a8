package events

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/spec-kit/event-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventBookingCreated       EventType = "booking_created"
	EventBookingUpdated       EventType = "booking_updated"
	EventBookingDeleted       EventType = "booking_deleted"
	EventBookingStatusChanged EventType = "booking_status_changed"
	EventGuestAdded           EventType = "guest_added"
	EventGuestRSVPChanged     EventType = "guest_rsvp_changed"
	EventVendorAssigned       EventType = "vendor_assigned"
	EventVendorRemoved        EventType = "vendor_removed"
	EventPaymentRecorded      EventType = "payment_recorded"
	EventUserRegistered       EventType = "user_registered"
	EventUserStatusToggled    EventType = "user_status_toggled"
)

// Actor encapsulates actor metadata for an event.
type Actor struct {
	UserID string      `json:"user_id"`
	Role   domain.Role `json:"role"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	EntityID  string      `json:"entity_id"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// BookingCreatedPayload payload.
type BookingCreatedPayload struct {
	Name           string `json:"name"`
	EventType      string `json:"event_type"`
	EventDate      string `json:"event_date"`
	ExpectedGuests int    `json:"expected_guests"`
}

// BookingStatusChangedPayload payload.
type BookingStatusChangedPayload struct {
	OldStatus domain.EventStatus `json:"old_status"`
	NewStatus domain.EventStatus `json:"new_status"`
	Notes     string             `json:"notes,omitempty"`
}

// GuestRSVPChangedPayload payload.
type GuestRSVPChangedPayload struct {
	GuestID   string            `json:"guest_id"`
	OldStatus domain.RSVPStatus `json:"old_status"`
	NewStatus domain.RSVPStatus `json:"new_status"`
}

// VendorAssignedPayload payload.
type VendorAssignedPayload struct {
	VendorID string           `json:"vendor_id"`
	Quantity int              `json:"quantity"`
	Price    *decimal.Decimal `json:"price,omitempty"`
}

// PaymentRecordedPayload payload.
type PaymentRecordedPayload struct {
	PaymentID string          `json:"payment_id"`
	Amount    decimal.Decimal `json:"amount"`
	Method    string          `json:"method"`
}

// UserStatusToggledPayload payload.
type UserStatusToggledPayload struct {
	Active bool `json:"active"`
}
