package domain

import (
	"strings"
	"time"
)

// RSVPStatus tracks a guest's attendance response.
type RSVPStatus string

const (
	RSVPPending   RSVPStatus = "PENDING"
	RSVPConfirmed RSVPStatus = "CONFIRMED"
	RSVPDeclined  RSVPStatus = "DECLINED"
)

// Valid reports whether the RSVP status is a known value.
func (s RSVPStatus) Valid() bool {
	return s == RSVPPending || s == RSVPConfirmed || s == RSVPDeclined
}

// Guest belongs to exactly one event.
type Guest struct {
	ID           string
	EventID      string
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	RSVPStatus   RSVPStatus
	RSVPAt       *time.Time
	PlusOneCount int
	Notes        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullName returns the guest's display name.
func (g *Guest) FullName() string {
	return strings.TrimSpace(g.FirstName + " " + g.LastName)
}
