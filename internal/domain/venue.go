package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Venue is a catalog entity selectable per event.
type Venue struct {
	ID          string
	Name        string
	Description string
	Location    string
	City        string
	Capacity    int
	BaseRent    decimal.Decimal
	Available   bool
	Rating      float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// FitsGuests reports whether the venue can accommodate the guest count.
func (v *Venue) FitsGuests(count int) bool {
	return count <= v.Capacity
}
