package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Vendor is an independent catalog entity assignable to events.
type Vendor struct {
	ID            string
	Name          string
	VendorType    string
	Description   string
	BasePrice     decimal.Decimal
	ContactPerson string
	ContactPhone  string
	ContactEmail  string
	Available     bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// EventVendor links a vendor to an event with booking details.
type EventVendor struct {
	ID          string
	EventID     string
	VendorID    string
	Quantity    int
	CustomPrice *decimal.Decimal
	Notes       string
	Confirmed   bool
	BookedAt    time.Time
}

// LineTotal computes the cost of this assignment given the vendor's standard
// price. A custom price, when set, overrides it.
func (ev *EventVendor) LineTotal(standardPrice decimal.Decimal) decimal.Decimal {
	price := standardPrice
	if ev.CustomPrice != nil {
		price = *ev.CustomPrice
	}
	qty := ev.Quantity
	if qty < 1 {
		qty = 1
	}
	return price.Mul(decimal.NewFromInt(int64(qty)))
}
