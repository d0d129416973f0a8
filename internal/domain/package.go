package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Package is a priced service bundle selectable per event.
type Package struct {
	ID            string
	Name          string
	PackageType   string
	Description   string
	BasePrice     decimal.Decimal
	PricePerGuest decimal.Decimal
	MaxGuests     *int
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Cost computes the package price for a given guest count.
func (p *Package) Cost(guests int) decimal.Decimal {
	if guests < 0 {
		guests = 0
	}
	return p.BasePrice.Add(p.PricePerGuest.Mul(decimal.NewFromInt(int64(guests))))
}
