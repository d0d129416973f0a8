package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus enumerates payment lifecycle states.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "PENDING"
	PaymentStatusPaid     PaymentStatus = "PAID"
	PaymentStatusFailed   PaymentStatus = "FAILED"
	PaymentStatusRefunded PaymentStatus = "REFUNDED"
)

// Payment records money received against an event.
type Payment struct {
	ID            string
	EventID       string
	UserID        string
	Amount        decimal.Decimal
	Status        PaymentStatus
	Method        string
	TransactionID string
	ReceiptNumber string
	Currency      string
	PaidAt        *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
