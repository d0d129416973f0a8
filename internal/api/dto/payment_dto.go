package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/spec-kit/event-service/internal/domain"
	"github.com/spec-kit/event-service/internal/service"
)

// PaymentRequest payload for recording a payment.
type PaymentRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Method string          `json:"method"`
}

// ToInput converts the request to the service input.
func (r PaymentRequest) ToInput() service.PaymentInput {
	return service.PaymentInput{Amount: r.Amount, Method: r.Method}
}

// PaymentResponse mirrors a payment row.
type PaymentResponse struct {
	ID            string               `json:"id"`
	EventID       string               `json:"event_id"`
	Amount        string               `json:"amount"`
	Status        domain.PaymentStatus `json:"status"`
	Method        string               `json:"method"`
	TransactionID string               `json:"transaction_id"`
	ReceiptNumber string               `json:"receipt_number"`
	Currency      string               `json:"currency"`
	PaidAt        *time.Time           `json:"paid_at"`
	CreatedAt     time.Time            `json:"created_at"`
}

// NewPaymentResponse maps the domain payment.
func NewPaymentResponse(payment *domain.Payment) PaymentResponse {
	return PaymentResponse{
		ID:            payment.ID,
		EventID:       payment.EventID,
		Amount:        payment.Amount.StringFixed(2),
		Status:        payment.Status,
		Method:        payment.Method,
		TransactionID: payment.TransactionID,
		ReceiptNumber: payment.ReceiptNumber,
		Currency:      payment.Currency,
		PaidAt:        payment.PaidAt,
		CreatedAt:     payment.CreatedAt,
	}
}

// PaymentHistoryResponse bundles the history with the money breakdown.
type PaymentHistoryResponse struct {
	Payments []PaymentResponse   `json:"payments"`
	Totals   EventTotalsResponse `json:"totals"`
}

// NewPaymentHistoryResponse maps payments and totals.
func NewPaymentHistoryResponse(payments []domain.Payment, totals *service.EventTotals) PaymentHistoryResponse {
	responses := make([]PaymentResponse, 0, len(payments))
	for i := range payments {
		responses = append(responses, NewPaymentResponse(&payments[i]))
	}
	return PaymentHistoryResponse{Payments: responses, Totals: NewEventTotals(totals)}
}
