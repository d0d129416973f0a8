package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/spec-kit/event-service/internal/domain"
	"github.com/spec-kit/event-service/internal/events"
	"github.com/spec-kit/event-service/internal/repository"
	apperrors "github.com/spec-kit/event-service/pkg/util"
)

// PaymentService records money against events.
type PaymentService struct {
	payments     repository.PaymentRepository
	eventService *EventService
	dispatcher   events.Dispatcher
}

// PaymentDependencies bundles requirements for the payment service.
type PaymentDependencies struct {
	PaymentRepo  repository.PaymentRepository
	EventService *EventService
	Dispatcher   events.Dispatcher
}

// NewPaymentService constructs the service.
func NewPaymentService(deps PaymentDependencies) *PaymentService {
	return &PaymentService{
		payments:     deps.PaymentRepo,
		eventService: deps.EventService,
		dispatcher:   deps.Dispatcher,
	}
}

// PaymentInput describes a payment submission.
type PaymentInput struct {
	Amount decimal.Decimal
	Method string
}

// Record accepts a payment for the event. The amount must stay within the
// remaining balance so an event can never be overpaid.
func (s *PaymentService) Record(ctx context.Context, callerID string, isAdmin bool, eventID string, input PaymentInput) (*domain.Payment, error) {
	event, err := s.eventService.Get(ctx, callerID, isAdmin, eventID)
	if err != nil {
		return nil, err
	}
	if event.Status == domain.EventStatusCancelled {
		return nil, apperrors.NewConflict("cannot pay for a cancelled event", nil)
	}

	if !input.Amount.IsPositive() {
		return nil, apperrors.NewValidationError("payment validation failed", map[string]any{
			"amount": "must be positive",
		})
	}
	method := strings.TrimSpace(input.Method)
	if method == "" {
		return nil, apperrors.NewValidationError("payment validation failed", map[string]any{
			"method": "is required",
		})
	}

	totals, err := s.eventService.Totals(ctx, callerID, isAdmin, eventID)
	if err != nil {
		return nil, err
	}
	if input.Amount.GreaterThan(totals.Remaining) {
		return nil, apperrors.NewConflict("amount exceeds remaining balance", map[string]any{
			"remaining": totals.Remaining.StringFixed(2),
		})
	}

	now := time.Now()
	payment := &domain.Payment{
		EventID:       event.ID,
		UserID:        callerID,
		Amount:        input.Amount,
		Status:        domain.PaymentStatusPaid,
		Method:        method,
		TransactionID: transactionID(),
		ReceiptNumber: receiptNumber(now),
		Currency:      "INR",
		PaidAt:        &now,
	}
	if err := s.payments.Create(ctx, payment); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventPaymentRecorded,
		EntityID:  event.ID,
		Actor:     actorFor(callerID, isAdmin),
		Timestamp: now,
		Payload: events.PaymentRecordedPayload{
			PaymentID: payment.ID,
			Amount:    payment.Amount,
			Method:    payment.Method,
		},
	})
	return payment, nil
}

// List returns the event's payment history along with its money breakdown.
func (s *PaymentService) List(ctx context.Context, callerID string, isAdmin bool, eventID string) ([]domain.Payment, *EventTotals, error) {
	if _, err := s.eventService.Get(ctx, callerID, isAdmin, eventID); err != nil {
		return nil, nil, err
	}

	history, err := s.payments.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, nil, apperrors.MapError(err)
	}
	totals, err := s.eventService.Totals(ctx, callerID, isAdmin, eventID)
	if err != nil {
		return nil, nil, err
	}
	return history, totals, nil
}

func transactionID() string {
	return "TXN-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:12])
}

func receiptNumber(at time.Time) string {
	return "RCP-" + at.Format("20060102") + "-" + strings.ToUpper(uuid.NewString()[:8])
}

func (s *PaymentService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, event)
}
