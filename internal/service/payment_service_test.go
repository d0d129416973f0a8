package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/event-service/internal/domain"
	apperrors "github.com/spec-kit/event-service/pkg/util"
)

func newTestPaymentService() (*PaymentService, *EventService, *fakeEventRepo) {
	eventSvc, eventRepo, _, payments := newTestEventService()
	svc := NewPaymentService(PaymentDependencies{
		PaymentRepo:  payments,
		EventService: eventSvc,
	})
	return svc, eventSvc, eventRepo
}

func TestRecordPaymentHappyPath(t *testing.T) {
	svc, eventSvc, _ := newTestPaymentService()

	event, err := eventSvc.Create(context.Background(), "owner-1", validInput())
	require.NoError(t, err)

	payment, err := svc.Record(context.Background(), "owner-1", false, event.ID, PaymentInput{
		Amount: decimal.NewFromInt(30000),
		Method: "UPI",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusPaid, payment.Status)
	assert.Equal(t, "INR", payment.Currency)
	assert.NotEmpty(t, payment.TransactionID)
	assert.NotEmpty(t, payment.ReceiptNumber)
	assert.NotNil(t, payment.PaidAt)

	totals, err := eventSvc.Totals(context.Background(), "owner-1", false, event.ID)
	require.NoError(t, err)
	assert.True(t, totals.Remaining.Equal(decimal.NewFromInt(50000)), totals.Remaining.String())
}

func TestRecordPaymentRejectsOverpayment(t *testing.T) {
	svc, eventSvc, _ := newTestPaymentService()

	event, err := eventSvc.Create(context.Background(), "owner-1", validInput())
	require.NoError(t, err)

	// Quote is 80,000; pay most of it, then try to exceed the remainder.
	_, err = svc.Record(context.Background(), "owner-1", false, event.ID, PaymentInput{
		Amount: decimal.NewFromInt(70000),
		Method: "CARD",
	})
	require.NoError(t, err)

	_, err = svc.Record(context.Background(), "owner-1", false, event.ID, PaymentInput{
		Amount: decimal.NewFromInt(20000),
		Method: "CARD",
	})
	require.Error(t, err)
	assert.Equal(t, "CONFLICT", apperrors.ToDomainError(err).Code)
}

func TestRecordPaymentRejectsNonPositiveAmount(t *testing.T) {
	svc, eventSvc, _ := newTestPaymentService()

	event, err := eventSvc.Create(context.Background(), "owner-1", validInput())
	require.NoError(t, err)

	_, err = svc.Record(context.Background(), "owner-1", false, event.ID, PaymentInput{
		Amount: decimal.Zero,
		Method: "CASH",
	})
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
}

func TestRecordPaymentRejectsCancelledEvent(t *testing.T) {
	svc, eventSvc, eventRepo := newTestPaymentService()

	event, err := eventSvc.Create(context.Background(), "owner-1", validInput())
	require.NoError(t, err)
	eventRepo.byID[event.ID].Status = domain.EventStatusCancelled

	_, err = svc.Record(context.Background(), "owner-1", false, event.ID, PaymentInput{
		Amount: decimal.NewFromInt(1000),
		Method: "CASH",
	})
	require.Error(t, err)
	assert.Equal(t, "CONFLICT", apperrors.ToDomainError(err).Code)
}
