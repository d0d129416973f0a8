package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/spec-kit/event-service/internal/domain"
	"github.com/spec-kit/event-service/internal/events"
	"github.com/spec-kit/event-service/internal/repository"
)

// AuditService persists an audit trail from dispatched domain events.
type AuditService struct {
	audit      repository.AuditLogRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewAuditService constructs the service.
func NewAuditService(audit repository.AuditLogRepository, dispatcher events.Dispatcher, logger *zap.Logger) *AuditService {
	return &AuditService{audit: audit, dispatcher: dispatcher, logger: logger}
}

var auditedTypes = map[events.EventType]string{
	events.EventBookingCreated:       "event",
	events.EventBookingUpdated:       "event",
	events.EventBookingDeleted:       "event",
	events.EventBookingStatusChanged: "event",
	events.EventGuestAdded:           "event",
	events.EventGuestRSVPChanged:     "event",
	events.EventVendorAssigned:       "event",
	events.EventVendorRemoved:        "event",
	events.EventPaymentRecorded:      "event",
	events.EventUserRegistered:       "user",
	events.EventUserStatusToggled:    "user",
}

// RegisterHandlers subscribes the audit writer to every audited event type.
func (s *AuditService) RegisterHandlers() {
	if s.dispatcher == nil {
		return
	}
	for eventType := range auditedTypes {
		s.dispatcher.Subscribe(eventType, s.record)
	}
}

func (s *AuditService) record(ctx context.Context, event events.Event) error {
	entry := &domain.AuditLog{
		Action:      string(event.Type),
		EntityType:  auditedTypes[event.Type],
		EntityID:    event.EntityID,
		Description: describeEvent(event),
	}
	if event.Actor.UserID != "" {
		actorID := event.Actor.UserID
		entry.ActorID = &actorID
	}
	if payload, ok := payloadValues(event.Payload); ok {
		entry.NewValues = payload
	}

	if err := s.audit.Create(ctx, entry); err != nil {
		s.logger.Warn("audit write failed", zap.String("action", entry.Action), zap.Error(err))
		return err
	}
	return nil
}

func describeEvent(event events.Event) string {
	return fmt.Sprintf("%s by %s", event.Type, event.Actor.UserID)
}

func payloadValues(payload interface{}) (map[string]any, bool) {
	switch p := payload.(type) {
	case events.BookingCreatedPayload:
		return map[string]any{
			"name":            p.Name,
			"event_type":      p.EventType,
			"event_date":      p.EventDate,
			"expected_guests": p.ExpectedGuests,
		}, true
	case events.BookingStatusChangedPayload:
		return map[string]any{
			"old_status": string(p.OldStatus),
			"new_status": string(p.NewStatus),
			"notes":      p.Notes,
		}, true
	case events.GuestRSVPChangedPayload:
		return map[string]any{
			"guest_id":   p.GuestID,
			"old_status": string(p.OldStatus),
			"new_status": string(p.NewStatus),
		}, true
	case events.VendorAssignedPayload:
		values := map[string]any{
			"vendor_id": p.VendorID,
			"quantity":  p.Quantity,
		}
		if p.Price != nil {
			values["price"] = p.Price.StringFixed(2)
		}
		return values, true
	case events.PaymentRecordedPayload:
		return map[string]any{
			"payment_id": p.PaymentID,
			"amount":     p.Amount.StringFixed(2),
			"method":     p.Method,
		}, true
	case events.UserStatusToggledPayload:
		return map[string]any{"active": p.Active}, true
	default:
		return nil, false
	}
}
