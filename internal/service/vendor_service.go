package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/spec-kit/event-service/internal/domain"
	"github.com/spec-kit/event-service/internal/events"
	"github.com/spec-kit/event-service/internal/pricing"
	"github.com/spec-kit/event-service/internal/repository"
	apperrors "github.com/spec-kit/event-service/pkg/util"
)

// VendorService manages vendor assignments on events.
type VendorService struct {
	vendors      repository.VendorRepository
	eventVendors repository.EventVendorRepository
	eventsRepo   repository.EventRepository
	dispatcher   events.Dispatcher
}

// VendorDependencies bundles requirements for the vendor service.
type VendorDependencies struct {
	VendorRepo      repository.VendorRepository
	EventVendorRepo repository.EventVendorRepository
	EventRepo       repository.EventRepository
	Dispatcher      events.Dispatcher
}

// NewVendorService constructs the service.
func NewVendorService(deps VendorDependencies) *VendorService {
	return &VendorService{
		vendors:      deps.VendorRepo,
		eventVendors: deps.EventVendorRepo,
		eventsRepo:   deps.EventRepo,
		dispatcher:   deps.Dispatcher,
	}
}

// AssignInput describes a vendor booking payload.
type AssignInput struct {
	VendorID    string
	Quantity    int
	CustomPrice *decimal.Decimal
	Notes       string
}

// VendorLineView is one assignment row with its computed line total.
type VendorLineView struct {
	Assignment       domain.EventVendor `json:"assignment"`
	VendorName       string             `json:"vendor_name"`
	VendorType       string             `json:"vendor_type"`
	LineTotal        decimal.Decimal    `json:"line_total"`
	LineTotalDisplay string             `json:"line_total_display"`
}

func (s *VendorService) guardEvent(ctx context.Context, callerID string, isAdmin bool, eventID string) (*domain.Event, error) {
	event, err := s.eventsRepo.GetByID(ctx, eventID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("event", nil)
		}
		return nil, apperrors.MapError(err)
	}
	if !isAdmin && event.OwnerID != callerID {
		return nil, apperrors.NewNotFound("event", nil)
	}
	return event, nil
}

// Assign books a vendor onto an event. A vendor can be booked at most once
// per event.
func (s *VendorService) Assign(ctx context.Context, callerID string, isAdmin bool, eventID string, input AssignInput) (*domain.EventVendor, error) {
	event, err := s.guardEvent(ctx, callerID, isAdmin, eventID)
	if err != nil {
		return nil, err
	}

	vendor, err := s.vendors.GetByID(ctx, input.VendorID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("vendor", nil)
		}
		return nil, apperrors.MapError(err)
	}
	if !vendor.Available {
		return nil, apperrors.NewConflict("vendor not available", nil)
	}
	if input.Quantity < 1 {
		return nil, apperrors.NewValidationError("vendor validation failed", map[string]any{
			"quantity": "must be positive",
		})
	}
	if input.CustomPrice != nil && input.CustomPrice.IsNegative() {
		return nil, apperrors.NewValidationError("custom price must not be negative", nil)
	}

	if _, err := s.eventVendors.GetByEventAndVendor(ctx, eventID, input.VendorID); err == nil {
		return nil, apperrors.NewConflict("vendor already assigned to event", nil)
	} else if err != pgx.ErrNoRows {
		return nil, apperrors.MapError(err)
	}

	assignment := &domain.EventVendor{
		EventID:     event.ID,
		VendorID:    vendor.ID,
		Quantity:    input.Quantity,
		CustomPrice: input.CustomPrice,
		Notes:       strings.TrimSpace(input.Notes),
	}
	if err := s.eventVendors.Create(ctx, assignment); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventVendorAssigned,
		EntityID:  event.ID,
		Actor:     actorFor(callerID, isAdmin),
		Timestamp: time.Now(),
		Payload: events.VendorAssignedPayload{
			VendorID: vendor.ID,
			Quantity: input.Quantity,
			Price:    input.CustomPrice,
		},
	})
	return assignment, nil
}

// Remove unbooks a vendor from an event.
func (s *VendorService) Remove(ctx context.Context, callerID string, isAdmin bool, eventID, vendorID string) error {
	event, err := s.guardEvent(ctx, callerID, isAdmin, eventID)
	if err != nil {
		return err
	}

	if err := s.eventVendors.Delete(ctx, eventID, vendorID); err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("vendor assignment", nil)
		}
		return apperrors.MapError(err)
	}

	s.publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventVendorRemoved,
		EntityID:  event.ID,
		Actor:     actorFor(callerID, isAdmin),
		Timestamp: time.Now(),
	})
	return nil
}

// List returns assignment rows with computed line totals.
func (s *VendorService) List(ctx context.Context, callerID string, isAdmin bool, eventID string) ([]VendorLineView, error) {
	if _, err := s.guardEvent(ctx, callerID, isAdmin, eventID); err != nil {
		return nil, err
	}

	details, err := s.eventVendors.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	views := make([]VendorLineView, 0, len(details))
	for _, detail := range details {
		total := detail.Assignment.LineTotal(detail.VendorBasePrice)
		views = append(views, VendorLineView{
			Assignment:       detail.Assignment,
			VendorName:       detail.VendorName,
			VendorType:       detail.VendorType,
			LineTotal:        total,
			LineTotalDisplay: pricing.FormatINR(total),
		})
	}
	return views, nil
}

func (s *VendorService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, event)
}
