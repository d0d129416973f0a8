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
	"github.com/spec-kit/event-service/internal/validate"
	apperrors "github.com/spec-kit/event-service/pkg/util"
)

// EventService coordinates booking workflows.
type EventService struct {
	events       repository.EventRepository
	venues       repository.VenueRepository
	packages     repository.PackageRepository
	eventVendors repository.EventVendorRepository
	payments     repository.PaymentRepository
	cache        *listCache
	dispatcher   events.Dispatcher
}

// EventDependencies bundles requirements for the event service.
type EventDependencies struct {
	EventRepo       repository.EventRepository
	VenueRepo       repository.VenueRepository
	PackageRepo     repository.PackageRepository
	EventVendorRepo repository.EventVendorRepository
	PaymentRepo     repository.PaymentRepository
	Cache           *listCache
	Dispatcher      events.Dispatcher
}

// NewEventService constructs the service.
func NewEventService(deps EventDependencies) *EventService {
	return &EventService{
		events:       deps.EventRepo,
		venues:       deps.VenueRepo,
		packages:     deps.PackageRepo,
		eventVendors: deps.EventVendorRepo,
		payments:     deps.PaymentRepo,
		cache:        deps.Cache,
		dispatcher:   deps.Dispatcher,
	}
}

// EventInput describes the create/update payload.
type EventInput struct {
	Name            string
	EventType       string
	Description     string
	EventDate       string
	EventTime       string
	ExpectedGuests  int
	VenueID         *string
	PackageID       *string
	SpecialRequests string
}

// EventSummary is one row of the listing view.
type EventSummary struct {
	Event                 domain.Event    `json:"event"`
	VenueName             *string         `json:"venue_name,omitempty"`
	PackageName           *string         `json:"package_name,omitempty"`
	StatusClass           string          `json:"status_class"`
	EstimatedTotal        decimal.Decimal `json:"estimated_total"`
	EstimatedTotalDisplay string          `json:"estimated_total_display"`
}

// EventTotals breaks down the money picture for one event.
type EventTotals struct {
	Quote            decimal.Decimal
	VendorTotal      decimal.Decimal
	Total            decimal.Decimal
	Paid             decimal.Decimal
	Remaining        decimal.Decimal
	TotalDisplay     string
	PaidDisplay      string
	RemainingDisplay string
}

// optionalID treats an empty or blank selection the same as no selection, so
// an unselected form field never reaches the database as an empty UUID.
func optionalID(id *string) *string {
	if id == nil || strings.TrimSpace(*id) == "" {
		return nil
	}
	return id
}

func (s *EventService) validateInput(ctx context.Context, input EventInput) (time.Time, *domain.Venue, *domain.Package, error) {
	fields := validate.Fields{}
	fields.Require("name", input.Name)
	fields.Require("event_type", input.EventType)

	eventDate, _ := fields.Date("event_date", input.EventDate)
	if !eventDate.IsZero() {
		fields.FutureDate("event_date", eventDate, time.Now())
	}
	if input.ExpectedGuests <= 0 {
		fields["expected_guests"] = "must be positive"
	}

	var venue *domain.Venue
	if venueID := optionalID(input.VenueID); venueID != nil {
		found, err := s.venues.GetByID(ctx, *venueID)
		if err != nil {
			if err == pgx.ErrNoRows {
				fields["venue_id"] = "unknown venue"
			} else {
				return time.Time{}, nil, nil, apperrors.MapError(err)
			}
		} else {
			if !found.Available {
				fields["venue_id"] = "venue not available"
			} else if !found.FitsGuests(input.ExpectedGuests) {
				fields["venue_id"] = "venue capacity exceeded"
			}
			venue = found
		}
	}

	var pkg *domain.Package
	if packageID := optionalID(input.PackageID); packageID != nil {
		found, err := s.packages.GetByID(ctx, *packageID)
		if err != nil {
			if err == pgx.ErrNoRows {
				fields["package_id"] = "unknown package"
			} else {
				return time.Time{}, nil, nil, apperrors.MapError(err)
			}
		} else {
			if !found.Active {
				fields["package_id"] = "package not active"
			} else if found.MaxGuests != nil && input.ExpectedGuests > *found.MaxGuests {
				fields["package_id"] = "package guest limit exceeded"
			}
			pkg = found
		}
	}

	if !fields.Ok() {
		return time.Time{}, nil, nil, apperrors.NewValidationError("event validation failed", fields.Details())
	}
	return eventDate, venue, pkg, nil
}

// Create books a new event for the owner.
func (s *EventService) Create(ctx context.Context, ownerID string, input EventInput) (*domain.Event, error) {
	eventDate, _, _, err := s.validateInput(ctx, input)
	if err != nil {
		return nil, err
	}

	event := &domain.Event{
		OwnerID:         ownerID,
		Name:            strings.TrimSpace(input.Name),
		EventType:       strings.TrimSpace(input.EventType),
		Description:     strings.TrimSpace(input.Description),
		EventDate:       eventDate,
		EventTime:       strings.TrimSpace(input.EventTime),
		ExpectedGuests:  input.ExpectedGuests,
		VenueID:         optionalID(input.VenueID),
		PackageID:       optionalID(input.PackageID),
		SpecialRequests: strings.TrimSpace(input.SpecialRequests),
		Status:          domain.EventStatusPending,
	}
	if err := s.events.Create(ctx, event); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.invalidate(ctx, ownerID)
	s.publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventBookingCreated,
		EntityID:  event.ID,
		Actor:     events.Actor{UserID: ownerID, Role: domain.RoleClient},
		Timestamp: time.Now(),
		Payload: events.BookingCreatedPayload{
			Name:           event.Name,
			EventType:      event.EventType,
			EventDate:      event.EventDate.Format(validate.DateLayout),
			ExpectedGuests: event.ExpectedGuests,
		},
	})
	return event, nil
}

// Get fetches one event, enforcing ownership for non-admin callers.
func (s *EventService) Get(ctx context.Context, callerID string, isAdmin bool, eventID string) (*domain.Event, error) {
	event, err := s.events.GetByID(ctx, eventID)
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

// Update edits an event while its status still permits changes.
func (s *EventService) Update(ctx context.Context, callerID string, isAdmin bool, eventID string, input EventInput) (*domain.Event, error) {
	event, err := s.Get(ctx, callerID, isAdmin, eventID)
	if err != nil {
		return nil, err
	}
	if !event.Editable() {
		return nil, apperrors.NewConflict("event can no longer be edited", map[string]any{
			"status": string(event.Status),
		})
	}

	eventDate, _, _, err := s.validateInput(ctx, input)
	if err != nil {
		return nil, err
	}

	event.Name = strings.TrimSpace(input.Name)
	event.EventType = strings.TrimSpace(input.EventType)
	event.Description = strings.TrimSpace(input.Description)
	event.EventDate = eventDate
	event.EventTime = strings.TrimSpace(input.EventTime)
	event.ExpectedGuests = input.ExpectedGuests
	event.VenueID = optionalID(input.VenueID)
	event.PackageID = optionalID(input.PackageID)
	event.SpecialRequests = strings.TrimSpace(input.SpecialRequests)

	if err := s.events.Update(ctx, event); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.invalidate(ctx, event.OwnerID)
	s.publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventBookingUpdated,
		EntityID:  event.ID,
		Actor:     actorFor(callerID, isAdmin),
		Timestamp: time.Now(),
	})
	return event, nil
}

// Delete removes an event while its status still permits removal. Guests,
// vendor assignments and payments cascade at the database level.
func (s *EventService) Delete(ctx context.Context, callerID string, isAdmin bool, eventID string) error {
	event, err := s.Get(ctx, callerID, isAdmin, eventID)
	if err != nil {
		return err
	}
	if !event.Deletable() {
		return apperrors.NewConflict("event can no longer be deleted", map[string]any{
			"status": string(event.Status),
		})
	}

	if err := s.events.Delete(ctx, eventID); err != nil {
		return apperrors.MapError(err)
	}

	s.invalidate(ctx, event.OwnerID)
	s.publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventBookingDeleted,
		EntityID:  event.ID,
		Actor:     actorFor(callerID, isAdmin),
		Timestamp: time.Now(),
	})
	return nil
}

// ListForOwner returns the owner's listing rows, served from the short-lived
// cache when a poll arrives within the TTL.
func (s *EventService) ListForOwner(ctx context.Context, ownerID string) ([]EventSummary, error) {
	key := ownerEventsKey(ownerID)
	var cached []EventSummary
	if s.cache.get(ctx, key, &cached) {
		return cached, nil
	}

	items, err := s.events.ListWithFilter(ctx, repository.EventFilter{OwnerID: &ownerID, Limit: 100})
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	summaries := make([]EventSummary, 0, len(items))
	for _, item := range items {
		summaries = append(summaries, summarize(item))
	}
	s.cache.set(ctx, key, summaries)
	return summaries, nil
}

// ListAll returns filtered rows for the admin view, bypassing the cache.
func (s *EventService) ListAll(ctx context.Context, filter repository.EventFilter) ([]EventSummary, error) {
	items, err := s.events.ListWithFilter(ctx, filter)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	summaries := make([]EventSummary, 0, len(items))
	for _, item := range items {
		summaries = append(summaries, summarize(item))
	}
	return summaries, nil
}

func summarize(item repository.EventListItem) EventSummary {
	var pkg *domain.Package
	if item.PackageBase != nil {
		pkg = &domain.Package{BasePrice: *item.PackageBase}
		if item.PackagePerCap != nil {
			pkg.PricePerGuest = *item.PackagePerCap
		}
	}
	var venue *domain.Venue
	if item.VenueRent != nil {
		venue = &domain.Venue{BaseRent: *item.VenueRent}
	}

	total := pricing.Quote(pkg, venue, item.Event.ExpectedGuests)
	return EventSummary{
		Event:                 item.Event,
		VenueName:             item.VenueName,
		PackageName:           item.PackageName,
		StatusClass:           item.Event.Status.VisualClass(),
		EstimatedTotal:        total,
		EstimatedTotalDisplay: pricing.FormatINR(total),
	}
}

// ChangeStatus applies an admin status transition.
func (s *EventService) ChangeStatus(ctx context.Context, adminID, eventID string, next domain.EventStatus, notes string) (*domain.Event, error) {
	if !next.Valid() {
		return nil, apperrors.NewValidationError("unknown status", map[string]any{"status": string(next)})
	}

	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("event", nil)
		}
		return nil, apperrors.MapError(err)
	}
	if !domain.ValidTransition(event.Status, next) {
		return nil, apperrors.NewConflict("invalid status transition", map[string]any{
			"from": string(event.Status),
			"to":   string(next),
		})
	}

	previous := event.Status
	event.Status = next
	if strings.TrimSpace(notes) != "" {
		event.AdminNotes = strings.TrimSpace(notes)
	}
	if next == domain.EventStatusConfirmed && event.ConfirmedAt == nil {
		now := time.Now()
		event.ConfirmedAt = &now
	}

	if err := s.events.Update(ctx, event); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.invalidate(ctx, event.OwnerID)
	s.publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventBookingStatusChanged,
		EntityID:  event.ID,
		Actor:     events.Actor{UserID: adminID, Role: domain.RoleAdmin},
		Timestamp: time.Now(),
		Payload: events.BookingStatusChangedPayload{
			OldStatus: previous,
			NewStatus: next,
			Notes:     event.AdminNotes,
		},
	})
	return event, nil
}

// Totals computes the money breakdown for one event.
func (s *EventService) Totals(ctx context.Context, callerID string, isAdmin bool, eventID string) (*EventTotals, error) {
	event, err := s.Get(ctx, callerID, isAdmin, eventID)
	if err != nil {
		return nil, err
	}

	pkg, venue, err := s.loadSelections(ctx, event)
	if err != nil {
		return nil, err
	}

	assignments, err := s.eventVendors.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	lines := make([]pricing.VendorLine, 0, len(assignments))
	for _, detail := range assignments {
		lines = append(lines, pricing.VendorLine{
			Assignment:    detail.Assignment,
			StandardPrice: detail.VendorBasePrice,
		})
	}

	quote := pricing.Quote(pkg, venue, event.ExpectedGuests)
	total := pricing.EventTotal(pkg, venue, event.ExpectedGuests, lines)

	paid, err := s.payments.SumPaidByEvent(ctx, eventID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	remaining := total.Sub(paid)

	return &EventTotals{
		Quote:            quote,
		VendorTotal:      total.Sub(quote),
		Total:            total,
		Paid:             paid,
		Remaining:        remaining,
		TotalDisplay:     pricing.FormatINR(total),
		PaidDisplay:      pricing.FormatINR(paid),
		RemainingDisplay: pricing.FormatINR(remaining),
	}, nil
}

func (s *EventService) loadSelections(ctx context.Context, event *domain.Event) (*domain.Package, *domain.Venue, error) {
	var pkg *domain.Package
	if event.PackageID != nil {
		found, err := s.packages.GetByID(ctx, *event.PackageID)
		if err != nil && err != pgx.ErrNoRows {
			return nil, nil, apperrors.MapError(err)
		}
		pkg = found
	}
	var venue *domain.Venue
	if event.VenueID != nil {
		found, err := s.venues.GetByID(ctx, *event.VenueID)
		if err != nil && err != pgx.ErrNoRows {
			return nil, nil, apperrors.MapError(err)
		}
		venue = found
	}
	return pkg, venue, nil
}

func (s *EventService) invalidate(ctx context.Context, ownerID string) {
	s.cache.invalidate(ctx, ownerEventsKey(ownerID), dashboardKey)
}

func (s *EventService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, event)
}

func actorFor(userID string, isAdmin bool) events.Actor {
	role := domain.RoleClient
	if isAdmin {
		role = domain.RoleAdmin
	}
	return events.Actor{UserID: userID, Role: role}
}
