package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/event-service/internal/domain"
	"github.com/spec-kit/event-service/internal/events"
	"github.com/spec-kit/event-service/internal/repository"
	"github.com/spec-kit/event-service/internal/validate"
	apperrors "github.com/spec-kit/event-service/pkg/util"
)

// GuestService manages per-event guest lists.
type GuestService struct {
	guests     repository.GuestRepository
	eventsRepo repository.EventRepository
	dispatcher events.Dispatcher
}

// GuestDependencies bundles requirements for the guest service.
type GuestDependencies struct {
	GuestRepo  repository.GuestRepository
	EventRepo  repository.EventRepository
	Dispatcher events.Dispatcher
}

// NewGuestService constructs the service.
func NewGuestService(deps GuestDependencies) *GuestService {
	return &GuestService{
		guests:     deps.GuestRepo,
		eventsRepo: deps.EventRepo,
		dispatcher: deps.Dispatcher,
	}
}

// GuestInput describes the create/update payload.
type GuestInput struct {
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	PlusOneCount int
	Notes        string
}

// guardEvent loads the event and enforces ownership for non-admin callers.
func (s *GuestService) guardEvent(ctx context.Context, callerID string, isAdmin bool, eventID string) (*domain.Event, error) {
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

func validateGuestInput(input GuestInput) error {
	fields := validate.Fields{}
	fields.Require("first_name", input.FirstName)
	fields.Require("last_name", input.LastName)
	fields.Email("email", input.Email)
	if input.PlusOneCount < 0 {
		fields["plus_one_count"] = "must not be negative"
	}
	if !fields.Ok() {
		return apperrors.NewValidationError("guest validation failed", fields.Details())
	}
	return nil
}

// Add creates a guest on the event's list.
func (s *GuestService) Add(ctx context.Context, callerID string, isAdmin bool, eventID string, input GuestInput) (*domain.Guest, error) {
	event, err := s.guardEvent(ctx, callerID, isAdmin, eventID)
	if err != nil {
		return nil, err
	}
	if err := validateGuestInput(input); err != nil {
		return nil, err
	}

	guest := &domain.Guest{
		EventID:      event.ID,
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		Email:        strings.TrimSpace(input.Email),
		Phone:        strings.TrimSpace(input.Phone),
		RSVPStatus:   domain.RSVPPending,
		PlusOneCount: input.PlusOneCount,
		Notes:        strings.TrimSpace(input.Notes),
	}
	if err := s.guests.Create(ctx, guest); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventGuestAdded,
		EntityID:  event.ID,
		Actor:     actorFor(callerID, isAdmin),
		Timestamp: time.Now(),
	})
	return guest, nil
}

// Update edits guest contact details.
func (s *GuestService) Update(ctx context.Context, callerID string, isAdmin bool, eventID, guestID string, input GuestInput) (*domain.Guest, error) {
	if _, err := s.guardEvent(ctx, callerID, isAdmin, eventID); err != nil {
		return nil, err
	}
	if err := validateGuestInput(input); err != nil {
		return nil, err
	}

	guest, err := s.loadGuest(ctx, eventID, guestID)
	if err != nil {
		return nil, err
	}

	guest.FirstName = strings.TrimSpace(input.FirstName)
	guest.LastName = strings.TrimSpace(input.LastName)
	guest.Email = strings.TrimSpace(input.Email)
	guest.Phone = strings.TrimSpace(input.Phone)
	guest.PlusOneCount = input.PlusOneCount
	guest.Notes = strings.TrimSpace(input.Notes)

	if err := s.guests.Update(ctx, guest); err != nil {
		return nil, apperrors.MapError(err)
	}
	return guest, nil
}

// SetRSVP records an attendance response and stamps the response time.
func (s *GuestService) SetRSVP(ctx context.Context, callerID string, isAdmin bool, eventID, guestID string, status domain.RSVPStatus) (*domain.Guest, error) {
	if !status.Valid() {
		return nil, apperrors.NewValidationError("unknown rsvp status", map[string]any{"rsvp_status": string(status)})
	}
	if _, err := s.guardEvent(ctx, callerID, isAdmin, eventID); err != nil {
		return nil, err
	}

	guest, err := s.loadGuest(ctx, eventID, guestID)
	if err != nil {
		return nil, err
	}

	previous := guest.RSVPStatus
	guest.RSVPStatus = status
	now := time.Now()
	guest.RSVPAt = &now

	if err := s.guests.Update(ctx, guest); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventGuestRSVPChanged,
		EntityID:  eventID,
		Actor:     actorFor(callerID, isAdmin),
		Timestamp: now,
		Payload: events.GuestRSVPChangedPayload{
			GuestID:   guest.ID,
			OldStatus: previous,
			NewStatus: status,
		},
	})
	return guest, nil
}

// Remove deletes a guest from the event's list.
func (s *GuestService) Remove(ctx context.Context, callerID string, isAdmin bool, eventID, guestID string) error {
	if _, err := s.guardEvent(ctx, callerID, isAdmin, eventID); err != nil {
		return err
	}
	if _, err := s.loadGuest(ctx, eventID, guestID); err != nil {
		return err
	}
	return apperrors.MapError(s.guests.Delete(ctx, guestID))
}

// List returns all guests of the event plus headcount aggregates.
func (s *GuestService) List(ctx context.Context, callerID string, isAdmin bool, eventID string) ([]domain.Guest, GuestStats, error) {
	if _, err := s.guardEvent(ctx, callerID, isAdmin, eventID); err != nil {
		return nil, GuestStats{}, err
	}

	guests, err := s.guests.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, GuestStats{}, apperrors.MapError(err)
	}

	stats := GuestStats{Total: len(guests)}
	for _, guest := range guests {
		switch guest.RSVPStatus {
		case domain.RSVPConfirmed:
			stats.Confirmed++
			stats.Headcount += 1 + guest.PlusOneCount
		case domain.RSVPDeclined:
			stats.Declined++
		default:
			stats.Pending++
		}
	}
	return guests, stats, nil
}

// GuestStats summarizes RSVP responses. Headcount counts confirmed guests
// plus their companions.
type GuestStats struct {
	Total     int `json:"total"`
	Confirmed int `json:"confirmed"`
	Declined  int `json:"declined"`
	Pending   int `json:"pending"`
	Headcount int `json:"headcount"`
}

func (s *GuestService) loadGuest(ctx context.Context, eventID, guestID string) (*domain.Guest, error) {
	guest, err := s.guests.GetByID(ctx, guestID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("guest", nil)
		}
		return nil, apperrors.MapError(err)
	}
	if guest.EventID != eventID {
		return nil, apperrors.NewNotFound("guest", nil)
	}
	return guest, nil
}

func (s *GuestService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, event)
}
