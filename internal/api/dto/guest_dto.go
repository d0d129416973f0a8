package dto

import (
	"time"

	"github.com/spec-kit/event-service/internal/domain"
	"github.com/spec-kit/event-service/internal/service"
)

// GuestRequest payload for create and update.
type GuestRequest struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	PlusOneCount int    `json:"plus_one_count"`
	Notes        string `json:"notes"`
}

// ToInput converts the request to the service input.
func (r GuestRequest) ToInput() service.GuestInput {
	return service.GuestInput{
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		Email:        r.Email,
		Phone:        r.Phone,
		PlusOneCount: r.PlusOneCount,
		Notes:        r.Notes,
	}
}

// RSVPRequest payload for attendance responses.
type RSVPRequest struct {
	Status domain.RSVPStatus `json:"status"`
}

// GuestResponse mirrors a guest row.
type GuestResponse struct {
	ID           string            `json:"id"`
	EventID      string            `json:"event_id"`
	FirstName    string            `json:"first_name"`
	LastName     string            `json:"last_name"`
	FullName     string            `json:"full_name"`
	Email        string            `json:"email"`
	Phone        string            `json:"phone"`
	RSVPStatus   domain.RSVPStatus `json:"rsvp_status"`
	RSVPAt       *time.Time        `json:"rsvp_at"`
	PlusOneCount int               `json:"plus_one_count"`
	Notes        string            `json:"notes"`
}

// NewGuestResponse maps the domain guest.
func NewGuestResponse(guest *domain.Guest) GuestResponse {
	return GuestResponse{
		ID:           guest.ID,
		EventID:      guest.EventID,
		FirstName:    guest.FirstName,
		LastName:     guest.LastName,
		FullName:     guest.FullName(),
		Email:        guest.Email,
		Phone:        guest.Phone,
		RSVPStatus:   guest.RSVPStatus,
		RSVPAt:       guest.RSVPAt,
		PlusOneCount: guest.PlusOneCount,
		Notes:        guest.Notes,
	}
}

// GuestListResponse bundles the list with its aggregates.
type GuestListResponse struct {
	Guests []GuestResponse    `json:"guests"`
	Stats  service.GuestStats `json:"stats"`
}

// NewGuestListResponse maps guests and stats.
func NewGuestListResponse(guests []domain.Guest, stats service.GuestStats) GuestListResponse {
	responses := make([]GuestResponse, 0, len(guests))
	for i := range guests {
		responses = append(responses, NewGuestResponse(&guests[i]))
	}
	return GuestListResponse{Guests: responses, Stats: stats}
}
