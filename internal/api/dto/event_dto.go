package dto

import (
	"time"

	"github.com/spec-kit/event-service/internal/domain"
	"github.com/spec-kit/event-service/internal/service"
)

// EventRequest payload for create and update.
type EventRequest struct {
	Name            string  `json:"name"`
	EventType       string  `json:"event_type"`
	Description     string  `json:"description"`
	EventDate       string  `json:"event_date"`
	EventTime       string  `json:"event_time"`
	ExpectedGuests  int     `json:"expected_guests"`
	VenueID         *string `json:"venue_id"`
	PackageID       *string `json:"package_id"`
	SpecialRequests string  `json:"special_requests"`
}

// ToInput converts the request to the service input.
func (r EventRequest) ToInput() service.EventInput {
	return service.EventInput{
		Name:            r.Name,
		EventType:       r.EventType,
		Description:     r.Description,
		EventDate:       r.EventDate,
		EventTime:       r.EventTime,
		ExpectedGuests:  r.ExpectedGuests,
		VenueID:         r.VenueID,
		PackageID:       r.PackageID,
		SpecialRequests: r.SpecialRequests,
	}
}

// EventRow is one row of the listing view, shaped for direct rendering.
type EventRow struct {
	ID             string             `json:"id"`
	Name           string             `json:"name"`
	EventType      string             `json:"event_type"`
	EventDate      string             `json:"event_date"`
	EventTime      string             `json:"event_time"`
	ExpectedGuests int                `json:"expected_guests"`
	Status         domain.EventStatus `json:"status"`
	StatusClass    string             `json:"status_class"`
	VenueName      *string            `json:"venue_name"`
	PackageName    *string            `json:"package_name"`
	EstimatedTotal string             `json:"estimated_total"`
	Editable       bool               `json:"editable"`
	Deletable      bool               `json:"deletable"`
	CreatedAt      time.Time          `json:"created_at"`
}

// NewEventRow maps a service summary to a response row.
func NewEventRow(summary service.EventSummary) EventRow {
	event := summary.Event
	return EventRow{
		ID:             event.ID,
		Name:           event.Name,
		EventType:      event.EventType,
		EventDate:      event.EventDate.Format("2006-01-02"),
		EventTime:      event.EventTime,
		ExpectedGuests: event.ExpectedGuests,
		Status:         event.Status,
		StatusClass:    summary.StatusClass,
		VenueName:      summary.VenueName,
		PackageName:    summary.PackageName,
		EstimatedTotal: summary.EstimatedTotalDisplay,
		Editable:       event.Editable(),
		Deletable:      event.Deletable(),
		CreatedAt:      event.CreatedAt,
	}
}

// NewEventRows maps a summary slice.
func NewEventRows(summaries []service.EventSummary) []EventRow {
	rows := make([]EventRow, 0, len(summaries))
	for _, summary := range summaries {
		rows = append(rows, NewEventRow(summary))
	}
	return rows
}

// EventDetailResponse provides full event info.
type EventDetailResponse struct {
	ID              string             `json:"id"`
	OwnerID         string             `json:"owner_id"`
	Name            string             `json:"name"`
	EventType       string             `json:"event_type"`
	Description     string             `json:"description"`
	EventDate       string             `json:"event_date"`
	EventTime       string             `json:"event_time"`
	ExpectedGuests  int                `json:"expected_guests"`
	VenueID         *string            `json:"venue_id"`
	PackageID       *string            `json:"package_id"`
	SpecialRequests string             `json:"special_requests"`
	Status          domain.EventStatus `json:"status"`
	StatusClass     string             `json:"status_class"`
	AdminNotes      string             `json:"admin_notes"`
	ConfirmedAt     *time.Time         `json:"confirmed_at"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

// NewEventDetail maps the domain event.
func NewEventDetail(event *domain.Event) EventDetailResponse {
	return EventDetailResponse{
		ID:              event.ID,
		OwnerID:         event.OwnerID,
		Name:            event.Name,
		EventType:       event.EventType,
		Description:     event.Description,
		EventDate:       event.EventDate.Format("2006-01-02"),
		EventTime:       event.EventTime,
		ExpectedGuests:  event.ExpectedGuests,
		VenueID:         event.VenueID,
		PackageID:       event.PackageID,
		SpecialRequests: event.SpecialRequests,
		Status:          event.Status,
		StatusClass:     event.Status.VisualClass(),
		AdminNotes:      event.AdminNotes,
		ConfirmedAt:     event.ConfirmedAt,
		CreatedAt:       event.CreatedAt,
		UpdatedAt:       event.UpdatedAt,
	}
}

// StatusChangeRequest payload for admin transitions.
type StatusChangeRequest struct {
	Status domain.EventStatus `json:"status"`
	Notes  string             `json:"notes"`
}

// EventTotalsResponse is the money breakdown for one event.
type EventTotalsResponse struct {
	Quote     string `json:"quote"`
	Total     string `json:"total"`
	Paid      string `json:"paid"`
	Remaining string `json:"remaining"`
}

// NewEventTotals maps service totals.
func NewEventTotals(totals *service.EventTotals) EventTotalsResponse {
	return EventTotalsResponse{
		Quote:     totals.Quote.StringFixed(2),
		Total:     totals.TotalDisplay,
		Paid:      totals.PaidDisplay,
		Remaining: totals.RemainingDisplay,
	}
}
