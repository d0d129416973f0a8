package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/event-service/internal/api/dto"
	"github.com/spec-kit/event-service/internal/auth"
	"github.com/spec-kit/event-service/internal/domain"
	"github.com/spec-kit/event-service/internal/repository"
	"github.com/spec-kit/event-service/internal/service"
	apperrors "github.com/spec-kit/event-service/pkg/util"
)

// EventsHandler manages booking endpoints.
type EventsHandler struct {
	service *service.EventService
}

// NewEventsHandler constructs handler.
func NewEventsHandler(eventService *service.EventService) *EventsHandler {
	return &EventsHandler{service: eventService}
}

func principalOrFail(c *fiber.Ctx) (*auth.Principal, error) {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return nil, apperrors.NewUnauthorized("authentication required")
	}
	return principal, nil
}

// Create POST /events.
func (h *EventsHandler) Create(c *fiber.Ctx) error {
	principal, err := principalOrFail(c)
	if err != nil {
		return err
	}
	var req dto.EventRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	event, err := h.service.Create(c.Context(), principal.User.ID, req.ToInput())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.NewEventDetail(event)})
}

// List GET /events. The listing view polls this endpoint.
func (h *EventsHandler) List(c *fiber.Ctx) error {
	principal, err := principalOrFail(c)
	if err != nil {
		return err
	}

	summaries, err := h.service.ListForOwner(c.Context(), principal.User.ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewEventRows(summaries)})
}

// Get GET /events/:id.
func (h *EventsHandler) Get(c *fiber.Ctx) error {
	principal, err := principalOrFail(c)
	if err != nil {
		return err
	}
	event, err := h.service.Get(c.Context(), principal.User.ID, principal.User.IsAdmin(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewEventDetail(event)})
}

// Update PUT /events/:id.
func (h *EventsHandler) Update(c *fiber.Ctx) error {
	principal, err := principalOrFail(c)
	if err != nil {
		return err
	}
	var req dto.EventRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	event, err := h.service.Update(c.Context(), principal.User.ID, principal.User.IsAdmin(), c.Params("id"), req.ToInput())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewEventDetail(event)})
}

// Delete DELETE /events/:id.
func (h *EventsHandler) Delete(c *fiber.Ctx) error {
	principal, err := principalOrFail(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Context(), principal.User.ID, principal.User.IsAdmin(), c.Params("id")); err != nil {
		return err
	}
	// The list view re-fetches after delete and expects a JSON body.
	return c.JSON(fiber.Map{"data": fiber.Map{"id": c.Params("id"), "deleted": true}})
}

// Totals GET /events/:id/totals.
func (h *EventsHandler) Totals(c *fiber.Ctx) error {
	principal, err := principalOrFail(c)
	if err != nil {
		return err
	}
	totals, err := h.service.Totals(c.Context(), principal.User.ID, principal.User.IsAdmin(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewEventTotals(totals)})
}

// AdminList GET /admin/events.
func (h *EventsHandler) AdminList(c *fiber.Ctx) error {
	pageSize := c.QueryInt("page_size", 50)
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	filter := repository.EventFilter{
		Limit:  pageSize,
		Offset: (page - 1) * pageSize,
	}
	if status := c.Query("status"); status != "" {
		filter.Statuses = []domain.EventStatus{domain.EventStatus(status)}
	}
	if eventType := c.Query("event_type"); eventType != "" {
		filter.EventType = &eventType
	}
	if search := c.Query("search"); search != "" {
		filter.SearchTerm = &search
	}

	summaries, err := h.service.ListAll(c.Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewEventRows(summaries)})
}

// ChangeStatus PATCH /admin/events/:id/status.
func (h *EventsHandler) ChangeStatus(c *fiber.Ctx) error {
	principal, err := principalOrFail(c)
	if err != nil {
		return err
	}
	var req dto.StatusChangeRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	event, err := h.service.ChangeStatus(c.Context(), principal.User.ID, c.Params("id"), req.Status, req.Notes)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewEventDetail(event)})
}
