package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/event-service/internal/api/dto"
	"github.com/spec-kit/event-service/internal/service"
	apperrors "github.com/spec-kit/event-service/pkg/util"
)

// GuestsHandler manages guest list endpoints.
type GuestsHandler struct {
	service *service.GuestService
}

// NewGuestsHandler constructs handler.
func NewGuestsHandler(guestService *service.GuestService) *GuestsHandler {
	return &GuestsHandler{service: guestService}
}

// List GET /events/:id/guests.
func (h *GuestsHandler) List(c *fiber.Ctx) error {
	principal, err := principalOrFail(c)
	if err != nil {
		return err
	}
	guests, stats, err := h.service.List(c.Context(), principal.User.ID, principal.User.IsAdmin(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewGuestListResponse(guests, stats)})
}

// Add POST /events/:id/guests.
func (h *GuestsHandler) Add(c *fiber.Ctx) error {
	principal, err := principalOrFail(c)
	if err != nil {
		return err
	}
	var req dto.GuestRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	guest, err := h.service.Add(c.Context(), principal.User.ID, principal.User.IsAdmin(), c.Params("id"), req.ToInput())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.NewGuestResponse(guest)})
}

// Update PUT /events/:id/guests/:guestID.
func (h *GuestsHandler) Update(c *fiber.Ctx) error {
	principal, err := principalOrFail(c)
	if err != nil {
		return err
	}
	var req dto.GuestRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	guest, err := h.service.Update(c.Context(), principal.User.ID, principal.User.IsAdmin(),
		c.Params("id"), c.Params("guestID"), req.ToInput())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewGuestResponse(guest)})
}

// SetRSVP PATCH /events/:id/guests/:guestID/rsvp.
func (h *GuestsHandler) SetRSVP(c *fiber.Ctx) error {
	principal, err := principalOrFail(c)
	if err != nil {
		return err
	}
	var req dto.RSVPRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	guest, err := h.service.SetRSVP(c.Context(), principal.User.ID, principal.User.IsAdmin(),
		c.Params("id"), c.Params("guestID"), req.Status)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewGuestResponse(guest)})
}

// Remove DELETE /events/:id/guests/:guestID.
func (h *GuestsHandler) Remove(c *fiber.Ctx) error {
	principal, err := principalOrFail(c)
	if err != nil {
		return err
	}
	if err := h.service.Remove(c.Context(), principal.User.ID, principal.User.IsAdmin(),
		c.Params("id"), c.Params("guestID")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
