package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/event-service/internal/api/dto"
	"github.com/spec-kit/event-service/internal/service"
	apperrors "github.com/spec-kit/event-service/pkg/util"
)

// VendorsHandler manages vendor assignment endpoints.
type VendorsHandler struct {
	service *service.VendorService
}

// NewVendorsHandler constructs handler.
func NewVendorsHandler(vendorService *service.VendorService) *VendorsHandler {
	return &VendorsHandler{service: vendorService}
}

// List GET /events/:id/vendors.
func (h *VendorsHandler) List(c *fiber.Ctx) error {
	principal, err := principalOrFail(c)
	if err != nil {
		return err
	}
	views, err := h.service.List(c.Context(), principal.User.ID, principal.User.IsAdmin(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewVendorLineResponses(views)})
}

// Assign POST /events/:id/vendors.
func (h *VendorsHandler) Assign(c *fiber.Ctx) error {
	principal, err := principalOrFail(c)
	if err != nil {
		return err
	}
	var req dto.AssignVendorRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.VendorID == "" {
		return apperrors.NewValidationError("vendor_id required", nil)
	}

	assignment, err := h.service.Assign(c.Context(), principal.User.ID, principal.User.IsAdmin(),
		c.Params("id"), req.ToInput())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": assignment})
}

// Remove DELETE /events/:id/vendors/:vendorID.
func (h *VendorsHandler) Remove(c *fiber.Ctx) error {
	principal, err := principalOrFail(c)
	if err != nil {
		return err
	}
	if err := h.service.Remove(c.Context(), principal.User.ID, principal.User.IsAdmin(),
		c.Params("id"), c.Params("vendorID")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
