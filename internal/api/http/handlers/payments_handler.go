package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/event-service/internal/api/dto"
	"github.com/spec-kit/event-service/internal/service"
	apperrors "github.com/spec-kit/event-service/pkg/util"
)

// PaymentsHandler manages payment endpoints.
type PaymentsHandler struct {
	service *service.PaymentService
}

// NewPaymentsHandler constructs handler.
func NewPaymentsHandler(paymentService *service.PaymentService) *PaymentsHandler {
	return &PaymentsHandler{service: paymentService}
}

// List GET /events/:id/payments.
func (h *PaymentsHandler) List(c *fiber.Ctx) error {
	principal, err := principalOrFail(c)
	if err != nil {
		return err
	}
	payments, totals, err := h.service.List(c.Context(), principal.User.ID, principal.User.IsAdmin(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewPaymentHistoryResponse(payments, totals)})
}

// Record POST /events/:id/payments.
func (h *PaymentsHandler) Record(c *fiber.Ctx) error {
	principal, err := principalOrFail(c)
	if err != nil {
		return err
	}
	var req dto.PaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	payment, err := h.service.Record(c.Context(), principal.User.ID, principal.User.IsAdmin(),
		c.Params("id"), req.ToInput())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.NewPaymentResponse(payment)})
}
