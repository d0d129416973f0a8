package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/event-service/internal/api/dto"
	"github.com/spec-kit/event-service/internal/domain"
	"github.com/spec-kit/event-service/internal/repository"
	"github.com/spec-kit/event-service/internal/service"
)

// AdminHandler serves the dashboard and account administration.
type AdminHandler struct {
	service *service.AdminService
}

// NewAdminHandler constructs handler.
func NewAdminHandler(adminService *service.AdminService) *AdminHandler {
	return &AdminHandler{service: adminService}
}

// Dashboard GET /admin/dashboard.
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	stats, err := h.service.Dashboard(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": stats})
}

// ListUsers GET /admin/users.
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	filter := repository.UserFilter{
		Limit:  c.QueryInt("page_size", 50),
		Offset: 0,
	}
	if page := c.QueryInt("page", 1); page > 1 {
		filter.Offset = (page - 1) * filter.Limit
	}
	if role := c.Query("role"); role != "" {
		parsed := domain.Role(role)
		filter.Role = &parsed
	}

	users, err := h.service.ListUsers(c.Context(), filter)
	if err != nil {
		return err
	}
	responses := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, dto.NewUserResponse(&users[i]))
	}
	return c.JSON(fiber.Map{"data": responses})
}

// ToggleUser PATCH /admin/users/:id/toggle.
func (h *AdminHandler) ToggleUser(c *fiber.Ctx) error {
	principal, err := principalOrFail(c)
	if err != nil {
		return err
	}
	user, err := h.service.ToggleUserActive(c.Context(), principal.User.ID, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewUserResponse(user)})
}

// Activity GET /admin/activity.
func (h *AdminHandler) Activity(c *fiber.Ctx) error {
	entries, err := h.service.RecentAudit(c.Context(), c.QueryInt("limit", 50))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": entries})
}
