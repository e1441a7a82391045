package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/inquiry-console/internal/api/dto"
	"github.com/spec-kit/inquiry-console/internal/domain"
	"github.com/spec-kit/inquiry-console/internal/service"
	apperrors "github.com/spec-kit/inquiry-console/pkg/util"
)

// SendGroupsHandler manages audience definitions.
type SendGroupsHandler struct {
	service *service.SendGroupService
}

// NewSendGroupsHandler constructs handler.
func NewSendGroupsHandler(sendGroupService *service.SendGroupService) *SendGroupsHandler {
	return &SendGroupsHandler{service: sendGroupService}
}

// List GET /console/send-groups.
func (h *SendGroupsHandler) List(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.service.List(c.UserContext())})
}

// Get GET /console/send-groups/:id.
func (h *SendGroupsHandler) Get(c *fiber.Ctx) error {
	group, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": group})
}

// Create POST /console/send-groups.
func (h *SendGroupsHandler) Create(c *fiber.Ctx) error {
	var req dto.SendGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	group, err := h.service.Create(c.UserContext(), req.Name, req.Description, req.MemberCount)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": group})
}

// Update PUT /console/send-groups/:id.
func (h *SendGroupsHandler) Update(c *fiber.Ctx) error {
	var req dto.SendGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	group := domain.SendGroup{
		ID:          c.Params("id"),
		Name:        req.Name,
		Description: req.Description,
		MemberCount: req.MemberCount,
	}
	if err := h.service.Update(c.UserContext(), group); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": group})
}

// Delete DELETE /console/send-groups/:id.
func (h *SendGroupsHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"deleted": true}})
}
