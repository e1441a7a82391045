package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/inquiry-console/internal/api/dto"
	"github.com/spec-kit/inquiry-console/internal/domain"
	"github.com/spec-kit/inquiry-console/internal/service"
	apperrors "github.com/spec-kit/inquiry-console/pkg/util"
)

// MailHandler manages template groups, templates, content, auto-send
// settings, history and manual sends.
type MailHandler struct {
	templates *service.TemplateService
	mail      *service.MailService
}

// NewMailHandler constructs handler.
func NewMailHandler(templateService *service.TemplateService, mailService *service.MailService) *MailHandler {
	return &MailHandler{templates: templateService, mail: mailService}
}

func parseKind(c *fiber.Ctx) (domain.TemplateKind, error) {
	kind := domain.TemplateKind(c.Params("kind"))
	if kind != domain.TemplateKindAuto && kind != domain.TemplateKindManual {
		return "", apperrors.NewValidationError("kind must be auto or manual", nil)
	}
	return kind, nil
}

// ListGroups GET /console/mail/:kind/groups.
func (h *MailHandler) ListGroups(c *fiber.Ctx) error {
	kind, err := parseKind(c)
	if err != nil {
		return err
	}
	groups, err := h.templates.ListGroups(c.UserContext(), kind)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": groups})
}

// CreateGroup POST /console/mail/:kind/groups.
func (h *MailHandler) CreateGroup(c *fiber.Ctx) error {
	kind, err := parseKind(c)
	if err != nil {
		return err
	}
	var req dto.GroupRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	group, err := h.templates.CreateGroup(c.UserContext(), kind, req.Name)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": group})
}

// RenameGroup PUT /console/mail/:kind/groups/:groupId.
func (h *MailHandler) RenameGroup(c *fiber.Ctx) error {
	kind, err := parseKind(c)
	if err != nil {
		return err
	}
	var req dto.GroupRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := h.templates.RenameGroup(c.UserContext(), kind, c.Params("groupId"), req.Name); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"updated": true}})
}

// DeleteGroup DELETE /console/mail/:kind/groups/:groupId.
func (h *MailHandler) DeleteGroup(c *fiber.Ctx) error {
	kind, err := parseKind(c)
	if err != nil {
		return err
	}
	if err := h.templates.DeleteGroup(c.UserContext(), kind, c.Params("groupId")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"deleted": true}})
}

// CreateTemplate POST /console/mail/:kind/groups/:groupId/templates.
func (h *MailHandler) CreateTemplate(c *fiber.Ctx) error {
	kind, err := parseKind(c)
	if err != nil {
		return err
	}
	var req dto.TemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	template, err := h.templates.CreateTemplate(c.UserContext(), kind, c.Params("groupId"), req.Name, req.Title, req.Description)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": template})
}

// UpdateTemplate PUT /console/mail/:kind/groups/:groupId/templates/:templateId.
func (h *MailHandler) UpdateTemplate(c *fiber.Ctx) error {
	kind, err := parseKind(c)
	if err != nil {
		return err
	}
	var req dto.TemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	template := domain.MailTemplate{
		ID:          c.Params("templateId"),
		Name:        req.Name,
		Title:       req.Title,
		Description: req.Description,
	}
	if err := h.templates.UpdateTemplate(c.UserContext(), kind, c.Params("groupId"), template); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": template})
}

// DeleteTemplate DELETE /console/mail/:kind/groups/:groupId/templates/:templateId.
func (h *MailHandler) DeleteTemplate(c *fiber.Ctx) error {
	kind, err := parseKind(c)
	if err != nil {
		return err
	}
	if err := h.templates.DeleteTemplate(c.UserContext(), kind, c.Params("groupId"), c.Params("templateId")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"deleted": true}})
}

// GetContent GET /console/mail/:kind/groups/:groupId/templates/:templateId/content.
func (h *MailHandler) GetContent(c *fiber.Ctx) error {
	content, err := h.templates.GetContent(c.UserContext(), c.Params("groupId"), c.Params("templateId"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": content})
}

// SetContent PUT /console/mail/:kind/groups/:groupId/templates/:templateId/content.
func (h *MailHandler) SetContent(c *fiber.Ctx) error {
	var req dto.ContentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	content := domain.TemplateContent{
		GroupID:    c.Params("groupId"),
		TemplateID: c.Params("templateId"),
		Title:      req.Title,
		Content:    req.Content,
	}
	if err := h.templates.SetContent(c.UserContext(), content); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": content})
}

// AutoSendSettings GET /console/mail/auto-send-settings.
func (h *MailHandler) AutoSendSettings(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.templates.AutoSendSettings(c.UserContext())})
}

// SetAutoSend PUT /console/mail/auto-send-settings.
func (h *MailHandler) SetAutoSend(c *fiber.Ctx) error {
	var req dto.AutoSendRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := h.templates.SetAutoSendEnabled(c.UserContext(), req.GroupID, req.TemplateID, req.Enabled); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": req})
}

// History GET /console/mail/history.
func (h *MailHandler) History(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.mail.History(c.UserContext())})
}

// Send POST /console/mail/send.
func (h *MailHandler) Send(c *fiber.Ctx) error {
	var req dto.SendRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	record, err := h.mail.SendManual(c.UserContext(), service.ManualSendInput{
		SendGroupID:     req.SendGroupID,
		TemplateGroupID: req.TemplateGroupID,
		TemplateID:      req.TemplateID,
		Recipients:      req.Recipients,
		Locale:          parseLocale(c),
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": record})
}
