package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/inquiry-console/internal/analytics"
	"github.com/spec-kit/inquiry-console/internal/api/dto"
	"github.com/spec-kit/inquiry-console/internal/service"
	apperrors "github.com/spec-kit/inquiry-console/pkg/util"
)

// InquiriesHandler manages the inquiry table endpoints.
type InquiriesHandler struct {
	service *service.InquiryService
}

// NewInquiriesHandler constructs handler.
func NewInquiriesHandler(inquiryService *service.InquiryService) *InquiriesHandler {
	return &InquiriesHandler{service: inquiryService}
}

// List GET /console/inquiries.
func (h *InquiriesHandler) List(c *fiber.Ctx) error {
	input := service.ListInput{
		Filter:   parseFilter(c),
		Sort:     c.Query("sort", "created_at"),
		Dir:      analytics.SortDirection(c.Query("dir", string(analytics.SortDesc))),
		Page:     c.QueryInt("page", 0),
		PageSize: c.QueryInt("page_size", 10),
	}
	result := h.service.List(c.UserContext(), input, parseLocale(c))
	return c.JSON(fiber.Map{"data": result})
}

// Get GET /console/inquiries/:id.
func (h *InquiriesHandler) Get(c *fiber.Ctx) error {
	inquiry, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": inquiry})
}

// Answer POST /console/inquiries/:id/answer.
func (h *InquiriesHandler) Answer(c *fiber.Ctx) error {
	var req dto.AnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	answered, err := h.service.Answer(c.UserContext(), c.Params("id"), req.Content, req.AnswererID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": answered})
}

// Export GET /console/inquiries/export.
func (h *InquiriesHandler) Export(c *fiber.Ctx) error {
	input := service.ListInput{
		Filter: parseFilter(c),
		Sort:   c.Query("sort", "created_at"),
		Dir:    analytics.SortDirection(c.Query("dir", string(analytics.SortDesc))),
	}
	csv := h.service.ExportCSV(c.UserContext(), input, parseLocale(c))
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="inquiries.csv"`)
	return c.SendString(csv)
}
