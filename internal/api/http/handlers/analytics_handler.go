package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/inquiry-console/internal/analytics"
	"github.com/spec-kit/inquiry-console/internal/service"
	apperrors "github.com/spec-kit/inquiry-console/pkg/util"
)

// AnalyticsHandler exposes the dashboard aggregations.
type AnalyticsHandler struct {
	service *service.AnalyticsService
}

// NewAnalyticsHandler constructs handler.
func NewAnalyticsHandler(analyticsService *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: analyticsService}
}

// Buckets GET /console/analytics/buckets.
func (h *AnalyticsHandler) Buckets(c *fiber.Ctx) error {
	series := h.service.Buckets(c.UserContext(), parseBucketOptions(c))
	return c.JSON(fiber.Map{"data": series})
}

// Drilldown GET /console/analytics/buckets/:index.
func (h *AnalyticsHandler) Drilldown(c *fiber.Ctx) error {
	index, err := c.ParamsInt("index")
	if err != nil {
		return apperrors.NewValidationError("invalid bucket index", nil)
	}
	drilldown, err := h.service.Drilldown(c.UserContext(), parseBucketOptions(c), index)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": drilldown})
}

// Hourly GET /console/analytics/hourly.
func (h *AnalyticsHandler) Hourly(c *fiber.Ctx) error {
	filter := analytics.HourlyFilter{
		Category: c.Query("category", analytics.FilterAll),
		UserType: c.Query("user_type", analytics.FilterAll),
		Country:  c.Query("country", analytics.FilterAll),
	}
	grid, err := h.service.Hourly(c.UserContext(), parseBucketOptions(c), filter)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": grid})
}

// ProcessingTime GET /console/analytics/processing-time.
func (h *AnalyticsHandler) ProcessingTime(c *fiber.Ctx) error {
	period := analytics.ProcessingPeriod(c.Query("period", string(analytics.Period7Days)))
	stats := h.service.ProcessingTime(c.UserContext(), period)
	return c.JSON(fiber.Map{"data": stats})
}
