package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/inquiry-console/internal/analytics"
	"github.com/spec-kit/inquiry-console/internal/domain"
)

func parseLocale(c *fiber.Ctx) domain.Locale {
	switch c.Query("locale", "ko") {
	case "en":
		return domain.LocaleEn
	case "vi":
		return domain.LocaleVi
	default:
		return domain.LocaleKo
	}
}

func parseFilter(c *fiber.Ctx) analytics.Filter {
	return analytics.Filter{
		Query:       c.Query("q"),
		Field:       analytics.SearchField(c.Query("field", string(analytics.SearchFieldAll))),
		Category:    c.Query("category", analytics.FilterAll),
		UserType:    c.Query("user_type", analytics.FilterAll),
		Country:     c.Query("country", analytics.FilterAll),
		Preset:      analytics.DatePreset(c.Query("preset", string(analytics.PresetAll))),
		CustomStart: c.Query("start"),
		CustomEnd:   c.Query("end"),
		Status:      c.Query("status", analytics.FilterAll),
	}
}

func parseBucketOptions(c *fiber.Ctx) analytics.BucketOptions {
	return analytics.BucketOptions{
		Granularity: analytics.Granularity(c.Query("granularity", string(analytics.GranularityDaily))),
		Status:      c.Query("status", analytics.FilterAll),
		CustomStart: c.Query("start"),
		CustomEnd:   c.Query("end"),
	}
}
