package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/inquiry-console/internal/api/http/handlers"
	"github.com/spec-kit/inquiry-console/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Inquiries      *handlers.InquiriesHandler
	Analytics      *handlers.AnalyticsHandler
	Mail           *handlers.MailHandler
	SendGroups     *handlers.SendGroupsHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/auth/login", cfg.Auth.Login)
	app.Post("/auth/logout", cfg.Auth.Logout)

	console := app.Group("/console", cfg.AuthMiddleware.Handle)

	console.Get("/inquiries", cfg.Inquiries.List)
	console.Get("/inquiries/export", cfg.Inquiries.Export)
	console.Get("/inquiries/:id", cfg.Inquiries.Get)
	console.Post("/inquiries/:id/answer", cfg.Inquiries.Answer)

	console.Get("/analytics/buckets", cfg.Analytics.Buckets)
	console.Get("/analytics/buckets/:index", cfg.Analytics.Drilldown)
	console.Get("/analytics/hourly", cfg.Analytics.Hourly)
	console.Get("/analytics/processing-time", cfg.Analytics.ProcessingTime)

	console.Get("/mail/auto-send-settings", cfg.Mail.AutoSendSettings)
	console.Put("/mail/auto-send-settings", cfg.Mail.SetAutoSend)
	console.Get("/mail/history", cfg.Mail.History)
	console.Post("/mail/send", cfg.Mail.Send)

	console.Get("/mail/:kind/groups", cfg.Mail.ListGroups)
	console.Post("/mail/:kind/groups", cfg.Mail.CreateGroup)
	console.Put("/mail/:kind/groups/:groupId", cfg.Mail.RenameGroup)
	console.Delete("/mail/:kind/groups/:groupId", cfg.Mail.DeleteGroup)
	console.Post("/mail/:kind/groups/:groupId/templates", cfg.Mail.CreateTemplate)
	console.Put("/mail/:kind/groups/:groupId/templates/:templateId", cfg.Mail.UpdateTemplate)
	console.Delete("/mail/:kind/groups/:groupId/templates/:templateId", cfg.Mail.DeleteTemplate)
	console.Get("/mail/:kind/groups/:groupId/templates/:templateId/content", cfg.Mail.GetContent)
	console.Put("/mail/:kind/groups/:groupId/templates/:templateId/content", cfg.Mail.SetContent)

	console.Get("/send-groups", cfg.SendGroups.List)
	console.Post("/send-groups", cfg.SendGroups.Create)
	console.Get("/send-groups/:id", cfg.SendGroups.Get)
	console.Put("/send-groups/:id", cfg.SendGroups.Update)
	console.Delete("/send-groups/:id", cfg.SendGroups.Delete)
}
