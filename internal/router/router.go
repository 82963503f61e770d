package router

import (
	"github.com/gofiber/fiber/v3"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/BlakeDanielson/CrowdWork/internal/handler"
	"github.com/BlakeDanielson/CrowdWork/internal/middleware"
)

// Handlers holds all handler instances needed by the router.
type Handlers struct {
	Analyze *handler.AnalyzeHandler
	Task    *handler.TaskHandler
	Stats   *handler.StatsHandler
	Health  *handler.HealthHandler
}

// Setup configures the middleware stack and all API routes on the given Fiber app.
func Setup(app *fiber.App, h *Handlers, corsOrigins string) {
	// Middleware stack (order matters)
	app.Use(recoverer.New())
	app.Use(middleware.NewRequestLogger())
	app.Use(middleware.NewCORS(corsOrigins))
	app.Use(handler.MetricsMiddleware())

	// Health checks (before API group, no rate limits)
	app.Get("/health/live", h.Health.Live)
	app.Get("/health/ready", h.Health.Ready)

	// Prometheus metrics
	app.Get("/metrics", handler.MetricsHandler())

	// API routes
	api := app.Group("/api")

	// Analysis submission
	api.Post("/analyze", h.Analyze.Submit, middleware.NewSubmitRateLimiter().Handler())

	// Task polling and export
	api.Get("/tasks/:taskId", h.Task.Get, middleware.NewPollRateLimiter().Handler())
	api.Get("/tasks/:taskId/export", h.Task.Export, middleware.NewExportRateLimiter().Handler())

	// Stats
	api.Get("/stats", h.Stats.GetStats, middleware.NewStatsRateLimiter().Handler())
}
