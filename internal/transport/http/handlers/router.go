package handlers

import (
	"errors"
	"log/slog"

	"github.com/UnknownOlympus/hestia/internal/config"
	"github.com/UnknownOlympus/hestia/internal/metrics"
	"github.com/UnknownOlympus/hestia/internal/transport/http/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

// Register binds the employee routes and the liveness probe.
func Register(app *fiber.App, h *Handler) {
	app.Get("/health", Health)

	api := app.Group("/api/employees")
	api.Post("/", h.CreateEmployee)
	api.Get("/", h.GetEmployees)
	// registered before /:id so the literal segment wins
	api.Get("/salary-range", h.GetEmployeesBySalaryRange)
	api.Get("/:id", h.GetEmployee)
	api.Put("/:id", h.UpdateEmployee)
	api.Delete("/:id", h.DeleteEmployee)
}

// NewApp builds the fiber application with middleware and routes.
func NewApp(log *slog.Logger, appMetrics *metrics.Metrics, h *Handler, cfg config.HTTPConfig) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "hestia",
		ReadTimeout:           cfg.ReadTimeout,
		WriteTimeout:          cfg.WriteTimeout,
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})

	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(middleware.Metrics(appMetrics))
	app.Use(middleware.RequestLogger(log))
	app.Use(recover.New())

	Register(app, h)

	return app
}

// errorHandler renders errors that escaped the handlers, such as unknown routes and panics.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := "Internal server error"

	var fErr *fiber.Error
	if errors.As(err, &fErr) {
		code = fErr.Code
		msg = fErr.Message
	}

	return c.Status(code).JSON(errorResponse{Message: msg})
}
