// Package middleware contains HTTP middlewares for the API.
package middleware

import (
	"log/slog"
	"time"

	"github.com/UnknownOlympus/hestia/internal/lib/logger/sl"
	"github.com/gofiber/fiber/v2"
)

// RequestLogger logs HTTP requests with method, path, status and duration.
// Errors returned by inner handlers are rendered through the app's error handler
// here so the logged status matches the response.
func RequestLogger(log *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		if err := c.Next(); err != nil {
			if hErr := c.App().Config().ErrorHandler(c, err); hErr != nil {
				log.ErrorContext(c.UserContext(), "failed to render error response", sl.Err(hErr))
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		dur := time.Since(start)
		reqID, _ := c.Locals("requestid").(string)
		if reqID == "" {
			reqID = c.Get(fiber.HeaderXRequestID)
		}

		log.InfoContext(c.UserContext(), "http",
			"method", c.Method(),
			"path", c.OriginalURL(),
			"status", c.Response().StatusCode(),
			"duration_ms", float64(dur.Microseconds())/1000.0,
			"request_id", reqID,
		)

		return nil
	}
}
