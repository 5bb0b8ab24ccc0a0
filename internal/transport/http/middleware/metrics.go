package middleware

import (
	"strconv"
	"time"

	"github.com/UnknownOlympus/hestia/internal/metrics"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

// Metrics records request count and latency labelled by the matched route template.
func Metrics(m *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		// fasthttp reuses request buffers, label values must be copied
		method := utils.CopyString(c.Method())
		route := c.Route().Path
		status := strconv.Itoa(c.Response().StatusCode())

		m.HTTPRequests.WithLabelValues(method, route, status).Inc()
		m.HTTPDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())

		return err
	}
}
