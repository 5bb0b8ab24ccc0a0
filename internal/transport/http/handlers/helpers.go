package handlers

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/UnknownOlympus/hestia/internal/lib/logger/sl"
	"github.com/UnknownOlympus/hestia/internal/models"
	"github.com/gofiber/fiber/v2"
)

type errorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

func errorStatus(kind models.Kind) int {
	switch kind {
	case models.KindInvalidInput, models.KindInvalidRange, models.KindMissingAttribution:
		return http.StatusBadRequest
	case models.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// writeError responds with the status chosen by the error kind. Wrapped causes are never sent.
func writeError(c *fiber.Ctx, err error) error {
	status := errorStatus(models.KindOf(err))
	if status == http.StatusInternalServerError {
		return c.Status(status).JSON(errorResponse{
			Message: "Internal server error",
			Error:   models.PublicMessage(err),
		})
	}

	return c.Status(status).JSON(errorResponse{Message: models.PublicMessage(err)})
}

func (h *Handler) fail(c *fiber.Ctx, msg string, err error) error {
	attrs := []any{sl.Err(err), sl.ErrKind(err), "path", c.Path(), "request_id", requestID(c)}
	if models.KindOf(err) == models.KindInfrastructure {
		h.log.ErrorContext(c.UserContext(), msg, attrs...)
	} else {
		h.log.WarnContext(c.UserContext(), msg, attrs...)
	}

	return writeError(c, err)
}

func requestID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok && id != "" {
		return id
	}
	return c.Get(fiber.HeaderXRequestID)
}

// parseBody decodes a JSON body. An empty body leaves dst untouched.
func parseBody(c *fiber.Ctx, dst any) error {
	if len(c.Body()) == 0 {
		return nil
	}
	if err := c.BodyParser(dst); err != nil {
		return &models.Error{Kind: models.KindInvalidInput, Message: "invalid request body", Err: err}
	}
	return nil
}

func missingAttribution(field string) error {
	return models.NewError(models.KindMissingAttribution, "%s user is required", field)
}

func parseID(c *fiber.Ctx) (int, error) {
	identifier, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return 0, &models.Error{Kind: models.KindInvalidInput, Message: "invalid employee ID", Err: err}
	}
	return identifier, nil
}

func parseSalaryBound(raw string) (float64, bool) {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false
	}
	return value, true
}
