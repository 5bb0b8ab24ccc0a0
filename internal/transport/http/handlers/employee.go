package handlers

import (
	"strings"

	"github.com/UnknownOlympus/hestia/internal/models"
	"github.com/gofiber/fiber/v2"
)

type createEmployeeRequest struct {
	Name      string   `json:"name"`
	Position  string   `json:"position"`
	Salary    *float64 `json:"salary"`
	CreatedBy string   `json:"createdBy"`
}

type updateEmployeeRequest struct {
	Name      string   `json:"name"`
	Position  string   `json:"position"`
	Salary    *float64 `json:"salary"`
	UpdatedBy string   `json:"updatedBy"`
}

type deleteEmployeeRequest struct {
	DeletedBy string `json:"deletedBy"`
}

// CreateEmployee handles POST /api/employees.
func (h *Handler) CreateEmployee(c *fiber.Ctx) error {
	var body createEmployeeRequest
	if err := parseBody(c, &body); err != nil {
		return h.fail(c, "failed to parse body", err)
	}

	if strings.TrimSpace(body.CreatedBy) == "" {
		return h.fail(c, "create rejected", missingAttribution("createdBy"))
	}

	employee, err := h.uc.CreateEmployee(c.UserContext(), body.Name, body.Position, body.Salary, body.CreatedBy)
	if err != nil {
		return h.fail(c, "failed to create employee", err)
	}

	return c.Status(fiber.StatusCreated).JSON(employee)
}

// GetEmployees handles GET /api/employees.
func (h *Handler) GetEmployees(c *fiber.Ctx) error {
	employees, err := h.uc.GetEmployees(c.UserContext())
	if err != nil {
		return h.fail(c, "failed to get employees", err)
	}

	return c.Status(fiber.StatusOK).JSON(employees)
}

// GetEmployee handles GET /api/employees/:id.
func (h *Handler) GetEmployee(c *fiber.Ctx) error {
	identifier, err := parseID(c)
	if err != nil {
		return h.fail(c, "failed to parse employee id", err)
	}

	employee, err := h.uc.GetEmployee(c.UserContext(), identifier)
	if err != nil {
		return h.fail(c, "failed to get employee", err)
	}

	return c.Status(fiber.StatusOK).JSON(employee)
}

// UpdateEmployee handles PUT /api/employees/:id.
func (h *Handler) UpdateEmployee(c *fiber.Ctx) error {
	var body updateEmployeeRequest
	if err := parseBody(c, &body); err != nil {
		return h.fail(c, "failed to parse body", err)
	}

	if strings.TrimSpace(body.UpdatedBy) == "" {
		return h.fail(c, "update rejected", missingAttribution("updatedBy"))
	}

	identifier, err := parseID(c)
	if err != nil {
		return h.fail(c, "failed to parse employee id", err)
	}

	employee, err := h.uc.UpdateEmployee(
		c.UserContext(), identifier, body.Name, body.Position, body.Salary, body.UpdatedBy)
	if err != nil {
		return h.fail(c, "failed to update employee", err)
	}

	return c.Status(fiber.StatusOK).JSON(employee)
}

// DeleteEmployee handles DELETE /api/employees/:id. The actor is read from the body and,
// when the body carries none, from the deletedBy query parameter.
func (h *Handler) DeleteEmployee(c *fiber.Ctx) error {
	var body deleteEmployeeRequest
	if err := parseBody(c, &body); err != nil {
		return h.fail(c, "failed to parse body", err)
	}

	deletedBy := strings.TrimSpace(body.DeletedBy)
	if deletedBy == "" {
		deletedBy = strings.TrimSpace(c.Query("deletedBy"))
	}
	if deletedBy == "" {
		return h.fail(c, "delete rejected", missingAttribution("deletedBy"))
	}

	identifier, err := parseID(c)
	if err != nil {
		return h.fail(c, "failed to parse employee id", err)
	}

	if err = h.uc.DeleteEmployee(c.UserContext(), identifier, deletedBy); err != nil {
		return h.fail(c, "failed to delete employee", err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// GetEmployeesBySalaryRange handles GET /api/employees/salary-range.
func (h *Handler) GetEmployeesBySalaryRange(c *fiber.Ctx) error {
	minSalary, okMin := parseSalaryBound(c.Query("minSalary"))
	maxSalary, okMax := parseSalaryBound(c.Query("maxSalary"))
	if !okMin || !okMax {
		return h.fail(c, "failed to parse salary range",
			models.NewError(models.KindInvalidRange, "invalid minSalary or maxSalary provided"))
	}

	employees, err := h.uc.GetEmployeesBySalaryRange(c.UserContext(), minSalary, maxSalary)
	if err != nil {
		return h.fail(c, "failed to get employees by salary range", err)
	}

	return c.Status(fiber.StatusOK).JSON(employees)
}

// Health handles GET /health.
func Health(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "OK"})
}
