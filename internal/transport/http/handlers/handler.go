// Package handlers exposes the employee use cases over HTTP.
package handlers

import (
	"context"
	"log/slog"

	"github.com/UnknownOlympus/hestia/internal/models"
)

// EmployeeUseCase is the business layer consumed by the handlers.
type EmployeeUseCase interface {
	CreateEmployee(ctx context.Context, name, position string, salary *float64, createdBy string) (models.Employee, error)
	GetEmployees(ctx context.Context) ([]models.Employee, error)
	GetEmployee(ctx context.Context, identifier int) (models.Employee, error)
	UpdateEmployee(
		ctx context.Context, identifier int, name, position string, salary *float64, updatedBy string,
	) (models.Employee, error)
	DeleteEmployee(ctx context.Context, identifier int, deletedBy string) error
	GetEmployeesBySalaryRange(ctx context.Context, minSalary, maxSalary float64) ([]models.Employee, error)
}

// Handler translates HTTP requests into use case calls.
type Handler struct {
	log *slog.Logger
	uc  EmployeeUseCase
}

// NewHandler constructs the HTTP handlers with their use case dependency.
func NewHandler(log *slog.Logger, usecase EmployeeUseCase) *Handler {
	return &Handler{
		log: log.With(slog.String("division", "http")),
		uc:  usecase,
	}
}
