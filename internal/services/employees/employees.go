package employees

import (
	"context"
	"log/slog"
	"math"
	"strings"

	"github.com/UnknownOlympus/hestia/internal/lib/logger/sl"
	"github.com/UnknownOlympus/hestia/internal/metrics"
	"github.com/UnknownOlympus/hestia/internal/models"
	"github.com/UnknownOlympus/hestia/internal/repository"
)

// Service validates employee operations and delegates them to the repository.
type Service struct {
	log     *slog.Logger
	repo    repository.EmployeeRepoIface
	metrics *metrics.Metrics
}

func NewService(log *slog.Logger, repo repository.EmployeeRepoIface, metrics *metrics.Metrics) *Service {
	return &Service{log: log, repo: repo, metrics: metrics}
}

func (s *Service) initLogger(opn string) *slog.Logger {
	return s.log.With(
		slog.String("op", opn),
		slog.String("division", "employee"),
	)
}

// record counts the outcome of an operation and logs unexpected failures.
func (s *Service) record(ctx context.Context, log *slog.Logger, operation string, err error) {
	result := "success"
	if err != nil {
		kind := models.KindOf(err)
		result = kind.String()
		if kind == models.KindInfrastructure {
			log.ErrorContext(ctx, "repository call failed", sl.Err(err))
		} else {
			log.DebugContext(ctx, "operation rejected", sl.Err(err), sl.ErrKind(err))
		}
	}
	s.metrics.EmployeeOperations.WithLabelValues(operation, result).Inc()
}

// CreateEmployee validates the input and stores a new employee attributed to createdBy.
func (s *Service) CreateEmployee(
	ctx context.Context,
	name, position string,
	salary *float64,
	createdBy string,
) (models.Employee, error) {
	const opn = "Employee.CreateEmployee"
	log := s.initLogger(opn)

	if err := ValidateEmployee(name, position, salary, createdBy); err != nil {
		s.record(ctx, log, "create", err)
		return models.Employee{}, err
	}

	employee, err := s.repo.Create(ctx, models.Employee{
		ID:       0,
		Name:     strings.TrimSpace(name),
		Position: strings.TrimSpace(position),
		Salary:   *salary,
	}, createdBy)
	s.record(ctx, log, "create", err)
	if err != nil {
		return models.Employee{}, err
	}

	log.InfoContext(ctx, "employee created", "id", employee.ID, "created_by", createdBy)
	return employee, nil
}

// GetEmployees returns every stored employee.
func (s *Service) GetEmployees(ctx context.Context) ([]models.Employee, error) {
	const opn = "Employee.GetEmployees"
	log := s.initLogger(opn)

	employees, err := s.repo.FindAll(ctx)
	s.record(ctx, log, "list", err)
	if err != nil {
		return nil, err
	}

	return employees, nil
}

// GetEmployee returns one employee or a NotFound error.
func (s *Service) GetEmployee(ctx context.Context, identifier int) (models.Employee, error) {
	const opn = "Employee.GetEmployee"
	log := s.initLogger(opn)

	if identifier <= 0 {
		err := models.NewError(models.KindInvalidInput, "invalid employee ID: %d", identifier)
		s.record(ctx, log, "get", err)
		return models.Employee{}, err
	}

	employee, found, err := s.repo.FindByID(ctx, identifier)
	if err == nil && !found {
		err = models.NewError(models.KindNotFound, "employee with ID %d not found", identifier)
	}
	s.record(ctx, log, "get", err)
	if err != nil {
		return models.Employee{}, err
	}

	return employee, nil
}

// UpdateEmployee validates the input and overwrites the employee attributed to updatedBy.
func (s *Service) UpdateEmployee(
	ctx context.Context,
	identifier int,
	name, position string,
	salary *float64,
	updatedBy string,
) (models.Employee, error) {
	const opn = "Employee.UpdateEmployee"
	log := s.initLogger(opn)

	err := ValidateEmployee(name, position, salary, updatedBy)
	if err == nil && identifier <= 0 {
		err = models.NewError(models.KindInvalidInput, "invalid employee data provided for update: id must be positive")
	}
	if err != nil {
		s.record(ctx, log, "update", err)
		return models.Employee{}, err
	}

	employee, err := s.repo.Update(ctx, models.Employee{
		ID:       identifier,
		Name:     strings.TrimSpace(name),
		Position: strings.TrimSpace(position),
		Salary:   *salary,
	}, updatedBy)
	s.record(ctx, log, "update", err)
	if err != nil {
		return models.Employee{}, err
	}

	log.InfoContext(ctx, "employee updated", "id", identifier, "updated_by", updatedBy)
	return employee, nil
}

// DeleteEmployee removes the employee, attributing the deletion to deletedBy.
func (s *Service) DeleteEmployee(ctx context.Context, identifier int, deletedBy string) error {
	const opn = "Employee.DeleteEmployee"
	log := s.initLogger(opn)

	if identifier <= 0 || strings.TrimSpace(deletedBy) == "" {
		err := models.NewError(models.KindInvalidInput, "invalid data provided for deletion")
		s.record(ctx, log, "delete", err)
		return err
	}

	err := s.repo.Delete(ctx, identifier, deletedBy)
	s.record(ctx, log, "delete", err)
	if err != nil {
		return err
	}

	log.InfoContext(ctx, "employee deleted", "id", identifier, "deleted_by", deletedBy)
	return nil
}

// GetEmployeesBySalaryRange returns employees with minSalary <= salary <= maxSalary.
func (s *Service) GetEmployeesBySalaryRange(
	ctx context.Context,
	minSalary, maxSalary float64,
) ([]models.Employee, error) {
	const opn = "Employee.GetEmployeesBySalaryRange"
	log := s.initLogger(opn)

	if err := ValidateSalaryRange(minSalary, maxSalary); err != nil {
		s.record(ctx, log, "salary_range", err)
		return nil, err
	}

	employees, err := s.repo.FindBySalaryRange(ctx, minSalary, maxSalary)
	s.record(ctx, log, "salary_range", err)
	if err != nil {
		return nil, err
	}

	return employees, nil
}

// ValidateEmployee checks the fields shared by create and update.
func ValidateEmployee(name, position string, salary *float64, actor string) error {
	var reason string

	switch {
	case strings.TrimSpace(name) == "":
		reason = "name is required"
	case strings.TrimSpace(position) == "":
		reason = "position is required"
	case salary == nil:
		reason = "salary is required"
	case !isFinite(*salary) || *salary < 0:
		reason = "salary must be a non-negative number"
	case strings.TrimSpace(actor) == "":
		reason = "actor is required"
	default:
		return nil
	}

	return models.NewError(models.KindInvalidInput, "invalid employee data provided: %s", reason)
}

// ValidateSalaryRange checks that both bounds are non-negative numbers and ordered.
func ValidateSalaryRange(minSalary, maxSalary float64) error {
	if !isFinite(minSalary) || !isFinite(maxSalary) || minSalary < 0 || maxSalary < 0 || minSalary > maxSalary {
		return models.NewError(models.KindInvalidRange,
			"invalid salary range provided: min=%v max=%v", minSalary, maxSalary)
	}

	return nil
}

func isFinite(value float64) bool {
	return !math.IsNaN(value) && !math.IsInf(value, 0)
}
