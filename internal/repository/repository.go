package repository

import (
	"context"

	"github.com/UnknownOlympus/hestia/internal/metrics"
	"github.com/UnknownOlympus/hestia/internal/models"
)

type Repository struct {
	db      Database
	metrics *metrics.Metrics
}

// EmployeeRepoIface represents the interface for interacting with employee data in the repository.
type EmployeeRepoIface interface {
	Create(ctx context.Context, employee models.Employee, createdBy string) (models.Employee, error)
	FindAll(ctx context.Context) ([]models.Employee, error)
	FindByID(ctx context.Context, identifier int) (models.Employee, bool, error)
	Update(ctx context.Context, employee models.Employee, updatedBy string) (models.Employee, error)
	Delete(ctx context.Context, identifier int, deletedBy string) error
	FindBySalaryRange(ctx context.Context, minSalary, maxSalary float64) ([]models.Employee, error)
}

func NewEmployeeRepository(db Database, metrics *metrics.Metrics) EmployeeRepoIface {
	return &Repository{db: db, metrics: metrics}
}
