// Package memory provides an in-process implementation of repository.EmployeeRepoIface.
// It keeps no audit trail and is meant for tests and local experiments.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/UnknownOlympus/hestia/internal/models"
)

type record struct {
	employee  models.Employee
	createdBy string
	updatedBy string
}

type Repository struct {
	mu     sync.RWMutex
	nextID int
	rows   map[int]record
}

func New() *Repository {
	return &Repository{nextID: 1, rows: make(map[int]record)}
}

func (r *Repository) Create(_ context.Context, employee models.Employee, createdBy string) (models.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	employee.ID = r.nextID
	r.nextID++
	r.rows[employee.ID] = record{employee: employee, createdBy: createdBy, updatedBy: createdBy}

	return employee, nil
}

func (r *Repository) FindAll(_ context.Context) ([]models.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.collect(func(models.Employee) bool { return true }), nil
}

func (r *Repository) FindByID(_ context.Context, identifier int) (models.Employee, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.rows[identifier]
	return rec.employee, ok, nil
}

func (r *Repository) Update(_ context.Context, employee models.Employee, updatedBy string) (models.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.rows[employee.ID]
	if !ok {
		return models.Employee{}, models.NewError(models.KindNotFound,
			"employee with ID %d not found for update", employee.ID)
	}

	rec.employee = employee
	rec.updatedBy = updatedBy
	r.rows[employee.ID] = rec

	return employee, nil
}

func (r *Repository) Delete(_ context.Context, identifier int, _ string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rows[identifier]; !ok {
		return models.NewError(models.KindNotFound, "employee with ID %d not found for deletion", identifier)
	}
	delete(r.rows, identifier)

	return nil
}

func (r *Repository) FindBySalaryRange(_ context.Context, minSalary, maxSalary float64) ([]models.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := r.collect(func(e models.Employee) bool {
		return e.Salary >= minSalary && e.Salary <= maxSalary
	})
	sort.SliceStable(result, func(i, j int) bool { return result[i].Salary < result[j].Salary })

	return result, nil
}

// collect returns matching employees ordered by id. Callers hold the lock.
func (r *Repository) collect(match func(models.Employee) bool) []models.Employee {
	result := make([]models.Employee, 0, len(r.rows))
	for _, rec := range r.rows {
		if match(rec.employee) {
			result = append(result, rec.employee)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })

	return result
}
