package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/UnknownOlympus/hestia/internal/models"
	"github.com/jackc/pgx/v5"
)

const (
	createEmployeeQuery = `
		INSERT INTO employees (name, position, salary, created_by, updated_by)
		VALUES ($1, $2, $3, $4, $4)
		RETURNING id, name, position, salary;
	`
	findAllEmployeesQuery = `SELECT id, name, position, salary FROM employees ORDER BY id`
	findEmployeeByIDQuery = `SELECT id, name, position, salary FROM employees WHERE id=$1`
	updateEmployeeQuery   = `
		UPDATE employees
		SET name = $2, position = $3, salary = $4, updated_by = $5, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1;
	`
	// the trigger audits INSERT and UPDATE only; deletions are audited here with the caller's label
	deleteEmployeeQuery = `
		WITH removed AS (
			DELETE FROM employees WHERE id = $1
			RETURNING id, name, position, salary
		)
		INSERT INTO audit_logs (employee_id, action, performed_by, payload)
		SELECT id, 'DELETE', $2, jsonb_build_object('name', name, 'position', position, 'salary', salary)
		FROM removed;
	`
	findBySalaryRangeQuery = `
		SELECT id, name, position, salary FROM employees
		WHERE salary BETWEEN $1 AND $2
		ORDER BY salary, id
	`
)

func (r *Repository) observe(queryType string) func() {
	startTime := time.Now()
	return func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues(queryType).Observe(duration)
	}
}

// Create inserts a new employee attributed to createdBy and returns the stored row,
// including the identifier generated by the database.
func (r *Repository) Create(ctx context.Context, employee models.Employee, createdBy string) (models.Employee, error) {
	defer r.observe("create_employee")()

	var result models.Employee
	err := r.db.QueryRow(ctx, createEmployeeQuery, employee.Name, employee.Position, employee.Salary, createdBy).
		Scan(&result.ID, &result.Name, &result.Position, &result.Salary)
	if err != nil {
		return models.Employee{}, models.Infrastructure("failed to save employee", err)
	}

	return result, nil
}

// FindAll returns every employee ordered by identifier.
func (r *Repository) FindAll(ctx context.Context) ([]models.Employee, error) {
	defer r.observe("find_all_employees")()

	rows, err := r.db.Query(ctx, findAllEmployeesQuery)
	if err != nil {
		return nil, models.Infrastructure("failed to get employees", err)
	}

	return scanEmployees(rows, "failed to get employees")
}

// FindByID retrieves an employee by identifier. A missing row is reported by the boolean,
// not as an error.
func (r *Repository) FindByID(ctx context.Context, identifier int) (models.Employee, bool, error) {
	defer r.observe("find_employee_by_id")()

	var result models.Employee
	err := r.db.QueryRow(ctx, findEmployeeByIDQuery, identifier).
		Scan(&result.ID, &result.Name, &result.Position, &result.Salary)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Employee{}, false, nil
		}
		return models.Employee{}, false, models.Infrastructure("failed to get employee by id", err)
	}

	return result, true, nil
}

// Update overwrites the employee's fields in one conditional statement. The input entity is
// returned as is; concurrent writers resolve as last-write-wins.
func (r *Repository) Update(ctx context.Context, employee models.Employee, updatedBy string) (models.Employee, error) {
	defer r.observe("update_employee")()

	tag, err := r.db.Exec(ctx, updateEmployeeQuery,
		employee.ID, employee.Name, employee.Position, employee.Salary, updatedBy)
	if err != nil {
		return models.Employee{}, models.Infrastructure("failed to update employee data", err)
	}

	if tag.RowsAffected() == 0 {
		return models.Employee{}, models.NewError(models.KindNotFound,
			"employee with ID %d not found for update", employee.ID)
	}

	return employee, nil
}

// Delete removes the employee and records the deletion attributed to deletedBy.
func (r *Repository) Delete(ctx context.Context, identifier int, deletedBy string) error {
	defer r.observe("delete_employee")()

	tag, err := r.db.Exec(ctx, deleteEmployeeQuery, identifier, deletedBy)
	if err != nil {
		return models.Infrastructure("failed to delete employee", err)
	}

	if tag.RowsAffected() == 0 {
		return models.NewError(models.KindNotFound, "employee with ID %d not found for deletion", identifier)
	}

	return nil
}

// FindBySalaryRange returns employees whose salary lies in the inclusive range [minSalary, maxSalary].
func (r *Repository) FindBySalaryRange(
	ctx context.Context,
	minSalary, maxSalary float64,
) ([]models.Employee, error) {
	defer r.observe("find_employees_by_salary_range")()

	rows, err := r.db.Query(ctx, findBySalaryRangeQuery, minSalary, maxSalary)
	if err != nil {
		return nil, models.Infrastructure(
			fmt.Sprintf("failed to get employees by salary range (%.2f - %.2f)", minSalary, maxSalary), err)
	}

	return scanEmployees(rows, "failed to get employees by salary range")
}

func scanEmployees(rows pgx.Rows, failMsg string) ([]models.Employee, error) {
	defer rows.Close()

	employees := make([]models.Employee, 0)
	for rows.Next() {
		var employee models.Employee
		if err := rows.Scan(&employee.ID, &employee.Name, &employee.Position, &employee.Salary); err != nil {
			return nil, models.Infrastructure(failMsg, fmt.Errorf("scan row: %w", err))
		}
		employees = append(employees, employee)
	}

	if err := rows.Err(); err != nil {
		return nil, models.Infrastructure(failMsg, fmt.Errorf("iterate rows: %w", err))
	}

	return employees, nil
}
