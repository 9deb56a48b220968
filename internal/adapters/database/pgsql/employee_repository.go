package pgsql

import (
	"context"
	"fmt"
	"net/http"

	"github.com/SscSPs/floor_assignment_app/internal/apperrors"
	"github.com/SscSPs/floor_assignment_app/internal/core/domain"
	portsrepo "github.com/SscSPs/floor_assignment_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxEmployeeRepository struct {
	BaseRepository
}

// newPgxEmployeeRepository creates a new repository for employee data.
func newPgxEmployeeRepository(pool *pgxpool.Pool) portsrepo.EmployeeRepositoryFacade {
	return &PgxEmployeeRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.EmployeeRepositoryFacade = (*PgxEmployeeRepository)(nil)

const duplicateEmployeeNumberMsg = "employee number already in use"

var FULL_EMPLOYEE_SELECT_QUERY = `
SELECT
	e.id, e.employee_number, e.name, e.position, e.employment_status, e.display_status,
	e.created_at, e.updated_at
FROM employees e
`

const employeeReturningColumns = `
RETURNING id, employee_number, name, position, employment_status, display_status, created_at, updated_at`

func (r *PgxEmployeeRepository) getEmployees(ctx context.Context, filterQuery string, args ...any) ([]domain.Employee, error) {
	employees, err := collect[domain.Employee](ctx, r.Pool, FULL_EMPLOYEE_SELECT_QUERY+filterQuery, args...)
	if err != nil {
		return nil, mapWriteError(err, "query employees", "", "")
	}
	return employees, nil
}

func (r *PgxEmployeeRepository) FindEmployees(ctx context.Context) ([]domain.Employee, error) {
	return r.getEmployees(ctx, `ORDER BY e.employee_number`)
}

func (r *PgxEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID int64) (*domain.Employee, error) {
	employees, err := r.getEmployees(ctx, `WHERE e.id = $1`, employeeID)
	if err != nil {
		return nil, err
	}
	return first(employees, fmt.Sprintf("employee %d not found", employeeID))
}

func (r *PgxEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) (*domain.Employee, error) {
	query := `
		INSERT INTO employees (employee_number, name, position, employment_status, display_status)
		VALUES ($1, $2, $3, $4, $5)` + employeeReturningColumns

	saved, err := collect[domain.Employee](ctx, r.Pool, query,
		employee.EmployeeNumber,
		employee.Name,
		employee.Position,
		employee.EmploymentStatus,
		employee.DisplayStatus,
	)
	if err != nil {
		return nil, mapWriteError(err, "save employee "+employee.EmployeeNumber, duplicateEmployeeNumberMsg, "")
	}
	return first(saved, "employee was not saved")
}

func (r *PgxEmployeeRepository) UpdateEmployee(ctx context.Context, employee domain.Employee) (*domain.Employee, error) {
	query := `
		UPDATE employees
		SET employee_number = $2, name = $3, position = $4,
			employment_status = $5, display_status = $6, updated_at = NOW()
		WHERE id = $1` + employeeReturningColumns

	updated, err := collect[domain.Employee](ctx, r.Pool, query,
		employee.EmployeeID,
		employee.EmployeeNumber,
		employee.Name,
		employee.Position,
		employee.EmploymentStatus,
		employee.DisplayStatus,
	)
	if err != nil {
		return nil, mapWriteError(err, fmt.Sprintf("update employee %d", employee.EmployeeID), duplicateEmployeeNumberMsg, "")
	}
	return first(updated, fmt.Sprintf("employee %d not found", employee.EmployeeID))
}

func (r *PgxEmployeeRepository) DeleteEmployee(ctx context.Context, employeeID int64) error {
	result, err := r.Pool.Exec(ctx, `DELETE FROM employees WHERE id = $1`, employeeID)
	if err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, fmt.Sprintf("failed to delete employee %d", employeeID), err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("employee %d not found", employeeID))
	}
	return nil
}
