package repositories

import (
	"context"

	"github.com/SscSPs/floor_assignment_app/internal/core/domain"
)

// EmployeeReader defines read operations for employee data
type EmployeeReader interface {
	// FindEmployees lists every employee ordered by employee number.
	FindEmployees(ctx context.Context) ([]domain.Employee, error)

	// FindEmployeeByID returns apperrors.ErrNotFound when no row matches.
	FindEmployeeByID(ctx context.Context, employeeID int64) (*domain.Employee, error)
}

// EmployeeWriter defines write operations for employee data
type EmployeeWriter interface {
	// SaveEmployee inserts a new employee and returns it with its generated ID.
	// A duplicate employee number is reported as apperrors.ErrDuplicate.
	SaveEmployee(ctx context.Context, employee domain.Employee) (*domain.Employee, error)

	// UpdateEmployee overwrites all mutable columns.
	UpdateEmployee(ctx context.Context, employee domain.Employee) (*domain.Employee, error)

	// DeleteEmployee removes the employee; attendance and assignments cascade.
	DeleteEmployee(ctx context.Context, employeeID int64) error
}

// EmployeeRepositoryFacade combines all employee-related repository interfaces
type EmployeeRepositoryFacade interface {
	EmployeeReader
	EmployeeWriter
}
