package services

import (
	"context"
	"io"

	"github.com/SscSPs/floor_assignment_app/internal/core/domain"
	"github.com/SscSPs/floor_assignment_app/internal/dto"
)

// EmployeeReaderSvc defines read operations for employee data
type EmployeeReaderSvc interface {
	ListEmployees(ctx context.Context) ([]domain.Employee, error)
	GetEmployeeByID(ctx context.Context, employeeID int64) (*domain.Employee, error)
}

// EmployeeWriterSvc defines write operations for employee data
type EmployeeWriterSvc interface {
	CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest) (*domain.Employee, error)
	UpdateEmployee(ctx context.Context, employeeID int64, req dto.UpdateEmployeeRequest) (*domain.Employee, error)
	UpdateEmployeeStatus(ctx context.Context, employeeID int64, req dto.UpdateEmployeeStatusRequest) (*domain.Employee, error)
	DeleteEmployee(ctx context.Context, employeeID int64) error
}

// EmployeeImportSvc imports employees from an uploaded spreadsheet.
type EmployeeImportSvc interface {
	// ImportEmployees reads employee_number, name, position columns from the file.
	ImportEmployees(ctx context.Context, filename string, r io.Reader) (*domain.ImportResult, error)
}

// EmployeeSvcFacade combines all employee-related service interfaces
type EmployeeSvcFacade interface {
	EmployeeReaderSvc
	EmployeeWriterSvc
	EmployeeImportSvc
}
