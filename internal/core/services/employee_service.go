package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/SscSPs/floor_assignment_app/internal/apperrors"
	"github.com/SscSPs/floor_assignment_app/internal/core/domain"
	portsrepo "github.com/SscSPs/floor_assignment_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/floor_assignment_app/internal/core/ports/services"
	"github.com/SscSPs/floor_assignment_app/internal/dto"
	"github.com/SscSPs/floor_assignment_app/internal/importer"
)

var employeeImportColumns = []string{"employee_number", "name", "position"}

// employeeService implements the EmployeeSvcFacade interface
type employeeService struct {
	BaseService
	employeeRepo portsrepo.EmployeeRepositoryFacade
}

// NewEmployeeService creates a new employee service with the provided dependencies
func NewEmployeeService(employeeRepo portsrepo.EmployeeRepositoryFacade) portssvc.EmployeeSvcFacade {
	return &employeeService{employeeRepo: employeeRepo}
}

var _ portssvc.EmployeeSvcFacade = (*employeeService)(nil)

func (s *employeeService) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	employees, err := s.employeeRepo.FindEmployees(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list employees")
		return nil, err
	}
	s.LogDebug(ctx, "Employees listed successfully", slog.Int("count", len(employees)))
	return employees, nil
}

func (s *employeeService) GetEmployeeByID(ctx context.Context, employeeID int64) (*domain.Employee, error) {
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		if isServerError(err) {
			s.LogError(ctx, err, "Failed to find employee by ID", slog.Int64("employee_id", employeeID))
		}
		return nil, err
	}
	return employee, nil
}

// CreateEmployee registers a new employee as active and shown.
func (s *employeeService) CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest) (*domain.Employee, error) {
	employee := domain.Employee{
		EmployeeNumber:   strings.TrimSpace(req.EmployeeNumber),
		Name:             strings.TrimSpace(req.Name),
		Position:         trimmedOrNil(req.Position),
		EmploymentStatus: domain.EmploymentActive,
		DisplayStatus:    domain.DisplayShown,
	}
	if employee.EmployeeNumber == "" || employee.Name == "" {
		return nil, apperrors.NewValidationFailedError("employee_number and name are required")
	}

	saved, err := s.employeeRepo.SaveEmployee(ctx, employee)
	if err != nil {
		if isServerError(err) {
			s.LogError(ctx, err, "Failed to save employee", slog.String("employee_number", employee.EmployeeNumber))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Employee created successfully",
		slog.Int64("employee_id", saved.EmployeeID),
		slog.String("employee_number", saved.EmployeeNumber))
	return saved, nil
}

func (s *employeeService) UpdateEmployee(ctx context.Context, employeeID int64, req dto.UpdateEmployeeRequest) (*domain.Employee, error) {
	employee := domain.Employee{
		EmployeeID:       employeeID,
		EmployeeNumber:   strings.TrimSpace(req.EmployeeNumber),
		Name:             strings.TrimSpace(req.Name),
		Position:         trimmedOrNil(req.Position),
		EmploymentStatus: req.EmploymentStatus,
		DisplayStatus:    req.DisplayStatus,
	}
	return s.save(ctx, employee)
}

// UpdateEmployeeStatus applies only the flags present in req.
func (s *employeeService) UpdateEmployeeStatus(ctx context.Context, employeeID int64, req dto.UpdateEmployeeStatusRequest) (*domain.Employee, error) {
	employee, err := s.GetEmployeeByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if req.EmploymentStatus == nil && req.DisplayStatus == nil {
		return employee, nil
	}
	if req.EmploymentStatus != nil {
		employee.EmploymentStatus = *req.EmploymentStatus
	}
	if req.DisplayStatus != nil {
		employee.DisplayStatus = *req.DisplayStatus
	}
	return s.save(ctx, *employee)
}

func (s *employeeService) save(ctx context.Context, employee domain.Employee) (*domain.Employee, error) {
	updated, err := s.employeeRepo.UpdateEmployee(ctx, employee)
	if err != nil {
		if isServerError(err) {
			s.LogError(ctx, err, "Failed to update employee", slog.Int64("employee_id", employee.EmployeeID))
		}
		return nil, err
	}
	s.LogInfo(ctx, "Employee updated successfully",
		slog.Int64("employee_id", updated.EmployeeID),
		slog.String("employment_status", string(updated.EmploymentStatus)),
		slog.String("display_status", string(updated.DisplayStatus)))
	return updated, nil
}

func (s *employeeService) DeleteEmployee(ctx context.Context, employeeID int64) error {
	if err := s.employeeRepo.DeleteEmployee(ctx, employeeID); err != nil {
		if isServerError(err) {
			s.LogError(ctx, err, "Failed to delete employee", slog.Int64("employee_id", employeeID))
		}
		return err
	}
	s.LogInfo(ctx, "Employee deleted successfully", slog.Int64("employee_id", employeeID))
	return nil
}

// ImportEmployees inserts one employee per data row. Rows are independent:
// a failing row is reported and the rest still go in.
func (s *employeeService) ImportEmployees(ctx context.Context, filename string, r io.Reader) (*domain.ImportResult, error) {
	table, err := importer.Read(filename, r, employeeImportColumns, "employee_number", "name")
	if err != nil {
		s.LogDebug(ctx, "Rejected employee import file", slog.String("filename", filename), slog.String("error", err.Error()))
		return nil, apperrors.NewValidationFailedError(err.Error())
	}

	result := &domain.ImportResult{Errors: []domain.ImportRowError{}}
	for _, row := range table.Rows {
		position := row.Value("position")
		req := dto.CreateEmployeeRequest{
			EmployeeNumber: row.Value("employee_number"),
			Name:           row.Value("name"),
			Position:       &position,
		}
		if _, err := s.CreateEmployee(ctx, req); err != nil {
			result.AddFailure(row.Number, apperrors.UserMessage(err, fmt.Sprintf("failed to import employee %q", req.EmployeeNumber)))
			continue
		}
		result.Imported++
	}

	s.LogInfo(ctx, "Employee import finished",
		slog.String("filename", filename),
		slog.Int("imported", result.Imported),
		slog.Int("failed", result.Failed))
	return result, nil
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
