package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/floor_assignment_app/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// MockEmployeeRepository is a mock type for the EmployeeRepositoryFacade interface
type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) FindEmployees(ctx context.Context) ([]domain.Employee, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID int64) (*domain.Employee, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) (*domain.Employee, error) {
	args := m.Called(ctx, employee)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) UpdateEmployee(ctx context.Context, employee domain.Employee) (*domain.Employee, error) {
	args := m.Called(ctx, employee)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) DeleteEmployee(ctx context.Context, employeeID int64) error {
	return m.Called(ctx, employeeID).Error(0)
}

// MockWorkplaceRepository is a mock type for the WorkplaceRepositoryFacade interface
type MockWorkplaceRepository struct {
	mock.Mock
}

func (m *MockWorkplaceRepository) FindWorkplaces(ctx context.Context) ([]domain.Workplace, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Workplace), args.Error(1)
}

func (m *MockWorkplaceRepository) FindWorkplaceByID(ctx context.Context, workplaceID int64) (*domain.Workplace, error) {
	args := m.Called(ctx, workplaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Workplace), args.Error(1)
}

func (m *MockWorkplaceRepository) SaveWorkplace(ctx context.Context, workplace domain.Workplace) (*domain.Workplace, error) {
	args := m.Called(ctx, workplace)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Workplace), args.Error(1)
}

func (m *MockWorkplaceRepository) UpdateWorkplace(ctx context.Context, workplace domain.Workplace) (*domain.Workplace, error) {
	args := m.Called(ctx, workplace)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Workplace), args.Error(1)
}

func (m *MockWorkplaceRepository) DeleteWorkplace(ctx context.Context, workplaceID int64) error {
	return m.Called(ctx, workplaceID).Error(0)
}

// MockAssignmentRepository is a mock type for the AssignmentRepositoryFacade interface
type MockAssignmentRepository struct {
	mock.Mock
}

func (m *MockAssignmentRepository) ReplaceAssignment(ctx context.Context, assignment domain.Assignment) (*domain.Assignment, error) {
	args := m.Called(ctx, assignment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Assignment), args.Error(1)
}

func (m *MockAssignmentRepository) DeleteAssignment(ctx context.Context, employeeID int64, date time.Time) error {
	return m.Called(ctx, employeeID, date).Error(0)
}

func (m *MockAssignmentRepository) FindDailyRows(ctx context.Context, date time.Time) ([]domain.DailyRow, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DailyRow), args.Error(1)
}

// MockAttendanceRepository is a mock type for the AttendanceRepository interface
type MockAttendanceRepository struct {
	mock.Mock
}

func (m *MockAttendanceRepository) UpsertAttendance(ctx context.Context, attendance domain.Attendance) (*domain.Attendance, error) {
	args := m.Called(ctx, attendance)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Attendance), args.Error(1)
}

// MockDisplayLayoutRepository is a mock type for the DisplayLayoutRepositoryFacade interface
type MockDisplayLayoutRepository struct {
	mock.Mock
}

func (m *MockDisplayLayoutRepository) FindLayouts(ctx context.Context, activeOnly bool) ([]domain.DisplayLayout, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DisplayLayout), args.Error(1)
}

func (m *MockDisplayLayoutRepository) FindLayoutByID(ctx context.Context, layoutID int64) (*domain.DisplayLayout, error) {
	args := m.Called(ctx, layoutID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DisplayLayout), args.Error(1)
}

func (m *MockDisplayLayoutRepository) FindActiveLayout(ctx context.Context) (*domain.DisplayLayout, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DisplayLayout), args.Error(1)
}

func (m *MockDisplayLayoutRepository) SaveLayout(ctx context.Context, layout domain.DisplayLayout) (*domain.DisplayLayout, error) {
	args := m.Called(ctx, layout)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DisplayLayout), args.Error(1)
}

func (m *MockDisplayLayoutRepository) UpdateLayout(ctx context.Context, layout domain.DisplayLayout) (*domain.DisplayLayout, error) {
	args := m.Called(ctx, layout)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DisplayLayout), args.Error(1)
}

func (m *MockDisplayLayoutRepository) DeleteLayout(ctx context.Context, layoutID int64) error {
	return m.Called(ctx, layoutID).Error(0)
}

func (m *MockDisplayLayoutRepository) ActivateLayout(ctx context.Context, layoutID int64) error {
	return m.Called(ctx, layoutID).Error(0)
}

func (m *MockDisplayLayoutRepository) DeactivateLayout(ctx context.Context, layoutID int64) error {
	return m.Called(ctx, layoutID).Error(0)
}

// MockUserRepository is a mock type for the UserRepositoryFacade interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) (*domain.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func strPtr(s string) *string { return &s }

func int64Ptr(v int64) *int64 { return &v }

func boolPtr(v bool) *bool { return &v }

var testDate = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
