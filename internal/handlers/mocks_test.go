package handlers_test

import (
	"context"
	"io"
	"time"

	"github.com/SscSPs/floor_assignment_app/internal/core/domain"
	portssvc "github.com/SscSPs/floor_assignment_app/internal/core/ports/services"
	"github.com/SscSPs/floor_assignment_app/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock EmployeeService ---
type MockEmployeeService struct {
	mock.Mock
}

func (m *MockEmployeeService) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Employee), args.Error(1)
}
func (m *MockEmployeeService) GetEmployeeByID(ctx context.Context, employeeID int64) (*domain.Employee, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}
func (m *MockEmployeeService) CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest) (*domain.Employee, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}
func (m *MockEmployeeService) UpdateEmployee(ctx context.Context, employeeID int64, req dto.UpdateEmployeeRequest) (*domain.Employee, error) {
	args := m.Called(ctx, employeeID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}
func (m *MockEmployeeService) UpdateEmployeeStatus(ctx context.Context, employeeID int64, req dto.UpdateEmployeeStatusRequest) (*domain.Employee, error) {
	args := m.Called(ctx, employeeID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}
func (m *MockEmployeeService) DeleteEmployee(ctx context.Context, employeeID int64) error {
	args := m.Called(ctx, employeeID)
	return args.Error(0)
}
func (m *MockEmployeeService) ImportEmployees(ctx context.Context, filename string, r io.Reader) (*domain.ImportResult, error) {
	args := m.Called(ctx, filename, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ImportResult), args.Error(1)
}

var _ portssvc.EmployeeSvcFacade = (*MockEmployeeService)(nil)

// --- Mock WorkplaceService ---
type MockWorkplaceService struct {
	mock.Mock
}

func (m *MockWorkplaceService) ListWorkplaces(ctx context.Context) ([]domain.Workplace, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Workplace), args.Error(1)
}
func (m *MockWorkplaceService) GetWorkplaceByID(ctx context.Context, workplaceID int64) (*domain.Workplace, error) {
	args := m.Called(ctx, workplaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Workplace), args.Error(1)
}
func (m *MockWorkplaceService) CreateWorkplace(ctx context.Context, req dto.SaveWorkplaceRequest) (*domain.Workplace, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Workplace), args.Error(1)
}
func (m *MockWorkplaceService) UpdateWorkplace(ctx context.Context, workplaceID int64, req dto.SaveWorkplaceRequest) (*domain.Workplace, error) {
	args := m.Called(ctx, workplaceID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Workplace), args.Error(1)
}
func (m *MockWorkplaceService) DeleteWorkplace(ctx context.Context, workplaceID int64) error {
	args := m.Called(ctx, workplaceID)
	return args.Error(0)
}
func (m *MockWorkplaceService) ImportWorkplaces(ctx context.Context, filename string, r io.Reader) (*domain.ImportResult, error) {
	args := m.Called(ctx, filename, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ImportResult), args.Error(1)
}

var _ portssvc.WorkplaceSvcFacade = (*MockWorkplaceService)(nil)

// --- Mock AttendanceService ---
type MockAttendanceService struct {
	mock.Mock
}

func (m *MockAttendanceService) GetAttendanceSheet(ctx context.Context, date time.Time) (domain.DailyView, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.DailyView), args.Error(1)
}
func (m *MockAttendanceService) RecordAttendance(ctx context.Context, req dto.RecordAttendanceRequest) (*domain.Attendance, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Attendance), args.Error(1)
}

var _ portssvc.AttendanceSvcFacade = (*MockAttendanceService)(nil)

// --- Mock AssignmentService ---
type MockAssignmentService struct {
	mock.Mock
}

func (m *MockAssignmentService) GetDailyView(ctx context.Context, date time.Time) (domain.DailyView, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.DailyView), args.Error(1)
}
func (m *MockAssignmentService) GetSummary(ctx context.Context, date time.Time) (*domain.AssignmentSummary, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AssignmentSummary), args.Error(1)
}
func (m *MockAssignmentService) Assign(ctx context.Context, employeeID, workplaceID int64, date time.Time) (*domain.Assignment, error) {
	args := m.Called(ctx, employeeID, workplaceID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Assignment), args.Error(1)
}
func (m *MockAssignmentService) Unassign(ctx context.Context, employeeID int64, date time.Time) error {
	args := m.Called(ctx, employeeID, date)
	return args.Error(0)
}

var _ portssvc.AssignmentSvcFacade = (*MockAssignmentService)(nil)

// --- Mock DisplayLayoutService ---
type MockDisplayLayoutService struct {
	mock.Mock
}

func (m *MockDisplayLayoutService) ListLayouts(ctx context.Context, activeOnly bool) ([]domain.DisplayLayout, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DisplayLayout), args.Error(1)
}
func (m *MockDisplayLayoutService) GetLayoutByID(ctx context.Context, layoutID int64) (*domain.DisplayLayout, error) {
	args := m.Called(ctx, layoutID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DisplayLayout), args.Error(1)
}
func (m *MockDisplayLayoutService) GetActiveOrDefault(ctx context.Context) (*domain.DisplayLayout, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DisplayLayout), args.Error(1)
}
func (m *MockDisplayLayoutService) CreateLayout(ctx context.Context, req dto.SaveDisplayLayoutRequest) (*domain.DisplayLayout, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DisplayLayout), args.Error(1)
}
func (m *MockDisplayLayoutService) UpdateLayout(ctx context.Context, layoutID int64, req dto.SaveDisplayLayoutRequest) (*domain.DisplayLayout, error) {
	args := m.Called(ctx, layoutID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DisplayLayout), args.Error(1)
}
func (m *MockDisplayLayoutService) ActivateLayout(ctx context.Context, layoutID int64) (*domain.DisplayLayout, error) {
	args := m.Called(ctx, layoutID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DisplayLayout), args.Error(1)
}
func (m *MockDisplayLayoutService) DeleteLayout(ctx context.Context, layoutID int64) error {
	args := m.Called(ctx, layoutID)
	return args.Error(0)
}

var _ portssvc.DisplayLayoutSvcFacade = (*MockDisplayLayoutService)(nil)

// --- Mock PublicService ---
type MockPublicService struct {
	mock.Mock
}

func (m *MockPublicService) GetPublicView(ctx context.Context, date time.Time, mode domain.DisplayMode) (domain.DailyView, error) {
	args := m.Called(ctx, date, mode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.DailyView), args.Error(1)
}
func (m *MockPublicService) ActiveLayout(ctx context.Context) (*domain.DisplayLayout, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DisplayLayout), args.Error(1)
}
func (m *MockPublicService) GetBoard(ctx context.Context, date time.Time, mode domain.DisplayMode, page int) (*domain.Board, error) {
	args := m.Called(ctx, date, mode, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Board), args.Error(1)
}
func (m *MockPublicService) Today() time.Time {
	return m.Called().Get(0).(time.Time)
}
func (m *MockPublicService) DefaultMode() domain.DisplayMode {
	return m.Called().Get(0).(domain.DisplayMode)
}

var _ portssvc.PublicSvcFacade = (*MockPublicService)(nil)

// --- Mock UserService / TokenService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) GetUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

var _ portssvc.TokenSvcFacade = (*MockTokenService)(nil)
