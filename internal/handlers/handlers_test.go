package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/floor_assignment_app/internal/apperrors"
	"github.com/SscSPs/floor_assignment_app/internal/core/domain"
	portssvc "github.com/SscSPs/floor_assignment_app/internal/core/ports/services"
	"github.com/SscSPs/floor_assignment_app/internal/dto"
	"github.com/SscSPs/floor_assignment_app/internal/handlers"
	"github.com/SscSPs/floor_assignment_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

var testDate = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

// --- Test Suite ---
type HandlerTestSuite struct {
	suite.Suite
	router     *gin.Engine
	cfg        *config.Config
	employees  *MockEmployeeService
	workplaces *MockWorkplaceService
	attendance *MockAttendanceService
	assignment *MockAssignmentService
	layouts    *MockDisplayLayoutService
	public     *MockPublicService
	users      *MockUserService
	tokens     *MockTokenService
}

// generateTestToken creates a signed session token for userID.
func (suite *HandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "floor-board-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.cfg.JWTSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.cfg = &config.Config{
		JWTSecret:              "test-secret-key-that-is-long-enough",
		SessionCookieName:      "floor_session",
		LoginRateLimit:         "100-M",
		PublicRateLimit:        "100-M",
		DisplayPageInterval:    10 * time.Second,
		DisplayRefreshInterval: 30 * time.Second,
		IsProduction:           true,
	}

	suite.employees = new(MockEmployeeService)
	suite.workplaces = new(MockWorkplaceService)
	suite.attendance = new(MockAttendanceService)
	suite.assignment = new(MockAssignmentService)
	suite.layouts = new(MockDisplayLayoutService)
	suite.public = new(MockPublicService)
	suite.users = new(MockUserService)
	suite.tokens = new(MockTokenService)

	container := &portssvc.ServiceContainer{
		Employee:      suite.employees,
		Workplace:     suite.workplaces,
		Attendance:    suite.attendance,
		Assignment:    suite.assignment,
		DisplayLayout: suite.layouts,
		Public:        suite.public,
		User:          suite.users,
		Token:         suite.tokens,
	}
	err := handlers.RegisterRoutes(suite.router, suite.cfg, container, nil)
	suite.Require().NoError(err)
}

func (suite *HandlerTestSuite) TearDownTest() {
	suite.employees.AssertExpectations(suite.T())
	suite.workplaces.AssertExpectations(suite.T())
	suite.attendance.AssertExpectations(suite.T())
	suite.assignment.AssertExpectations(suite.T())
	suite.layouts.AssertExpectations(suite.T())
	suite.public.AssertExpectations(suite.T())
	suite.users.AssertExpectations(suite.T())
	suite.tokens.AssertExpectations(suite.T())
}

// do serves an authenticated JSON request unless token is empty.
func (suite *HandlerTestSuite) do(method, url string, body any, token string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlerTestSuite) errorBody(w *httptest.ResponseRecorder) string {
	var resp dto.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Error
}

// --- Test Cases ---

func (suite *HandlerTestSuite) TestHealth() {
	w := suite.do(http.MethodGet, "/health", nil, "")
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func (suite *HandlerTestSuite) TestAdminRoutesRequireAuth() {
	for _, url := range []string{"/api/v1/employees", "/api/v1/workplaces", "/api/v1/assignment?date=2024-06-01", "/api/v1/display-layouts"} {
		w := suite.do(http.MethodGet, url, nil, "")
		suite.Equal(http.StatusUnauthorized, w.Code, url)
	}
}

func (suite *HandlerTestSuite) TestAssign_WorkplaceNotAssignable() {
	suite.assignment.On("Assign", mock.AnythingOfType("*context.valueCtx"), int64(1), int64(3), testDate).
		Return(nil, apperrors.NewAppError(http.StatusBadRequest, "workplace 3 cannot receive assignments", apperrors.ErrWorkplaceNotAssignable)).Once()

	w := suite.do(http.MethodPost, "/api/v1/assignment",
		dto.AssignRequest{EmployeeID: 1, WorkplaceID: 3, Date: "2024-06-01"}, suite.generateTestToken("42"))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(suite.errorBody(w), "cannot receive assignments")
}

func (suite *HandlerTestSuite) TestAssign_UnknownWorkplace() {
	suite.assignment.On("Assign", mock.Anything, int64(1), int64(99), testDate).
		Return(nil, apperrors.NewNotFoundError("workplace 99 not found")).Once()

	w := suite.do(http.MethodPost, "/api/v1/assignment",
		dto.AssignRequest{EmployeeID: 1, WorkplaceID: 99, Date: "2024-06-01"}, suite.generateTestToken("42"))

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal("workplace 99 not found", suite.errorBody(w))
}

func (suite *HandlerTestSuite) TestAssign_Success() {
	suite.assignment.On("Assign", mock.Anything, int64(1), int64(7), testDate).
		Return(&domain.Assignment{AssignmentID: 5, EmployeeID: 1, WorkplaceID: 7, Date: testDate}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/assignment",
		dto.AssignRequest{EmployeeID: 1, WorkplaceID: 7, Date: "2024-06-01"}, suite.generateTestToken("42"))

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.AssignmentResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(5), resp.AssignmentID)
}

func (suite *HandlerTestSuite) TestDailyView_MissingDate() {
	w := suite.do(http.MethodGet, "/api/v1/assignment", nil, suite.generateTestToken("42"))
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.assignment.AssertNotCalled(suite.T(), "GetDailyView", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestDailyView_Success() {
	workplaceID := int64(7)
	suite.assignment.On("GetDailyView", mock.Anything, testDate).Return(domain.DailyView{
		{EmployeeID: 1, EmployeeNumber: "E001", Name: "Tanaka", AttendanceStatus: domain.AttendancePresent, ShiftType: domain.ShiftEarly, WorkplaceID: &workplaceID},
	}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/assignment?date=2024-06-01", nil, suite.generateTestToken("42"))

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.DailyEntryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp, 1)
	suite.Equal("E001", resp[0].EmployeeNumber)
	suite.Equal(&workplaceID, resp[0].WorkplaceID)
}

func (suite *HandlerTestSuite) TestUnassign_AlwaysSucceeds() {
	suite.assignment.On("Unassign", mock.Anything, int64(1), testDate).Return(nil).Once()

	w := suite.do(http.MethodDelete, "/api/v1/assignment?employee_id=1&date=2024-06-01", nil, suite.generateTestToken("42"))

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"success":true}`, w.Body.String())
}

func (suite *HandlerTestSuite) TestCreateWorkplace_DuplicateNumber() {
	req := dto.SaveWorkplaceRequest{Number: 5, Name: "Press"}
	suite.workplaces.On("CreateWorkplace", mock.Anything, req).
		Return(nil, apperrors.NewConflictError("number already in use")).Once()

	w := suite.do(http.MethodPost, "/api/v1/workplaces", req, suite.generateTestToken("42"))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("number already in use", suite.errorBody(w))
}

func (suite *HandlerTestSuite) TestCreateWorkplace_InvalidColor() {
	w := suite.do(http.MethodPost, "/api/v1/workplaces",
		map[string]any{"number": 1, "name": "Press", "color": "blue"}, suite.generateTestToken("42"))
	suite.Equal(http.StatusBadRequest, w.Code)

	for _, color := range []string{"#abcd", "#aabbccdd"} {
		w = suite.do(http.MethodPost, "/api/v1/workplaces",
			map[string]any{"number": 1, "name": "Press", "color": color}, suite.generateTestToken("42"))
		suite.Equal(http.StatusBadRequest, w.Code, color)
	}
}

func (suite *HandlerTestSuite) TestCreateEmployee_Created() {
	req := dto.CreateEmployeeRequest{EmployeeNumber: "E010", Name: "Kato"}
	suite.employees.On("CreateEmployee", mock.Anything, req).Return(&domain.Employee{
		EmployeeID: 10, EmployeeNumber: "E010", Name: "Kato",
		EmploymentStatus: domain.EmploymentActive, DisplayStatus: domain.DisplayShown,
	}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/employees", req, suite.generateTestToken("42"))

	suite.Equal(http.StatusCreated, w.Code)
	suite.Contains(w.Body.String(), `"employee_number":"E010"`)
}

func (suite *HandlerTestSuite) TestUpdateEmployeeStatus_RejectsUnknownStatus() {
	w := suite.do(http.MethodPatch, "/api/v1/employees/3/status",
		map[string]any{"employment_status": "retired"}, suite.generateTestToken("42"))
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestDeleteEmployee_InvalidID() {
	w := suite.do(http.MethodDelete, "/api/v1/employees/abc", nil, suite.generateTestToken("42"))
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestListEmployees_ServerErrorIsHidden() {
	suite.employees.On("ListEmployees", mock.Anything).Return(nil, errors.New("connection reset")).Once()

	w := suite.do(http.MethodGet, "/api/v1/employees", nil, suite.generateTestToken("42"))

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Equal("Failed to list employees", suite.errorBody(w))
}

func (suite *HandlerTestSuite) TestImportEmployees() {
	suite.employees.On("ImportEmployees", mock.Anything, "staff.csv", mock.Anything).
		Return(&domain.ImportResult{Imported: 2, Failed: 1, Errors: []domain.ImportRowError{{Row: 4, Message: "employee number already in use"}}}, nil).Once()

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	part, err := mw.CreateFormFile("file", "staff.csv")
	suite.Require().NoError(err)
	_, _ = part.Write([]byte("employee_number,name\nE001,Tanaka\nE002,Sato\nE001,Dup\n"))
	suite.Require().NoError(mw.Close())

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/employees/import", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken("42"))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"imported":2,"failed":1,"errors":[{"row":4,"error":"employee number already in use"}]}`, w.Body.String())
}

func (suite *HandlerTestSuite) TestImportWorkplaces_MissingFile() {
	w := suite.do(http.MethodPost, "/api/v1/workplaces/import", nil, suite.generateTestToken("42"))
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestRecordAttendance() {
	req := dto.RecordAttendanceRequest{EmployeeID: 1, Date: "2024-06-01", AttendanceStatus: domain.AttendanceAbsent, ShiftType: domain.ShiftLate}
	suite.attendance.On("RecordAttendance", mock.Anything, req).Return(&domain.Attendance{
		AttendanceID: 3, EmployeeID: 1, Date: testDate, AttendanceStatus: domain.AttendanceAbsent, ShiftType: domain.ShiftLate,
	}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/attendance", req, suite.generateTestToken("42"))
	suite.Equal(http.StatusOK, w.Code)

	bad := suite.do(http.MethodPost, "/api/v1/attendance",
		map[string]any{"employee_id": 1, "date": "2024-06-01", "attendance_status": "late", "shift_type": "early"},
		suite.generateTestToken("42"))
	suite.Equal(http.StatusBadRequest, bad.Code)
}

func (suite *HandlerTestSuite) TestCreateLayout_OverlapRejected() {
	workplaceID := int64(7)
	req := dto.SaveDisplayLayoutRequest{
		LayoutName: "floor", GridRows: 2, GridCols: 2,
		LayoutConfig: domain.LayoutConfig{Cells: []domain.Cell{
			{Row: 0, Col: 0, RowSpan: 2, ColSpan: 1, WorkplaceID: &workplaceID},
			{Row: 1, Col: 0, RowSpan: 1, ColSpan: 1},
		}},
	}
	conflict := fmt.Errorf("%w: cell (1,0) overlaps cell (0,0)", apperrors.ErrLayoutConflict)
	suite.layouts.On("CreateLayout", mock.Anything, req).
		Return(nil, apperrors.NewAppError(http.StatusBadRequest, conflict.Error(), conflict)).Once()

	w := suite.do(http.MethodPost, "/api/v1/display-layouts", req, suite.generateTestToken("42"))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(suite.errorBody(w), "overlap")
}

func (suite *HandlerTestSuite) TestCreateLayout_GridTooLarge() {
	req := dto.SaveDisplayLayoutRequest{LayoutName: "huge", GridRows: 100000, GridCols: 2}

	w := suite.do(http.MethodPost, "/api/v1/display-layouts", req, suite.generateTestToken("42"))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.layouts.AssertNotCalled(suite.T(), "CreateLayout", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestListLayouts_ActiveFilter() {
	suite.layouts.On("ListLayouts", mock.Anything, true).
		Return([]domain.DisplayLayout{{LayoutID: 2, LayoutName: "floor", GridRows: 12, GridCols: 2, IsActive: true}}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/display-layouts?active=true", nil, suite.generateTestToken("42"))

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.DisplayLayoutResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp, 1)
	suite.True(resp[0].IsActive)
	suite.NotNil(resp[0].LayoutConfig.Cells)
}

func (suite *HandlerTestSuite) TestActivateLayout_NotFound() {
	suite.layouts.On("ActivateLayout", mock.Anything, int64(9)).
		Return(nil, apperrors.NewNotFoundError("display layout 9 not found")).Once()

	w := suite.do(http.MethodPost, "/api/v1/display-layouts/9/activate", nil, suite.generateTestToken("42"))
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestPublicView_NoAuthNeeded() {
	suite.public.On("DefaultMode").Return(domain.DisplayModeWorkplace)
	suite.public.On("GetPublicView", mock.Anything, testDate, domain.DisplayModeEmployee).Return(domain.DailyView{}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/public?date=2024-06-01&mode=employee", nil, "")

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`[]`, w.Body.String())
}

func (suite *HandlerTestSuite) TestPublicView_MissingDate() {
	w := suite.do(http.MethodGet, "/api/v1/public", nil, "")
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestPublicLayout_Default() {
	layout := domain.DefaultLayout(12, 2)
	suite.public.On("ActiveLayout", mock.Anything).Return(&layout, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/public/layout", nil, "")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.DisplayLayoutResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(12, resp.GridRows)
	suite.Nil(resp.CreatedAt)
}

func (suite *HandlerTestSuite) TestPublicBoard_DefaultsDateAndMode() {
	suite.public.On("Today").Return(testDate).Once()
	suite.public.On("DefaultMode").Return(domain.DisplayModeEmployee).Once()
	suite.public.On("GetBoard", mock.Anything, testDate, domain.DisplayModeEmployee, 1).Return(&domain.Board{
		Date: testDate, Mode: domain.DisplayModeEmployee, GridRows: 1, GridCols: 2,
		Page: 1, PageCount: 2, CellsPerPage: 2, TotalEmployees: 3,
		Tiles: []domain.BoardTile{{Row: 0, Col: 0, RowSpan: 1, ColSpan: 1, Kind: domain.PositionEmpty}},
	}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/public/board?page=1", nil, "")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.BoardResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("2024-06-01", resp.Date)
	suite.Equal(2, resp.PageCount)
	suite.Equal(10, resp.PageIntervalSeconds)
	suite.Equal(30, resp.RefreshIntervalSeconds)
}

func (suite *HandlerTestSuite) TestPublicBoard_InvalidMode() {
	w := suite.do(http.MethodGet, "/api/v1/public/board?mode=grid", nil, "")
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestLogin_SetsSessionCookie() {
	user := &domain.User{UserID: 42, Username: "admin"}
	expires := time.Now().Add(time.Hour).UTC().Truncate(time.Second)
	suite.users.On("Authenticate", mock.Anything, "admin", "secret123").Return(user, nil).Once()
	suite.tokens.On("GenerateAccessToken", mock.Anything, user).Return("signed-token", expires, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/auth/login", dto.LoginRequest{Username: "admin", Password: "secret123"}, "")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.LoginResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("signed-token", resp.Token)

	var session *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == suite.cfg.SessionCookieName {
			session = c
		}
	}
	suite.Require().NotNil(session)
	suite.Equal("signed-token", session.Value)
	suite.True(session.HttpOnly)
}

func (suite *HandlerTestSuite) TestLogin_WrongPassword() {
	suite.users.On("Authenticate", mock.Anything, "admin", "nope").Return(nil, apperrors.ErrUnauthorized).Once()

	w := suite.do(http.MethodPost, "/api/v1/auth/login", dto.LoginRequest{Username: "admin", Password: "nope"}, "")

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Equal("Invalid username or password", suite.errorBody(w))
}

func (suite *HandlerTestSuite) TestRegister_DuplicateUsername() {
	req := dto.RegisterRequest{Username: "admin", Password: "secret123"}
	suite.users.On("Register", mock.Anything, req).Return(nil, apperrors.NewConflictError("username already in use")).Once()

	w := suite.do(http.MethodPost, "/api/v1/auth/register", req, "")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("username already in use", suite.errorBody(w))
}

func (suite *HandlerTestSuite) TestSessionAndLogout() {
	suite.users.On("GetUserByID", mock.AnythingOfType("*context.valueCtx"), int64(42)).
		Return(&domain.User{UserID: 42, Username: "admin"}, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/auth/session", nil)
	req.AddCookie(&http.Cookie{Name: suite.cfg.SessionCookieName, Value: suite.generateTestToken("42")})
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"user_id":42,"username":"admin"}`, w.Body.String())

	out := suite.do(http.MethodPost, "/api/v1/auth/logout", nil, "")
	suite.Equal(http.StatusOK, out.Code)
	suite.True(strings.Contains(out.Header().Get("Set-Cookie"), suite.cfg.SessionCookieName+"=;"))
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
