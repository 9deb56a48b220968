package domain_test

import (
	"testing"

	"github.com/SscSPs/floor_assignment_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statusPtr(s domain.AttendanceStatus) *domain.AttendanceStatus { return &s }
func shiftPtr(s domain.ShiftType) *domain.ShiftType                { return &s }
func strPtr(s string) *string                                      { return &s }

func eligibleRow(id int64, number, name string) domain.DailyRow {
	return domain.DailyRow{
		EmployeeID:       id,
		EmployeeNumber:   number,
		Name:             name,
		EmploymentStatus: domain.EmploymentActive,
		DisplayStatus:    domain.DisplayShown,
	}
}

func TestBuildDailyView_DefaultsMissingAttendance(t *testing.T) {
	view := domain.BuildDailyView([]domain.DailyRow{eligibleRow(1, "E001", "Tanaka")})

	require.Len(t, view, 1)
	assert.Equal(t, domain.AttendancePresent, view[0].AttendanceStatus)
	assert.Equal(t, domain.ShiftEarly, view[0].ShiftType)
	assert.Nil(t, view[0].AttendanceID)
	assert.False(t, view[0].IsAssigned())
}

func TestBuildDailyView_OnlyActiveAndShown(t *testing.T) {
	resigned := eligibleRow(2, "E002", "Sato")
	resigned.EmploymentStatus = domain.EmploymentResigned
	hidden := eligibleRow(3, "E003", "Suzuki")
	hidden.DisplayStatus = domain.DisplayHidden
	both := eligibleRow(4, "E004", "Ito")
	both.EmploymentStatus = domain.EmploymentResigned
	both.DisplayStatus = domain.DisplayHidden

	view := domain.BuildDailyView([]domain.DailyRow{
		eligibleRow(5, "E005", "Kato"),
		resigned,
		hidden,
		both,
		eligibleRow(1, "E001", "Tanaka"),
	})

	require.Len(t, view, 2)
	assert.Equal(t, "E001", view[0].EmployeeNumber, "view is ordered by employee number")
	assert.Equal(t, "E005", view[1].EmployeeNumber)
}

func TestBuildDailyView_KeepsRecordedAttendance(t *testing.T) {
	row := eligibleRow(1, "E001", "Tanaka")
	row.AttendanceID = int64Ptr(9)
	row.AttendanceStatus = statusPtr(domain.AttendanceAbsent)
	row.ShiftType = shiftPtr(domain.ShiftLate)

	view := domain.BuildDailyView([]domain.DailyRow{row})
	require.Len(t, view, 1)
	assert.Equal(t, domain.AttendanceAbsent, view[0].AttendanceStatus)
	assert.Equal(t, domain.ShiftLate, view[0].ShiftType)
}

func TestDailyView_DisplayModes(t *testing.T) {
	present := eligibleRow(1, "E001", "Tanaka")
	present.WorkplaceID = int64Ptr(7)
	present.WorkplaceName = strPtr("Press")
	absent := eligibleRow(2, "E002", "Sato")
	absent.AttendanceStatus = statusPtr(domain.AttendanceAbsent)

	view := domain.BuildDailyView([]domain.DailyRow{present, absent})

	workplaceMode := view.ForDisplay(domain.DisplayModeWorkplace)
	require.Len(t, workplaceMode, 1)
	assert.Equal(t, int64(1), workplaceMode[0].EmployeeID)

	employeeMode := view.ForDisplay(domain.DisplayModeEmployee)
	require.Len(t, employeeMode, 2)
	assert.False(t, employeeMode[1].IsPresent())

	assert.Equal(t, domain.DisplayModeEmployee, domain.ParseDisplayMode("employee", domain.DisplayModeWorkplace))
	assert.Equal(t, domain.DisplayModeWorkplace, domain.ParseDisplayMode("bogus", domain.DisplayModeWorkplace))
}

func TestDailyView_Grouping(t *testing.T) {
	a := eligibleRow(1, "E001", "Tanaka")
	a.WorkplaceID = int64Ptr(7)
	b := eligibleRow(2, "E002", "Sato")
	b.ShiftType = shiftPtr(domain.ShiftLate)
	c := eligibleRow(3, "E003", "Suzuki")
	d := eligibleRow(4, "E004", "Ito")
	d.AttendanceStatus = statusPtr(domain.AttendanceAbsent)
	e := eligibleRow(5, "E005", "Kato")
	e.WorkplaceID = int64Ptr(7)

	view := domain.BuildDailyView([]domain.DailyRow{a, b, c, d, e})

	byWorkplace := view.ByWorkplace()
	require.Len(t, byWorkplace[7], 2)
	assert.Equal(t, "E001", byWorkplace[7][0].EmployeeNumber)

	unassigned := view.UnassignedByShift()
	require.Len(t, unassigned[domain.ShiftEarly], 1)
	assert.Equal(t, "E003", unassigned[domain.ShiftEarly][0].EmployeeNumber)
	require.Len(t, unassigned[domain.ShiftLate], 1)
	assert.Equal(t, "E002", unassigned[domain.ShiftLate][0].EmployeeNumber)
}
