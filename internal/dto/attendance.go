package dto

import (
	"github.com/SscSPs/floor_assignment_app/internal/core/domain"
)

// RecordAttendanceRequest upserts attendance for one employee and date.
type RecordAttendanceRequest struct {
	EmployeeID       int64                   `json:"employee_id" binding:"required,min=1"`
	Date             string                  `json:"date" binding:"required,datetime=2006-01-02"`
	AttendanceStatus domain.AttendanceStatus `json:"attendance_status" binding:"required,attendance_status"`
	ShiftType        domain.ShiftType        `json:"shift_type" binding:"required,shift_type"`
}

// AttendanceEntryResponse is one row of the attendance sheet for a date.
// AttendanceID is null when the status shown is the default.
type AttendanceEntryResponse struct {
	EmployeeID       int64                   `json:"employee_id"`
	EmployeeNumber   string                  `json:"employee_number"`
	Name             string                  `json:"name"`
	Position         *string                 `json:"position"`
	AttendanceID     *int64                  `json:"attendance_id"`
	AttendanceStatus domain.AttendanceStatus `json:"attendance_status"`
	ShiftType        domain.ShiftType        `json:"shift_type"`
}

// ToAttendanceEntryResponses converts a daily view into the attendance sheet.
func ToAttendanceEntryResponses(view domain.DailyView) []AttendanceEntryResponse {
	list := make([]AttendanceEntryResponse, len(view))
	for i, e := range view {
		list[i] = AttendanceEntryResponse{
			EmployeeID:       e.EmployeeID,
			EmployeeNumber:   e.EmployeeNumber,
			Name:             e.Name,
			Position:         e.Position,
			AttendanceID:     e.AttendanceID,
			AttendanceStatus: e.AttendanceStatus,
			ShiftType:        e.ShiftType,
		}
	}
	return list
}

// AttendanceResponse defines data returned for a stored attendance row.
type AttendanceResponse struct {
	AttendanceID     int64                   `json:"id"`
	EmployeeID       int64                   `json:"employee_id"`
	Date             string                  `json:"date"`
	AttendanceStatus domain.AttendanceStatus `json:"attendance_status"`
	ShiftType        domain.ShiftType        `json:"shift_type"`
}

// ToAttendanceResponse converts domain.Attendance to DTO.
func ToAttendanceResponse(a *domain.Attendance) AttendanceResponse {
	return AttendanceResponse{
		AttendanceID:     a.AttendanceID,
		EmployeeID:       a.EmployeeID,
		Date:             domain.FormatDate(a.Date),
		AttendanceStatus: a.AttendanceStatus,
		ShiftType:        a.ShiftType,
	}
}
