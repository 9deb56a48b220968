package dto

import (
	"github.com/SscSPs/floor_assignment_app/internal/core/domain"
)

// AssignRequest places an employee on a workplace for a date.
type AssignRequest struct {
	EmployeeID  int64  `json:"employee_id" binding:"required,min=1"`
	WorkplaceID int64  `json:"workplace_id" binding:"required,min=1"`
	Date        string `json:"date" binding:"required,datetime=2006-01-02"`
}

// UnassignQuery binds DELETE /assignment?employee_id=&date=.
type UnassignQuery struct {
	EmployeeID int64  `form:"employee_id" binding:"required,min=1"`
	Date       string `form:"date" binding:"required,datetime=2006-01-02"`
}

// DailyEntryResponse is one employee of the reconciled daily view.
type DailyEntryResponse struct {
	EmployeeID         int64                   `json:"employee_id"`
	EmployeeNumber     string                  `json:"employee_number"`
	Name               string                  `json:"name"`
	Position           *string                 `json:"position"`
	ShiftType          domain.ShiftType        `json:"shift_type"`
	AttendanceStatus   domain.AttendanceStatus `json:"attendance_status"`
	AttendanceID       *int64                  `json:"attendance_id"`
	AssignmentID       *int64                  `json:"assignment_id"`
	WorkplaceID        *int64                  `json:"workplace_id"`
	WorkplaceName      *string                 `json:"workplace_name"`
	WorkplaceNumber    *int                    `json:"workplace_number"`
	WorkplaceColor     *string                 `json:"workplace_color"`
	WorkplaceCanAssign *bool                   `json:"workplace_can_assign"`
}

// ToDailyEntryResponse converts a domain.DailyEntry to DTO.
func ToDailyEntryResponse(e domain.DailyEntry) DailyEntryResponse {
	return DailyEntryResponse{
		EmployeeID:         e.EmployeeID,
		EmployeeNumber:     e.EmployeeNumber,
		Name:               e.Name,
		Position:           e.Position,
		ShiftType:          e.ShiftType,
		AttendanceStatus:   e.AttendanceStatus,
		AttendanceID:       e.AttendanceID,
		AssignmentID:       e.AssignmentID,
		WorkplaceID:        e.WorkplaceID,
		WorkplaceName:      e.WorkplaceName,
		WorkplaceNumber:    e.WorkplaceNumber,
		WorkplaceColor:     e.WorkplaceColor,
		WorkplaceCanAssign: e.WorkplaceCanAssign,
	}
}

// ToDailyViewResponse converts a daily view to DTOs.
func ToDailyViewResponse(view domain.DailyView) []DailyEntryResponse {
	list := make([]DailyEntryResponse, len(view))
	for i, e := range view {
		list[i] = ToDailyEntryResponse(e)
	}
	return list
}

// AssignmentResponse defines data returned for a stored assignment.
type AssignmentResponse struct {
	AssignmentID int64  `json:"id"`
	EmployeeID   int64  `json:"employee_id"`
	WorkplaceID  int64  `json:"workplace_id"`
	Date         string `json:"date"`
}

// ToAssignmentResponse converts domain.Assignment to DTO.
func ToAssignmentResponse(a *domain.Assignment) AssignmentResponse {
	return AssignmentResponse{
		AssignmentID: a.AssignmentID,
		EmployeeID:   a.EmployeeID,
		WorkplaceID:  a.WorkplaceID,
		Date:         domain.FormatDate(a.Date),
	}
}

// WorkplaceSlotResponse is a workplace with the employees assigned to it.
type WorkplaceSlotResponse struct {
	WorkplaceResponse
	Employees []DailyEntryResponse `json:"employees"`
}

// AssignmentSummaryResponse backs the assignment editing board.
type AssignmentSummaryResponse struct {
	Date       string                                    `json:"date"`
	Unassigned map[domain.ShiftType][]DailyEntryResponse `json:"unassigned"`
	Workplaces []WorkplaceSlotResponse                   `json:"workplaces"`
}

// ToAssignmentSummaryResponse converts domain.AssignmentSummary to DTO.
func ToAssignmentSummaryResponse(s *domain.AssignmentSummary) AssignmentSummaryResponse {
	unassigned := make(map[domain.ShiftType][]DailyEntryResponse, len(s.Unassigned))
	for shift, view := range s.Unassigned {
		unassigned[shift] = ToDailyViewResponse(view)
	}
	slots := make([]WorkplaceSlotResponse, len(s.Workplaces))
	for i := range s.Workplaces {
		slots[i] = WorkplaceSlotResponse{
			WorkplaceResponse: ToWorkplaceResponse(&s.Workplaces[i].Workplace),
			Employees:         ToDailyViewResponse(s.Workplaces[i].Employees),
		}
	}
	return AssignmentSummaryResponse{
		Date:       domain.FormatDate(s.Date),
		Unassigned: unassigned,
		Workplaces: slots,
	}
}
