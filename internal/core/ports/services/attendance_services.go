package services

import (
	"context"
	"time"

	"github.com/SscSPs/floor_assignment_app/internal/core/domain"
	"github.com/SscSPs/floor_assignment_app/internal/dto"
)

// AttendanceSvcFacade manages the daily attendance sheet.
type AttendanceSvcFacade interface {
	// GetAttendanceSheet returns every eligible employee with attendance
	// resolved for date, absentees included.
	GetAttendanceSheet(ctx context.Context, date time.Time) (domain.DailyView, error)

	// RecordAttendance upserts attendance for (employee, date).
	RecordAttendance(ctx context.Context, req dto.RecordAttendanceRequest) (*domain.Attendance, error)
}
