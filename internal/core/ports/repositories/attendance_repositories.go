package repositories

import (
	"context"

	"github.com/SscSPs/floor_assignment_app/internal/core/domain"
)

// AttendanceRepository persists per-day attendance.
type AttendanceRepository interface {
	// UpsertAttendance writes the row for (employee, date), overwriting status
	// and shift if one already exists.
	UpsertAttendance(ctx context.Context, attendance domain.Attendance) (*domain.Attendance, error)
}
