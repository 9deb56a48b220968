package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/floor_assignment_app/internal/core/domain"
	portsrepo "github.com/SscSPs/floor_assignment_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAttendanceRepository struct {
	BaseRepository
}

func newPgxAttendanceRepository(pool *pgxpool.Pool) portsrepo.AttendanceRepository {
	return &PgxAttendanceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.AttendanceRepository = (*PgxAttendanceRepository)(nil)

func (r *PgxAttendanceRepository) UpsertAttendance(ctx context.Context, attendance domain.Attendance) (*domain.Attendance, error) {
	query := `
		INSERT INTO attendance (employee_id, date, attendance_status, shift_type)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (employee_id, date) DO UPDATE
		SET attendance_status = EXCLUDED.attendance_status, shift_type = EXCLUDED.shift_type
		RETURNING id, employee_id, date, attendance_status, shift_type, created_at`

	saved, err := collect[domain.Attendance](ctx, r.Pool, query,
		attendance.EmployeeID,
		attendance.Date,
		attendance.AttendanceStatus,
		attendance.ShiftType,
	)
	if err != nil {
		return nil, mapWriteError(err, fmt.Sprintf("record attendance for employee %d", attendance.EmployeeID),
			"", fmt.Sprintf("employee %d not found", attendance.EmployeeID))
	}
	return first(saved, "attendance was not saved")
}
