package pgsql

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/SscSPs/floor_assignment_app/internal/apperrors"
	"github.com/SscSPs/floor_assignment_app/internal/core/domain"
	portsrepo "github.com/SscSPs/floor_assignment_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAssignmentRepository struct {
	BaseRepository
}

func newPgxAssignmentRepository(pool *pgxpool.Pool) portsrepo.AssignmentRepositoryFacade {
	return &PgxAssignmentRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.AssignmentRepositoryFacade = (*PgxAssignmentRepository)(nil)

// dailyRowsQuery left joins every active, shown employee with the date's
// attendance and assignment. Defaults are applied in domain.BuildDailyView.
const dailyRowsQuery = `
SELECT
	e.id AS employee_id, e.employee_number, e.name, e.position,
	e.employment_status, e.display_status,
	a.id AS attendance_id, a.attendance_status, a.shift_type,
	s.id AS assignment_id,
	w.id AS workplace_id, w.name AS workplace_name, w.number AS workplace_number,
	w.color AS workplace_color, w.can_assign AS workplace_can_assign
FROM employees e
LEFT JOIN attendance a ON a.employee_id = e.id AND a.date = $1
LEFT JOIN assignments s ON s.employee_id = e.id AND s.date = $1
LEFT JOIN workplaces w ON w.id = s.workplace_id
WHERE e.employment_status = 'active' AND e.display_status = 'shown'
ORDER BY e.employee_number
`

func (r *PgxAssignmentRepository) FindDailyRows(ctx context.Context, date time.Time) ([]domain.DailyRow, error) {
	rows, err := collect[domain.DailyRow](ctx, r.Pool, dailyRowsQuery, date)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query daily view for "+domain.FormatDate(date), err)
	}
	return rows, nil
}

// ReplaceAssignment upserts on (employee_id, date): an employee holds at most
// one assignment per day.
func (r *PgxAssignmentRepository) ReplaceAssignment(ctx context.Context, assignment domain.Assignment) (*domain.Assignment, error) {
	query := `
		INSERT INTO assignments (employee_id, workplace_id, date)
		VALUES ($1, $2, $3)
		ON CONFLICT (employee_id, date) DO UPDATE SET workplace_id = EXCLUDED.workplace_id
		RETURNING id, employee_id, workplace_id, date, created_at`
	saved, err := collect[domain.Assignment](ctx, r.Pool, query,
		assignment.EmployeeID,
		assignment.WorkplaceID,
		assignment.Date,
	)
	if err != nil {
		return nil, mapWriteError(err, fmt.Sprintf("assign employee %d", assignment.EmployeeID),
			"", "employee or workplace not found")
	}
	return first(saved, "assignment was not saved")
}

func (r *PgxAssignmentRepository) DeleteAssignment(ctx context.Context, employeeID int64, date time.Time) error {
	_, err := r.Pool.Exec(ctx, `DELETE FROM assignments WHERE employee_id = $1 AND date = $2`, employeeID, date)
	if err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError,
			fmt.Sprintf("failed to delete assignment of employee %d on %s", employeeID, domain.FormatDate(date)), err)
	}
	return nil
}
