package pgsql

import (
	portsrepo "github.com/SscSPs/floor_assignment_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		EmployeeRepo:      newPgxEmployeeRepository(dbPool),
		WorkplaceRepo:     newPgxWorkplaceRepository(dbPool),
		AttendanceRepo:    newPgxAttendanceRepository(dbPool),
		AssignmentRepo:    newPgxAssignmentRepository(dbPool),
		DisplayLayoutRepo: newPgxDisplayLayoutRepository(dbPool),
		UserRepo:          newPgxUserRepository(dbPool),
	}
}
