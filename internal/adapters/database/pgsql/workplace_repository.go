package pgsql

import (
	"context"
	"fmt"
	"net/http"

	"github.com/SscSPs/floor_assignment_app/internal/apperrors"
	"github.com/SscSPs/floor_assignment_app/internal/core/domain"
	portsrepo "github.com/SscSPs/floor_assignment_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxWorkplaceRepository struct {
	BaseRepository
}

// newPgxWorkplaceRepository creates a new repository for workplace data.
func newPgxWorkplaceRepository(pool *pgxpool.Pool) portsrepo.WorkplaceRepositoryFacade {
	return &PgxWorkplaceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxWorkplaceRepository implements portsrepo.WorkplaceRepositoryFacade
var _ portsrepo.WorkplaceRepositoryFacade = (*PgxWorkplaceRepository)(nil)

const duplicateWorkplaceNumberMsg = "number already in use"

var FULL_WORKPLACE_SELECT_QUERY = `
SELECT
	w.id, w.number, w.name, w.color, w.can_assign,
	w.created_at, w.updated_at
FROM workplaces w
`

const workplaceReturningColumns = `
RETURNING id, number, name, color, can_assign, created_at, updated_at`

func (r *PgxWorkplaceRepository) getWorkplaces(ctx context.Context, filterQuery string, args ...any) ([]domain.Workplace, error) {
	workplaces, err := collect[domain.Workplace](ctx, r.Pool, FULL_WORKPLACE_SELECT_QUERY+filterQuery, args...)
	if err != nil {
		return nil, mapWriteError(err, "query workplaces", "", "")
	}
	return workplaces, nil
}

func (r *PgxWorkplaceRepository) FindWorkplaces(ctx context.Context) ([]domain.Workplace, error) {
	return r.getWorkplaces(ctx, `ORDER BY w.number`)
}

func (r *PgxWorkplaceRepository) FindWorkplaceByID(ctx context.Context, workplaceID int64) (*domain.Workplace, error) {
	workplaces, err := r.getWorkplaces(ctx, `WHERE w.id = $1`, workplaceID)
	if err != nil {
		return nil, err
	}
	return first(workplaces, fmt.Sprintf("workplace %d not found", workplaceID))
}

func (r *PgxWorkplaceRepository) SaveWorkplace(ctx context.Context, workplace domain.Workplace) (*domain.Workplace, error) {
	query := `
		INSERT INTO workplaces (number, name, color, can_assign)
		VALUES ($1, $2, $3, $4)` + workplaceReturningColumns

	saved, err := collect[domain.Workplace](ctx, r.Pool, query,
		workplace.Number,
		workplace.Name,
		workplace.Color,
		workplace.CanAssign,
	)
	if err != nil {
		return nil, mapWriteError(err, fmt.Sprintf("save workplace %d", workplace.Number), duplicateWorkplaceNumberMsg, "")
	}
	return first(saved, "workplace was not saved")
}

func (r *PgxWorkplaceRepository) UpdateWorkplace(ctx context.Context, workplace domain.Workplace) (*domain.Workplace, error) {
	query := `
		UPDATE workplaces
		SET number = $2, name = $3, color = $4, can_assign = $5, updated_at = NOW()
		WHERE id = $1` + workplaceReturningColumns

	updated, err := collect[domain.Workplace](ctx, r.Pool, query,
		workplace.WorkplaceID,
		workplace.Number,
		workplace.Name,
		workplace.Color,
		workplace.CanAssign,
	)
	if err != nil {
		return nil, mapWriteError(err, fmt.Sprintf("update workplace %d", workplace.WorkplaceID), duplicateWorkplaceNumberMsg, "")
	}
	return first(updated, fmt.Sprintf("workplace %d not found", workplace.WorkplaceID))
}

func (r *PgxWorkplaceRepository) DeleteWorkplace(ctx context.Context, workplaceID int64) error {
	result, err := r.Pool.Exec(ctx, `DELETE FROM workplaces WHERE id = $1`, workplaceID)
	if err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, fmt.Sprintf("failed to delete workplace %d", workplaceID), err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("workplace %d not found", workplaceID))
	}
	return nil
}
