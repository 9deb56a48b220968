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

type PgxDisplayLayoutRepository struct {
	BaseRepository
}

func newPgxDisplayLayoutRepository(pool *pgxpool.Pool) portsrepo.DisplayLayoutRepositoryFacade {
	return &PgxDisplayLayoutRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.DisplayLayoutRepositoryFacade = (*PgxDisplayLayoutRepository)(nil)

var FULL_DISPLAY_LAYOUT_SELECT_QUERY = `
SELECT
	l.id, l.layout_name, l.grid_rows, l.grid_cols, l.layout_config,
	(act.layout_id IS NOT NULL) AS is_active,
	l.created_at, l.updated_at
FROM display_layouts l
LEFT JOIN active_display_layout act ON act.layout_id = l.id
`

func (r *PgxDisplayLayoutRepository) getLayouts(ctx context.Context, filterQuery string, args ...any) ([]domain.DisplayLayout, error) {
	layouts, err := collect[domain.DisplayLayout](ctx, r.Pool, FULL_DISPLAY_LAYOUT_SELECT_QUERY+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query display layouts", err)
	}
	return layouts, nil
}

func (r *PgxDisplayLayoutRepository) FindLayouts(ctx context.Context, activeOnly bool) ([]domain.DisplayLayout, error) {
	if activeOnly {
		return r.getLayouts(ctx, `WHERE act.layout_id IS NOT NULL`)
	}
	return r.getLayouts(ctx, `ORDER BY l.created_at DESC, l.id DESC`)
}

func (r *PgxDisplayLayoutRepository) FindLayoutByID(ctx context.Context, layoutID int64) (*domain.DisplayLayout, error) {
	layouts, err := r.getLayouts(ctx, `WHERE l.id = $1`, layoutID)
	if err != nil {
		return nil, err
	}
	return first(layouts, fmt.Sprintf("display layout %d not found", layoutID))
}

func (r *PgxDisplayLayoutRepository) FindActiveLayout(ctx context.Context) (*domain.DisplayLayout, error) {
	layouts, err := r.FindLayouts(ctx, true)
	if err != nil {
		return nil, err
	}
	return first(layouts, "no active display layout")
}

func (r *PgxDisplayLayoutRepository) SaveLayout(ctx context.Context, layout domain.DisplayLayout) (*domain.DisplayLayout, error) {
	query := `
		INSERT INTO display_layouts (layout_name, grid_rows, grid_cols, layout_config)
		VALUES ($1, $2, $3, $4)
		RETURNING id, layout_name, grid_rows, grid_cols, layout_config, FALSE AS is_active, created_at, updated_at`

	saved, err := collect[domain.DisplayLayout](ctx, r.Pool, query,
		layout.LayoutName,
		layout.GridRows,
		layout.GridCols,
		layout.LayoutConfig,
	)
	if err != nil {
		return nil, mapWriteError(err, "save display layout "+layout.LayoutName, "", "")
	}
	return first(saved, "display layout was not saved")
}

func (r *PgxDisplayLayoutRepository) UpdateLayout(ctx context.Context, layout domain.DisplayLayout) (*domain.DisplayLayout, error) {
	query := `
		UPDATE display_layouts
		SET layout_name = $2, grid_rows = $3, grid_cols = $4, layout_config = $5, updated_at = NOW()
		WHERE id = $1`

	result, err := r.Pool.Exec(ctx, query,
		layout.LayoutID,
		layout.LayoutName,
		layout.GridRows,
		layout.GridCols,
		layout.LayoutConfig,
	)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, fmt.Sprintf("failed to update display layout %d", layout.LayoutID), err)
	}
	if result.RowsAffected() == 0 {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("display layout %d not found", layout.LayoutID))
	}
	return r.FindLayoutByID(ctx, layout.LayoutID)
}

func (r *PgxDisplayLayoutRepository) DeleteLayout(ctx context.Context, layoutID int64) error {
	result, err := r.Pool.Exec(ctx, `DELETE FROM display_layouts WHERE id = $1`, layoutID)
	if err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, fmt.Sprintf("failed to delete display layout %d", layoutID), err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("display layout %d not found", layoutID))
	}
	return nil
}

// ActivateLayout repoints the singleton row. The row lock taken by the
// upsert serialises concurrent activations, so at most one layout is active.
func (r *PgxDisplayLayoutRepository) ActivateLayout(ctx context.Context, layoutID int64) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	var exists bool
	if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM display_layouts WHERE id = $1)`, layoutID).Scan(&exists); err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, fmt.Sprintf("failed to look up display layout %d", layoutID), err)
	}
	if !exists {
		return apperrors.NewNotFoundError(fmt.Sprintf("display layout %d not found", layoutID))
	}

	query := `
		INSERT INTO active_display_layout (id, layout_id, updated_at)
		VALUES (1, $1, NOW())
		ON CONFLICT (id) DO UPDATE SET layout_id = EXCLUDED.layout_id, updated_at = EXCLUDED.updated_at`
	if _, err := tx.Exec(ctx, query, layoutID); err != nil {
		return mapWriteError(err, fmt.Sprintf("activate display layout %d", layoutID), "", fmt.Sprintf("display layout %d not found", layoutID))
	}
	return r.Commit(ctx, tx)
}

func (r *PgxDisplayLayoutRepository) DeactivateLayout(ctx context.Context, layoutID int64) error {
	if _, err := r.Pool.Exec(ctx, `DELETE FROM active_display_layout WHERE layout_id = $1`, layoutID); err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, fmt.Sprintf("failed to deactivate display layout %d", layoutID), err)
	}
	return nil
}
