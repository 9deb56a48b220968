package services

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/floor_assignment_app/internal/apperrors"
	"github.com/SscSPs/floor_assignment_app/internal/core/domain"
	portsrepo "github.com/SscSPs/floor_assignment_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/floor_assignment_app/internal/core/ports/services"
	"github.com/SscSPs/floor_assignment_app/internal/dto"
)

type displayLayoutService struct {
	BaseService
	layoutRepo  portsrepo.DisplayLayoutRepositoryFacade
	defaultRows int
	defaultCols int
}

// DisplayLayoutOption configures the display layout service.
type DisplayLayoutOption func(*displayLayoutService)

// WithDefaultGrid sets the grid size served when no layout is active.
func WithDefaultGrid(rows, cols int) DisplayLayoutOption {
	return func(s *displayLayoutService) {
		s.defaultRows = rows
		s.defaultCols = cols
	}
}

// NewDisplayLayoutService creates the display layout service.
func NewDisplayLayoutService(layoutRepo portsrepo.DisplayLayoutRepositoryFacade, opts ...DisplayLayoutOption) portssvc.DisplayLayoutSvcFacade {
	s := &displayLayoutService{
		layoutRepo:  layoutRepo,
		defaultRows: domain.DefaultGridRows,
		defaultCols: domain.DefaultGridCols,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.DisplayLayoutSvcFacade = (*displayLayoutService)(nil)

func (s *displayLayoutService) ListLayouts(ctx context.Context, activeOnly bool) ([]domain.DisplayLayout, error) {
	layouts, err := s.layoutRepo.FindLayouts(ctx, activeOnly)
	if err != nil {
		s.LogError(ctx, err, "Failed to list display layouts")
		return nil, err
	}
	return layouts, nil
}

func (s *displayLayoutService) GetLayoutByID(ctx context.Context, layoutID int64) (*domain.DisplayLayout, error) {
	layout, err := s.layoutRepo.FindLayoutByID(ctx, layoutID)
	if err != nil {
		if isServerError(err) {
			s.LogError(ctx, err, "Failed to find display layout", slog.Int64("layout_id", layoutID))
		}
		return nil, err
	}
	return layout, nil
}

func (s *displayLayoutService) GetActiveOrDefault(ctx context.Context) (*domain.DisplayLayout, error) {
	layout, err := s.layoutRepo.FindActiveLayout(ctx)
	if err == nil {
		return layout, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to load active display layout")
		return nil, err
	}
	def := domain.DefaultLayout(s.defaultRows, s.defaultCols)
	return &def, nil
}

func (s *displayLayoutService) CreateLayout(ctx context.Context, req dto.SaveDisplayLayoutRequest) (*domain.DisplayLayout, error) {
	layout, err := validatedLayout(req)
	if err != nil {
		return nil, err
	}

	saved, err := s.layoutRepo.SaveLayout(ctx, layout)
	if err != nil {
		s.LogError(ctx, err, "Failed to save display layout", slog.String("layout_name", layout.LayoutName))
		return nil, err
	}

	s.LogInfo(ctx, "Display layout created",
		slog.Int64("layout_id", saved.LayoutID),
		slog.Int("cells", len(saved.LayoutConfig.Cells)))
	return saved, nil
}

// UpdateLayout replaces the layout. A non-nil IsActive also activates the
// layout (true) or clears it from the display (false).
func (s *displayLayoutService) UpdateLayout(ctx context.Context, layoutID int64, req dto.SaveDisplayLayoutRequest) (*domain.DisplayLayout, error) {
	layout, err := validatedLayout(req)
	if err != nil {
		return nil, err
	}
	layout.LayoutID = layoutID

	updated, err := s.layoutRepo.UpdateLayout(ctx, layout)
	if err != nil {
		if isServerError(err) {
			s.LogError(ctx, err, "Failed to update display layout", slog.Int64("layout_id", layoutID))
		}
		return nil, err
	}

	if req.IsActive != nil && *req.IsActive != updated.IsActive {
		if *req.IsActive {
			return s.ActivateLayout(ctx, layoutID)
		}
		if err := s.layoutRepo.DeactivateLayout(ctx, layoutID); err != nil {
			s.LogError(ctx, err, "Failed to deactivate display layout", slog.Int64("layout_id", layoutID))
			return nil, err
		}
		updated.IsActive = false
	}

	s.LogInfo(ctx, "Display layout updated", slog.Int64("layout_id", layoutID))
	return updated, nil
}

func (s *displayLayoutService) ActivateLayout(ctx context.Context, layoutID int64) (*domain.DisplayLayout, error) {
	if err := s.layoutRepo.ActivateLayout(ctx, layoutID); err != nil {
		if isServerError(err) {
			s.LogError(ctx, err, "Failed to activate display layout", slog.Int64("layout_id", layoutID))
		}
		return nil, err
	}
	s.LogInfo(ctx, "Display layout activated", slog.Int64("layout_id", layoutID))
	return s.GetLayoutByID(ctx, layoutID)
}

func (s *displayLayoutService) DeleteLayout(ctx context.Context, layoutID int64) error {
	if err := s.layoutRepo.DeleteLayout(ctx, layoutID); err != nil {
		if isServerError(err) {
			s.LogError(ctx, err, "Failed to delete display layout", slog.Int64("layout_id", layoutID))
		}
		return err
	}
	s.LogInfo(ctx, "Display layout deleted", slog.Int64("layout_id", layoutID))
	return nil
}

// validatedLayout rebuilds the grid from the submitted cells so nothing that
// overlaps or overflows reaches the store.
func validatedLayout(req dto.SaveDisplayLayoutRequest) (domain.DisplayLayout, error) {
	name := strings.TrimSpace(req.LayoutName)
	if name == "" {
		return domain.DisplayLayout{}, apperrors.NewValidationFailedError("layout_name is required")
	}
	grid, err := domain.GridFromConfig(req.GridRows, req.GridCols, req.LayoutConfig)
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			return domain.DisplayLayout{}, err
		}
		return domain.DisplayLayout{}, apperrors.NewAppError(http.StatusBadRequest, err.Error(), err)
	}
	return domain.DisplayLayout{
		LayoutName:   name,
		GridRows:     grid.Rows(),
		GridCols:     grid.Cols(),
		LayoutConfig: grid.Config(),
	}, nil
}
