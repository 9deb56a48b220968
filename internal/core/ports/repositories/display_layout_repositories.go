package repositories

import (
	"context"

	"github.com/SscSPs/floor_assignment_app/internal/core/domain"
)

// DisplayLayoutReader defines read operations for display layouts
type DisplayLayoutReader interface {
	// FindLayouts lists layouts newest first. With activeOnly only the active layout (if any) is returned.
	FindLayouts(ctx context.Context, activeOnly bool) ([]domain.DisplayLayout, error)

	FindLayoutByID(ctx context.Context, layoutID int64) (*domain.DisplayLayout, error)

	// FindActiveLayout returns apperrors.ErrNotFound when nothing is active.
	FindActiveLayout(ctx context.Context) (*domain.DisplayLayout, error)
}

// DisplayLayoutWriter defines write operations for display layouts
type DisplayLayoutWriter interface {
	SaveLayout(ctx context.Context, layout domain.DisplayLayout) (*domain.DisplayLayout, error)

	UpdateLayout(ctx context.Context, layout domain.DisplayLayout) (*domain.DisplayLayout, error)

	DeleteLayout(ctx context.Context, layoutID int64) error
}

// DisplayLayoutActivator manages the active layout singleton.
type DisplayLayoutActivator interface {
	// ActivateLayout points the singleton at layoutID inside one transaction.
	ActivateLayout(ctx context.Context, layoutID int64) error

	// DeactivateLayout clears the singleton if it currently points at layoutID.
	DeactivateLayout(ctx context.Context, layoutID int64) error
}

// DisplayLayoutRepositoryFacade combines all display layout repository interfaces
type DisplayLayoutRepositoryFacade interface {
	DisplayLayoutReader
	DisplayLayoutWriter
	DisplayLayoutActivator
}
