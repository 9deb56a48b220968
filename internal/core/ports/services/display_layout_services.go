package services

import (
	"context"

	"github.com/SscSPs/floor_assignment_app/internal/core/domain"
	"github.com/SscSPs/floor_assignment_app/internal/dto"
)

// DisplayLayoutReaderSvc defines read operations for display layouts
type DisplayLayoutReaderSvc interface {
	ListLayouts(ctx context.Context, activeOnly bool) ([]domain.DisplayLayout, error)
	GetLayoutByID(ctx context.Context, layoutID int64) (*domain.DisplayLayout, error)

	// GetActiveOrDefault returns the active layout or the built-in default grid.
	GetActiveOrDefault(ctx context.Context) (*domain.DisplayLayout, error)
}

// DisplayLayoutWriterSvc defines write operations for display layouts.
// Cells are re-validated against the grid before anything is stored.
type DisplayLayoutWriterSvc interface {
	CreateLayout(ctx context.Context, req dto.SaveDisplayLayoutRequest) (*domain.DisplayLayout, error)
	UpdateLayout(ctx context.Context, layoutID int64, req dto.SaveDisplayLayoutRequest) (*domain.DisplayLayout, error)
	ActivateLayout(ctx context.Context, layoutID int64) (*domain.DisplayLayout, error)
	DeleteLayout(ctx context.Context, layoutID int64) error
}

// DisplayLayoutSvcFacade combines all display layout service interfaces
type DisplayLayoutSvcFacade interface {
	DisplayLayoutReaderSvc
	DisplayLayoutWriterSvc
}
