package repositories

import (
	"context"

	"github.com/SscSPs/floor_assignment_app/internal/core/domain"
)

// WorkplaceReader defines read operations for workplace data
type WorkplaceReader interface {
	// FindWorkplaces lists every workplace ordered by number.
	FindWorkplaces(ctx context.Context) ([]domain.Workplace, error)

	// FindWorkplaceByID returns apperrors.ErrNotFound when no row matches.
	FindWorkplaceByID(ctx context.Context, workplaceID int64) (*domain.Workplace, error)
}

// WorkplaceWriter defines write operations for workplace data
type WorkplaceWriter interface {
	// SaveWorkplace inserts a workplace; a duplicate number is apperrors.ErrDuplicate.
	SaveWorkplace(ctx context.Context, workplace domain.Workplace) (*domain.Workplace, error)

	UpdateWorkplace(ctx context.Context, workplace domain.Workplace) (*domain.Workplace, error)

	// DeleteWorkplace removes the workplace; its assignments cascade.
	DeleteWorkplace(ctx context.Context, workplaceID int64) error
}

// WorkplaceRepositoryFacade combines all workplace-related repository interfaces
type WorkplaceRepositoryFacade interface {
	WorkplaceReader
	WorkplaceWriter
}
