package services

import (
	"context"
	"io"

	"github.com/SscSPs/floor_assignment_app/internal/core/domain"
	"github.com/SscSPs/floor_assignment_app/internal/dto"
)

// WorkplaceReaderSvc defines read operations for workplace data
type WorkplaceReaderSvc interface {
	ListWorkplaces(ctx context.Context) ([]domain.Workplace, error)
	GetWorkplaceByID(ctx context.Context, workplaceID int64) (*domain.Workplace, error)
}

// WorkplaceWriterSvc defines write operations for workplace data
type WorkplaceWriterSvc interface {
	CreateWorkplace(ctx context.Context, req dto.SaveWorkplaceRequest) (*domain.Workplace, error)
	UpdateWorkplace(ctx context.Context, workplaceID int64, req dto.SaveWorkplaceRequest) (*domain.Workplace, error)
	DeleteWorkplace(ctx context.Context, workplaceID int64) error
}

// WorkplaceImportSvc imports workplaces from an uploaded spreadsheet.
type WorkplaceImportSvc interface {
	// ImportWorkplaces reads number, name and optional color columns from the file.
	ImportWorkplaces(ctx context.Context, filename string, r io.Reader) (*domain.ImportResult, error)
}

// WorkplaceSvcFacade combines all workplace-related service interfaces
type WorkplaceSvcFacade interface {
	WorkplaceReaderSvc
	WorkplaceWriterSvc
	WorkplaceImportSvc
}
