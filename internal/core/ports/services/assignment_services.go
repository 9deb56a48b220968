package services

import (
	"context"
	"time"

	"github.com/SscSPs/floor_assignment_app/internal/core/domain"
)

// AssignmentReaderSvc defines the reconciled read side.
type AssignmentReaderSvc interface {
	// GetDailyView returns the present, eligible employees for date with their assignments.
	GetDailyView(ctx context.Context, date time.Time) (domain.DailyView, error)

	// GetSummary groups the daily view for the editing board.
	GetSummary(ctx context.Context, date time.Time) (*domain.AssignmentSummary, error)
}

// AssignmentWriterSvc defines assign and unassign.
type AssignmentWriterSvc interface {
	// Assign fails with apperrors.ErrNotFound for an unknown workplace and
	// apperrors.ErrWorkplaceNotAssignable when its can_assign flag is false.
	Assign(ctx context.Context, employeeID, workplaceID int64, date time.Time) (*domain.Assignment, error)

	// Unassign is idempotent.
	Unassign(ctx context.Context, employeeID int64, date time.Time) error
}

// AssignmentSvcFacade combines all assignment-related service interfaces
type AssignmentSvcFacade interface {
	AssignmentReaderSvc
	AssignmentWriterSvc
}
