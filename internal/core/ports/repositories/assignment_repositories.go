package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/floor_assignment_app/internal/core/domain"
)

// AssignmentWriter defines write operations for daily assignments.
type AssignmentWriter interface {
	// ReplaceAssignment releases any assignment the employee holds on the date
	// and inserts the new one in the same transaction.
	ReplaceAssignment(ctx context.Context, assignment domain.Assignment) (*domain.Assignment, error)

	// DeleteAssignment removes the (employee, date) row. Deleting a missing row is not an error.
	DeleteAssignment(ctx context.Context, employeeID int64, date time.Time) error
}

// DailyViewReader answers "who is where" for a date.
type DailyViewReader interface {
	// FindDailyRows joins every employee with the date's attendance,
	// assignment and workplace. Filtering and defaulting happen in domain.BuildDailyView.
	FindDailyRows(ctx context.Context, date time.Time) ([]domain.DailyRow, error)
}

// AssignmentRepositoryFacade combines the assignment writer with the daily view query.
type AssignmentRepositoryFacade interface {
	AssignmentWriter
	DailyViewReader
}
