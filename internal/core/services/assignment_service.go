package services

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/floor_assignment_app/internal/apperrors"
	"github.com/SscSPs/floor_assignment_app/internal/core/domain"
	portsrepo "github.com/SscSPs/floor_assignment_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/floor_assignment_app/internal/core/ports/services"
)

type assignmentService struct {
	BaseService
	assignmentRepo portsrepo.AssignmentRepositoryFacade
	workplaceRepo  portsrepo.WorkplaceReader
}

// NewAssignmentService creates the daily assignment service.
func NewAssignmentService(assignmentRepo portsrepo.AssignmentRepositoryFacade, workplaceRepo portsrepo.WorkplaceReader) portssvc.AssignmentSvcFacade {
	return &assignmentService{
		assignmentRepo: assignmentRepo,
		workplaceRepo:  workplaceRepo,
	}
}

var _ portssvc.AssignmentSvcFacade = (*assignmentService)(nil)

func (s *assignmentService) GetDailyView(ctx context.Context, date time.Time) (domain.DailyView, error) {
	rows, err := s.assignmentRepo.FindDailyRows(ctx, date)
	if err != nil {
		s.LogError(ctx, err, "Failed to load daily view", slog.String("date", domain.FormatDate(date)))
		return nil, err
	}
	view := domain.BuildDailyView(rows).Present()
	s.LogDebug(ctx, "Daily view built", slog.String("date", domain.FormatDate(date)), slog.Int("count", len(view)))
	return view, nil
}

func (s *assignmentService) GetSummary(ctx context.Context, date time.Time) (*domain.AssignmentSummary, error) {
	rows, err := s.assignmentRepo.FindDailyRows(ctx, date)
	if err != nil {
		s.LogError(ctx, err, "Failed to load daily view", slog.String("date", domain.FormatDate(date)))
		return nil, err
	}
	workplaces, err := s.workplaceRepo.FindWorkplaces(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list workplaces for summary")
		return nil, err
	}
	summary := domain.Summarize(date, domain.BuildDailyView(rows), workplaces)
	return &summary, nil
}

// Assign places the employee on the workplace for date, replacing any
// assignment they already hold that day.
func (s *assignmentService) Assign(ctx context.Context, employeeID, workplaceID int64, date time.Time) (*domain.Assignment, error) {
	workplace, err := s.workplaceRepo.FindWorkplaceByID(ctx, workplaceID)
	if err != nil {
		if isServerError(err) {
			s.LogError(ctx, err, "Failed to look up workplace for assignment", slog.Int64("workplace_id", workplaceID))
		}
		return nil, err
	}
	if !workplace.CanAssign {
		s.LogDebug(ctx, "Rejected assignment to non-assignable workplace",
			slog.Int64("employee_id", employeeID),
			slog.Int64("workplace_id", workplaceID))
		return nil, apperrors.NewAppError(http.StatusBadRequest,
			fmt.Sprintf("workplace %d cannot receive assignments", workplace.Number),
			apperrors.ErrWorkplaceNotAssignable)
	}

	saved, err := s.assignmentRepo.ReplaceAssignment(ctx, domain.Assignment{
		EmployeeID:  employeeID,
		WorkplaceID: workplaceID,
		Date:        date,
	})
	if err != nil {
		if isServerError(err) {
			s.LogError(ctx, err, "Failed to save assignment",
				slog.Int64("employee_id", employeeID),
				slog.Int64("workplace_id", workplaceID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Employee assigned",
		slog.Int64("employee_id", employeeID),
		slog.Int64("workplace_id", workplaceID),
		slog.String("date", domain.FormatDate(date)))
	return saved, nil
}

func (s *assignmentService) Unassign(ctx context.Context, employeeID int64, date time.Time) error {
	if err := s.assignmentRepo.DeleteAssignment(ctx, employeeID, date); err != nil {
		s.LogError(ctx, err, "Failed to remove assignment", slog.Int64("employee_id", employeeID))
		return err
	}
	s.LogInfo(ctx, "Employee unassigned",
		slog.Int64("employee_id", employeeID),
		slog.String("date", domain.FormatDate(date)))
	return nil
}
