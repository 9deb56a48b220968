package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/floor_assignment_app/internal/apperrors"
	"github.com/SscSPs/floor_assignment_app/internal/core/domain"
	portsrepo "github.com/SscSPs/floor_assignment_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/floor_assignment_app/internal/core/ports/services"
	"github.com/SscSPs/floor_assignment_app/internal/dto"
)

type attendanceService struct {
	BaseService
	attendanceRepo portsrepo.AttendanceRepository
	dailyReader    portsrepo.DailyViewReader
}

// NewAttendanceService creates the attendance sheet service.
func NewAttendanceService(attendanceRepo portsrepo.AttendanceRepository, dailyReader portsrepo.DailyViewReader) portssvc.AttendanceSvcFacade {
	return &attendanceService{
		attendanceRepo: attendanceRepo,
		dailyReader:    dailyReader,
	}
}

var _ portssvc.AttendanceSvcFacade = (*attendanceService)(nil)

func (s *attendanceService) GetAttendanceSheet(ctx context.Context, date time.Time) (domain.DailyView, error) {
	rows, err := s.dailyReader.FindDailyRows(ctx, date)
	if err != nil {
		s.LogError(ctx, err, "Failed to load attendance sheet", slog.String("date", domain.FormatDate(date)))
		return nil, err
	}
	return domain.BuildDailyView(rows), nil
}

func (s *attendanceService) RecordAttendance(ctx context.Context, req dto.RecordAttendanceRequest) (*domain.Attendance, error) {
	date, err := domain.ParseDate(req.Date)
	if err != nil {
		return nil, apperrors.NewValidationFailedError(err.Error())
	}

	saved, err := s.attendanceRepo.UpsertAttendance(ctx, domain.Attendance{
		EmployeeID:       req.EmployeeID,
		Date:             date,
		AttendanceStatus: req.AttendanceStatus,
		ShiftType:        req.ShiftType,
	})
	if err != nil {
		if isServerError(err) {
			s.LogError(ctx, err, "Failed to record attendance",
				slog.Int64("employee_id", req.EmployeeID),
				slog.String("date", req.Date))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Attendance recorded",
		slog.Int64("employee_id", saved.EmployeeID),
		slog.String("date", domain.FormatDate(saved.Date)),
		slog.String("attendance_status", string(saved.AttendanceStatus)),
		slog.String("shift_type", string(saved.ShiftType)))
	return saved, nil
}
