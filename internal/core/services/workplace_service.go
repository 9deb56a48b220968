package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/SscSPs/floor_assignment_app/internal/apperrors"
	"github.com/SscSPs/floor_assignment_app/internal/core/domain"
	portsrepo "github.com/SscSPs/floor_assignment_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/floor_assignment_app/internal/core/ports/services"
	"github.com/SscSPs/floor_assignment_app/internal/dto"
	"github.com/SscSPs/floor_assignment_app/internal/importer"
	"github.com/go-playground/validator/v10"
)

var workplaceImportColumns = []string{"number", "name", "color"}

// workplaceService implements the WorkplaceSvcFacade interface
type workplaceService struct {
	BaseService
	workplaceRepo portsrepo.WorkplaceRepositoryFacade
	validate      *validator.Validate
}

// NewWorkplaceService creates a new workplace service with the provided dependencies
func NewWorkplaceService(workplaceRepo portsrepo.WorkplaceRepositoryFacade) portssvc.WorkplaceSvcFacade {
	validate := validator.New()
	if err := dto.RegisterTagValidators(validate); err != nil {
		panic(fmt.Sprintf("registering workplace validators: %v", err))
	}
	return &workplaceService{
		workplaceRepo: workplaceRepo,
		validate:      validate,
	}
}

// Ensure workplaceService implements the WorkplaceSvcFacade interface
var _ portssvc.WorkplaceSvcFacade = (*workplaceService)(nil)

func (s *workplaceService) ListWorkplaces(ctx context.Context) ([]domain.Workplace, error) {
	workplaces, err := s.workplaceRepo.FindWorkplaces(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list workplaces")
		return nil, err
	}
	s.LogDebug(ctx, "Workplaces listed successfully", slog.Int("count", len(workplaces)))
	return workplaces, nil
}

// GetWorkplaceByID retrieves a workplace by its ID
func (s *workplaceService) GetWorkplaceByID(ctx context.Context, workplaceID int64) (*domain.Workplace, error) {
	workplace, err := s.workplaceRepo.FindWorkplaceByID(ctx, workplaceID)
	if err != nil {
		if isServerError(err) {
			s.LogError(ctx, err, "Failed to find workplace by ID", slog.Int64("workplace_id", workplaceID))
		}
		return nil, err
	}
	return workplace, nil
}

// CreateWorkplace creates a new workplace; can_assign defaults to true.
func (s *workplaceService) CreateWorkplace(ctx context.Context, req dto.SaveWorkplaceRequest) (*domain.Workplace, error) {
	workplace, err := s.toDomain(req)
	if err != nil {
		return nil, err
	}

	saved, err := s.workplaceRepo.SaveWorkplace(ctx, workplace)
	if err != nil {
		if isServerError(err) {
			s.LogError(ctx, err, "Failed to save workplace", slog.Int("number", workplace.Number))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Workplace created successfully",
		slog.Int64("workplace_id", saved.WorkplaceID),
		slog.Int("number", saved.Number))
	return saved, nil
}

func (s *workplaceService) UpdateWorkplace(ctx context.Context, workplaceID int64, req dto.SaveWorkplaceRequest) (*domain.Workplace, error) {
	workplace, err := s.toDomain(req)
	if err != nil {
		return nil, err
	}
	workplace.WorkplaceID = workplaceID

	updated, err := s.workplaceRepo.UpdateWorkplace(ctx, workplace)
	if err != nil {
		if isServerError(err) {
			s.LogError(ctx, err, "Failed to update workplace", slog.Int64("workplace_id", workplaceID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Workplace updated successfully",
		slog.Int64("workplace_id", updated.WorkplaceID),
		slog.Bool("can_assign", updated.CanAssign))
	return updated, nil
}

// DeleteWorkplace removes the workplace. Its assignments go with it and
// layout cells pointing at it render empty from then on.
func (s *workplaceService) DeleteWorkplace(ctx context.Context, workplaceID int64) error {
	if err := s.workplaceRepo.DeleteWorkplace(ctx, workplaceID); err != nil {
		if isServerError(err) {
			s.LogError(ctx, err, "Failed to delete workplace", slog.Int64("workplace_id", workplaceID))
		}
		return err
	}
	s.LogInfo(ctx, "Workplace deleted successfully", slog.Int64("workplace_id", workplaceID))
	return nil
}

func (s *workplaceService) ImportWorkplaces(ctx context.Context, filename string, r io.Reader) (*domain.ImportResult, error) {
	table, err := importer.Read(filename, r, workplaceImportColumns, "number", "name")
	if err != nil {
		s.LogDebug(ctx, "Rejected workplace import file", slog.String("filename", filename), slog.String("error", err.Error()))
		return nil, apperrors.NewValidationFailedError(err.Error())
	}

	result := &domain.ImportResult{Errors: []domain.ImportRowError{}}
	for _, row := range table.Rows {
		number, convErr := strconv.Atoi(row.Value("number"))
		if convErr != nil {
			result.AddFailure(row.Number, fmt.Sprintf("invalid number %q", row.Value("number")))
			continue
		}
		req := dto.SaveWorkplaceRequest{Number: number, Name: row.Value("name")}
		if color := row.Value("color"); color != "" {
			req.Color = &color
		}
		if _, err := s.CreateWorkplace(ctx, req); err != nil {
			result.AddFailure(row.Number, apperrors.UserMessage(err, fmt.Sprintf("failed to import workplace %d", number)))
			continue
		}
		result.Imported++
	}

	s.LogInfo(ctx, "Workplace import finished",
		slog.String("filename", filename),
		slog.Int("imported", result.Imported),
		slog.Int("failed", result.Failed))
	return result, nil
}

func (s *workplaceService) toDomain(req dto.SaveWorkplaceRequest) (domain.Workplace, error) {
	workplace := domain.Workplace{
		Number:    req.Number,
		Name:      strings.TrimSpace(req.Name),
		CanAssign: true,
	}
	if req.CanAssign != nil {
		workplace.CanAssign = *req.CanAssign
	}
	if workplace.Number < 1 {
		return workplace, apperrors.NewValidationFailedError("number must be a positive integer")
	}
	if workplace.Name == "" {
		return workplace, apperrors.NewValidationFailedError("name is required")
	}
	if req.Color != nil && strings.TrimSpace(*req.Color) != "" {
		color := strings.TrimSpace(*req.Color)
		if err := s.validate.Var(color, "tile_color"); err != nil {
			return workplace, apperrors.NewValidationFailedError(fmt.Sprintf("invalid color %q", color))
		}
		workplace.Color = &color
	}
	return workplace, nil
}
