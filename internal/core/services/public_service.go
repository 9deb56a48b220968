package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/floor_assignment_app/internal/core/domain"
	portsrepo "github.com/SscSPs/floor_assignment_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/floor_assignment_app/internal/core/ports/services"
)

// publicService serves the unauthenticated display.
type publicService struct {
	BaseService
	dailyReader   portsrepo.DailyViewReader
	workplaceRepo portsrepo.WorkplaceReader
	layouts       portssvc.DisplayLayoutReaderSvc
	location      *time.Location
	mode          domain.DisplayMode
	fallbackRows  int
	fallbackCols  int
	now           func() time.Time
}

// PublicOption configures the public service.
type PublicOption func(*publicService)

// WithLocation sets the timezone that decides which date is "today".
func WithLocation(loc *time.Location) PublicOption {
	return func(s *publicService) {
		if loc != nil {
			s.location = loc
		}
	}
}

// WithDefaultMode sets the mode used when a request names none.
func WithDefaultMode(mode string) PublicOption {
	return func(s *publicService) {
		s.mode = domain.ParseDisplayMode(mode, domain.DisplayModeWorkplace)
	}
}

// WithFallbackGrid sets the slot grid used in employee mode when the layout has no workplace cells.
func WithFallbackGrid(rows, cols int) PublicOption {
	return func(s *publicService) {
		s.fallbackRows = rows
		s.fallbackCols = cols
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) PublicOption {
	return func(s *publicService) {
		s.now = now
	}
}

// NewPublicService creates the public display service.
func NewPublicService(
	dailyReader portsrepo.DailyViewReader,
	workplaceRepo portsrepo.WorkplaceReader,
	layouts portssvc.DisplayLayoutReaderSvc,
	opts ...PublicOption,
) portssvc.PublicSvcFacade {
	s := &publicService{
		dailyReader:   dailyReader,
		workplaceRepo: workplaceRepo,
		layouts:       layouts,
		location:      time.UTC,
		mode:          domain.DisplayModeWorkplace,
		fallbackRows:  domain.DefaultGridRows,
		fallbackCols:  domain.DefaultGridCols,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.PublicSvcFacade = (*publicService)(nil)

func (s *publicService) Today() time.Time {
	return domain.Today(s.now(), s.location)
}

func (s *publicService) DefaultMode() domain.DisplayMode {
	return s.mode
}

func (s *publicService) GetPublicView(ctx context.Context, date time.Time, mode domain.DisplayMode) (domain.DailyView, error) {
	view, err := s.loadView(ctx, date)
	if err != nil {
		return nil, err
	}
	return view.ForDisplay(mode), nil
}

func (s *publicService) ActiveLayout(ctx context.Context) (*domain.DisplayLayout, error) {
	return s.layouts.GetActiveOrDefault(ctx)
}

func (s *publicService) GetBoard(ctx context.Context, date time.Time, mode domain.DisplayMode, page int) (*domain.Board, error) {
	view, err := s.loadView(ctx, date)
	if err != nil {
		return nil, err
	}
	layout, err := s.layouts.GetActiveOrDefault(ctx)
	if err != nil {
		return nil, err
	}
	workplaces, err := s.workplaceRepo.FindWorkplaces(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list workplaces for board")
		return nil, err
	}

	board, err := domain.ComposeBoard(domain.BoardInput{
		Date:         date,
		Mode:         mode,
		Layout:       *layout,
		Workplaces:   workplaces,
		View:         view,
		Page:         page,
		FallbackRows: s.fallbackRows,
		FallbackCols: s.fallbackCols,
	})
	if err != nil {
		s.LogError(ctx, err, "Stored display layout is invalid", slog.Int64("layout_id", layout.LayoutID))
		return nil, err
	}
	s.LogDebug(ctx, "Board composed",
		slog.String("date", domain.FormatDate(date)),
		slog.String("mode", string(mode)),
		slog.Int("page", board.Page),
		slog.Int("page_count", board.PageCount))
	return board, nil
}

func (s *publicService) loadView(ctx context.Context, date time.Time) (domain.DailyView, error) {
	rows, err := s.dailyReader.FindDailyRows(ctx, date)
	if err != nil {
		s.LogError(ctx, err, "Failed to load public daily view", slog.String("date", domain.FormatDate(date)))
		return nil, err
	}
	return domain.BuildDailyView(rows), nil
}
