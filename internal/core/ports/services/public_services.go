package services

import (
	"context"
	"time"

	"github.com/SscSPs/floor_assignment_app/internal/core/domain"
)

// PublicSvcFacade serves the unauthenticated display.
type PublicSvcFacade interface {
	// GetPublicView returns the daily view filtered for mode.
	GetPublicView(ctx context.Context, date time.Time, mode domain.DisplayMode) (domain.DailyView, error)

	// ActiveLayout returns the active layout or the default grid.
	ActiveLayout(ctx context.Context) (*domain.DisplayLayout, error)

	// GetBoard composes one page of the board on the active layout.
	GetBoard(ctx context.Context, date time.Time, mode domain.DisplayMode, page int) (*domain.Board, error)

	// Today is the current calendar date in the configured timezone.
	Today() time.Time

	// DefaultMode is the configured display mode used when a request names none.
	DefaultMode() domain.DisplayMode
}
