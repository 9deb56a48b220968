// Package display drives a headless kiosk: it pages through the public board
// and periodically reloads it so assignment changes show up without interaction.
package display

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/floor_assignment_app/internal/core/domain"
	"github.com/SscSPs/floor_assignment_app/internal/dto"
)

// State is the rotation state.
type State int

const (
	// StateIdle means nothing has been loaded yet.
	StateIdle State = iota
	// StateLoaded means the board was (re)fetched and the first visible page is shown.
	StateLoaded
	// StatePaged means the rotator has advanced past the loaded page.
	StatePaged
)

func (s State) String() string {
	switch s {
	case StateLoaded:
		return "loaded"
	case StatePaged:
		return "paged"
	default:
		return "idle"
	}
}

const (
	fallbackPageInterval    = 10 * time.Second
	fallbackRefreshInterval = 30 * time.Second
)

// Frame is what gets rendered after every transition.
type Frame struct {
	State  State
	Layout *dto.DisplayLayoutResponse
	Board  *dto.BoardResponse
}

// Renderer draws a frame.
type Renderer interface {
	Render(f Frame) error
}

// Rotator pages through the board on one ticker and reloads it on another.
// It is driven by a single goroutine and is not safe for concurrent use.
type Rotator struct {
	src             Source
	renderer        Renderer
	logger          *slog.Logger
	mode            string
	pageInterval    time.Duration
	refreshInterval time.Duration

	state  State
	page   int
	layout *dto.DisplayLayoutResponse
	board  *dto.BoardResponse
}

// Option configures a Rotator.
type Option func(*Rotator)

// WithMode requests "workplace" or "employee" mode. Empty uses the server default.
func WithMode(mode string) Option {
	return func(r *Rotator) { r.mode = mode }
}

// WithIntervals overrides the intervals advertised by the server. Zero keeps the server value.
func WithIntervals(page, refresh time.Duration) Option {
	return func(r *Rotator) {
		r.pageInterval = page
		r.refreshInterval = refresh
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Rotator) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRotator creates an idle rotator.
func NewRotator(src Source, renderer Renderer, opts ...Option) *Rotator {
	r := &Rotator{
		src:      src,
		renderer: renderer,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Rotator) State() State { return r.state }

func (r *Rotator) Page() int { return r.page }

// PageCount is 1 until a board has been loaded.
func (r *Rotator) PageCount() int {
	if r.board == nil || r.board.PageCount < 1 {
		return 1
	}
	return r.board.PageCount
}

// Suspended reports whether there is nothing to rotate through.
func (r *Rotator) Suspended() bool { return r.PageCount() <= 1 }

// Load fetches the layout and the current page of the board, clamping the page
// when the board shrank since the last load.
func (r *Rotator) Load(ctx context.Context) error {
	layout, err := r.src.Layout(ctx)
	if err != nil {
		return err
	}
	board, err := r.src.Board(ctx, r.mode, r.page)
	if err != nil {
		return err
	}
	r.layout = layout
	r.board = board
	r.page = board.Page
	r.state = StateLoaded
	return r.render()
}

// Advance shows the next page. With a single page it does nothing.
func (r *Rotator) Advance(ctx context.Context) error {
	if r.state == StateIdle || r.Suspended() {
		return nil
	}
	next := domain.NextPage(r.page, r.PageCount())
	board, err := r.src.Board(ctx, r.mode, next)
	if err != nil {
		return err
	}
	r.board = board
	r.page = board.Page
	r.state = StatePaged
	return r.render()
}

// Run loads the board, then advances and reloads it on their tickers until ctx
// is cancelled. Fetch failures are logged and retried on the next tick.
func (r *Rotator) Run(ctx context.Context) error {
	if err := r.Load(ctx); err != nil {
		r.logger.Warn("Initial board load failed", slog.String("error", err.Error()))
	}
	pageEvery, refreshEvery := r.intervals()
	r.logger.Info("Display rotation started",
		slog.Duration("page_interval", pageEvery),
		slog.Duration("refresh_interval", refreshEvery))

	pageTicker := time.NewTicker(pageEvery)
	defer pageTicker.Stop()
	refreshTicker := time.NewTicker(refreshEvery)
	defer refreshTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-pageTicker.C:
			if err := r.Advance(ctx); err != nil {
				r.logger.Warn("Failed to advance page", slog.String("error", err.Error()))
			}
		case <-refreshTicker.C:
			if err := r.Load(ctx); err != nil {
				r.logger.Warn("Failed to refresh board", slog.String("error", err.Error()))
			}
		}
	}
}

func (r *Rotator) intervals() (page, refresh time.Duration) {
	page, refresh = r.pageInterval, r.refreshInterval
	if r.board != nil {
		if page <= 0 && r.board.PageIntervalSeconds > 0 {
			page = time.Duration(r.board.PageIntervalSeconds) * time.Second
		}
		if refresh <= 0 && r.board.RefreshIntervalSeconds > 0 {
			refresh = time.Duration(r.board.RefreshIntervalSeconds) * time.Second
		}
	}
	if page <= 0 {
		page = fallbackPageInterval
	}
	if refresh <= 0 {
		refresh = fallbackRefreshInterval
	}
	return page, refresh
}

func (r *Rotator) render() error {
	if r.renderer == nil {
		return nil
	}
	return r.renderer.Render(Frame{State: r.state, Layout: r.layout, Board: r.board})
}
