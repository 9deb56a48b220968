package display_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/floor_assignment_app/internal/display"
	"github.com/SscSPs/floor_assignment_app/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSource serves a board with a fixed page count.
type fakeSource struct {
	mu        sync.Mutex
	pageCount int
	pages     []int
	failBoard error
}

func (f *fakeSource) Layout(context.Context) (*dto.DisplayLayoutResponse, error) {
	return &dto.DisplayLayoutResponse{LayoutName: "floor", GridRows: 1, GridCols: 2}, nil
}

func (f *fakeSource) Board(_ context.Context, mode string, page int) (*dto.BoardResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failBoard != nil {
		return nil, f.failBoard
	}
	if page >= f.pageCount {
		page = 0
	}
	f.pages = append(f.pages, page)
	return &dto.BoardResponse{Date: "2024-06-01", Mode: "employee", Page: page, PageCount: f.pageCount}, nil
}

func (f *fakeSource) requested() []int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]int(nil), f.pages...)
}

type recordingRenderer struct {
	mu     sync.Mutex
	frames []display.Frame
}

func (r *recordingRenderer) Render(f display.Frame) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frames = append(r.frames, f)
	return nil
}

func (r *recordingRenderer) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.frames)
}

func TestRotator_StateMachine(t *testing.T) {
	ctx := context.Background()
	src := &fakeSource{pageCount: 3}
	rec := &recordingRenderer{}
	r := display.NewRotator(src, rec, display.WithMode("employee"))

	assert.Equal(t, display.StateIdle, r.State())
	require.NoError(t, r.Advance(ctx), "advancing before load is a no-op")
	assert.Empty(t, src.requested())

	require.NoError(t, r.Load(ctx))
	assert.Equal(t, display.StateLoaded, r.State())
	assert.Equal(t, 3, r.PageCount())

	for _, want := range []int{1, 2, 0} {
		require.NoError(t, r.Advance(ctx))
		assert.Equal(t, display.StatePaged, r.State())
		assert.Equal(t, want, r.Page())
	}

	require.NoError(t, r.Load(ctx))
	assert.Equal(t, display.StateLoaded, r.State())
	assert.Equal(t, 5, rec.count())
}

func TestRotator_SinglePageSuspendsRotation(t *testing.T) {
	ctx := context.Background()
	src := &fakeSource{pageCount: 1}
	r := display.NewRotator(src, nil)

	require.NoError(t, r.Load(ctx))
	assert.True(t, r.Suspended())
	require.NoError(t, r.Advance(ctx))
	assert.Equal(t, display.StateLoaded, r.State())
	assert.Equal(t, []int{0}, src.requested(), "no page fetch while suspended")
}

func TestRotator_LoadShrinksPage(t *testing.T) {
	ctx := context.Background()
	src := &fakeSource{pageCount: 3}
	r := display.NewRotator(src, nil)
	require.NoError(t, r.Load(ctx))
	require.NoError(t, r.Advance(ctx))
	require.NoError(t, r.Advance(ctx))
	require.Equal(t, 2, r.Page())

	src.pageCount = 2
	require.NoError(t, r.Load(ctx))
	assert.Equal(t, 0, r.Page())
}

func TestRotator_RunStopsOnCancel(t *testing.T) {
	src := &fakeSource{pageCount: 2}
	rec := &recordingRenderer{}
	r := display.NewRotator(src, rec, display.WithIntervals(5*time.Millisecond, 20*time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()

	require.Eventually(t, func() bool { return rec.count() >= 4 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
	assert.Contains(t, src.requested(), 1)
}

func TestRotator_RunSurvivesFetchErrors(t *testing.T) {
	src := &fakeSource{pageCount: 2, failBoard: errors.New("connection refused")}
	r := display.NewRotator(src, nil, display.WithIntervals(time.Millisecond, 2*time.Millisecond))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := r.Run(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, display.StateIdle, r.State())
}

func TestClient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch req.URL.Path {
		case "/api/v1/public/layout":
			_ = json.NewEncoder(w).Encode(dto.DisplayLayoutResponse{LayoutName: "floor", GridRows: 12, GridCols: 2})
		case "/api/v1/public/board":
			if req.URL.Query().Get("mode") == "grid" {
				w.WriteHeader(http.StatusBadRequest)
				_ = json.NewEncoder(w).Encode(dto.ErrorResponse{Error: "invalid mode"})
				return
			}
			_ = json.NewEncoder(w).Encode(dto.BoardResponse{Mode: "workplace", PageCount: 2, Page: 1, PageIntervalSeconds: 10})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	client := display.NewClient(srv.URL+"/", time.Second)
	ctx := context.Background()

	layout, err := client.Layout(ctx)
	require.NoError(t, err)
	assert.Equal(t, "floor", layout.LayoutName)

	board, err := client.Board(ctx, "workplace", 1)
	require.NoError(t, err)
	assert.Equal(t, 2, board.PageCount)
	assert.Equal(t, 10, board.PageIntervalSeconds)

	_, err = client.Board(ctx, "grid", 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid mode")
}

func TestTextRenderer(t *testing.T) {
	number := 3
	var buf bytes.Buffer
	err := display.NewTextRenderer(&buf).Render(display.Frame{
		State: display.StatePaged,
		Board: &dto.BoardResponse{
			Date: "2024-06-01", Mode: "employee", LayoutName: "floor", Page: 1, PageCount: 2, TotalEmployees: 3,
			Tiles: []dto.BoardTileResponse{
				{Row: 0, Col: 0, RowSpan: 2, ColSpan: 1, Kind: "anchor", WorkplaceName: "Press", WorkplaceNumber: &number,
					Employees: []dto.BoardEmployeeResponse{{EmployeeNumber: "E002", Name: "Sato", Absent: true}}},
				{Row: 1, Col: 0, Kind: "covered"},
				{Row: 0, Col: 1, RowSpan: 1, ColSpan: 1, Kind: "empty"},
			},
		},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "page 2/2")
	assert.Contains(t, out, "3 Press")
	assert.Contains(t, out, "E002 Sato (absent)")
	assert.NotContains(t, out, "1,0")
}
