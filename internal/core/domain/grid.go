package domain

import (
	"fmt"

	"github.com/SscSPs/floor_assignment_app/internal/apperrors"
)

// Cell is a rectangular region of a display grid anchored at (Row, Col).
// A nil WorkplaceID renders as empty space.
type Cell struct {
	Row         int    `json:"row"`
	Col         int    `json:"col"`
	RowSpan     int    `json:"rowspan"`
	ColSpan     int    `json:"colspan"`
	WorkplaceID *int64 `json:"workplace_id"`
}

// Contains reports whether (row, col) lies inside the cell's rectangle.
func (c Cell) Contains(row, col int) bool {
	return row >= c.Row && row < c.Row+c.RowSpan &&
		col >= c.Col && col < c.Col+c.ColSpan
}

// Overlaps reports whether the two rectangles share at least one grid position.
func (c Cell) Overlaps(o Cell) bool {
	return c.Row < o.Row+o.RowSpan && o.Row < c.Row+c.RowSpan &&
		c.Col < o.Col+o.ColSpan && o.Col < c.Col+c.ColSpan
}

// IsAnchor reports whether (row, col) is the cell's top-left position.
func (c Cell) IsAnchor(row, col int) bool {
	return c.Row == row && c.Col == col
}

// LayoutConfig is the persisted blob: {"cells": [...]}.
type LayoutConfig struct {
	Cells []Cell `json:"cells"`
}

// GridPoint is a single grid coordinate, used for drag selections.
type GridPoint struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// SelectionCell normalises a drag from start to end (in any direction) into a cell.
func SelectionCell(start, end GridPoint, workplaceID *int64) Cell {
	minRow, maxRow := start.Row, end.Row
	if minRow > maxRow {
		minRow, maxRow = maxRow, minRow
	}
	minCol, maxCol := start.Col, end.Col
	if minCol > maxCol {
		minCol, maxCol = maxCol, minCol
	}
	return Cell{
		Row:         minRow,
		Col:         minCol,
		RowSpan:     maxRow - minRow + 1,
		ColSpan:     maxCol - minCol + 1,
		WorkplaceID: workplaceID,
	}
}

// Grid is an R x C board partitioned into non-overlapping cells.
type Grid struct {
	rows  int
	cols  int
	cells []Cell
}

// ValidGridSize reports whether n is an allowed row or column count.
func ValidGridSize(n int) bool { return n >= 1 && n <= MaxGridSize }

// NewGrid returns an empty grid. Dimensions must lie in [1, MaxGridSize].
func NewGrid(rows, cols int) (*Grid, error) {
	if !ValidGridSize(rows) || !ValidGridSize(cols) {
		return nil, apperrors.NewValidationFailedError(fmt.Sprintf("grid dimensions must be between 1 and %d, got %dx%d", MaxGridSize, rows, cols))
	}
	return &Grid{rows: rows, cols: cols}, nil
}

// GridFromConfig rebuilds a grid by proposing every configured cell in order,
// so a stored blob gets the same checks as interactive edits.
func GridFromConfig(rows, cols int, cfg LayoutConfig) (*Grid, error) {
	g, err := NewGrid(rows, cols)
	if err != nil {
		return nil, err
	}
	for i, c := range cfg.Cells {
		if err := g.Propose(c); err != nil {
			return nil, fmt.Errorf("cell %d: %w", i, err)
		}
	}
	return g, nil
}

func (g *Grid) Rows() int { return g.rows }
func (g *Grid) Cols() int { return g.cols }

// Cells returns a copy of the cell set.
func (g *Grid) Cells() []Cell {
	out := make([]Cell, len(g.cells))
	copy(out, g.cells)
	return out
}

// Config returns the persistable form of the grid.
func (g *Grid) Config() LayoutConfig {
	return LayoutConfig{Cells: g.Cells()}
}

// Propose appends c if it fits inside the grid and overlaps no existing cell.
// On failure the cell set is left untouched.
func (g *Grid) Propose(c Cell) error {
	if c.RowSpan < 1 || c.ColSpan < 1 {
		return fmt.Errorf("%w: span %dx%d must be at least 1x1", apperrors.ErrCellOutOfBounds, c.RowSpan, c.ColSpan)
	}
	if c.Row < 0 || c.Col < 0 || c.Row+c.RowSpan > g.rows || c.Col+c.ColSpan > g.cols {
		return fmt.Errorf("%w: cell at (%d,%d) span %dx%d exceeds %dx%d grid",
			apperrors.ErrCellOutOfBounds, c.Row, c.Col, c.RowSpan, c.ColSpan, g.rows, g.cols)
	}
	for _, existing := range g.cells {
		if existing.Overlaps(c) {
			return fmt.Errorf("%w: cell at (%d,%d) intersects cell at (%d,%d)",
				apperrors.ErrLayoutConflict, c.Row, c.Col, existing.Row, existing.Col)
		}
	}
	g.cells = append(g.cells, c)
	return nil
}

// Clear removes the cell covering (row, col), whether or not (row, col) is its anchor.
// It reports whether a cell was removed.
func (g *Grid) Clear(row, col int) bool {
	kept := g.cells[:0]
	removed := false
	for _, c := range g.cells {
		if c.Contains(row, col) {
			removed = true
			continue
		}
		kept = append(kept, c)
	}
	g.cells = kept
	return removed
}

// CellAt returns the cell covering (row, col).
func (g *Grid) CellAt(row, col int) (Cell, bool) {
	for _, c := range g.cells {
		if c.Contains(row, col) {
			return c, true
		}
	}
	return Cell{}, false
}

// WorkplaceCellCount counts cells bound to a workplace.
func (g *Grid) WorkplaceCellCount() int {
	n := 0
	for _, c := range g.cells {
		if c.WorkplaceID != nil {
			n++
		}
	}
	return n
}

// PositionKind classifies a grid position for rendering.
type PositionKind int

const (
	// PositionEmpty has no cell; render a placeholder.
	PositionEmpty PositionKind = iota
	// PositionAnchor is a cell's top-left corner; render the cell spanning its extent.
	PositionAnchor
	// PositionCovered lies inside another cell's span; render nothing.
	PositionCovered
)

func (k PositionKind) String() string {
	switch k {
	case PositionAnchor:
		return "anchor"
	case PositionCovered:
		return "covered"
	default:
		return "empty"
	}
}

// MarshalText lets PositionKind serialise as its name.
func (k PositionKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Position is the resolution of a single (row, col).
type Position struct {
	Row  int          `json:"row"`
	Col  int          `json:"col"`
	Kind PositionKind `json:"kind"`
	Cell *Cell        `json:"cell,omitempty"`
}

// Resolve classifies (row, col) as anchor, covered or empty.
// Positions outside the grid resolve as empty.
func (g *Grid) Resolve(row, col int) Position {
	p := Position{Row: row, Col: col, Kind: PositionEmpty}
	c, ok := g.CellAt(row, col)
	if !ok {
		return p
	}
	if c.IsAnchor(row, col) {
		p.Kind = PositionAnchor
		p.Cell = &c
		return p
	}
	p.Kind = PositionCovered
	return p
}

// Positions resolves every grid position in row-major order.
func (g *Grid) Positions() []Position {
	out := make([]Position, 0, g.rows*g.cols)
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			out = append(out, g.Resolve(r, c))
		}
	}
	return out
}
