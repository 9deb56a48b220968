package domain

import "time"

// Defaults used when no layout is active.
const (
	DefaultLayoutName = "default"
	DefaultGridRows   = 12
	DefaultGridCols   = 2
	// MaxGridSize bounds both grid dimensions.
	MaxGridSize = 100
)

// DisplayLayout is a named grid template for the public board.
// IsActive is derived from the active layout singleton, not stored on the row.
type DisplayLayout struct {
	LayoutID     int64        `json:"id" db:"id"`
	LayoutName   string       `json:"layoutName" db:"layout_name"`
	GridRows     int          `json:"gridRows" db:"grid_rows"`
	GridCols     int          `json:"gridCols" db:"grid_cols"`
	LayoutConfig LayoutConfig `json:"layoutConfig" db:"layout_config"`
	IsActive     bool         `json:"isActive" db:"is_active"`
	CreatedAt    time.Time    `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time    `json:"updatedAt" db:"updated_at"`
}

// Grid validates the stored configuration and returns it as a Grid.
func (l DisplayLayout) Grid() (*Grid, error) {
	return GridFromConfig(l.GridRows, l.GridCols, l.LayoutConfig)
}

// DefaultLayout is the board shown when nothing has been activated.
func DefaultLayout(rows, cols int) DisplayLayout {
	if !ValidGridSize(rows) {
		rows = DefaultGridRows
	}
	if !ValidGridSize(cols) {
		cols = DefaultGridCols
	}
	return DisplayLayout{
		LayoutName:   DefaultLayoutName,
		GridRows:     rows,
		GridCols:     cols,
		LayoutConfig: LayoutConfig{Cells: []Cell{}},
	}
}
