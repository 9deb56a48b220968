package domain

import "time"

// BoardTile is one grid position of the public board.
type BoardTile struct {
	Row             int
	Col             int
	RowSpan         int
	ColSpan         int
	Kind            PositionKind
	WorkplaceID     *int64
	WorkplaceName   string
	WorkplaceNumber *int
	Color           string
	TextColor       string
	Employees       []DailyEntry
}

// Board is the server-side composition of the public display for one page.
type Board struct {
	Date           time.Time
	Mode           DisplayMode
	LayoutName     string
	GridRows       int
	GridCols       int
	Tiles          []BoardTile
	Page           int
	PageCount      int
	CellsPerPage   int
	TotalEmployees int
}

// BoardInput groups what ComposeBoard needs.
type BoardInput struct {
	Date         time.Time
	Mode         DisplayMode
	Layout       DisplayLayout
	Workplaces   []Workplace
	View         DailyView
	Page         int
	FallbackRows int
	FallbackCols int
}

// ComposeBoard lays the daily view onto the layout.
//
// Both modes page the displayed employees by the number of slots on the
// layout. In workplace mode every workplace cell lists the present employees
// of the current page assigned to it. In employee mode each workplace-bearing
// cell (or, without any, each position of the fallback grid) is a slot holding
// one employee; employees are paged across the slots and absentees are shown
// with AbsentTileColor.
func ComposeBoard(in BoardInput) (*Board, error) {
	grid, err := in.Layout.Grid()
	if err != nil {
		return nil, err
	}

	entries := in.View.ForDisplay(in.Mode)
	board := &Board{
		Date:           in.Date,
		Mode:           in.Mode,
		LayoutName:     in.Layout.LayoutName,
		GridRows:       grid.Rows(),
		GridCols:       grid.Cols(),
		CellsPerPage:   CellsPerPage(grid, in.FallbackRows, in.FallbackCols),
		TotalEmployees: len(entries),
	}

	byID := make(map[int64]Workplace, len(in.Workplaces))
	for _, w := range in.Workplaces {
		byID[w.WorkplaceID] = w
	}

	if in.Mode == DisplayModeEmployee {
		composeEmployeeTiles(board, grid, byID, entries, in)
		return board, nil
	}

	board.PageCount = PageCount(len(entries), board.CellsPerPage)
	board.Page = ClampPage(in.Page, board.PageCount)
	start, end := PageBounds(board.Page, board.CellsPerPage, len(entries))
	assigned := entries[start:end].ByWorkplace()
	for _, pos := range grid.Positions() {
		tile := BoardTile{Row: pos.Row, Col: pos.Col, RowSpan: 1, ColSpan: 1, Kind: pos.Kind}
		if pos.Kind == PositionAnchor {
			tile.RowSpan, tile.ColSpan = pos.Cell.RowSpan, pos.Cell.ColSpan
			if pos.Cell.WorkplaceID != nil {
				if w, ok := byID[*pos.Cell.WorkplaceID]; ok {
					fillWorkplace(&tile, w)
					tile.Employees = assigned[w.WorkplaceID]
				}
			}
		}
		board.Tiles = append(board.Tiles, tile)
	}
	return board, nil
}

func composeEmployeeTiles(board *Board, grid *Grid, byID map[int64]Workplace, entries DailyView, in BoardInput) {
	slotGrid := grid
	if grid.WorkplaceCellCount() == 0 {
		rows, cols := in.FallbackRows, in.FallbackCols
		if !ValidGridSize(rows) || !ValidGridSize(cols) {
			rows, cols = DefaultGridRows, DefaultGridCols
		}
		slotGrid, _ = NewGrid(rows, cols)
		board.GridRows, board.GridCols = rows, cols
	}

	board.PageCount = PageCount(len(entries), board.CellsPerPage)
	board.Page = ClampPage(in.Page, board.PageCount)
	start, end := PageBounds(board.Page, board.CellsPerPage, len(entries))
	pageEntries := entries[start:end]

	useAllPositions := slotGrid.WorkplaceCellCount() == 0
	slot := 0
	for _, pos := range slotGrid.Positions() {
		tile := BoardTile{Row: pos.Row, Col: pos.Col, RowSpan: 1, ColSpan: 1, Kind: pos.Kind}
		isSlot := useAllPositions && pos.Kind == PositionEmpty
		if pos.Kind == PositionAnchor {
			tile.RowSpan, tile.ColSpan = pos.Cell.RowSpan, pos.Cell.ColSpan
			isSlot = pos.Cell.WorkplaceID != nil
		}
		if isSlot {
			if slot < len(pageEntries) {
				e := pageEntries[slot]
				tile.Kind = PositionAnchor
				tile.Employees = []DailyEntry{e}
				tile.WorkplaceID = e.WorkplaceID
				if e.WorkplaceName != nil {
					tile.WorkplaceName = *e.WorkplaceName
				}
				tile.WorkplaceNumber = e.WorkplaceNumber
				tile.Color = TileColor(e.WorkplaceColor)
				if e.WorkplaceID != nil {
					if w, ok := byID[*e.WorkplaceID]; ok {
						tile.Color = TileColor(w.Color)
					}
				}
				if !e.IsPresent() {
					tile.Color = AbsentTileColor
				}
				tile.TextColor = TextColorFor(tile.Color)
			} else {
				tile.Kind = PositionEmpty
			}
			slot++
		}
		board.Tiles = append(board.Tiles, tile)
	}
}

func fillWorkplace(tile *BoardTile, w Workplace) {
	id := w.WorkplaceID
	number := w.Number
	tile.WorkplaceID = &id
	tile.WorkplaceName = w.Name
	tile.WorkplaceNumber = &number
	tile.Color = TileColor(w.Color)
	tile.TextColor = TextColorFor(tile.Color)
}

// AssignmentSummary backs the assignment editing board: unassigned present
// employees per shift and each workplace with the employees placed on it.
type AssignmentSummary struct {
	Date       time.Time
	Unassigned map[ShiftType]DailyView
	Workplaces []WorkplaceSlot
}

// WorkplaceSlot is a workplace together with its assigned employees.
type WorkplaceSlot struct {
	Workplace Workplace
	Employees DailyView
}

// Summarize builds the editing summary from the present employees and every workplace.
func Summarize(date time.Time, view DailyView, workplaces []Workplace) AssignmentSummary {
	present := view.Present()
	assigned := present.ByWorkplace()
	slots := make([]WorkplaceSlot, 0, len(workplaces))
	for _, w := range workplaces {
		emps := assigned[w.WorkplaceID]
		if emps == nil {
			emps = DailyView{}
		}
		slots = append(slots, WorkplaceSlot{Workplace: w, Employees: emps})
	}
	return AssignmentSummary{
		Date:       date,
		Unassigned: present.UnassignedByShift(),
		Workplaces: slots,
	}
}
