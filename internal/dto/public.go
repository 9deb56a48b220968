package dto

import (
	"time"

	"github.com/SscSPs/floor_assignment_app/internal/core/domain"
)

// PublicViewQuery binds GET /public?date=&mode=.
type PublicViewQuery struct {
	Date string `form:"date" binding:"required,datetime=2006-01-02"`
	Mode string `form:"mode" binding:"omitempty,oneof=workplace employee"`
}

// BoardQuery binds GET /public/board. Date defaults to today.
type BoardQuery struct {
	Date string `form:"date" binding:"omitempty,datetime=2006-01-02"`
	Mode string `form:"mode" binding:"omitempty,oneof=workplace employee"`
	Page int    `form:"page" binding:"min=0"`
}

// BoardEmployeeResponse is an employee shown inside a board tile.
type BoardEmployeeResponse struct {
	EmployeeID       int64                   `json:"employee_id"`
	EmployeeNumber   string                  `json:"employee_number"`
	Name             string                  `json:"name"`
	AttendanceStatus domain.AttendanceStatus `json:"attendance_status"`
	ShiftType        domain.ShiftType        `json:"shift_type"`
	Absent           bool                    `json:"absent"`
}

// BoardTileResponse is one grid position of the board.
type BoardTileResponse struct {
	Row             int                     `json:"row"`
	Col             int                     `json:"col"`
	RowSpan         int                     `json:"rowspan"`
	ColSpan         int                     `json:"colspan"`
	Kind            string                  `json:"kind"`
	WorkplaceID     *int64                  `json:"workplace_id"`
	WorkplaceName   string                  `json:"workplace_name,omitempty"`
	WorkplaceNumber *int                    `json:"workplace_number,omitempty"`
	Color           string                  `json:"color,omitempty"`
	TextColor       string                  `json:"text_color,omitempty"`
	Employees       []BoardEmployeeResponse `json:"employees"`
}

// BoardResponse is the composed public board for one page.
type BoardResponse struct {
	Date                   string              `json:"date"`
	Mode                   domain.DisplayMode  `json:"mode"`
	LayoutName             string              `json:"layout_name"`
	GridRows               int                 `json:"grid_rows"`
	GridCols               int                 `json:"grid_cols"`
	Tiles                  []BoardTileResponse `json:"tiles"`
	Page                   int                 `json:"page"`
	PageCount              int                 `json:"page_count"`
	CellsPerPage           int                 `json:"cells_per_page"`
	TotalEmployees         int                 `json:"total_employees"`
	PageIntervalSeconds    int                 `json:"page_interval_seconds"`
	RefreshIntervalSeconds int                 `json:"refresh_interval_seconds"`
}

// ToBoardResponse converts a composed domain.Board to DTO.
func ToBoardResponse(b *domain.Board, pageInterval, refreshInterval time.Duration) BoardResponse {
	tiles := make([]BoardTileResponse, len(b.Tiles))
	for i, t := range b.Tiles {
		emps := make([]BoardEmployeeResponse, len(t.Employees))
		for j, e := range t.Employees {
			emps[j] = BoardEmployeeResponse{
				EmployeeID:       e.EmployeeID,
				EmployeeNumber:   e.EmployeeNumber,
				Name:             e.Name,
				AttendanceStatus: e.AttendanceStatus,
				ShiftType:        e.ShiftType,
				Absent:           !e.IsPresent(),
			}
		}
		tiles[i] = BoardTileResponse{
			Row:             t.Row,
			Col:             t.Col,
			RowSpan:         t.RowSpan,
			ColSpan:         t.ColSpan,
			Kind:            t.Kind.String(),
			WorkplaceID:     t.WorkplaceID,
			WorkplaceName:   t.WorkplaceName,
			WorkplaceNumber: t.WorkplaceNumber,
			Color:           t.Color,
			TextColor:       t.TextColor,
			Employees:       emps,
		}
	}
	return BoardResponse{
		Date:                   domain.FormatDate(b.Date),
		Mode:                   b.Mode,
		LayoutName:             b.LayoutName,
		GridRows:               b.GridRows,
		GridCols:               b.GridCols,
		Tiles:                  tiles,
		Page:                   b.Page,
		PageCount:              b.PageCount,
		CellsPerPage:           b.CellsPerPage,
		TotalEmployees:         b.TotalEmployees,
		PageIntervalSeconds:    int(pageInterval.Seconds()),
		RefreshIntervalSeconds: int(refreshInterval.Seconds()),
	}
}
