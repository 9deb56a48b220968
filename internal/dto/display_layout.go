package dto

import (
	"time"

	"github.com/SscSPs/floor_assignment_app/internal/core/domain"
)

// ListDisplayLayoutsParams binds GET /display-layouts?active=true.
type ListDisplayLayoutsParams struct {
	Active bool `form:"active"`
}

// SaveDisplayLayoutRequest is used for both create and update. IsActive is
// only honoured on update: true activates the layout, false clears it if it is active.
type SaveDisplayLayoutRequest struct {
	LayoutName   string              `json:"layout_name" binding:"required,max=255"`
	GridRows     int                 `json:"grid_rows" binding:"required,min=1,max=100"`
	GridCols     int                 `json:"grid_cols" binding:"required,min=1,max=100"`
	LayoutConfig domain.LayoutConfig `json:"layout_config"`
	IsActive     *bool               `json:"is_active"`
}

// DisplayLayoutResponse defines data returned for a display layout.
type DisplayLayoutResponse struct {
	LayoutID     int64               `json:"id"`
	LayoutName   string              `json:"layout_name"`
	GridRows     int                 `json:"grid_rows"`
	GridCols     int                 `json:"grid_cols"`
	LayoutConfig domain.LayoutConfig `json:"layout_config"`
	IsActive     bool                `json:"is_active"`
	CreatedAt    *time.Time          `json:"created_at,omitempty"`
	UpdatedAt    *time.Time          `json:"updated_at,omitempty"`
}

// ToDisplayLayoutResponse converts domain.DisplayLayout to DTO. The built-in
// default layout has no timestamps.
func ToDisplayLayoutResponse(l *domain.DisplayLayout) DisplayLayoutResponse {
	cfg := l.LayoutConfig
	if cfg.Cells == nil {
		cfg.Cells = []domain.Cell{}
	}
	resp := DisplayLayoutResponse{
		LayoutID:     l.LayoutID,
		LayoutName:   l.LayoutName,
		GridRows:     l.GridRows,
		GridCols:     l.GridCols,
		LayoutConfig: cfg,
		IsActive:     l.IsActive,
	}
	if !l.CreatedAt.IsZero() {
		createdAt, updatedAt := l.CreatedAt, l.UpdatedAt
		resp.CreatedAt, resp.UpdatedAt = &createdAt, &updatedAt
	}
	return resp
}

// ToDisplayLayoutResponses converts a slice of layouts to DTOs.
func ToDisplayLayoutResponses(ls []domain.DisplayLayout) []DisplayLayoutResponse {
	list := make([]DisplayLayoutResponse, len(ls))
	for i := range ls {
		list[i] = ToDisplayLayoutResponse(&ls[i])
	}
	return list
}
