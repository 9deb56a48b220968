package dto

import (
	"time"

	"github.com/SscSPs/floor_assignment_app/internal/core/domain"
)

// --- Workplace DTOs ---

// SaveWorkplaceRequest is used for both create and update.
// CanAssign defaults to true when omitted.
type SaveWorkplaceRequest struct {
	Number    int     `json:"number" binding:"required,min=1"`
	Name      string  `json:"name" binding:"required,max=255"`
	Color     *string `json:"color" binding:"omitempty,tile_color"`
	CanAssign *bool   `json:"can_assign"`
}

// WorkplaceResponse defines data returned for a workplace.
type WorkplaceResponse struct {
	WorkplaceID int64     `json:"id"`
	Number      int       `json:"number"`
	Name        string    `json:"name"`
	Color       *string   `json:"color"`
	CanAssign   bool      `json:"can_assign"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToWorkplaceResponse converts domain.Workplace to DTO.
func ToWorkplaceResponse(w *domain.Workplace) WorkplaceResponse {
	return WorkplaceResponse{
		WorkplaceID: w.WorkplaceID,
		Number:      w.Number,
		Name:        w.Name,
		Color:       w.Color,
		CanAssign:   w.CanAssign,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.LastUpdatedAt,
	}
}

// ToWorkplaceResponses converts a slice of domain.Workplace to DTOs.
func ToWorkplaceResponses(ws []domain.Workplace) []WorkplaceResponse {
	list := make([]WorkplaceResponse, len(ws))
	for i := range ws {
		list[i] = ToWorkplaceResponse(&ws[i])
	}
	return list
}
