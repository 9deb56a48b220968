package dto

import (
	"time"

	"github.com/SscSPs/floor_assignment_app/internal/core/domain"
)

// CreateEmployeeRequest registers a new employee. New employees start active and shown.
type CreateEmployeeRequest struct {
	EmployeeNumber string  `json:"employee_number" binding:"required,max=50"`
	Name           string  `json:"name" binding:"required,max=255"`
	Position       *string `json:"position" binding:"omitempty,max=255"`
}

// UpdateEmployeeRequest replaces every editable field.
type UpdateEmployeeRequest struct {
	EmployeeNumber   string                  `json:"employee_number" binding:"required,max=50"`
	Name             string                  `json:"name" binding:"required,max=255"`
	Position         *string                 `json:"position" binding:"omitempty,max=255"`
	EmploymentStatus domain.EmploymentStatus `json:"employment_status" binding:"required,employment_status"`
	DisplayStatus    domain.DisplayStatus    `json:"display_status" binding:"required,display_status"`
}

// UpdateEmployeeStatusRequest changes one or both status flags. Omitted flags are left alone.
type UpdateEmployeeStatusRequest struct {
	EmploymentStatus *domain.EmploymentStatus `json:"employment_status" binding:"omitempty,employment_status"`
	DisplayStatus    *domain.DisplayStatus    `json:"display_status" binding:"omitempty,display_status"`
}

// EmployeeResponse defines data returned for an employee.
type EmployeeResponse struct {
	EmployeeID       int64                   `json:"id"`
	EmployeeNumber   string                  `json:"employee_number"`
	Name             string                  `json:"name"`
	Position         *string                 `json:"position"`
	EmploymentStatus domain.EmploymentStatus `json:"employment_status"`
	DisplayStatus    domain.DisplayStatus    `json:"display_status"`
	CreatedAt        time.Time               `json:"created_at"`
	UpdatedAt        time.Time               `json:"updated_at"`
}

// ToEmployeeResponse converts domain.Employee to DTO.
func ToEmployeeResponse(e *domain.Employee) EmployeeResponse {
	return EmployeeResponse{
		EmployeeID:       e.EmployeeID,
		EmployeeNumber:   e.EmployeeNumber,
		Name:             e.Name,
		Position:         e.Position,
		EmploymentStatus: e.EmploymentStatus,
		DisplayStatus:    e.DisplayStatus,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.LastUpdatedAt,
	}
}

// ToEmployeeResponses converts a slice of domain.Employee to DTOs.
func ToEmployeeResponses(es []domain.Employee) []EmployeeResponse {
	list := make([]EmployeeResponse, len(es))
	for i := range es {
		list[i] = ToEmployeeResponse(&es[i])
	}
	return list
}
