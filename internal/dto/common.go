package dto

import (
	"time"

	"github.com/SscSPs/floor_assignment_app/internal/core/domain"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse acknowledges deletes, which succeed even when nothing matched.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// DateQuery binds a required ?date=YYYY-MM-DD parameter.
type DateQuery struct {
	Date string `form:"date" binding:"required,datetime=2006-01-02"`
}

// ParsedDate returns the bound date. Binding already validated the format.
func (q DateQuery) ParsedDate() (time.Time, error) {
	return domain.ParseDate(q.Date)
}

// ImportRowErrorResponse describes a rejected spreadsheet row.
type ImportRowErrorResponse struct {
	Row   int    `json:"row"`
	Error string `json:"error"`
}

// ImportResultResponse is returned by the bulk import endpoints.
type ImportResultResponse struct {
	Imported int                      `json:"imported"`
	Failed   int                      `json:"failed"`
	Errors   []ImportRowErrorResponse `json:"errors"`
}

// ToImportResultResponse converts domain.ImportResult to DTO.
func ToImportResultResponse(r *domain.ImportResult) ImportResultResponse {
	errs := make([]ImportRowErrorResponse, len(r.Errors))
	for i, e := range r.Errors {
		errs[i] = ImportRowErrorResponse{Row: e.Row, Error: e.Message}
	}
	return ImportResultResponse{Imported: r.Imported, Failed: r.Failed, Errors: errs}
}
