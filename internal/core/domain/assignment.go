package domain

import "time"

// Assignment links one employee to one workplace for one date.
// The store keeps at most one row per (employee, date).
type Assignment struct {
	AssignmentID int64     `json:"id" db:"id"`
	EmployeeID   int64     `json:"employeeID" db:"employee_id"`
	WorkplaceID  int64     `json:"workplaceID" db:"workplace_id"`
	Date         time.Time `json:"date" db:"date"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}
