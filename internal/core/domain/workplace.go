package domain

// Workplace is a physical station or zone employees are assigned to for a day.
type Workplace struct {
	WorkplaceID int64   `json:"id" db:"id"`
	Number      int     `json:"number" db:"number"`        // Unique, shown on the board
	Name        string  `json:"name" db:"name"`
	Color       *string `json:"color" db:"color"`          // Hex colour such as #3B82F6
	CanAssign   bool    `json:"canAssign" db:"can_assign"` // False for zones that only appear on the board
	AuditFields
}
