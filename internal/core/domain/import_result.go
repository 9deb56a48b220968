package domain

// ImportRowError records why one spreadsheet row was not imported.
// Row is 1-based and counts the header row.
type ImportRowError struct {
	Row     int
	Message string
}

// ImportResult summarises a bulk import. Rows are written one by one, so a
// failed row never rolls back the rows before it.
type ImportResult struct {
	Imported int
	Failed   int
	Errors   []ImportRowError
}

// AddFailure records a failed row.
func (r *ImportResult) AddFailure(row int, msg string) {
	r.Failed++
	r.Errors = append(r.Errors, ImportRowError{Row: row, Message: msg})
}
