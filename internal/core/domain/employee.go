package domain

// EmploymentStatus tells whether an employee is still on the payroll.
type EmploymentStatus string

const (
	EmploymentActive   EmploymentStatus = "active"
	EmploymentResigned EmploymentStatus = "resigned"
)

// DisplayStatus controls whether an employee appears on boards at all.
type DisplayStatus string

const (
	DisplayShown  DisplayStatus = "shown"
	DisplayHidden DisplayStatus = "hidden"
)

// Employee is a person who can be scheduled onto workplaces.
type Employee struct {
	EmployeeID       int64            `json:"id" db:"id"`
	EmployeeNumber   string           `json:"employeeNumber" db:"employee_number"`
	Name             string           `json:"name" db:"name"`
	Position         *string          `json:"position" db:"position"`
	EmploymentStatus EmploymentStatus `json:"employmentStatus" db:"employment_status"`
	DisplayStatus    DisplayStatus    `json:"displayStatus" db:"display_status"`
	AuditFields
}

// IsEligible reports whether the employee belongs on the daily view.
func (e Employee) IsEligible() bool {
	return IsEligible(e.EmploymentStatus, e.DisplayStatus)
}

// IsEligible is the daily view membership rule: active and shown.
func IsEligible(es EmploymentStatus, ds DisplayStatus) bool {
	return es == EmploymentActive && ds == DisplayShown
}

// Toggle flips active <-> resigned.
func (s EmploymentStatus) Toggle() EmploymentStatus {
	if s == EmploymentActive {
		return EmploymentResigned
	}
	return EmploymentActive
}

// Toggle flips shown <-> hidden.
func (s DisplayStatus) Toggle() DisplayStatus {
	if s == DisplayShown {
		return DisplayHidden
	}
	return DisplayShown
}
