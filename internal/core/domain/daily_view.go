package domain

import "sort"

// DailyRow is one employee joined with that day's attendance, assignment and
// workplace. Every joined column is nullable because all joins are left joins.
type DailyRow struct {
	EmployeeID         int64             `db:"employee_id"`
	EmployeeNumber     string            `db:"employee_number"`
	Name               string            `db:"name"`
	Position           *string           `db:"position"`
	EmploymentStatus   EmploymentStatus  `db:"employment_status"`
	DisplayStatus      DisplayStatus     `db:"display_status"`
	AttendanceID       *int64            `db:"attendance_id"`
	AttendanceStatus   *AttendanceStatus `db:"attendance_status"`
	ShiftType          *ShiftType        `db:"shift_type"`
	AssignmentID       *int64            `db:"assignment_id"`
	WorkplaceID        *int64            `db:"workplace_id"`
	WorkplaceName      *string           `db:"workplace_name"`
	WorkplaceNumber    *int              `db:"workplace_number"`
	WorkplaceColor     *string           `db:"workplace_color"`
	WorkplaceCanAssign *bool             `db:"workplace_can_assign"`
}

// DailyEntry is a DailyRow with attendance resolved.
type DailyEntry struct {
	EmployeeID         int64
	EmployeeNumber     string
	Name               string
	Position           *string
	AttendanceID       *int64
	AttendanceStatus   AttendanceStatus
	ShiftType          ShiftType
	AssignmentID       *int64
	WorkplaceID        *int64
	WorkplaceName      *string
	WorkplaceNumber    *int
	WorkplaceColor     *string
	WorkplaceCanAssign *bool
}

// IsPresent reports whether the resolved attendance is present.
func (e DailyEntry) IsPresent() bool { return e.AttendanceStatus == AttendancePresent }

// IsAssigned reports whether the employee holds an assignment that day.
func (e DailyEntry) IsAssigned() bool { return e.WorkplaceID != nil }

// DailyView is the reconciled list for one date, ordered by employee number.
type DailyView []DailyEntry

// BuildDailyView keeps only active, shown employees and defaults missing
// attendance to present on the early shift.
func BuildDailyView(rows []DailyRow) DailyView {
	view := make(DailyView, 0, len(rows))
	for _, r := range rows {
		if !IsEligible(r.EmploymentStatus, r.DisplayStatus) {
			continue
		}
		entry := DailyEntry{
			EmployeeID:         r.EmployeeID,
			EmployeeNumber:     r.EmployeeNumber,
			Name:               r.Name,
			Position:           r.Position,
			AttendanceID:       r.AttendanceID,
			AttendanceStatus:   DefaultAttendanceStatus,
			ShiftType:          DefaultShiftType,
			AssignmentID:       r.AssignmentID,
			WorkplaceID:        r.WorkplaceID,
			WorkplaceName:      r.WorkplaceName,
			WorkplaceNumber:    r.WorkplaceNumber,
			WorkplaceColor:     r.WorkplaceColor,
			WorkplaceCanAssign: r.WorkplaceCanAssign,
		}
		if r.AttendanceStatus != nil && *r.AttendanceStatus != "" {
			entry.AttendanceStatus = *r.AttendanceStatus
		}
		if r.ShiftType != nil && *r.ShiftType != "" {
			entry.ShiftType = *r.ShiftType
		}
		view = append(view, entry)
	}
	sort.SliceStable(view, func(i, j int) bool {
		return view[i].EmployeeNumber < view[j].EmployeeNumber
	})
	return view
}

// Present is the assignment editing view: only employees who are present.
func (v DailyView) Present() DailyView {
	out := make(DailyView, 0, len(v))
	for _, e := range v {
		if e.IsPresent() {
			out = append(out, e)
		}
	}
	return out
}

// DisplayMode selects how the public board treats absent employees.
type DisplayMode string

const (
	// DisplayModeWorkplace lays employees out by workplace cell and omits absentees.
	DisplayModeWorkplace DisplayMode = "workplace"
	// DisplayModeEmployee renders one tile per employee; absentees get an absent tile.
	DisplayModeEmployee DisplayMode = "employee"
)

// ParseDisplayMode returns the mode for s, or fallback when s is empty or unknown.
func ParseDisplayMode(s string, fallback DisplayMode) DisplayMode {
	switch DisplayMode(s) {
	case DisplayModeWorkplace, DisplayModeEmployee:
		return DisplayMode(s)
	}
	return fallback
}

// ForDisplay filters the view for the public board in the given mode.
func (v DailyView) ForDisplay(mode DisplayMode) DailyView {
	if mode == DisplayModeEmployee {
		out := make(DailyView, len(v))
		copy(out, v)
		return out
	}
	return v.Present()
}

// ByWorkplace groups assigned entries by workplace id, preserving order.
func (v DailyView) ByWorkplace() map[int64]DailyView {
	out := make(map[int64]DailyView)
	for _, e := range v {
		if e.WorkplaceID == nil {
			continue
		}
		out[*e.WorkplaceID] = append(out[*e.WorkplaceID], e)
	}
	return out
}

// UnassignedByShift groups present employees without an assignment by shift.
func (v DailyView) UnassignedByShift() map[ShiftType]DailyView {
	out := map[ShiftType]DailyView{
		ShiftEarly: {},
		ShiftLate:  {},
	}
	for _, e := range v {
		if !e.IsPresent() || e.IsAssigned() {
			continue
		}
		out[e.ShiftType] = append(out[e.ShiftType], e)
	}
	return out
}
