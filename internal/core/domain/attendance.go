package domain

import "time"

// AttendanceStatus is the presence of an employee on a given date.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
)

// ShiftType is the shift an employee works on a given date.
type ShiftType string

const (
	ShiftEarly ShiftType = "early"
	ShiftLate  ShiftType = "late"
)

// Employees without an attendance row for a date are treated as present on the early shift.
const (
	DefaultAttendanceStatus = AttendancePresent
	DefaultShiftType        = ShiftEarly
)

// Attendance is unique per (employee, date); writes are upserts.
type Attendance struct {
	AttendanceID     int64            `json:"id" db:"id"`
	EmployeeID       int64            `json:"employeeID" db:"employee_id"`
	Date             time.Time        `json:"date" db:"date"`
	AttendanceStatus AttendanceStatus `json:"attendanceStatus" db:"attendance_status"`
	ShiftType        ShiftType        `json:"shiftType" db:"shift_type"`
	CreatedAt        time.Time        `json:"createdAt" db:"created_at"`
}
