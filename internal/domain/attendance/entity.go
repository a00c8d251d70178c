package attendance

import "time"

// ShiftStatus is the explicit open/closed tag on a shift record. A shift is
// open from clock-in until clock-out; the storage layer guarantees at most
// one open shift per (employee_id, date).
type ShiftStatus string

const (
	StatusOpen   ShiftStatus = "open"
	StatusClosed ShiftStatus = "closed"
)

// Shift is one clock-in/clock-out pair for an employee on a calendar day.
// Date is a plain ISO calendar date; TimeIn/TimeOut are wall-clock "HH:MM"
// strings as entered, possibly with Arabic-Indic digits.
type Shift struct {
	ID         string
	EmployeeID string
	Date       string // YYYY-MM-DD
	TimeIn     string // HH:MM
	TimeOut    string // empty while the shift is open
	Status     ShiftStatus
	AutoClosed bool
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined fields
	EmployeeName *string
}

// Closed reports whether the shift has been clocked out.
func (s Shift) Closed() bool {
	return s.Status == StatusClosed
}
