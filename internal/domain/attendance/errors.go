package attendance

import "errors"

var (
	// ErrAlreadyClockedIn is returned when a clock-in loses the race against
	// another clock-in for the same employee and day; the unique index on
	// open shifts surfaces it.
	ErrAlreadyClockedIn = errors.New("employee already has an open shift for today")

	ErrShiftNotFound = errors.New("shift record not found")
	ErrNoOpenShift   = errors.New("no open shift found")
	ErrShiftClosed   = errors.New("shift has already been closed")
)
