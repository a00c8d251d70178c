package attendance

import "context"

// ShiftRepository defines data access methods for attendance shift records.
type ShiftRepository interface {
	// Create inserts a new open shift. Returns ErrAlreadyClockedIn when an
	// open shift for the same employee and date already exists.
	Create(ctx context.Context, shift Shift) (Shift, error)

	GetByID(ctx context.Context, id string) (Shift, error)

	// GetOpenShift retrieves the open shift for an employee on a date, or
	// ErrNoOpenShift.
	GetOpenShift(ctx context.Context, employeeID string, date string) (Shift, error)

	// CloseShift applies a close command to an open shift. Returns
	// ErrShiftClosed when the shift was already closed.
	CloseShift(ctx context.Context, cmd CloseShiftCommand) (Shift, error)

	// List retrieves shifts with optional filters, newest first.
	List(ctx context.Context, filter ShiftFilter) ([]Shift, error)

	// ListOpenBefore retrieves open shifts dated strictly before the given
	// date. Used by the stale-shift auto-close job.
	ListOpenBefore(ctx context.Context, date string) ([]Shift, error)

	// Snapshot retrieves every shift record. The payroll engine aggregates
	// over this read-only snapshot.
	Snapshot(ctx context.Context) ([]Shift, error)

	Delete(ctx context.Context, id string) error
}
