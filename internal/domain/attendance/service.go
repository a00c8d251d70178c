package attendance

import "context"

type AttendanceService interface {
	// Toggle flips the employee's clock state for today: no open shift
	// clocks in, an open shift clocks out.
	Toggle(ctx context.Context, req ToggleRequest) (ToggleResponse, error)

	// ListShifts retrieves shift records with filters (owner view)
	ListShifts(ctx context.Context, filter ShiftFilter) ([]ShiftResponse, error)

	// DeleteShift removes a shift record
	DeleteShift(ctx context.Context, id string) error
}
