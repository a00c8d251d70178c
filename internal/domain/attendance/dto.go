package attendance

import (
	"github.com/nizami-hq/nizami-backend-go/internal/pkg/validator"
)

// CloseShiftCommand is the only mutation a clock-out may request. Closing is
// a terminal transition; there is no generic patch on shift records. Both
// producers build it from values already validated upstream.
type CloseShiftCommand struct {
	ShiftID    string
	TimeOut    string // HH:MM
	AutoClosed bool
}

type ToggleRequest struct {
	EmployeeID string `json:"employee_id"`
}

func (r *ToggleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ToggleAction reports which transition a toggle produced.
type ToggleAction string

const (
	ActionClockedIn  ToggleAction = "clocked_in"
	ActionClockedOut ToggleAction = "clocked_out"
)

type ToggleResponse struct {
	Action ToggleAction  `json:"action"`
	Shift  ShiftResponse `json:"shift"`
}

type ShiftFilter struct {
	EmployeeID *string
	Date       *string
	Status     *ShiftStatus
	Limit      int
}

type ShiftResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	Date         string  `json:"date"`
	TimeIn       string  `json:"time_in"`
	TimeOut      string  `json:"time_out,omitempty"`
	Status       string  `json:"status"`
	AutoClosed   bool    `json:"auto_closed,omitempty"`
}

func ToResponse(s Shift) ShiftResponse {
	return ShiftResponse{
		ID:           s.ID,
		EmployeeID:   s.EmployeeID,
		EmployeeName: s.EmployeeName,
		Date:         s.Date,
		TimeIn:       s.TimeIn,
		TimeOut:      s.TimeOut,
		Status:       string(s.Status),
		AutoClosed:   s.AutoClosed,
	}
}
