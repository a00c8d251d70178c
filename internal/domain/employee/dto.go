package employee

import (
	"github.com/nizami-hq/nizami-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Name          string  `json:"name"`
	Phone         string  `json:"phone"`
	DailyRate     float64 `json:"daily_rate"`
	StandardHours float64 `json:"standard_hours,omitempty"`
	Shift         string  `json:"shift"`
	JoinedDate    string  `json:"joined_date,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if !validator.IsEmpty(r.Phone) && !validator.IsValidPhoneNumber(r.Phone) {
		errs = append(errs, validator.ValidationError{Field: "phone", Message: "is not a valid phone number"})
	}
	if r.DailyRate <= 0 {
		errs = append(errs, validator.ValidationError{Field: "daily_rate", Message: "must be positive"})
	}
	if r.StandardHours < 0 || r.StandardHours > 24 {
		errs = append(errs, validator.ValidationError{Field: "standard_hours", Message: "must be between 0 and 24"})
	}
	if r.Shift != string(ShiftMorning) && r.Shift != string(ShiftEvening) {
		errs = append(errs, validator.ValidationError{Field: "shift", Message: "must be 'morning' or 'evening'"})
	}
	if r.JoinedDate != "" {
		if _, ok := validator.IsValidDate(r.JoinedDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "joined_date", Message: "must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID            string   `json:"-"`
	Name          *string  `json:"name,omitempty"`
	Phone         *string  `json:"phone,omitempty"`
	DailyRate     *float64 `json:"daily_rate,omitempty"`
	StandardHours *float64 `json:"standard_hours,omitempty"`
	Shift         *string  `json:"shift,omitempty"`
	IsActive      *bool    `json:"is_active,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "must not be empty"})
	}
	if r.Phone != nil && !validator.IsEmpty(*r.Phone) && !validator.IsValidPhoneNumber(*r.Phone) {
		errs = append(errs, validator.ValidationError{Field: "phone", Message: "is not a valid phone number"})
	}
	if r.DailyRate != nil && *r.DailyRate <= 0 {
		errs = append(errs, validator.ValidationError{Field: "daily_rate", Message: "must be positive"})
	}
	if r.StandardHours != nil && (*r.StandardHours < 0 || *r.StandardHours > 24) {
		errs = append(errs, validator.ValidationError{Field: "standard_hours", Message: "must be between 0 and 24"})
	}
	if r.Shift != nil && *r.Shift != string(ShiftMorning) && *r.Shift != string(ShiftEvening) {
		errs = append(errs, validator.ValidationError{Field: "shift", Message: "must be 'morning' or 'evening'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Phone         string  `json:"phone"`
	DailyRate     float64 `json:"daily_rate"`
	StandardHours float64 `json:"standard_hours"`
	Shift         string  `json:"shift"`
	IsActive      bool    `json:"is_active"`
	JoinedDate    string  `json:"joined_date"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:            e.ID,
		Name:          e.Name,
		Phone:         e.Phone,
		DailyRate:     e.DailyRate,
		StandardHours: e.StandardHours,
		Shift:         string(e.Shift),
		IsActive:      e.IsActive,
		JoinedDate:    e.JoinedDate.Format("2006-01-02"),
	}
}
