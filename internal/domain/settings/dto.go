package settings

import (
	"github.com/nizami-hq/nizami-backend-go/internal/pkg/validator"
)

type ShiftWindowPayload struct {
	Start    string  `json:"start"`
	End      string  `json:"end"`
	Duration float64 `json:"duration"`
}

type UpdateSettingsRequest struct {
	MorningShift *ShiftWindowPayload `json:"morning_shift,omitempty"`
	EveningShift *ShiftWindowPayload `json:"evening_shift,omitempty"`
}

func validateWindow(field string, w ShiftWindowPayload, errs validator.ValidationErrors) validator.ValidationErrors {
	if !validator.IsValidClockTime(w.Start) {
		errs = append(errs, validator.ValidationError{Field: field + ".start", Message: "must be HH:MM"})
	}
	if !validator.IsValidClockTime(w.End) {
		errs = append(errs, validator.ValidationError{Field: field + ".end", Message: "must be HH:MM"})
	}
	if w.Duration <= 0 || w.Duration > 24 {
		errs = append(errs, validator.ValidationError{Field: field + ".duration", Message: "must be between 0 and 24"})
	}
	return errs
}

func (r *UpdateSettingsRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.MorningShift != nil {
		errs = validateWindow("morning_shift", *r.MorningShift, errs)
	}
	if r.EveningShift != nil {
		errs = validateWindow("evening_shift", *r.EveningShift, errs)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SettingsResponse struct {
	MorningShift ShiftWindowPayload `json:"morning_shift"`
	EveningShift ShiftWindowPayload `json:"evening_shift"`
}

func ToResponse(s Settings) SettingsResponse {
	return SettingsResponse{
		MorningShift: ShiftWindowPayload(s.MorningShift),
		EveningShift: ShiftWindowPayload(s.EveningShift),
	}
}
