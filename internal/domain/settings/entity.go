package settings

import (
	"time"

	"github.com/nizami-hq/nizami-backend-go/internal/domain/employee"
)

// ShiftWindow is the configured wall-clock window for one shift type. The
// window is informational to payroll (actual hours come from clock events);
// the auto-close job uses End as the fallback clock-out.
type ShiftWindow struct {
	Start    string  // HH:MM
	End      string  // HH:MM
	Duration float64 // expected hours
}

// Settings holds the business-wide shift configuration.
type Settings struct {
	ID           string
	MorningShift ShiftWindow
	EveningShift ShiftWindow
	UpdatedAt    time.Time
}

// WindowFor returns the configured window for a shift type, falling back to
// the morning window for unknown values.
func (s Settings) WindowFor(shift employee.Shift) ShiftWindow {
	if shift == employee.ShiftEvening {
		return s.EveningShift
	}
	return s.MorningShift
}

// Defaults returns the out-of-the-box shift configuration.
func Defaults() Settings {
	return Settings{
		MorningShift: ShiftWindow{Start: "08:00", End: "16:00", Duration: 8},
		EveningShift: ShiftWindow{Start: "16:00", End: "00:00", Duration: 8},
	}
}
