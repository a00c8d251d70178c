package employee

import "time"

type Shift string

const (
	ShiftMorning Shift = "morning"
	ShiftEvening Shift = "evening"
)

// DefaultStandardHours is the fallback shift length when an employee record
// carries no standard hours. It doubles as the hourly-rate divisor guard.
const DefaultStandardHours = 8

type Employee struct {
	ID            string
	Name          string
	Phone         string
	DailyRate     float64
	StandardHours float64
	Shift         Shift
	IsActive      bool
	JoinedDate    time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// EffectiveStandardHours returns the employee's standard shift length,
// defaulting when the stored value is zero or negative.
func (e Employee) EffectiveStandardHours() float64 {
	if e.StandardHours <= 0 {
		return DefaultStandardHours
	}
	return e.StandardHours
}
