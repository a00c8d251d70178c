package payroll

import (
	"time"

	"github.com/nizami-hq/nizami-backend-go/internal/pkg/validator"
)

// cycleStartDay is the day of month a pay cycle opens on. The cycle for
// token "2024-05" runs from 2024-05-10 00:00:00 through 2024-06-09
// 23:59:59.999 inclusive.
const cycleStartDay = 10

// Cycle is the resolved pay-cycle window for a "YYYY-MM" token. It is a
// derived value, never persisted.
type Cycle struct {
	Token string
	Start time.Time
	End   time.Time
}

// CycleRange resolves a "YYYY-MM" token to the business pay-cycle window.
// The window spans full calendar days from the 10th of the token month
// through the 9th of the following month. Month arithmetic goes through
// time.Date normalization, so the December cycle rolls into January of the
// next year without special-casing.
func CycleRange(token string) (Cycle, error) {
	base, err := time.Parse("2006-01", token)
	if err != nil {
		return Cycle{}, validator.ValidationErrors{
			{Field: "cycle", Message: "must be a valid YYYY-MM token"},
		}
	}

	start := time.Date(base.Year(), base.Month(), cycleStartDay, 0, 0, 0, 0, time.UTC)
	end := time.Date(base.Year(), base.Month()+1, cycleStartDay-1,
		23, 59, 59, int(999*time.Millisecond), time.UTC)

	return Cycle{Token: token, Start: start, End: end}, nil
}

// Contains reports whether an ISO calendar date falls inside the cycle.
// Unparsable dates are outside every cycle.
func (c Cycle) Contains(date string) bool {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return false
	}
	return !d.Before(c.Start) && !d.After(c.End)
}

// ActiveCycleToken returns the token of the cycle covering the given
// instant: before the 10th of a month the previous month's cycle is still
// running.
func ActiveCycleToken(now time.Time) string {
	if now.Day() < cycleStartDay {
		now = now.AddDate(0, -1, 0)
	}
	return now.Format("2006-01")
}
