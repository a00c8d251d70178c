// Package payroll holds the attendance and payroll calculation engine: pure
// functions that turn snapshots of shift records and pay adjustments into a
// per-employee summary for one pay cycle. Nothing here touches storage or
// mutates its inputs.
package payroll

import (
	"math"
	"strconv"
	"strings"

	"github.com/nizami-hq/nizami-backend-go/internal/domain/attendance"
	"github.com/nizami-hq/nizami-backend-go/internal/domain/employee"
	"github.com/nizami-hq/nizami-backend-go/internal/domain/transaction"
	"github.com/nizami-hq/nizami-backend-go/internal/pkg/digits"
)

// ParseClock parses an "HH:MM" token into hour and minute. Arabic-Indic
// digits are normalized first. Malformed segments parse as zero: input is
// validated upstream, and a bad stored value degrades to midnight instead of
// poisoning a whole cycle's totals.
func ParseClock(s string) (hour, minute int) {
	parts := strings.Split(digits.Normalize(s), ":")
	if len(parts) > 0 {
		hour, _ = strconv.Atoi(parts[0])
	}
	if len(parts) > 1 {
		minute, _ = strconv.Atoi(parts[1])
	}
	return hour, minute
}

// Hours returns the elapsed hours between two clock times. An empty timeOut
// means the shift is still open and contributes nothing. A negative interval
// means the shift crossed midnight and gains a day; spans beyond 24 hours
// are not representable.
func Hours(timeIn, timeOut string) float64 {
	if timeOut == "" {
		return 0
	}

	inH, inM := ParseClock(timeIn)
	outH, outM := ParseClock(timeOut)

	deltaMinutes := (outH*60 + outM) - (inH*60 + inM)
	if deltaMinutes < 0 {
		deltaMinutes += 24 * 60
	}

	result := float64(deltaMinutes) / 60
	if math.IsNaN(result) || math.IsInf(result, 0) {
		return 0
	}
	return result
}

// TotalHours sums the hours of an employee's completed shifts inside the
// cycle. Open shifts are excluded even though they exist in the snapshot.
func TotalHours(shifts []attendance.Shift, employeeID string, cycle Cycle) float64 {
	var total float64
	for _, s := range shifts {
		if s.EmployeeID != employeeID || !s.Closed() || s.TimeOut == "" {
			continue
		}
		if !cycle.Contains(s.Date) {
			continue
		}
		total += Hours(s.TimeIn, s.TimeOut)
	}
	return total
}

// SplitTransactions filters an employee's transactions to the cycle and
// splits them into bonus and deduction totals. Deductions and penalties are
// computation-equivalent; both reduce pay. The filtered list is returned so
// callers can render a history without re-filtering.
func SplitTransactions(txs []transaction.Transaction, employeeID string, cycle Cycle) (bonuses, deductions float64, filtered []transaction.Transaction) {
	for _, t := range txs {
		if t.EmployeeID != employeeID || !cycle.Contains(t.Date) {
			continue
		}
		filtered = append(filtered, t)
		if t.Debit() {
			deductions += t.Amount
		} else {
			bonuses += t.Amount
		}
	}
	return bonuses, deductions, filtered
}

// expectedShiftsPerCycle is the assumed number of shifts in a full cycle.
// It is a fixed approximation regardless of the cycle's actual length in
// days, inherited from the product's rating rules.
const expectedShiftsPerCycle = 24

// Tier is the coarse performance classification of worked hours against the
// cycle target.
type Tier string

const (
	TierExcellent  Tier = "excellent"
	TierGood       Tier = "good"
	TierAcceptable Tier = "acceptable"
	TierLate       Tier = "late"
)

// Classify grades hoursWorked against a target of expectedShiftsPerCycle
// standard-length shifts. Thresholds are inclusive on the lower bound of
// each tier.
func Classify(hoursWorked, standardHours float64) Tier {
	if standardHours <= 0 {
		standardHours = employee.DefaultStandardHours
	}
	targetHours := standardHours * expectedShiftsPerCycle
	ratio := hoursWorked / targetHours

	switch {
	case ratio >= 0.95:
		return TierExcellent
	case ratio >= 0.75:
		return TierGood
	case ratio >= 0.50:
		return TierAcceptable
	default:
		return TierLate
	}
}

// Summary is the derived payroll report for one employee and one cycle.
// Recomputed on every call, never cached. No rounding is applied anywhere;
// display precision is the caller's concern.
type Summary struct {
	EmployeeID      string
	Cycle           Cycle
	TotalHours      float64
	BaseSalary      float64
	TotalBonuses    float64
	TotalDeductions float64
	NetSalary       float64
	Tier            Tier
	Transactions    []transaction.Transaction
}

// Summarize composes the full payroll summary for an employee from read-only
// snapshots. Net salary may be negative; it is preserved, not clamped.
func Summarize(
	emp employee.Employee,
	shifts []attendance.Shift,
	txs []transaction.Transaction,
	cycleToken string,
) (Summary, error) {
	cycle, err := CycleRange(cycleToken)
	if err != nil {
		return Summary{}, err
	}

	totalHours := TotalHours(shifts, emp.ID, cycle)
	bonuses, deductions, filtered := SplitTransactions(txs, emp.ID, cycle)

	hourlyRate := emp.DailyRate / emp.EffectiveStandardHours()
	baseSalary := hourlyRate * totalHours
	netSalary := baseSalary + bonuses - deductions

	return Summary{
		EmployeeID:      emp.ID,
		Cycle:           cycle,
		TotalHours:      totalHours,
		BaseSalary:      baseSalary,
		TotalBonuses:    bonuses,
		TotalDeductions: deductions,
		NetSalary:       netSalary,
		Tier:            Classify(totalHours, emp.StandardHours),
		Transactions:    filtered,
	}, nil
}
