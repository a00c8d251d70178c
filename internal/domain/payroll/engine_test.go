package payroll

import (
	"fmt"
	"testing"

	"github.com/nizami-hq/nizami-backend-go/internal/domain/attendance"
	"github.com/nizami-hq/nizami-backend-go/internal/domain/employee"
	"github.com/nizami-hq/nizami-backend-go/internal/domain/transaction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	cases := []struct {
		input      string
		wantHour   int
		wantMinute int
	}{
		{"09:00", 9, 0},
		{"23:59", 23, 59},
		{"٠٩:٣٠", 9, 30},
		{"garbage", 0, 0},
		{"12", 12, 0},
		{"xx:30", 0, 30},
		{"", 0, 0},
	}
	for _, c := range cases {
		h, m := ParseClock(c.input)
		assert.Equal(t, c.wantHour, h, "hour of %q", c.input)
		assert.Equal(t, c.wantMinute, m, "minute of %q", c.input)
	}
}

func TestHours(t *testing.T) {
	cases := []struct {
		name    string
		timeIn  string
		timeOut string
		want    float64
	}{
		{"regular shift", "09:00", "17:00", 8.0},
		{"midnight wraparound", "22:00", "06:00", 8.0},
		{"arabic-indic digits", "٠٩:٠٠", "17:00", 8.0},
		{"open shift", "09:00", "", 0},
		{"half hour", "09:00", "09:30", 0.5},
		{"same time", "09:00", "09:00", 0},
		{"malformed both", "oops", "oops", 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, Hours(c.timeIn, c.timeOut))
		})
	}
}

func TestTotalHours(t *testing.T) {
	cycle, err := CycleRange("2024-05")
	require.NoError(t, err)

	shifts := []attendance.Shift{
		{EmployeeID: "emp-1", Date: "2024-05-12", TimeIn: "09:00", TimeOut: "17:00", Status: attendance.StatusClosed},
		{EmployeeID: "emp-1", Date: "2024-05-13", TimeIn: "22:00", TimeOut: "06:00", Status: attendance.StatusClosed},
		// open shift contributes nothing
		{EmployeeID: "emp-1", Date: "2024-05-14", TimeIn: "09:00", Status: attendance.StatusOpen},
		// outside the cycle
		{EmployeeID: "emp-1", Date: "2024-05-09", TimeIn: "09:00", TimeOut: "17:00", Status: attendance.StatusClosed},
		// different employee
		{EmployeeID: "emp-2", Date: "2024-05-12", TimeIn: "09:00", TimeOut: "17:00", Status: attendance.StatusClosed},
	}

	assert.Equal(t, 16.0, TotalHours(shifts, "emp-1", cycle))
	assert.Equal(t, 0.0, TotalHours(shifts, "emp-3", cycle))
}

func TestSplitTransactions(t *testing.T) {
	cycle, err := CycleRange("2024-05")
	require.NoError(t, err)

	txs := []transaction.Transaction{
		{ID: "t1", EmployeeID: "emp-1", Amount: 100, Type: transaction.TypeBonus, Date: "2024-05-15"},
		{ID: "t2", EmployeeID: "emp-1", Amount: 50, Type: transaction.TypeDeduction, Date: "2024-05-20"},
		{ID: "t3", EmployeeID: "emp-1", Amount: 25, Type: transaction.TypePenalty, Date: "2024-06-01"},
		// outside the cycle
		{ID: "t4", EmployeeID: "emp-1", Amount: 999, Type: transaction.TypeBonus, Date: "2024-06-15"},
		// different employee
		{ID: "t5", EmployeeID: "emp-2", Amount: 999, Type: transaction.TypeBonus, Date: "2024-05-15"},
	}

	bonuses, deductions, filtered := SplitTransactions(txs, "emp-1", cycle)

	assert.Equal(t, 100.0, bonuses)
	assert.Equal(t, 75.0, deductions) // deduction and penalty both reduce pay
	require.Len(t, filtered, 3)
	assert.Equal(t, "t1", filtered[0].ID)
}

func TestClassify(t *testing.T) {
	// standardHours = 8 -> target = 192 hours
	cases := []struct {
		name          string
		hoursWorked   float64
		standardHours float64
		want          Tier
	}{
		{"exactly 95 percent", 182.4, 8, TierExcellent},
		{"just under 95 percent", 182.3808, 8, TierGood}, // ratio 0.9499
		{"exactly 75 percent", 144, 8, TierGood},
		{"exactly 50 percent", 96, 8, TierAcceptable},
		{"under 50 percent", 95, 8, TierLate},
		{"zero hours", 0, 8, TierLate},
		{"default standard hours", 192, 0, TierExcellent},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, Classify(c.hoursWorked, c.standardHours))
		})
	}
}

func TestSummarize(t *testing.T) {
	emp := employee.Employee{
		ID:            "emp-1",
		Name:          "Ahmed",
		DailyRate:     200,
		StandardHours: 8,
	}

	shifts := []attendance.Shift{
		{EmployeeID: "emp-1", Date: "2024-05-12", TimeIn: "09:00", TimeOut: "17:00", Status: attendance.StatusClosed},
		{EmployeeID: "emp-1", Date: "2024-05-13", TimeIn: "09:00", TimeOut: "17:00", Status: attendance.StatusClosed},
	}
	txs := []transaction.Transaction{
		{ID: "t1", EmployeeID: "emp-1", Amount: 100, Type: transaction.TypeBonus, Date: "2024-05-15"},
		{ID: "t2", EmployeeID: "emp-1", Amount: 50, Type: transaction.TypeDeduction, Date: "2024-05-20"},
	}

	summary, err := Summarize(emp, shifts, txs, "2024-05")
	require.NoError(t, err)

	assert.Equal(t, 16.0, summary.TotalHours)
	assert.Equal(t, 400.0, summary.BaseSalary) // 200/8 * 16
	assert.Equal(t, 100.0, summary.TotalBonuses)
	assert.Equal(t, 50.0, summary.TotalDeductions)
	assert.Equal(t, 450.0, summary.NetSalary)
	assert.Equal(t, TierLate, summary.Tier) // 16 / 192
	assert.Len(t, summary.Transactions, 2)
}

func TestSummarize_HourlyRate(t *testing.T) {
	emp := employee.Employee{ID: "emp-1", DailyRate: 150, StandardHours: 8}

	// ten completed 8-hour shifts -> 80 hours
	var shifts []attendance.Shift
	for day := 10; day < 20; day++ {
		shifts = append(shifts, attendance.Shift{
			EmployeeID: "emp-1",
			Date:       fmt.Sprintf("2024-05-%02d", day),
			TimeIn:     "09:00",
			TimeOut:    "17:00",
			Status:     attendance.StatusClosed,
		})
	}

	summary, err := Summarize(emp, shifts, nil, "2024-05")
	require.NoError(t, err)

	assert.Equal(t, 80.0, summary.TotalHours)
	assert.Equal(t, 1500.0, summary.BaseSalary) // hourly rate 18.75
}

func TestSummarize_NegativeNetSalary(t *testing.T) {
	emp := employee.Employee{ID: "emp-1", DailyRate: 200, StandardHours: 8}

	txs := []transaction.Transaction{
		{ID: "t1", EmployeeID: "emp-1", Amount: 300, Type: transaction.TypePenalty, Date: "2024-05-15"},
	}

	summary, err := Summarize(emp, nil, txs, "2024-05")
	require.NoError(t, err)

	// no floor at zero
	assert.Equal(t, -300.0, summary.NetSalary)
}

func TestSummarize_Idempotent(t *testing.T) {
	emp := employee.Employee{ID: "emp-1", DailyRate: 137.5, StandardHours: 7}

	shifts := []attendance.Shift{
		{EmployeeID: "emp-1", Date: "2024-05-12", TimeIn: "٠٩:٠٠", TimeOut: "17:15", Status: attendance.StatusClosed},
	}
	txs := []transaction.Transaction{
		{ID: "t1", EmployeeID: "emp-1", Amount: 33.33, Type: transaction.TypeBonus, Date: "2024-05-15"},
	}

	first, err := Summarize(emp, shifts, txs, "2024-05")
	require.NoError(t, err)
	second, err := Summarize(emp, shifts, txs, "2024-05")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSummarize_MalformedCycle(t *testing.T) {
	_, err := Summarize(employee.Employee{ID: "emp-1"}, nil, nil, "bogus")
	require.Error(t, err)
}
