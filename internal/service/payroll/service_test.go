package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/nizami-hq/nizami-backend-go/internal/domain/attendance"
	"github.com/nizami-hq/nizami-backend-go/internal/domain/employee"
	"github.com/nizami-hq/nizami-backend-go/internal/domain/payroll"
	"github.com/nizami-hq/nizami-backend-go/internal/domain/transaction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubEmployeeRepo struct {
	employees []employee.Employee
}

func (s *stubEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	s.employees = append(s.employees, emp)
	return emp, nil
}

func (s *stubEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	for _, e := range s.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (s *stubEmployeeRepo) List(_ context.Context, activeOnly bool) ([]employee.Employee, error) {
	result := make([]employee.Employee, 0)
	for _, e := range s.employees {
		if activeOnly && !e.IsActive {
			continue
		}
		result = append(result, e)
	}
	return result, nil
}

func (s *stubEmployeeRepo) Update(_ context.Context, _ employee.Employee) error { return nil }
func (s *stubEmployeeRepo) Delete(_ context.Context, _ string) error            { return nil }

type stubShiftRepo struct {
	shifts []attendance.Shift
}

func (s *stubShiftRepo) Create(_ context.Context, shift attendance.Shift) (attendance.Shift, error) {
	s.shifts = append(s.shifts, shift)
	return shift, nil
}

func (s *stubShiftRepo) GetByID(_ context.Context, _ string) (attendance.Shift, error) {
	return attendance.Shift{}, attendance.ErrShiftNotFound
}

func (s *stubShiftRepo) GetOpenShift(_ context.Context, _ string, _ string) (attendance.Shift, error) {
	return attendance.Shift{}, attendance.ErrNoOpenShift
}

func (s *stubShiftRepo) CloseShift(_ context.Context, _ attendance.CloseShiftCommand) (attendance.Shift, error) {
	return attendance.Shift{}, attendance.ErrShiftNotFound
}

func (s *stubShiftRepo) List(_ context.Context, _ attendance.ShiftFilter) ([]attendance.Shift, error) {
	return s.shifts, nil
}

func (s *stubShiftRepo) ListOpenBefore(_ context.Context, _ string) ([]attendance.Shift, error) {
	return nil, nil
}

func (s *stubShiftRepo) Snapshot(_ context.Context) ([]attendance.Shift, error) {
	return s.shifts, nil
}

func (s *stubShiftRepo) Delete(_ context.Context, _ string) error { return nil }

type stubTransactionRepo struct {
	txs []transaction.Transaction
}

func (s *stubTransactionRepo) Create(_ context.Context, _ transaction.CreateTransactionCommand) (transaction.Transaction, error) {
	return transaction.Transaction{}, nil
}

func (s *stubTransactionRepo) GetByID(_ context.Context, _ string) (transaction.Transaction, error) {
	return transaction.Transaction{}, transaction.ErrTransactionNotFound
}

func (s *stubTransactionRepo) ListByEmployee(_ context.Context, _ string) ([]transaction.Transaction, error) {
	return s.txs, nil
}

func (s *stubTransactionRepo) Snapshot(_ context.Context) ([]transaction.Transaction, error) {
	return s.txs, nil
}

func (s *stubTransactionRepo) Delete(_ context.Context, _ string) error { return nil }

func closedShift(employeeID, date, timeIn, timeOut string) attendance.Shift {
	return attendance.Shift{
		EmployeeID: employeeID,
		Date:       date,
		TimeIn:     timeIn,
		TimeOut:    timeOut,
		Status:     attendance.StatusClosed,
	}
}

func newTestService(emps []employee.Employee, shifts []attendance.Shift, txs []transaction.Transaction) *PayrollServiceImpl {
	svc := NewPayrollService(
		&stubEmployeeRepo{employees: emps},
		&stubShiftRepo{shifts: shifts},
		&stubTransactionRepo{txs: txs},
		time.UTC,
	).(*PayrollServiceImpl)
	svc.now = func() time.Time { return time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC) }
	return svc
}

func TestPayrollService_EmployeeSummary(t *testing.T) {
	emp := employee.Employee{
		ID:            "emp-1",
		Name:          "Karim",
		DailyRate:     200,
		StandardHours: 8,
		Shift:         employee.ShiftMorning,
		IsActive:      true,
	}
	shifts := []attendance.Shift{
		closedShift("emp-1", "2024-05-12", "08:00", "16:00"),
		closedShift("emp-1", "2024-05-13", "08:00", "16:00"),
		// Outside the 2024-05 cycle window.
		closedShift("emp-1", "2024-05-09", "08:00", "16:00"),
	}
	txs := []transaction.Transaction{
		{EmployeeID: "emp-1", Amount: 100, Type: transaction.TypeBonus, Date: "2024-05-15"},
		{EmployeeID: "emp-1", Amount: 50, Type: transaction.TypePenalty, Date: "2024-05-16"},
	}
	svc := newTestService([]employee.Employee{emp}, shifts, txs)

	summary, err := svc.EmployeeSummary(context.Background(), "emp-1", "2024-05")

	require.NoError(t, err)
	assert.Equal(t, "Karim", summary.EmployeeName)
	assert.Equal(t, 16.0, summary.TotalHours)
	assert.Equal(t, 400.0, summary.BaseSalary)
	assert.Equal(t, 100.0, summary.TotalBonuses)
	assert.Equal(t, 50.0, summary.TotalDeductions)
	assert.Equal(t, 450.0, summary.NetSalary)
	assert.Len(t, summary.Transactions, 2)
}

func TestPayrollService_Summaries_SkipsInactive(t *testing.T) {
	active := employee.Employee{ID: "emp-1", Name: "Karim", DailyRate: 200, StandardHours: 8, IsActive: true}
	inactive := employee.Employee{ID: "emp-2", Name: "Samir", DailyRate: 150, StandardHours: 8, IsActive: false}
	svc := newTestService([]employee.Employee{active, inactive}, nil, nil)

	summaries, err := svc.Summaries(context.Background(), "2024-05")

	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, "emp-1", summaries[0].EmployeeID)
}

func TestPayrollService_Summaries_MalformedCycle(t *testing.T) {
	svc := newTestService(nil, nil, nil)

	_, err := svc.Summaries(context.Background(), "May-2024")

	assert.Error(t, err)
}

func TestPayrollService_GetCycle_DefaultsToActive(t *testing.T) {
	svc := newTestService(nil, nil, nil)

	// now is 2024-05-20, past the cycle start day, so the active cycle is
	// the 2024-05 token.
	cycle, err := svc.GetCycle(context.Background(), "")

	require.NoError(t, err)
	assert.Equal(t, "2024-05", cycle.Token)
	assert.Equal(t, "2024-05-10", cycle.Start)
	assert.Equal(t, "2024-06-09", cycle.End)
}

func TestPayrollService_GetCycle_BeforeCycleStartDay(t *testing.T) {
	svc := newTestService(nil, nil, nil)
	svc.now = func() time.Time { return time.Date(2024, 5, 5, 12, 0, 0, 0, time.UTC) }

	cycle, err := svc.GetCycle(context.Background(), "")

	require.NoError(t, err)
	assert.Equal(t, "2024-04", cycle.Token)
}

func TestPayrollService_Report_ProducesPDF(t *testing.T) {
	emp := employee.Employee{ID: "emp-1", Name: "Karim", DailyRate: 200, StandardHours: 8, IsActive: true}
	shifts := []attendance.Shift{closedShift("emp-1", "2024-05-12", "08:00", "16:00")}
	svc := newTestService([]employee.Employee{emp}, shifts, nil)

	pdfBytes, err := svc.Report(context.Background(), "2024-05")

	require.NoError(t, err)
	require.NotEmpty(t, pdfBytes)
	assert.Equal(t, "%PDF", string(pdfBytes[:4]))
}

func TestPayrollService_EmployeeSummary_UnknownEmployee(t *testing.T) {
	svc := newTestService(nil, nil, nil)

	_, err := svc.EmployeeSummary(context.Background(), "nobody", "2024-05")

	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

var _ payroll.PayrollService = (*PayrollServiceImpl)(nil)
