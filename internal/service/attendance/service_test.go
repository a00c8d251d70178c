package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/nizami-hq/nizami-backend-go/internal/domain/attendance"
	"github.com/nizami-hq/nizami-backend-go/internal/domain/employee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeShiftRepo is an in-memory ShiftRepository with the same open-shift
// uniqueness guarantee the partial index provides in PostgreSQL.
type fakeShiftRepo struct {
	shifts map[string]attendance.Shift
}

func newFakeShiftRepo() *fakeShiftRepo {
	return &fakeShiftRepo{shifts: make(map[string]attendance.Shift)}
}

func (f *fakeShiftRepo) Create(_ context.Context, shift attendance.Shift) (attendance.Shift, error) {
	for _, s := range f.shifts {
		if s.EmployeeID == shift.EmployeeID && s.Date == shift.Date && s.Status == attendance.StatusOpen {
			return attendance.Shift{}, attendance.ErrAlreadyClockedIn
		}
	}
	f.shifts[shift.ID] = shift
	return shift, nil
}

func (f *fakeShiftRepo) GetByID(_ context.Context, id string) (attendance.Shift, error) {
	s, ok := f.shifts[id]
	if !ok {
		return attendance.Shift{}, attendance.ErrShiftNotFound
	}
	return s, nil
}

func (f *fakeShiftRepo) GetOpenShift(_ context.Context, employeeID string, date string) (attendance.Shift, error) {
	for _, s := range f.shifts {
		if s.EmployeeID == employeeID && s.Date == date && s.Status == attendance.StatusOpen {
			return s, nil
		}
	}
	return attendance.Shift{}, attendance.ErrNoOpenShift
}

func (f *fakeShiftRepo) CloseShift(_ context.Context, cmd attendance.CloseShiftCommand) (attendance.Shift, error) {
	s, ok := f.shifts[cmd.ShiftID]
	if !ok {
		return attendance.Shift{}, attendance.ErrShiftNotFound
	}
	if s.Status != attendance.StatusOpen {
		return attendance.Shift{}, attendance.ErrShiftClosed
	}
	s.TimeOut = cmd.TimeOut
	s.Status = attendance.StatusClosed
	s.AutoClosed = cmd.AutoClosed
	f.shifts[s.ID] = s
	return s, nil
}

func (f *fakeShiftRepo) List(_ context.Context, filter attendance.ShiftFilter) ([]attendance.Shift, error) {
	result := make([]attendance.Shift, 0)
	for _, s := range f.shifts {
		if filter.EmployeeID != nil && s.EmployeeID != *filter.EmployeeID {
			continue
		}
		if filter.Date != nil && s.Date != *filter.Date {
			continue
		}
		if filter.Status != nil && s.Status != *filter.Status {
			continue
		}
		result = append(result, s)
	}
	return result, nil
}

func (f *fakeShiftRepo) ListOpenBefore(_ context.Context, date string) ([]attendance.Shift, error) {
	result := make([]attendance.Shift, 0)
	for _, s := range f.shifts {
		if s.Status == attendance.StatusOpen && s.Date < date {
			result = append(result, s)
		}
	}
	return result, nil
}

func (f *fakeShiftRepo) Snapshot(_ context.Context) ([]attendance.Shift, error) {
	result := make([]attendance.Shift, 0, len(f.shifts))
	for _, s := range f.shifts {
		result = append(result, s)
	}
	return result, nil
}

func (f *fakeShiftRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.shifts[id]; !ok {
		return attendance.ErrShiftNotFound
	}
	delete(f.shifts, id)
	return nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func newFakeEmployeeRepo(emps ...employee.Employee) *fakeEmployeeRepo {
	repo := &fakeEmployeeRepo{employees: make(map[string]employee.Employee)}
	for _, e := range emps {
		repo.employees[e.ID] = e
	}
	return repo
}

func (f *fakeEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	f.employees[emp.ID] = emp
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	e, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (f *fakeEmployeeRepo) List(_ context.Context, activeOnly bool) ([]employee.Employee, error) {
	result := make([]employee.Employee, 0)
	for _, e := range f.employees {
		if activeOnly && !e.IsActive {
			continue
		}
		result = append(result, e)
	}
	return result, nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, emp employee.Employee) error {
	if _, ok := f.employees[emp.ID]; !ok {
		return employee.ErrEmployeeNotFound
	}
	f.employees[emp.ID] = emp
	return nil
}

func (f *fakeEmployeeRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.employees[id]; !ok {
		return employee.ErrEmployeeNotFound
	}
	delete(f.employees, id)
	return nil
}

func newToggleService(shiftRepo *fakeShiftRepo, empRepo *fakeEmployeeRepo, now time.Time) *AttendanceServiceImpl {
	svc := NewAttendanceService(shiftRepo, empRepo, time.UTC).(*AttendanceServiceImpl)
	svc.now = func() time.Time { return now }
	return svc
}

func activeEmployee(id string) employee.Employee {
	return employee.Employee{
		ID:        id,
		Name:      "Karim",
		DailyRate: 200,
		Shift:     employee.ShiftMorning,
		IsActive:  true,
	}
}

func TestAttendanceService_Toggle_ClockIn(t *testing.T) {
	ctx := context.Background()
	shiftRepo := newFakeShiftRepo()
	empRepo := newFakeEmployeeRepo(activeEmployee("emp-1"))
	now := time.Date(2024, 5, 12, 8, 3, 0, 0, time.UTC)
	svc := newToggleService(shiftRepo, empRepo, now)

	resp, err := svc.Toggle(ctx, attendance.ToggleRequest{EmployeeID: "emp-1"})

	require.NoError(t, err)
	assert.Equal(t, attendance.ActionClockedIn, resp.Action)
	assert.Equal(t, "2024-05-12", resp.Shift.Date)
	assert.Equal(t, "08:03", resp.Shift.TimeIn)
	assert.Empty(t, resp.Shift.TimeOut)
	assert.Equal(t, string(attendance.StatusOpen), resp.Shift.Status)
}

func TestAttendanceService_Toggle_ClockOut(t *testing.T) {
	ctx := context.Background()
	shiftRepo := newFakeShiftRepo()
	empRepo := newFakeEmployeeRepo(activeEmployee("emp-1"))

	morning := time.Date(2024, 5, 12, 8, 0, 0, 0, time.UTC)
	svc := newToggleService(shiftRepo, empRepo, morning)
	_, err := svc.Toggle(ctx, attendance.ToggleRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Date(2024, 5, 12, 16, 30, 0, 0, time.UTC) }
	resp, err := svc.Toggle(ctx, attendance.ToggleRequest{EmployeeID: "emp-1"})

	require.NoError(t, err)
	assert.Equal(t, attendance.ActionClockedOut, resp.Action)
	assert.Equal(t, "16:30", resp.Shift.TimeOut)
	assert.Equal(t, string(attendance.StatusClosed), resp.Shift.Status)
}

func TestAttendanceService_Toggle_ReClockInSameDay(t *testing.T) {
	ctx := context.Background()
	shiftRepo := newFakeShiftRepo()
	empRepo := newFakeEmployeeRepo(activeEmployee("emp-1"))
	svc := newToggleService(shiftRepo, empRepo, time.Date(2024, 5, 12, 8, 0, 0, 0, time.UTC))

	_, err := svc.Toggle(ctx, attendance.ToggleRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Date(2024, 5, 12, 12, 0, 0, 0, time.UTC) }
	_, err = svc.Toggle(ctx, attendance.ToggleRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)

	// A third toggle on the same day opens a second shift.
	svc.now = func() time.Time { return time.Date(2024, 5, 12, 14, 0, 0, 0, time.UTC) }
	resp, err := svc.Toggle(ctx, attendance.ToggleRequest{EmployeeID: "emp-1"})

	require.NoError(t, err)
	assert.Equal(t, attendance.ActionClockedIn, resp.Action)
	assert.Equal(t, "14:00", resp.Shift.TimeIn)

	shifts, err := shiftRepo.Snapshot(ctx)
	require.NoError(t, err)
	assert.Len(t, shifts, 2)
}

func TestAttendanceService_Toggle_UnknownEmployee(t *testing.T) {
	ctx := context.Background()
	svc := newToggleService(newFakeShiftRepo(), newFakeEmployeeRepo(), time.Now())

	_, err := svc.Toggle(ctx, attendance.ToggleRequest{EmployeeID: "nobody"})

	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestAttendanceService_Toggle_InactiveEmployee(t *testing.T) {
	ctx := context.Background()
	emp := activeEmployee("emp-1")
	emp.IsActive = false
	svc := newToggleService(newFakeShiftRepo(), newFakeEmployeeRepo(emp), time.Now())

	_, err := svc.Toggle(ctx, attendance.ToggleRequest{EmployeeID: "emp-1"})

	assert.ErrorIs(t, err, employee.ErrEmployeeInactive)
}

func TestAttendanceService_Toggle_ConflictOnDoubleClockIn(t *testing.T) {
	ctx := context.Background()
	shiftRepo := newFakeShiftRepo()
	empRepo := newFakeEmployeeRepo(activeEmployee("emp-1"))
	_ = newToggleService(shiftRepo, empRepo, time.Date(2024, 5, 12, 8, 0, 0, 0, time.UTC))

	// Simulate the race: another toggle inserted an open shift after this
	// call observed none.
	_, err := shiftRepo.Create(ctx, attendance.Shift{
		ID:         "racing",
		EmployeeID: "emp-1",
		Date:       "2024-05-12",
		TimeIn:     "08:00",
		Status:     attendance.StatusOpen,
	})
	require.NoError(t, err)

	_, err = shiftRepo.Create(ctx, attendance.Shift{
		ID:         "loser",
		EmployeeID: "emp-1",
		Date:       "2024-05-12",
		TimeIn:     "08:00",
		Status:     attendance.StatusOpen,
	})
	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedIn)
}
