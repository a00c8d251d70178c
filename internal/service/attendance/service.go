package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nizami-hq/nizami-backend-go/internal/domain/attendance"
	"github.com/nizami-hq/nizami-backend-go/internal/domain/employee"
)

type AttendanceServiceImpl struct {
	shiftRepo    attendance.ShiftRepository
	employeeRepo employee.EmployeeRepository
	location     *time.Location
	now          func() time.Time
}

func NewAttendanceService(
	shiftRepo attendance.ShiftRepository,
	employeeRepo employee.EmployeeRepository,
	location *time.Location,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		shiftRepo:    shiftRepo,
		employeeRepo: employeeRepo,
		location:     location,
		now:          time.Now,
	}
}

// Toggle implements attendance.AttendanceService. The state machine is two
// transitions per (employee, today): no open shift means clock in, an open
// shift means clock out. The storage layer's partial unique index resolves
// the race where two toggles both observe "no open shift".
func (s *AttendanceServiceImpl) Toggle(ctx context.Context, req attendance.ToggleRequest) (attendance.ToggleResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.ToggleResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.ToggleResponse{}, err
	}
	if !emp.IsActive {
		return attendance.ToggleResponse{}, employee.ErrEmployeeInactive
	}

	nowLocal := s.now().In(s.location)
	today := nowLocal.Format("2006-01-02")
	clock := nowLocal.Format("15:04")

	open, err := s.shiftRepo.GetOpenShift(ctx, emp.ID, today)
	if err != nil {
		if !errors.Is(err, attendance.ErrNoOpenShift) {
			return attendance.ToggleResponse{}, fmt.Errorf("failed to look up open shift: %w", err)
		}

		created, err := s.shiftRepo.Create(ctx, attendance.Shift{
			ID:         uuid.NewString(),
			EmployeeID: emp.ID,
			Date:       today,
			TimeIn:     clock,
			Status:     attendance.StatusOpen,
		})
		if err != nil {
			return attendance.ToggleResponse{}, err
		}

		return attendance.ToggleResponse{
			Action: attendance.ActionClockedIn,
			Shift:  attendance.ToResponse(created),
		}, nil
	}

	closed, err := s.shiftRepo.CloseShift(ctx, attendance.CloseShiftCommand{
		ShiftID: open.ID,
		TimeOut: clock,
	})
	if err != nil {
		return attendance.ToggleResponse{}, err
	}

	return attendance.ToggleResponse{
		Action: attendance.ActionClockedOut,
		Shift:  attendance.ToResponse(closed),
	}, nil
}

// ListShifts implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListShifts(ctx context.Context, filter attendance.ShiftFilter) ([]attendance.ShiftResponse, error) {
	shifts, err := s.shiftRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}

	responses := make([]attendance.ShiftResponse, 0, len(shifts))
	for _, shift := range shifts {
		responses = append(responses, attendance.ToResponse(shift))
	}

	return responses, nil
}

// DeleteShift implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) DeleteShift(ctx context.Context, id string) error {
	return s.shiftRepo.Delete(ctx, id)
}
