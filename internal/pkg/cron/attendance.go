package cron

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/nizami-hq/nizami-backend-go/internal/domain/attendance"
	"github.com/nizami-hq/nizami-backend-go/internal/domain/employee"
	"github.com/nizami-hq/nizami-backend-go/internal/domain/settings"
)

type AttendanceJobs struct {
	shiftRepo    attendance.ShiftRepository
	employeeRepo employee.EmployeeRepository
	settingsRepo settings.SettingsRepository
	location     *time.Location
	now          func() time.Time
}

func NewAttendanceJobs(
	shiftRepo attendance.ShiftRepository,
	employeeRepo employee.EmployeeRepository,
	settingsRepo settings.SettingsRepository,
	location *time.Location,
) *AttendanceJobs {
	return &AttendanceJobs{
		shiftRepo:    shiftRepo,
		employeeRepo: employeeRepo,
		settingsRepo: settingsRepo,
		location:     location,
		now:          time.Now,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("auto_close_stale_shifts", 1*time.Hour, j.AutoCloseStaleShifts)
}

// AutoCloseStaleShifts closes shifts that were never clocked out. An open
// shift dated before today means the employee forgot to clock out; it is
// closed at the scheduled end of the employee's shift window so payroll
// does not see a zero-hour day.
func (j *AttendanceJobs) AutoCloseStaleShifts(ctx context.Context) error {
	nowLocal := j.now().In(j.location)

	// Only run in the first hour after midnight, business time.
	if nowLocal.Hour() != 0 {
		return nil
	}

	slog.Info("Cron: Starting auto-close stale shifts job")

	today := nowLocal.Format("2006-01-02")

	staleShifts, err := j.shiftRepo.ListOpenBefore(ctx, today)
	if err != nil {
		return fmt.Errorf("failed to list stale open shifts: %w", err)
	}

	if len(staleShifts) == 0 {
		slog.Info("Cron: No stale shifts found")
		return nil
	}

	cfg, err := j.settingsRepo.Get(ctx)
	if err != nil {
		if !errors.Is(err, settings.ErrSettingsNotFound) {
			return fmt.Errorf("failed to load settings: %w", err)
		}
		cfg = settings.Defaults()
	}

	closedCount := 0
	for _, shift := range staleShifts {
		emp, err := j.employeeRepo.GetByID(ctx, shift.EmployeeID)
		if err != nil {
			slog.Error("Cron: Failed to load employee for stale shift",
				"shift_id", shift.ID,
				"employee_id", shift.EmployeeID,
				"error", err)
			continue
		}

		window := cfg.WindowFor(emp.Shift)

		_, err = j.shiftRepo.CloseShift(ctx, attendance.CloseShiftCommand{
			ShiftID:    shift.ID,
			TimeOut:    window.End,
			AutoClosed: true,
		})
		if err != nil {
			slog.Error("Cron: Failed to auto-close shift",
				"shift_id", shift.ID,
				"employee_id", shift.EmployeeID,
				"error", err)
			continue
		}

		closedCount++
	}

	slog.Info("Cron: Auto-closed stale shifts", "count", closedCount)
	return nil
}
