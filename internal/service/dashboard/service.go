package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/nizami-hq/nizami-backend-go/internal/domain/attendance"
	"github.com/nizami-hq/nizami-backend-go/internal/domain/dashboard"
	"github.com/nizami-hq/nizami-backend-go/internal/domain/employee"
	"github.com/nizami-hq/nizami-backend-go/internal/domain/payroll"
)

type DashboardServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	shiftRepo      attendance.ShiftRepository
	payrollService payroll.PayrollService
	location       *time.Location
	now            func() time.Time
}

func NewDashboardService(
	employeeRepo employee.EmployeeRepository,
	shiftRepo attendance.ShiftRepository,
	payrollService payroll.PayrollService,
	location *time.Location,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		employeeRepo:   employeeRepo,
		shiftRepo:      shiftRepo,
		payrollService: payrollService,
		location:       location,
		now:            time.Now,
	}
}

// Stats implements dashboard.DashboardService.
func (s *DashboardServiceImpl) Stats(ctx context.Context) (dashboard.StatsResponse, error) {
	nowLocal := s.now().In(s.location)
	today := nowLocal.Format("2006-01-02")
	activeToken := payroll.ActiveCycleToken(nowLocal)

	employees, err := s.employeeRepo.List(ctx, true)
	if err != nil {
		return dashboard.StatsResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	open := attendance.StatusOpen
	openShifts, err := s.shiftRepo.List(ctx, attendance.ShiftFilter{
		Date:   &today,
		Status: &open,
	})
	if err != nil {
		return dashboard.StatsResponse{}, fmt.Errorf("failed to list open shifts: %w", err)
	}

	cycleResp, err := s.payrollService.GetCycle(ctx, activeToken)
	if err != nil {
		return dashboard.StatsResponse{}, err
	}

	summaries, err := s.payrollService.Summaries(ctx, activeToken)
	if err != nil {
		return dashboard.StatsResponse{}, err
	}

	var netPayroll float64
	for _, summary := range summaries {
		netPayroll += summary.NetSalary
	}

	return dashboard.StatsResponse{
		ActiveEmployees: len(employees),
		ClockedInNow:    len(openShifts),
		ActiveCycle:     cycleResp,
		NetPayroll:      netPayroll,
	}, nil
}
