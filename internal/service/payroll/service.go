package payroll

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/nizami-hq/nizami-backend-go/internal/domain/attendance"
	"github.com/nizami-hq/nizami-backend-go/internal/domain/employee"
	"github.com/nizami-hq/nizami-backend-go/internal/domain/payroll"
	"github.com/nizami-hq/nizami-backend-go/internal/domain/transaction"
)

type PayrollServiceImpl struct {
	employeeRepo    employee.EmployeeRepository
	shiftRepo       attendance.ShiftRepository
	transactionRepo transaction.TransactionRepository
	location        *time.Location
	now             func() time.Time
}

func NewPayrollService(
	employeeRepo employee.EmployeeRepository,
	shiftRepo attendance.ShiftRepository,
	transactionRepo transaction.TransactionRepository,
	location *time.Location,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		employeeRepo:    employeeRepo,
		shiftRepo:       shiftRepo,
		transactionRepo: transactionRepo,
		location:        location,
		now:             time.Now,
	}
}

func (s *PayrollServiceImpl) resolveToken(token string) string {
	if token == "" {
		return payroll.ActiveCycleToken(s.now().In(s.location))
	}
	return token
}

// GetCycle implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetCycle(_ context.Context, token string) (payroll.CycleResponse, error) {
	cycle, err := payroll.CycleRange(s.resolveToken(token))
	if err != nil {
		return payroll.CycleResponse{}, err
	}
	return cycle.ToResponse(), nil
}

// Summaries implements payroll.PayrollService. The engine runs over full
// read-only snapshots; filtering to the cycle happens inside Summarize.
func (s *PayrollServiceImpl) Summaries(ctx context.Context, cycleToken string) ([]payroll.SummaryResponse, error) {
	token := s.resolveToken(cycleToken)
	if _, err := payroll.CycleRange(token); err != nil {
		return nil, err
	}

	employees, err := s.employeeRepo.List(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	shifts, err := s.shiftRepo.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot shifts: %w", err)
	}

	txs, err := s.transactionRepo.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot transactions: %w", err)
	}

	summaries := make([]payroll.SummaryResponse, 0, len(employees))
	for _, emp := range employees {
		summary, err := payroll.Summarize(emp, shifts, txs, token)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, payroll.ToSummaryResponse(summary, emp.Name))
	}

	return summaries, nil
}

// EmployeeSummary implements payroll.PayrollService.
func (s *PayrollServiceImpl) EmployeeSummary(ctx context.Context, employeeID string, cycleToken string) (payroll.SummaryResponse, error) {
	token := s.resolveToken(cycleToken)

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return payroll.SummaryResponse{}, err
	}

	shifts, err := s.shiftRepo.Snapshot(ctx)
	if err != nil {
		return payroll.SummaryResponse{}, fmt.Errorf("failed to snapshot shifts: %w", err)
	}

	txs, err := s.transactionRepo.Snapshot(ctx)
	if err != nil {
		return payroll.SummaryResponse{}, fmt.Errorf("failed to snapshot transactions: %w", err)
	}

	summary, err := payroll.Summarize(emp, shifts, txs, token)
	if err != nil {
		return payroll.SummaryResponse{}, err
	}

	return payroll.ToSummaryResponse(summary, emp.Name), nil
}

// Report implements payroll.PayrollService. It renders one summary line per
// active employee plus a grand total.
func (s *PayrollServiceImpl) Report(ctx context.Context, cycleToken string) ([]byte, error) {
	token := s.resolveToken(cycleToken)

	cycle, err := payroll.CycleRange(token)
	if err != nil {
		return nil, err
	}

	summaries, err := s.Summaries(ctx, token)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payroll Report")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Cycle: %s (%s to %s)",
		cycle.Token,
		cycle.Start.Format("2006-01-02"),
		cycle.End.Format("2006-01-02")))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(50, 8, "Employee", "1", 0, "L", false, 0, "")
	pdf.CellFormat(25, 8, "Hours", "1", 0, "R", false, 0, "")
	pdf.CellFormat(30, 8, "Base", "1", 0, "R", false, 0, "")
	pdf.CellFormat(30, 8, "Bonuses", "1", 0, "R", false, 0, "")
	pdf.CellFormat(30, 8, "Deductions", "1", 0, "R", false, 0, "")
	pdf.CellFormat(30, 8, "Net", "1", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	var totalNet float64
	for _, summary := range summaries {
		pdf.CellFormat(50, 8, summary.EmployeeName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 8, fmt.Sprintf("%.1f", summary.TotalHours), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 8, fmt.Sprintf("%.2f", summary.BaseSalary), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 8, fmt.Sprintf("%.2f", summary.TotalBonuses), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 8, fmt.Sprintf("%.2f", summary.TotalDeductions), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 8, fmt.Sprintf("%.2f", summary.NetSalary), "1", 1, "R", false, 0, "")
		totalNet += summary.NetSalary
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Total net payroll: %.2f", totalNet))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render payroll report: %w", err)
	}

	return buf.Bytes(), nil
}
