package payroll

import "context"

type PayrollService interface {
	// GetCycle resolves a cycle token to its date window. An empty token
	// resolves to the active cycle.
	GetCycle(ctx context.Context, token string) (CycleResponse, error)

	// Summaries computes the payroll summary for every active employee in
	// the cycle.
	Summaries(ctx context.Context, cycleToken string) ([]SummaryResponse, error)

	// EmployeeSummary computes the payroll summary for one employee.
	EmployeeSummary(ctx context.Context, employeeID string, cycleToken string) (SummaryResponse, error)

	// Report renders the cycle's payroll summaries as a PDF document.
	Report(ctx context.Context, cycleToken string) ([]byte, error)
}
