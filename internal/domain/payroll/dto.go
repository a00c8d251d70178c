package payroll

import (
	"github.com/nizami-hq/nizami-backend-go/internal/domain/transaction"
)

type CycleResponse struct {
	Token string `json:"token"`
	Start string `json:"start"`
	End   string `json:"end"`
}

func (c Cycle) ToResponse() CycleResponse {
	return CycleResponse{
		Token: c.Token,
		Start: c.Start.Format("2006-01-02"),
		End:   c.End.Format("2006-01-02"),
	}
}

type SummaryResponse struct {
	EmployeeID      string                            `json:"employee_id"`
	EmployeeName    string                            `json:"employee_name"`
	Cycle           CycleResponse                     `json:"cycle"`
	TotalHours      float64                           `json:"total_hours"`
	BaseSalary      float64                           `json:"base_salary"`
	TotalBonuses    float64                           `json:"total_bonuses"`
	TotalDeductions float64                           `json:"total_deductions"`
	NetSalary       float64                           `json:"net_salary"`
	PerformanceTier string                            `json:"performance_tier"`
	Transactions    []transaction.TransactionResponse `json:"transactions"`
}

func ToSummaryResponse(s Summary, employeeName string) SummaryResponse {
	return SummaryResponse{
		EmployeeID:      s.EmployeeID,
		EmployeeName:    employeeName,
		Cycle:           s.Cycle.ToResponse(),
		TotalHours:      s.TotalHours,
		BaseSalary:      s.BaseSalary,
		TotalBonuses:    s.TotalBonuses,
		TotalDeductions: s.TotalDeductions,
		NetSalary:       s.NetSalary,
		PerformanceTier: string(s.Tier),
		Transactions:    transaction.ToResponses(s.Transactions),
	}
}
