package dashboard

import (
	"github.com/nizami-hq/nizami-backend-go/internal/domain/payroll"
)

// StatsResponse is the owner dashboard headline card data.
type StatsResponse struct {
	ActiveEmployees int                   `json:"active_employees"`
	ClockedInNow    int                   `json:"clocked_in_now"`
	ActiveCycle     payroll.CycleResponse `json:"active_cycle"`
	NetPayroll      float64               `json:"net_payroll"`
}
