package dashboard

import "context"

type DashboardService interface {
	// Stats aggregates the headline numbers for the owner dashboard:
	// active headcount, who is clocked in right now, and the projected net
	// payroll for the active cycle.
	Stats(ctx context.Context) (StatsResponse, error)
}
