package payroll

import (
	"context"

	"github.com/cmlabs-hris/storeops-backend-go/internal/domain/schedule"
)

type PayrollService interface {
	// GetWeeklyPayroll computes payroll for every employee on a store's
	// schedule, counting hours and sales from all stores that week
	GetWeeklyPayroll(ctx context.Context, req schedule.StoreWeek) (WeeklyPayrollResponse, error)
}
