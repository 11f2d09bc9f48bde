package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/storeops-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/storeops-backend-go/internal/domain/payroll"
	"github.com/cmlabs-hris/storeops-backend-go/internal/domain/sale"
	"github.com/cmlabs-hris/storeops-backend-go/internal/domain/schedule"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type PayrollServiceImpl struct {
	scheduleRepo schedule.ScheduleRepository
	saleRepo     sale.SaleRepository
	employeeRepo employee.EmployeeRepository
	now          func() time.Time
}

func NewPayrollService(
	scheduleRepo schedule.ScheduleRepository,
	saleRepo sale.SaleRepository,
	employeeRepo employee.EmployeeRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		scheduleRepo: scheduleRepo,
		saleRepo:     saleRepo,
		employeeRepo: employeeRepo,
		now:          time.Now,
	}
}

// GetWeeklyPayroll implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetWeeklyPayroll(ctx context.Context, req schedule.StoreWeek) (payroll.WeeklyPayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.WeeklyPayrollResponse{}, err
	}

	var (
		schedules []schedule.Schedule
		sales     []sale.Record
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		schedules, err = s.scheduleRepo.ListByWeek(gctx, req.Week, req.Year)
		if err != nil {
			return fmt.Errorf("failed to list schedules: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		sales, err = s.saleRepo.ListByWeek(gctx, req.Week, req.Year)
		if err != nil {
			return fmt.Errorf("failed to list sales: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return payroll.WeeklyPayrollResponse{}, err
	}

	var store *schedule.Schedule
	for i := range schedules {
		if schedules[i].StoreID == req.StoreID {
			store = &schedules[i]
			break
		}
	}
	if store == nil {
		return payroll.WeeklyPayrollResponse{}, payroll.ErrNoScheduleForWeek
	}

	ids := make([]string, 0, len(store.Rows))
	for _, row := range store.Rows {
		ids = append(ids, row.ID)
	}
	employees, err := s.employeeRepo.GetByIDs(ctx, ids)
	if err != nil {
		return payroll.WeeklyPayrollResponse{}, fmt.Errorf("failed to get employees: %w", err)
	}
	byID := make(map[string]employee.Employee, len(employees))
	for _, e := range employees {
		byID[e.ID] = e
	}

	rows := make([]payroll.Row, 0, len(store.Rows))
	totalHours := 0.0
	totalOTPay := decimal.Zero
	for _, schedRow := range store.Rows {
		emp, ok := byID[schedRow.ID]
		if !ok {
			// ad-hoc row: no rate, salary or plan on file
			emp = employee.Employee{
				ID:             schedRow.ID,
				Name:           schedRow.Name,
				JobTitle:       schedRow.JobTitle,
				CommissionPlan: employee.DefaultCommissionPlan,
			}
		}

		totals := Aggregate(emp, schedules, sales)
		row := Calculate(emp, totals.TotalHours, totals.TotalSales)
		row.WorkLocations = totals.WorkLocations
		if schedRow.JobTitle != "" {
			row.JobTitle = schedRow.JobTitle
		}

		rows = append(rows, row)
		totalHours += row.HoursWorked
		totalOTPay = totalOTPay.Add(OvertimePay(row))
	}

	storeSales := make([]sale.Record, 0, len(sales))
	for _, rec := range sales {
		if rec.StoreID == req.StoreID {
			storeSales = append(storeSales, rec)
		}
	}

	return payroll.WeeklyPayrollResponse{
		StoreID:     req.StoreID,
		Week:        req.Week,
		Year:        req.Year,
		IsLocked:    store.IsLocked,
		Rows:        rows,
		Summary:     Summarize(rows, storeSales, store.WeeklyTarget()),
		TotalHours:  totalHours,
		TotalOTPay:  totalOTPay,
		GeneratedAt: s.now().Format(time.RFC3339),
	}, nil
}
