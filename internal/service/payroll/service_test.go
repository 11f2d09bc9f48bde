package payroll

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cmlabs-hris/storeops-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/storeops-backend-go/internal/domain/payroll"
	"github.com/cmlabs-hris/storeops-backend-go/internal/domain/sale"
	"github.com/cmlabs-hris/storeops-backend-go/internal/domain/schedule"
	"github.com/cmlabs-hris/storeops-backend-go/internal/pkg/week"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubScheduleRepo struct {
	schedule.ScheduleRepository
	schedules []schedule.Schedule
	err       error
}

func (s *stubScheduleRepo) ListByWeek(ctx context.Context, wk, year int) ([]schedule.Schedule, error) {
	return s.schedules, s.err
}

type stubSaleRepo struct {
	sale.SaleRepository
	sales []sale.Record
}

func (s *stubSaleRepo) ListByWeek(ctx context.Context, wk, year int) ([]sale.Record, error) {
	return s.sales, nil
}

type stubEmployeeRepo struct {
	employee.EmployeeRepository
	employees []employee.Employee
}

func (s *stubEmployeeRepo) GetByIDs(ctx context.Context, ids []string) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range s.employees {
		for _, id := range ids {
			if e.ID == id {
				out = append(out, e)
			}
		}
	}
	return out, nil
}

func fullWeek(hoursPerDay float64, days ...week.Day) map[week.Day]float64 {
	m := make(map[week.Day]float64, len(days))
	for _, d := range days {
		m[d] = hoursPerDay
	}
	return m
}

func TestGetWeeklyPayroll(t *testing.T) {
	schedules := &stubScheduleRepo{schedules: []schedule.Schedule{
		{StoreID: "NYC01", Week: 10, Year: 2024, Rows: []schedule.Row{
			{ID: "emp-a", Name: "Alice Moreno", Objective: dec("3000"),
				ActualHours: fullWeek(9, week.Monday, week.Tuesday, week.Wednesday, week.Thursday)},
			{ID: "adhoc-1", Name: "Temp Help", JobTitle: "Seasonal", Objective: dec("1000"),
				ActualHours: fullWeek(4, week.Saturday)},
		}},
		{StoreID: "BOS02", Week: 10, Year: 2024, Rows: []schedule.Row{
			{ID: "emp-a", Name: "Alice Moreno", IsGuest: true, ActualHours: fullWeek(9, week.Friday)},
		}},
	}}
	sales := &stubSaleRepo{sales: []sale.Record{
		{StoreID: "NYC01", Type: sale.TypeRegular, Total: dec("1000"), Items: []sale.Item{
			{SalesRep: "Alice Moreno", Price: dec("1000"), Quantity: 1},
		}},
		{StoreID: "NYC01", Type: sale.TypeGiftCard, Total: dec("200"), Items: []sale.Item{
			{SalesRep: "Temp Help", Price: dec("200"), Quantity: 1},
		}},
		{StoreID: "BOS02", Type: sale.TypeRegular, Total: dec("700"), Items: []sale.Item{
			{SalesRep: "Someone Else", Price: dec("700"), Quantity: 1},
		}},
	}}
	employees := &stubEmployeeRepo{employees: []employee.Employee{
		{ID: "emp-a", Name: "Alice Moreno", JobTitle: "Sales Associate", Rate: dec("20"), CommissionPlan: dec("2"), AssociatedStore: "NYC01"},
	}}

	svc := NewPayrollService(schedules, sales, employees).(*PayrollServiceImpl)
	svc.now = func() time.Time { return time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC) }

	resp, err := svc.GetWeeklyPayroll(context.Background(), schedule.StoreWeek{StoreID: "NYC01", Week: 10, Year: 2024})
	require.NoError(t, err)
	require.Len(t, resp.Rows, 2)

	alice := resp.Rows[0]
	assert.Equal(t, 45.0, alice.HoursWorked)
	assert.Equal(t, []string{"BOS02 (Guest)", "NYC01 (Home)"}, alice.WorkLocations)
	assertDecimal(t, "970", alice.WeeklyGrossEarnings)

	temp := resp.Rows[1]
	assert.Equal(t, "Seasonal", temp.JobTitle)
	assert.Equal(t, 4.0, temp.HoursWorked)
	// gift card sales carry no commission
	assertDecimal(t, "0", temp.WeeklyGrossEarnings)

	assert.Equal(t, 49.0, resp.TotalHours)
	assertDecimal(t, "150", resp.TotalOTPay)
	assertDecimal(t, "970", resp.Summary.TotalGross)
	assertDecimal(t, "1000", resp.Summary.NetSales)
	assertDecimal(t, "97", resp.Summary.PayrollPercentage)
	assertDecimal(t, "4000", resp.Summary.WeeklySalesTarget)
	assertDecimal(t, "-3000", resp.Summary.TargetVsActual)
	assert.Equal(t, "2024-03-10T12:00:00Z", resp.GeneratedAt)
}

func TestGetWeeklyPayroll_AdHocRowEarnsDefaultCommission(t *testing.T) {
	schedules := &stubScheduleRepo{schedules: []schedule.Schedule{
		{StoreID: "NYC01", Week: 10, Year: 2024, Rows: []schedule.Row{
			{ID: "adhoc-1", Name: "Temp Help", ActualHours: fullWeek(4, week.Saturday)},
		}},
	}}
	sales := &stubSaleRepo{sales: []sale.Record{
		{StoreID: "NYC01", Type: sale.TypeRegular, Total: dec("500"), Items: []sale.Item{
			{SalesRep: "Temp Help", Price: dec("500"), Quantity: 1},
		}},
	}}

	svc := NewPayrollService(schedules, sales, &stubEmployeeRepo{})
	resp, err := svc.GetWeeklyPayroll(context.Background(), schedule.StoreWeek{StoreID: "NYC01", Week: 10, Year: 2024})
	require.NoError(t, err)
	require.Len(t, resp.Rows, 1)
	assertDecimal(t, "10", resp.Rows[0].Commission)
	assertDecimal(t, "10", resp.Rows[0].WeeklyGrossEarnings)
}

func TestGetWeeklyPayroll_NoSchedule(t *testing.T) {
	svc := NewPayrollService(&stubScheduleRepo{}, &stubSaleRepo{}, &stubEmployeeRepo{})

	_, err := svc.GetWeeklyPayroll(context.Background(), schedule.StoreWeek{StoreID: "NYC01", Week: 10, Year: 2024})
	assert.ErrorIs(t, err, payroll.ErrNoScheduleForWeek)
}

func TestGetWeeklyPayroll_RepositoryError(t *testing.T) {
	boom := errors.New("connection reset")
	svc := NewPayrollService(&stubScheduleRepo{err: boom}, &stubSaleRepo{}, &stubEmployeeRepo{})

	_, err := svc.GetWeeklyPayroll(context.Background(), schedule.StoreWeek{StoreID: "NYC01", Week: 10, Year: 2024})
	assert.ErrorIs(t, err, boom)
}
