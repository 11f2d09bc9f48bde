package report

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/storeops-backend-go/internal/domain/sale"
	"github.com/cmlabs-hris/storeops-backend-go/internal/domain/schedule"
	"github.com/cmlabs-hris/storeops-backend-go/internal/domain/traffic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubScheduleRepo struct {
	schedule.ScheduleRepository
	sched schedule.Schedule
	err   error
}

func (s *stubScheduleRepo) GetByStoreWeek(ctx context.Context, storeID string, wk, year int) (schedule.Schedule, error) {
	return s.sched, s.err
}

type stubSaleRepo struct {
	sale.SaleRepository
	sales []sale.Record
}

func (s *stubSaleRepo) ListByStoreWeek(ctx context.Context, storeID string, wk, year int) ([]sale.Record, error) {
	return s.sales, nil
}

type stubTrafficRepo struct {
	traffic.TrafficRepository
	counts []traffic.HourlyCount
}

func (s *stubTrafficRepo) ListByStoreWeek(ctx context.Context, storeID string, wk, year int) ([]traffic.HourlyCount, error) {
	return s.counts, nil
}

func TestGetStoreReport(t *testing.T) {
	svc := NewReportService(
		&stubScheduleRepo{sched: schedule.Schedule{Rows: []schedule.Row{{ID: "emp-a", Name: "Alice", Objective: dec("200")}}}},
		&stubSaleRepo{sales: []sale.Record{
			{ID: "s1", Type: sale.TypeRegular, Items: []sale.Item{{SalesRep: "Alice", Quantity: 1, Price: dec("50")}}},
		}},
		&stubTrafficRepo{counts: []traffic.HourlyCount{{Traffic: 20, Transactions: 1}, {Traffic: 30, Transactions: 4}}},
	)

	resp, err := svc.GetStoreReport(context.Background(), schedule.StoreWeek{StoreID: "NYC01", Week: 10, Year: 2024})
	require.NoError(t, err)

	require.Len(t, resp.Sellers, 1)
	assertDecimal(t, "25", resp.Sellers[0].PercentOfObjective, "percent_of_objective")
	assert.Equal(t, 50, resp.TotalTraffic)
	assert.Equal(t, 5, resp.TotalTransactions)
	assertDecimal(t, "10", resp.ConversionRate, "conversion_rate")
}

func TestGetStoreReport_ScheduleMissing(t *testing.T) {
	svc := NewReportService(
		&stubScheduleRepo{err: schedule.ErrScheduleNotFound},
		&stubSaleRepo{},
		&stubTrafficRepo{},
	)

	_, err := svc.GetStoreReport(context.Background(), schedule.StoreWeek{StoreID: "NYC01", Week: 10, Year: 2024})
	assert.ErrorIs(t, err, schedule.ErrScheduleNotFound)
}
