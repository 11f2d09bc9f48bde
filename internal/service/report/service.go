package report

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/storeops-backend-go/internal/domain/report"
	"github.com/cmlabs-hris/storeops-backend-go/internal/domain/sale"
	"github.com/cmlabs-hris/storeops-backend-go/internal/domain/schedule"
	"github.com/cmlabs-hris/storeops-backend-go/internal/domain/traffic"
	"golang.org/x/sync/errgroup"
)

type ReportServiceImpl struct {
	scheduleRepo schedule.ScheduleRepository
	saleRepo     sale.SaleRepository
	trafficRepo  traffic.TrafficRepository
}

func NewReportService(
	scheduleRepo schedule.ScheduleRepository,
	saleRepo sale.SaleRepository,
	trafficRepo traffic.TrafficRepository,
) report.ReportService {
	return &ReportServiceImpl{
		scheduleRepo: scheduleRepo,
		saleRepo:     saleRepo,
		trafficRepo:  trafficRepo,
	}
}

// GetStoreReport implements report.ReportService.
func (s *ReportServiceImpl) GetStoreReport(ctx context.Context, req schedule.StoreWeek) (report.StoreReportResponse, error) {
	if err := req.Validate(); err != nil {
		return report.StoreReportResponse{}, err
	}

	var (
		sched  schedule.Schedule
		sales  []sale.Record
		counts []traffic.HourlyCount
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		sched, err = s.scheduleRepo.GetByStoreWeek(gctx, req.StoreID, req.Week, req.Year)
		return err
	})
	g.Go(func() error {
		var err error
		sales, err = s.saleRepo.ListByStoreWeek(gctx, req.StoreID, req.Week, req.Year)
		if err != nil {
			return fmt.Errorf("failed to list sales: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		counts, err = s.trafficRepo.ListByStoreWeek(gctx, req.StoreID, req.Week, req.Year)
		if err != nil {
			return fmt.Errorf("failed to list traffic counts: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return report.StoreReportResponse{}, err
	}

	sellers := ComputeSellerMetrics(sched.Rows, sales)

	resp := report.StoreReportResponse{
		StoreID:        req.StoreID,
		Week:           req.Week,
		Year:           req.Year,
		Sellers:        sellers.Sellers,
		Totals:         sellers.Totals,
		ConversionRate: ConversionRate(counts),
	}
	for _, c := range counts {
		resp.TotalTraffic += c.Traffic
		resp.TotalTransactions += c.Transactions
	}
	return resp, nil
}
