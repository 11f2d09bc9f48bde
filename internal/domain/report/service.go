package report

import (
	"context"

	"github.com/cmlabs-hris/storeops-backend-go/internal/domain/schedule"
)

type ReportService interface {
	// GetStoreReport returns seller KPIs and conversion for a store-week
	GetStoreReport(ctx context.Context, req schedule.StoreWeek) (StoreReportResponse, error)
}
