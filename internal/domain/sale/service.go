package sale

import (
	"context"

	"github.com/cmlabs-hris/storeops-backend-go/internal/domain/schedule"
)

type SaleService interface {
	CreateSale(ctx context.Context, req CreateSaleRequest) (SaleResponse, error)

	// CreateReturn records a refund; cross-store returns produce two linked records
	CreateReturn(ctx context.Context, req CreateReturnRequest) (ReturnResponse, error)

	ListSales(ctx context.Context, req schedule.StoreWeek) ([]SaleResponse, error)
}
