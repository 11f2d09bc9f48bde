package sale

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/storeops-backend-go/internal/domain/sale"
	"github.com/cmlabs-hris/storeops-backend-go/internal/domain/schedule"
	"github.com/cmlabs-hris/storeops-backend-go/internal/pkg/week"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type saleServiceImpl struct {
	saleRepo sale.SaleRepository
}

func NewSaleService(saleRepo sale.SaleRepository) sale.SaleService {
	return &saleServiceImpl{saleRepo: saleRepo}
}

// CreateSale implements sale.SaleService.
func (s *saleServiceImpl) CreateSale(ctx context.Context, req sale.CreateSaleRequest) (sale.SaleResponse, error) {
	if err := req.Validate(); err != nil {
		return sale.SaleResponse{}, err
	}
	if sale.Type(req.Type) == sale.TypeReturn {
		return sale.SaleResponse{}, sale.ErrReturnViaCreateSale
	}

	day, _ := week.ParseDay(req.Day)
	total := sale.ItemsTotal(req.Items)
	if req.Total != nil {
		total = *req.Total
	}

	record, err := s.saleRepo.Create(ctx, sale.Record{
		ID:            uuid.New().String(),
		StoreID:       req.StoreID,
		Week:          req.Week,
		Year:          req.Year,
		Day:           day,
		Type:          sale.Type(req.Type),
		Total:         total,
		Items:         req.Items,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		return sale.SaleResponse{}, fmt.Errorf("failed to create sale: %w", err)
	}
	return sale.NewSaleResponse(record), nil
}

// CreateReturn implements sale.SaleService.
//
// Return lines are stored negative. When the goods were bought at
// another store, the refund is charged to that store: the originating
// record carries the negative amounts, and the processing store keeps a
// zero-value record of the same items for its register. The two records
// point at each other.
func (s *saleServiceImpl) CreateReturn(ctx context.Context, req sale.CreateReturnRequest) (sale.ReturnResponse, error) {
	if err := req.Validate(); err != nil {
		return sale.ReturnResponse{}, err
	}

	day, _ := week.ParseDay(req.Day)
	items := negateItems(req.Items, req.OriginalSalesPerson)

	record := sale.Record{
		ID:                  uuid.New().String(),
		StoreID:             req.StoreID,
		Week:                req.Week,
		Year:                req.Year,
		Day:                 day,
		Type:                sale.TypeReturn,
		Total:               sale.ItemsTotal(items).Abs().Neg(),
		Items:               items,
		PaymentMethod:       req.PaymentMethod,
		OriginalStore:       req.OriginalStore,
		OriginalSalesPerson: req.OriginalSalesPerson,
	}

	if req.OriginalStore == nil || *req.OriginalStore == req.StoreID {
		created, err := s.saleRepo.Create(ctx, record)
		if err != nil {
			return sale.ReturnResponse{}, fmt.Errorf("failed to create return: %w", err)
		}
		return sale.ReturnResponse{Processing: sale.NewSaleResponse(created)}, nil
	}

	originating := record
	originating.ID = uuid.New().String()
	originating.StoreID = *req.OriginalStore

	processing := record
	processing.Total = decimal.Zero
	processing.Items = zeroItems(items)

	processing.LinkedRecordID = &originating.ID
	originating.LinkedRecordID = &processing.ID

	p, o, err := s.saleRepo.CreateLinked(ctx, processing, originating)
	if err != nil {
		return sale.ReturnResponse{}, fmt.Errorf("failed to create cross-store return: %w", err)
	}

	oResp := sale.NewSaleResponse(o)
	return sale.ReturnResponse{
		Processing:  sale.NewSaleResponse(p),
		Originating: &oResp,
	}, nil
}

// negateItems fixes every line total at -abs(total). A known original
// sales person takes the return against their own sales.
func negateItems(items []sale.Item, originalSalesPerson *string) []sale.Item {
	out := make([]sale.Item, len(items))
	for i, it := range items {
		total := it.LineTotal().Abs().Neg()
		it.Total = &total
		if originalSalesPerson != nil && *originalSalesPerson != "" {
			it.SalesRep = *originalSalesPerson
		}
		out[i] = it
	}
	return out
}

func zeroItems(items []sale.Item) []sale.Item {
	out := make([]sale.Item, len(items))
	for i, it := range items {
		zero := decimal.Zero
		it.Total = &zero
		out[i] = it
	}
	return out
}

// ListSales implements sale.SaleService.
func (s *saleServiceImpl) ListSales(ctx context.Context, req schedule.StoreWeek) ([]sale.SaleResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	records, err := s.saleRepo.ListByStoreWeek(ctx, req.StoreID, req.Week, req.Year)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}

	resp := make([]sale.SaleResponse, 0, len(records))
	for _, r := range records {
		resp = append(resp, sale.NewSaleResponse(r))
	}
	return resp, nil
}
