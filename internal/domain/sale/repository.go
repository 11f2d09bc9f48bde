package sale

import "context"

type SaleRepository interface {
	Create(ctx context.Context, record Record) (Record, error)

	// CreateLinked inserts both halves of a cross-store return atomically
	CreateLinked(ctx context.Context, processing Record, originating Record) (Record, Record, error)

	ListByStoreWeek(ctx context.Context, storeID string, week, year int) ([]Record, error)

	// ListByWeek returns every store's sales for one week
	ListByWeek(ctx context.Context, week, year int) ([]Record, error)
}
