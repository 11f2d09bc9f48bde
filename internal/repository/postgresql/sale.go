package postgresql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cmlabs-hris/storeops-backend-go/internal/domain/sale"
	"github.com/cmlabs-hris/storeops-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type saleRepositoryImpl struct {
	db *database.DB
}

func NewSaleRepository(db *database.DB) sale.SaleRepository {
	return &saleRepositoryImpl{db: db}
}

const saleColumns = `id, store_id, week, year, day, type, total, items, payment_method,
			original_store, original_sales_person, linked_record_id, created_at`

func scanSale(row pgx.Row) (sale.Record, error) {
	var (
		r        sale.Record
		itemsRaw []byte
	)
	err := row.Scan(
		&r.ID, &r.StoreID, &r.Week, &r.Year, &r.Day, &r.Type, &r.Total, &itemsRaw, &r.PaymentMethod,
		&r.OriginalStore, &r.OriginalSalesPerson, &r.LinkedRecordID, &r.CreatedAt,
	)
	if err != nil {
		return sale.Record{}, err
	}
	if err := json.Unmarshal(itemsRaw, &r.Items); err != nil {
		return sale.Record{}, fmt.Errorf("failed to decode items of sale %s: %w", r.ID, err)
	}
	return r, nil
}

// Create implements sale.SaleRepository.
func (s *saleRepositoryImpl) Create(ctx context.Context, record sale.Record) (sale.Record, error) {
	q := GetQuerier(ctx, s.db)

	itemsRaw, err := json.Marshal(record.Items)
	if err != nil {
		return sale.Record{}, fmt.Errorf("failed to encode sale items: %w", err)
	}

	query := `
		INSERT INTO sales (id, store_id, week, year, day, type, total, items, payment_method,
			original_store, original_sales_person, linked_record_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + saleColumns

	created, err := scanSale(q.QueryRow(ctx, query,
		record.ID, record.StoreID, record.Week, record.Year, string(record.Day), string(record.Type),
		record.Total, itemsRaw, record.PaymentMethod,
		record.OriginalStore, record.OriginalSalesPerson, record.LinkedRecordID,
	))
	if err != nil {
		return sale.Record{}, fmt.Errorf("failed to create sale: %w", err)
	}
	return created, nil
}

// CreateLinked implements sale.SaleRepository.
func (s *saleRepositoryImpl) CreateLinked(ctx context.Context, processing sale.Record, originating sale.Record) (sale.Record, sale.Record, error) {
	var p, o sale.Record
	err := WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		var err error
		if p, err = s.Create(txCtx, processing); err != nil {
			return err
		}
		if o, err = s.Create(txCtx, originating); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return sale.Record{}, sale.Record{}, err
	}
	return p, o, nil
}

// ListByStoreWeek implements sale.SaleRepository.
func (s *saleRepositoryImpl) ListByStoreWeek(ctx context.Context, storeID string, week, year int) ([]sale.Record, error) {
	q := GetQuerier(ctx, s.db)

	query := `SELECT ` + saleColumns + ` FROM sales WHERE store_id = $1 AND week = $2 AND year = $3 ORDER BY created_at`

	rows, err := q.Query(ctx, query, storeID, week, year)
	if err != nil {
		return nil, fmt.Errorf("failed to query sales: %w", err)
	}
	return collectSales(rows)
}

// ListByWeek implements sale.SaleRepository.
func (s *saleRepositoryImpl) ListByWeek(ctx context.Context, week, year int) ([]sale.Record, error) {
	q := GetQuerier(ctx, s.db)

	query := `SELECT ` + saleColumns + ` FROM sales WHERE week = $1 AND year = $2 ORDER BY store_id, created_at`

	rows, err := q.Query(ctx, query, week, year)
	if err != nil {
		return nil, fmt.Errorf("failed to query sales: %w", err)
	}
	return collectSales(rows)
}

func collectSales(rows pgx.Rows) ([]sale.Record, error) {
	defer rows.Close()

	records := []sale.Record{}
	for rows.Next() {
		r, err := scanSale(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}
