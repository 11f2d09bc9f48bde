package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/storeops-backend-go/internal/domain/traffic"
	"github.com/cmlabs-hris/storeops-backend-go/internal/pkg/database"
)

type trafficRepositoryImpl struct {
	db *database.DB
}

func NewTrafficRepository(db *database.DB) traffic.TrafficRepository {
	return &trafficRepositoryImpl{db: db}
}

// Upsert implements traffic.TrafficRepository.
func (r *trafficRepositoryImpl) Upsert(ctx context.Context, c traffic.HourlyCount) (traffic.HourlyCount, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO traffic_counts (store_id, week, year, day, hour, traffic, transactions)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (store_id, week, year, day, hour) DO UPDATE SET
			traffic = EXCLUDED.traffic,
			transactions = EXCLUDED.transactions,
			updated_at = NOW()
		RETURNING store_id, week, year, day, hour, traffic, transactions, updated_at
	`

	var saved traffic.HourlyCount
	err := q.QueryRow(ctx, query, c.StoreID, c.Week, c.Year, string(c.Day), c.Hour, c.Traffic, c.Transactions).Scan(
		&saved.StoreID, &saved.Week, &saved.Year, &saved.Day, &saved.Hour, &saved.Traffic, &saved.Transactions, &saved.UpdatedAt,
	)
	if err != nil {
		return traffic.HourlyCount{}, fmt.Errorf("failed to upsert traffic count: %w", err)
	}
	return saved, nil
}

// ListByStoreWeek implements traffic.TrafficRepository.
func (r *trafficRepositoryImpl) ListByStoreWeek(ctx context.Context, storeID string, week, year int) ([]traffic.HourlyCount, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT store_id, week, year, day, hour, traffic, transactions, updated_at
		FROM traffic_counts
		WHERE store_id = $1 AND week = $2 AND year = $3
		ORDER BY day, hour
	`

	rows, err := q.Query(ctx, query, storeID, week, year)
	if err != nil {
		return nil, fmt.Errorf("failed to query traffic counts: %w", err)
	}
	defer rows.Close()

	counts := []traffic.HourlyCount{}
	for rows.Next() {
		var c traffic.HourlyCount
		if err := rows.Scan(&c.StoreID, &c.Week, &c.Year, &c.Day, &c.Hour, &c.Traffic, &c.Transactions, &c.UpdatedAt); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return counts, nil
}
