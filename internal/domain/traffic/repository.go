package traffic

import "context"

type TrafficRepository interface {
	// Upsert replaces the count for (store, week, year, day, hour)
	Upsert(ctx context.Context, count HourlyCount) (HourlyCount, error)

	ListByStoreWeek(ctx context.Context, storeID string, week, year int) ([]HourlyCount, error)
}
