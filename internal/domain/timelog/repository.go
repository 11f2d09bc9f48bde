package timelog

import (
	"context"
	"time"
)

type TimeLogRepository interface {
	// Create inserts an entry; the store enforces one open entry per employee
	Create(ctx context.Context, entry Entry) (Entry, error)

	// GetOpenEntry returns ErrNotClockedIn when the employee has no open entry
	GetOpenEntry(ctx context.Context, employeeID string) (Entry, error)

	// Close sets clock_out on an open entry
	Close(ctx context.Context, id string, clockOut time.Time) (Entry, error)

	// ListByStoreWeek returns open and closed entries of a store-week
	ListByStoreWeek(ctx context.Context, storeID string, week, year int) ([]Entry, error)

	// ListOpenBefore returns open entries clocked in before cutoff
	ListOpenBefore(ctx context.Context, cutoff time.Time) ([]Entry, error)

	// ListStoresWithEntries returns store ids having entries in a week
	ListStoresWithEntries(ctx context.Context, week, year int) ([]string, error)
}
