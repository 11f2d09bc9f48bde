package schedule

import "context"

type ScheduleRepository interface {
	// Create inserts a schedule; (StoreID, Week, Year) is unique
	Create(ctx context.Context, schedule Schedule) (Schedule, error)

	// GetByStoreWeek returns ErrScheduleNotFound when absent
	GetByStoreWeek(ctx context.Context, storeID string, week, year int) (Schedule, error)

	// ListByWeek returns the schedules of every store for one week
	ListByWeek(ctx context.Context, week, year int) ([]Schedule, error)

	// SaveRows replaces all rows of a schedule
	SaveRows(ctx context.Context, scheduleID string, rows []Row) error

	SetLocked(ctx context.Context, scheduleID string, locked bool) error
}
