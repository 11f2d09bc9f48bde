package timelog

import (
	"context"
	"time"

	"github.com/cmlabs-hris/storeops-backend-go/internal/domain/schedule"
)

// TimeLogService runs the time clock and keeps schedule actual hours in
// step with it
type TimeLogService interface {
	// ClockIn opens a session for the badge holder
	ClockIn(ctx context.Context, req ClockRequest) (EntryResponse, error)

	// ClockOut closes the badge holder's open session
	ClockOut(ctx context.Context, req ClockRequest) (EntryResponse, error)

	ListEntries(ctx context.Context, req schedule.StoreWeek) ([]EntryResponse, error)

	// ReconcileWeek recomputes actual hours of a store-week from its full
	// set of time logs
	ReconcileWeek(ctx context.Context, req schedule.StoreWeek) (ReconcileResponse, error)

	// ReconcileCurrentWeek reconciles every store with time logs in the
	// current week and returns how many stores were processed
	ReconcileCurrentWeek(ctx context.Context) (int, error)

	// ListStaleEntries returns sessions still open after maxAge
	ListStaleEntries(ctx context.Context, maxAge time.Duration) ([]EntryResponse, error)
}
