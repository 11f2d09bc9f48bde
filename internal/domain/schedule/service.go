package schedule

import "context"

// ScheduleService manages weekly store schedules
type ScheduleService interface {
	// GetSchedule returns the schedule for a store-week, creating it seeded
	// with the store's home employees when it does not exist yet
	GetSchedule(ctx context.Context, req StoreWeek) (ScheduleResponse, error)

	// AddRow adds a guest, home or ad-hoc row
	AddRow(ctx context.Context, req AddRowRequest) (ScheduleResponse, error)

	// UpdateRow changes shifts, daily objectives or job title
	UpdateRow(ctx context.Context, req UpdateRowRequest) (ScheduleResponse, error)

	// UpdateActualHours is the normal edit path and fails on locked schedules
	UpdateActualHours(ctx context.Context, req UpdateActualHoursRequest) (ScheduleResponse, error)

	// OverrideActualHours writes even when the schedule is locked
	OverrideActualHours(ctx context.Context, req UpdateActualHoursRequest) (ScheduleResponse, error)

	SetLocked(ctx context.Context, req StoreWeek, locked bool) (ScheduleResponse, error)
}
