package timelog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/storeops-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/storeops-backend-go/internal/domain/schedule"
	"github.com/cmlabs-hris/storeops-backend-go/internal/domain/timelog"
	"github.com/cmlabs-hris/storeops-backend-go/internal/pkg/week"
	"github.com/google/uuid"
)

type timeLogServiceImpl struct {
	timeLogRepo  timelog.TimeLogRepository
	scheduleRepo schedule.ScheduleRepository
	employeeRepo employee.EmployeeRepository
	publisher    timelog.Publisher
	loc          *time.Location
	now          func() time.Time
}

// NewTimeLogService builds the time clock. With a nil publisher every
// clock event reconciles its schedule inline instead of over the bus.
func NewTimeLogService(
	timeLogRepo timelog.TimeLogRepository,
	scheduleRepo schedule.ScheduleRepository,
	employeeRepo employee.EmployeeRepository,
	publisher timelog.Publisher,
	loc *time.Location,
) timelog.TimeLogService {
	if loc == nil {
		loc = time.UTC
	}
	return &timeLogServiceImpl{
		timeLogRepo:  timeLogRepo,
		scheduleRepo: scheduleRepo,
		employeeRepo: employeeRepo,
		publisher:    publisher,
		loc:          loc,
		now:          time.Now,
	}
}

func (s *timeLogServiceImpl) resolveBadge(ctx context.Context, positionID string) (employee.Employee, error) {
	emp, err := s.employeeRepo.GetByPositionID(ctx, positionID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.Employee{}, timelog.ErrUnknownBadge
		}
		return employee.Employee{}, fmt.Errorf("failed to resolve badge: %w", err)
	}
	return emp, nil
}

// ClockIn implements timelog.TimeLogService.
func (s *timeLogServiceImpl) ClockIn(ctx context.Context, req timelog.ClockRequest) (timelog.EntryResponse, error) {
	if err := req.Validate(); err != nil {
		return timelog.EntryResponse{}, err
	}
	at, err := req.Timestamp(s.now())
	if err != nil {
		return timelog.EntryResponse{}, err
	}

	emp, err := s.resolveBadge(ctx, req.PositionID)
	if err != nil {
		return timelog.EntryResponse{}, err
	}

	_, err = s.timeLogRepo.GetOpenEntry(ctx, emp.ID)
	if err == nil {
		return timelog.EntryResponse{}, timelog.ErrAlreadyClockedIn
	}
	if !errors.Is(err, timelog.ErrNotClockedIn) {
		return timelog.EntryResponse{}, fmt.Errorf("failed to check open time log: %w", err)
	}

	clockIn := at.In(s.loc)
	wk, year := week.Of(clockIn)
	entry, err := s.timeLogRepo.Create(ctx, timelog.Entry{
		ID:         uuid.New().String(),
		EmployeeID: emp.ID,
		StoreID:    req.StoreID,
		ClockIn:    &clockIn,
		Week:       wk,
		Year:       year,
	})
	if err != nil {
		return timelog.EntryResponse{}, fmt.Errorf("failed to create time log: %w", err)
	}
	entry.EmployeeName = &emp.Name

	s.notify(ctx, entry)
	return timelog.NewEntryResponse(entry), nil
}

// ClockOut implements timelog.TimeLogService. The entry stays filed under
// the store-week of its clock in.
func (s *timeLogServiceImpl) ClockOut(ctx context.Context, req timelog.ClockRequest) (timelog.EntryResponse, error) {
	if err := req.Validate(); err != nil {
		return timelog.EntryResponse{}, err
	}
	at, err := req.Timestamp(s.now())
	if err != nil {
		return timelog.EntryResponse{}, err
	}

	emp, err := s.resolveBadge(ctx, req.PositionID)
	if err != nil {
		return timelog.EntryResponse{}, err
	}

	open, err := s.timeLogRepo.GetOpenEntry(ctx, emp.ID)
	if err != nil {
		if errors.Is(err, timelog.ErrNotClockedIn) {
			return timelog.EntryResponse{}, err
		}
		return timelog.EntryResponse{}, fmt.Errorf("failed to get open time log: %w", err)
	}
	if open.ClockIn != nil && at.Before(*open.ClockIn) {
		return timelog.EntryResponse{}, timelog.ErrClockOutBeforeIn
	}

	entry, err := s.timeLogRepo.Close(ctx, open.ID, at.In(s.loc))
	if err != nil {
		return timelog.EntryResponse{}, fmt.Errorf("failed to close time log: %w", err)
	}
	entry.EmployeeName = &emp.Name

	s.notify(ctx, entry)
	return timelog.NewEntryResponse(entry), nil
}

// notify asks for the entry's schedule to be reconciled. Failures are
// logged only; the hourly catch-up job repairs missed events.
func (s *timeLogServiceImpl) notify(ctx context.Context, entry timelog.Entry) {
	event := timelog.Event{
		StoreID:    entry.StoreID,
		Week:       entry.Week,
		Year:       entry.Year,
		EmployeeID: entry.EmployeeID,
	}

	if s.publisher == nil {
		if _, err := s.reconcile(ctx, event.StoreID, event.Week, event.Year); err != nil {
			slog.Warn("Inline reconciliation failed", "store_id", event.StoreID, "week", event.Week, "year", event.Year, "error", err)
		}
		return
	}

	if err := s.publisher.Publish(ctx, timelog.EventChannel, event); err != nil {
		slog.Warn("Failed to publish time log event", "store_id", event.StoreID, "employee_id", event.EmployeeID, "error", err)
	}
}

// ListEntries implements timelog.TimeLogService.
func (s *timeLogServiceImpl) ListEntries(ctx context.Context, req schedule.StoreWeek) ([]timelog.EntryResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	entries, err := s.timeLogRepo.ListByStoreWeek(ctx, req.StoreID, req.Week, req.Year)
	if err != nil {
		return nil, fmt.Errorf("failed to list time logs: %w", err)
	}

	resp := make([]timelog.EntryResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, timelog.NewEntryResponse(e))
	}
	return resp, nil
}

// ReconcileWeek implements timelog.TimeLogService.
func (s *timeLogServiceImpl) ReconcileWeek(ctx context.Context, req schedule.StoreWeek) (timelog.ReconcileResponse, error) {
	if err := req.Validate(); err != nil {
		return timelog.ReconcileResponse{}, err
	}
	return s.reconcile(ctx, req.StoreID, req.Week, req.Year)
}

// reconcile loads the schedule and full entry snapshot of a store-week
// and saves the reconciled rows. Missing and locked schedules are
// skipped.
func (s *timeLogServiceImpl) reconcile(ctx context.Context, storeID string, wk, year int) (timelog.ReconcileResponse, error) {
	resp := timelog.ReconcileResponse{StoreID: storeID, Week: wk, Year: year}

	sched, err := s.scheduleRepo.GetByStoreWeek(ctx, storeID, wk, year)
	if err != nil {
		if errors.Is(err, schedule.ErrScheduleNotFound) {
			resp.Skipped = true
			return resp, nil
		}
		return resp, fmt.Errorf("failed to get schedule: %w", err)
	}
	if sched.IsLocked {
		resp.Skipped = true
		return resp, nil
	}

	entries, err := s.timeLogRepo.ListByStoreWeek(ctx, storeID, wk, year)
	if err != nil {
		return resp, fmt.Errorf("failed to list time logs: %w", err)
	}
	resp.EntryCount = len(entries)

	rows := Reconcile(entries, sched.Rows, s.loc)
	resp.RowsUpdated = changedRows(sched.Rows, rows)
	if resp.RowsUpdated == 0 {
		return resp, nil
	}

	if err := s.scheduleRepo.SaveRows(ctx, sched.ID, rows); err != nil {
		return resp, fmt.Errorf("failed to save reconciled rows: %w", err)
	}

	slog.Debug("Reconciled schedule", "store_id", storeID, "week", wk, "year", year, "entries", resp.EntryCount, "rows_updated", resp.RowsUpdated)
	return resp, nil
}

// ReconcileCurrentWeek implements timelog.TimeLogService.
func (s *timeLogServiceImpl) ReconcileCurrentWeek(ctx context.Context) (int, error) {
	wk, year := week.Of(s.now().In(s.loc))

	stores, err := s.timeLogRepo.ListStoresWithEntries(ctx, wk, year)
	if err != nil {
		return 0, fmt.Errorf("failed to list stores with time logs: %w", err)
	}

	var errs []error
	processed := 0
	for _, storeID := range stores {
		if _, err := s.reconcile(ctx, storeID, wk, year); err != nil {
			errs = append(errs, fmt.Errorf("store %s: %w", storeID, err))
			continue
		}
		processed++
	}
	return processed, errors.Join(errs...)
}

// ListStaleEntries implements timelog.TimeLogService.
func (s *timeLogServiceImpl) ListStaleEntries(ctx context.Context, maxAge time.Duration) ([]timelog.EntryResponse, error) {
	entries, err := s.timeLogRepo.ListOpenBefore(ctx, s.now().Add(-maxAge))
	if err != nil {
		return nil, fmt.Errorf("failed to list open time logs: %w", err)
	}

	resp := make([]timelog.EntryResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, timelog.NewEntryResponse(e))
	}
	return resp, nil
}

// NewEventHandler decodes bus payloads and reconciles the named
// store-week.
func NewEventHandler(svc timelog.TimeLogService) func(ctx context.Context, payload []byte) error {
	return func(ctx context.Context, payload []byte) error {
		var event timelog.Event
		if err := json.Unmarshal(payload, &event); err != nil {
			return fmt.Errorf("failed to decode time log event: %w", err)
		}

		_, err := svc.ReconcileWeek(ctx, schedule.StoreWeek{
			StoreID: event.StoreID,
			Week:    event.Week,
			Year:    event.Year,
		})
		return err
	}
}
