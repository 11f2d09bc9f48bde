package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/storeops-backend-go/internal/domain/timelog"
)

type TimeLogJobs struct {
	timeLogSvc        timelog.TimeLogService
	reconcileInterval time.Duration
	staleAfter        time.Duration
}

func NewTimeLogJobs(timeLogSvc timelog.TimeLogService, reconcileInterval, staleAfter time.Duration) *TimeLogJobs {
	return &TimeLogJobs{
		timeLogSvc:        timeLogSvc,
		reconcileInterval: reconcileInterval,
		staleAfter:        staleAfter,
	}
}

func (j *TimeLogJobs) RegisterJobs(scheduler *Scheduler) error {
	if err := scheduler.AddJob("reconcile_current_week", j.reconcileInterval, j.ReconcileCurrentWeek); err != nil {
		return err
	}
	return scheduler.AddJob("report_stale_time_logs", 1*time.Hour, j.ReportStaleTimeLogs)
}

// ReconcileCurrentWeek catches up on clock events whose bus message was
// lost.
func (j *TimeLogJobs) ReconcileCurrentWeek(ctx context.Context) error {
	n, err := j.timeLogSvc.ReconcileCurrentWeek(ctx)
	if err != nil {
		return fmt.Errorf("failed to reconcile current week: %w", err)
	}
	slog.Info("Cron: Reconciled current week", "stores", n)
	return nil
}

// ReportStaleTimeLogs warns about sessions nobody clocked out of. They
// are left open for a manager to fix.
func (j *TimeLogJobs) ReportStaleTimeLogs(ctx context.Context) error {
	stale, err := j.timeLogSvc.ListStaleEntries(ctx, j.staleAfter)
	if err != nil {
		return fmt.Errorf("failed to list stale time logs: %w", err)
	}

	for _, e := range stale {
		clockIn := ""
		if e.ClockIn != nil {
			clockIn = *e.ClockIn
		}
		slog.Warn("Cron: Time log still open",
			"entry_id", e.ID,
			"employee_id", e.EmployeeID,
			"store_id", e.StoreID,
			"clock_in", clockIn)
	}
	if len(stale) == 0 {
		slog.Info("Cron: No stale time logs found")
	}
	return nil
}
