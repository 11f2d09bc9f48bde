package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/storeops-backend-go/internal/domain/timelog"
	"github.com/cmlabs-hris/storeops-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type timeLogRepositoryImpl struct {
	db *database.DB
}

func NewTimeLogRepository(db *database.DB) timelog.TimeLogRepository {
	return &timeLogRepositoryImpl{db: db}
}

const timeLogColumns = `t.id, t.employee_id, t.store_id, t.clock_in, t.clock_out, t.week, t.year,
			t.created_at, t.updated_at, e.name`

func scanTimeLog(row pgx.Row) (timelog.Entry, error) {
	var e timelog.Entry
	err := row.Scan(
		&e.ID, &e.EmployeeID, &e.StoreID, &e.ClockIn, &e.ClockOut, &e.Week, &e.Year,
		&e.CreatedAt, &e.UpdatedAt, &e.EmployeeName,
	)
	return e, err
}

// Create implements timelog.TimeLogRepository.
func (r *timeLogRepositoryImpl) Create(ctx context.Context, entry timelog.Entry) (timelog.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH t AS (
			INSERT INTO time_logs (id, employee_id, store_id, clock_in, clock_out, week, year)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING *
		)
		SELECT ` + timeLogColumns + `
		FROM t LEFT JOIN employees e ON e.id = t.employee_id
	`

	created, err := scanTimeLog(q.QueryRow(ctx, query,
		entry.ID, entry.EmployeeID, entry.StoreID, entry.ClockIn, entry.ClockOut, entry.Week, entry.Year,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return timelog.Entry{}, timelog.ErrAlreadyClockedIn
		}
		return timelog.Entry{}, fmt.Errorf("failed to create time log: %w", err)
	}
	return created, nil
}

// GetOpenEntry implements timelog.TimeLogRepository.
func (r *timeLogRepositoryImpl) GetOpenEntry(ctx context.Context, employeeID string) (timelog.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + timeLogColumns + `
		FROM time_logs t LEFT JOIN employees e ON e.id = t.employee_id
		WHERE t.employee_id = $1 AND t.clock_out IS NULL
	`

	entry, err := scanTimeLog(q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return timelog.Entry{}, timelog.ErrNotClockedIn
		}
		return timelog.Entry{}, fmt.Errorf("failed to get open time log: %w", err)
	}
	return entry, nil
}

// Close implements timelog.TimeLogRepository.
func (r *timeLogRepositoryImpl) Close(ctx context.Context, id string, clockOut time.Time) (timelog.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH t AS (
			UPDATE time_logs SET clock_out = $1, updated_at = NOW()
			WHERE id = $2 AND clock_out IS NULL
			RETURNING *
		)
		SELECT ` + timeLogColumns + `
		FROM t LEFT JOIN employees e ON e.id = t.employee_id
	`

	entry, err := scanTimeLog(q.QueryRow(ctx, query, clockOut, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return timelog.Entry{}, timelog.ErrEntryNotFound
		}
		return timelog.Entry{}, fmt.Errorf("failed to close time log %s: %w", id, err)
	}
	return entry, nil
}

// ListByStoreWeek implements timelog.TimeLogRepository.
func (r *timeLogRepositoryImpl) ListByStoreWeek(ctx context.Context, storeID string, week, year int) ([]timelog.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + timeLogColumns + `
		FROM time_logs t LEFT JOIN employees e ON e.id = t.employee_id
		WHERE t.store_id = $1 AND t.week = $2 AND t.year = $3
		ORDER BY t.clock_in
	`

	rows, err := q.Query(ctx, query, storeID, week, year)
	if err != nil {
		return nil, fmt.Errorf("failed to query time logs: %w", err)
	}
	return collectTimeLogs(rows)
}

// ListOpenBefore implements timelog.TimeLogRepository.
func (r *timeLogRepositoryImpl) ListOpenBefore(ctx context.Context, cutoff time.Time) ([]timelog.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + timeLogColumns + `
		FROM time_logs t LEFT JOIN employees e ON e.id = t.employee_id
		WHERE t.clock_out IS NULL AND t.clock_in < $1
		ORDER BY t.clock_in
	`

	rows, err := q.Query(ctx, query, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to query open time logs: %w", err)
	}
	return collectTimeLogs(rows)
}

// ListStoresWithEntries implements timelog.TimeLogRepository.
func (r *timeLogRepositoryImpl) ListStoresWithEntries(ctx context.Context, week, year int) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT DISTINCT store_id FROM time_logs WHERE week = $1 AND year = $2 ORDER BY store_id`, week, year)
	if err != nil {
		return nil, fmt.Errorf("failed to query stores with time logs: %w", err)
	}
	defer rows.Close()

	stores := []string{}
	for rows.Next() {
		var storeID string
		if err := rows.Scan(&storeID); err != nil {
			return nil, err
		}
		stores = append(stores, storeID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return stores, nil
}

func collectTimeLogs(rows pgx.Rows) ([]timelog.Entry, error) {
	defer rows.Close()

	entries := []timelog.Entry{}
	for rows.Next() {
		e, err := scanTimeLog(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}
