package postgresql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cmlabs-hris/storeops-backend-go/internal/domain/schedule"
	"github.com/cmlabs-hris/storeops-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type scheduleRepositoryImpl struct {
	db *database.DB
}

func NewScheduleRepository(db *database.DB) schedule.ScheduleRepository {
	return &scheduleRepositoryImpl{db: db}
}

const scheduleColumns = `id, store_id, week, year, is_locked, rows, created_at, updated_at`

func scanSchedule(row pgx.Row) (schedule.Schedule, error) {
	var (
		s       schedule.Schedule
		rowsRaw []byte
	)
	if err := row.Scan(&s.ID, &s.StoreID, &s.Week, &s.Year, &s.IsLocked, &rowsRaw, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return schedule.Schedule{}, err
	}
	if err := json.Unmarshal(rowsRaw, &s.Rows); err != nil {
		return schedule.Schedule{}, fmt.Errorf("failed to decode rows of schedule %s: %w", s.ID, err)
	}
	return s, nil
}

func encodeRows(rows []schedule.Row) ([]byte, error) {
	if rows == nil {
		rows = []schedule.Row{}
	}
	return json.Marshal(rows)
}

// Create implements schedule.ScheduleRepository. A concurrent create for
// the same store-week returns the schedule that won.
func (r *scheduleRepositoryImpl) Create(ctx context.Context, s schedule.Schedule) (schedule.Schedule, error) {
	q := GetQuerier(ctx, r.db)

	rowsRaw, err := encodeRows(s.Rows)
	if err != nil {
		return schedule.Schedule{}, fmt.Errorf("failed to encode schedule rows: %w", err)
	}

	query := `
		INSERT INTO schedules (id, store_id, week, year, is_locked, rows)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (store_id, week, year) DO NOTHING
		RETURNING ` + scheduleColumns

	created, err := scanSchedule(q.QueryRow(ctx, query, s.ID, s.StoreID, s.Week, s.Year, s.IsLocked, rowsRaw))
	if err == pgx.ErrNoRows {
		return r.GetByStoreWeek(ctx, s.StoreID, s.Week, s.Year)
	}
	if err != nil {
		return schedule.Schedule{}, fmt.Errorf("failed to create schedule: %w", err)
	}
	return created, nil
}

// GetByStoreWeek implements schedule.ScheduleRepository.
func (r *scheduleRepositoryImpl) GetByStoreWeek(ctx context.Context, storeID string, week, year int) (schedule.Schedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + scheduleColumns + ` FROM schedules WHERE store_id = $1 AND week = $2 AND year = $3`

	s, err := scanSchedule(q.QueryRow(ctx, query, storeID, week, year))
	if err != nil {
		if err == pgx.ErrNoRows {
			return schedule.Schedule{}, schedule.ErrScheduleNotFound
		}
		return schedule.Schedule{}, fmt.Errorf("failed to get schedule: %w", err)
	}
	return s, nil
}

// ListByWeek implements schedule.ScheduleRepository.
func (r *scheduleRepositoryImpl) ListByWeek(ctx context.Context, week, year int) ([]schedule.Schedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + scheduleColumns + ` FROM schedules WHERE week = $1 AND year = $2 ORDER BY store_id`

	rows, err := q.Query(ctx, query, week, year)
	if err != nil {
		return nil, fmt.Errorf("failed to query schedules: %w", err)
	}
	defer rows.Close()

	schedules := []schedule.Schedule{}
	for rows.Next() {
		s, err := scanSchedule(rows)
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return schedules, nil
}

// SaveRows implements schedule.ScheduleRepository. Last write wins.
func (r *scheduleRepositoryImpl) SaveRows(ctx context.Context, scheduleID string, rows []schedule.Row) error {
	q := GetQuerier(ctx, r.db)

	rowsRaw, err := encodeRows(rows)
	if err != nil {
		return fmt.Errorf("failed to encode schedule rows: %w", err)
	}

	tag, err := q.Exec(ctx, `UPDATE schedules SET rows = $1, updated_at = NOW() WHERE id = $2`, rowsRaw, scheduleID)
	if err != nil {
		return fmt.Errorf("failed to save schedule rows: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return schedule.ErrScheduleNotFound
	}
	return nil
}

// SetLocked implements schedule.ScheduleRepository.
func (r *scheduleRepositoryImpl) SetLocked(ctx context.Context, scheduleID string, locked bool) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE schedules SET is_locked = $1, updated_at = NOW() WHERE id = $2`, locked, scheduleID)
	if err != nil {
		return fmt.Errorf("failed to set schedule lock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return schedule.ErrScheduleNotFound
	}
	return nil
}
