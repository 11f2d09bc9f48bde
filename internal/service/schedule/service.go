package schedule

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/storeops-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/storeops-backend-go/internal/domain/schedule"
	"github.com/cmlabs-hris/storeops-backend-go/internal/pkg/week"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type scheduleServiceImpl struct {
	scheduleRepo schedule.ScheduleRepository
	employeeRepo employee.EmployeeRepository
}

func NewScheduleService(
	scheduleRepo schedule.ScheduleRepository,
	employeeRepo employee.EmployeeRepository,
) schedule.ScheduleService {
	return &scheduleServiceImpl{
		scheduleRepo: scheduleRepo,
		employeeRepo: employeeRepo,
	}
}

// GetSchedule implements schedule.ScheduleService.
func (s *scheduleServiceImpl) GetSchedule(ctx context.Context, req schedule.StoreWeek) (schedule.ScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.ScheduleResponse{}, err
	}

	sched, err := s.getOrCreate(ctx, req)
	if err != nil {
		return schedule.ScheduleResponse{}, err
	}
	return schedule.NewScheduleResponse(sched), nil
}

// getOrCreate loads the schedule of a store-week, seeding a new one with
// a blank row for every employee whose home is that store.
func (s *scheduleServiceImpl) getOrCreate(ctx context.Context, req schedule.StoreWeek) (schedule.Schedule, error) {
	sched, err := s.scheduleRepo.GetByStoreWeek(ctx, req.StoreID, req.Week, req.Year)
	if err == nil {
		return sched, nil
	}
	if !errors.Is(err, schedule.ErrScheduleNotFound) {
		return schedule.Schedule{}, fmt.Errorf("failed to get schedule: %w", err)
	}

	employees, err := s.employeeRepo.ListByStore(ctx, req.StoreID)
	if err != nil {
		return schedule.Schedule{}, fmt.Errorf("failed to list store employees: %w", err)
	}

	rows := make([]schedule.Row, 0, len(employees))
	for _, emp := range employees {
		rows = append(rows, NormalizeRow(schedule.Row{
			ID:         emp.ID,
			Name:       emp.Name,
			EmployeeID: emp.PositionID,
			JobTitle:   emp.JobTitle,
		}))
	}

	created, err := s.scheduleRepo.Create(ctx, schedule.Schedule{
		ID:      uuid.New().String(),
		StoreID: req.StoreID,
		Week:    req.Week,
		Year:    req.Year,
		Rows:    rows,
	})
	if err != nil {
		return schedule.Schedule{}, fmt.Errorf("failed to create schedule: %w", err)
	}

	slog.Info("Created schedule", "store_id", req.StoreID, "week", req.Week, "year", req.Year, "rows", len(rows))
	return created, nil
}

// AddRow implements schedule.ScheduleService.
func (s *scheduleServiceImpl) AddRow(ctx context.Context, req schedule.AddRowRequest) (schedule.ScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.ScheduleResponse{}, err
	}

	sched, err := s.getOrCreate(ctx, req.StoreWeek)
	if err != nil {
		return schedule.ScheduleResponse{}, err
	}

	var row schedule.Row
	if req.EmployeeID != nil && *req.EmployeeID != "" {
		emp, err := s.employeeRepo.GetByID(ctx, *req.EmployeeID)
		if err != nil {
			return schedule.ScheduleResponse{}, fmt.Errorf("failed to get employee: %w", err)
		}
		if sched.FindRow(emp.ID) >= 0 {
			return schedule.ScheduleResponse{}, schedule.ErrRowAlreadyExists
		}

		jobTitle := emp.JobTitle
		if req.JobTitle != "" {
			jobTitle = req.JobTitle
		}
		row = schedule.Row{
			ID:         emp.ID,
			Name:       emp.Name,
			EmployeeID: emp.PositionID,
			JobTitle:   jobTitle,
		}
		if !emp.IsHomeStore(req.StoreID) {
			row.IsGuest = true
			row.HomeStore = emp.AssociatedStore
		}
	} else {
		row = schedule.Row{
			ID:       uuid.New().String(),
			Name:     req.Name,
			JobTitle: req.JobTitle,
		}
	}

	rows := append(cloneRows(sched.Rows), NormalizeRow(row))
	if err := s.scheduleRepo.SaveRows(ctx, sched.ID, rows); err != nil {
		return schedule.ScheduleResponse{}, fmt.Errorf("failed to save schedule rows: %w", err)
	}
	sched.Rows = rows

	return schedule.NewScheduleResponse(sched), nil
}

// UpdateRow implements schedule.ScheduleService. Plans stay editable on
// locked schedules; only actual hours are frozen.
func (s *scheduleServiceImpl) UpdateRow(ctx context.Context, req schedule.UpdateRowRequest) (schedule.ScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.ScheduleResponse{}, err
	}

	sched, err := s.scheduleRepo.GetByStoreWeek(ctx, req.StoreID, req.Week, req.Year)
	if err != nil {
		return schedule.ScheduleResponse{}, err
	}
	idx := sched.FindRow(req.RowID)
	if idx < 0 {
		return schedule.ScheduleResponse{}, schedule.ErrRowNotFound
	}

	rows := cloneRows(sched.Rows)
	row := rows[idx]
	if row.Shifts == nil {
		row.Shifts = make(map[week.Day]string)
	}
	if row.DailyObjectives == nil {
		row.DailyObjectives = make(map[week.Day]decimal.Decimal)
	}
	for key, shift := range req.Shifts {
		day, _ := week.ParseDay(key)
		row.Shifts[day] = shift
	}
	for key, objective := range req.DailyObjectives {
		day, _ := week.ParseDay(key)
		row.DailyObjectives[day] = objective
	}
	if req.JobTitle != nil {
		row.JobTitle = *req.JobTitle
	}
	rows[idx] = NormalizeRow(row)

	if err := s.scheduleRepo.SaveRows(ctx, sched.ID, rows); err != nil {
		return schedule.ScheduleResponse{}, fmt.Errorf("failed to save schedule rows: %w", err)
	}
	sched.Rows = rows

	return schedule.NewScheduleResponse(sched), nil
}

// UpdateActualHours implements schedule.ScheduleService.
func (s *scheduleServiceImpl) UpdateActualHours(ctx context.Context, req schedule.UpdateActualHoursRequest) (schedule.ScheduleResponse, error) {
	return s.writeActualHours(ctx, req, false)
}

// OverrideActualHours implements schedule.ScheduleService.
func (s *scheduleServiceImpl) OverrideActualHours(ctx context.Context, req schedule.UpdateActualHoursRequest) (schedule.ScheduleResponse, error) {
	return s.writeActualHours(ctx, req, true)
}

func (s *scheduleServiceImpl) writeActualHours(ctx context.Context, req schedule.UpdateActualHoursRequest, override bool) (schedule.ScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.ScheduleResponse{}, err
	}

	sched, err := s.scheduleRepo.GetByStoreWeek(ctx, req.StoreID, req.Week, req.Year)
	if err != nil {
		return schedule.ScheduleResponse{}, err
	}
	if sched.IsLocked && !override {
		return schedule.ScheduleResponse{}, schedule.ErrScheduleLocked
	}
	idx := sched.FindRow(req.RowID)
	if idx < 0 {
		return schedule.ScheduleResponse{}, schedule.ErrRowNotFound
	}

	rows := cloneRows(sched.Rows)
	if rows[idx].ActualHours == nil {
		rows[idx].ActualHours = make(map[week.Day]float64)
	}
	for key, h := range req.Hours {
		day, _ := week.ParseDay(key)
		rows[idx].ActualHours[day] = h
	}

	if err := s.scheduleRepo.SaveRows(ctx, sched.ID, rows); err != nil {
		return schedule.ScheduleResponse{}, fmt.Errorf("failed to save schedule rows: %w", err)
	}
	sched.Rows = rows

	if override {
		slog.Info("Actual hours overridden", "store_id", req.StoreID, "week", req.Week, "year", req.Year, "row_id", req.RowID, "locked", sched.IsLocked)
	}
	return schedule.NewScheduleResponse(sched), nil
}

// SetLocked implements schedule.ScheduleService.
func (s *scheduleServiceImpl) SetLocked(ctx context.Context, req schedule.StoreWeek, locked bool) (schedule.ScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.ScheduleResponse{}, err
	}

	sched, err := s.scheduleRepo.GetByStoreWeek(ctx, req.StoreID, req.Week, req.Year)
	if err != nil {
		return schedule.ScheduleResponse{}, err
	}
	if sched.IsLocked != locked {
		if err := s.scheduleRepo.SetLocked(ctx, sched.ID, locked); err != nil {
			return schedule.ScheduleResponse{}, fmt.Errorf("failed to set schedule lock: %w", err)
		}
		sched.IsLocked = locked
	}

	return schedule.NewScheduleResponse(sched), nil
}

func cloneRows(rows []schedule.Row) []schedule.Row {
	out := make([]schedule.Row, len(rows))
	for i, r := range rows {
		out[i] = r.Clone()
	}
	return out
}
