package schedule

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/storeops-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/storeops-backend-go/internal/domain/schedule"
	"github.com/cmlabs-hris/storeops-backend-go/internal/pkg/validator"
	"github.com/cmlabs-hris/storeops-backend-go/internal/pkg/week"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeScheduleRepo struct {
	schedules map[string]schedule.Schedule
	creates   int
}

func newFakeScheduleRepo() *fakeScheduleRepo {
	return &fakeScheduleRepo{schedules: make(map[string]schedule.Schedule)}
}

func (f *fakeScheduleRepo) Create(ctx context.Context, s schedule.Schedule) (schedule.Schedule, error) {
	f.creates++
	f.schedules[s.ID] = s
	return s, nil
}

func (f *fakeScheduleRepo) GetByStoreWeek(ctx context.Context, storeID string, wk, year int) (schedule.Schedule, error) {
	for _, s := range f.schedules {
		if s.StoreID == storeID && s.Week == wk && s.Year == year {
			s.Rows = cloneRows(s.Rows)
			return s, nil
		}
	}
	return schedule.Schedule{}, schedule.ErrScheduleNotFound
}

func (f *fakeScheduleRepo) ListByWeek(ctx context.Context, wk, year int) ([]schedule.Schedule, error) {
	var out []schedule.Schedule
	for _, s := range f.schedules {
		if s.Week == wk && s.Year == year {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeScheduleRepo) SaveRows(ctx context.Context, id string, rows []schedule.Row) error {
	s, ok := f.schedules[id]
	if !ok {
		return schedule.ErrScheduleNotFound
	}
	s.Rows = rows
	f.schedules[id] = s
	return nil
}

func (f *fakeScheduleRepo) SetLocked(ctx context.Context, id string, locked bool) error {
	s, ok := f.schedules[id]
	if !ok {
		return schedule.ErrScheduleNotFound
	}
	s.IsLocked = locked
	f.schedules[id] = s
	return nil
}

type fakeEmployeeRepo struct {
	employees []employee.Employee
}

func (f *fakeEmployeeRepo) Upsert(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	f.employees = append(f.employees, e)
	return e, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByPositionID(ctx context.Context, positionID string) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.PositionID == positionID {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByIDs(ctx context.Context, ids []string) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, id := range ids {
		if e, err := f.GetByID(ctx, id); err == nil {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEmployeeRepo) ListByStore(ctx context.Context, storeID string) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range f.employees {
		if e.AssociatedStore == storeID {
			out = append(out, e)
		}
	}
	return out, nil
}

func newTestService() (schedule.ScheduleService, *fakeScheduleRepo) {
	repo := newFakeScheduleRepo()
	employees := &fakeEmployeeRepo{employees: []employee.Employee{
		{ID: "emp-a", Name: "Alice Moreno", PositionID: "1001", JobTitle: "Sales Associate", AssociatedStore: "NYC01"},
		{ID: "emp-b", Name: "Bo Lindqvist", PositionID: "1002", JobTitle: "Store Manager", AssociatedStore: "NYC01"},
		{ID: "emp-c", Name: "Cy Tanaka", PositionID: "2001", JobTitle: "Sales Associate", AssociatedStore: "BOS02"},
	}}
	return NewScheduleService(repo, employees), repo
}

var testWeek = schedule.StoreWeek{StoreID: "NYC01", Week: 10, Year: 2024}

func TestGetSchedule_SeedsHomeEmployeesOnce(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	first, err := svc.GetSchedule(ctx, testWeek)
	require.NoError(t, err)
	require.Len(t, first.Rows, 2)
	assert.Equal(t, "emp-a", first.Rows[0].ID)
	assert.Equal(t, "1001", first.Rows[0].EmployeeID)
	assert.Len(t, first.Rows[0].ScheduledHours, 7)

	second, err := svc.GetSchedule(ctx, testWeek)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 1, repo.creates)
}

func TestGetSchedule_InvalidRequest(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.GetSchedule(context.Background(), schedule.StoreWeek{StoreID: "x", Week: 60, Year: 1999})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 3)
}

func TestAddRow(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	guestID := "emp-c"
	resp, err := svc.AddRow(ctx, schedule.AddRowRequest{StoreWeek: testWeek, EmployeeID: &guestID})
	require.NoError(t, err)
	require.Len(t, resp.Rows, 3)
	guest := resp.Rows[2]
	assert.True(t, guest.IsGuest)
	assert.Equal(t, "BOS02", guest.HomeStore)
	assert.Equal(t, "Cy Tanaka", guest.Name)

	_, err = svc.AddRow(ctx, schedule.AddRowRequest{StoreWeek: testWeek, EmployeeID: &guestID})
	assert.ErrorIs(t, err, schedule.ErrRowAlreadyExists)

	resp, err = svc.AddRow(ctx, schedule.AddRowRequest{StoreWeek: testWeek, Name: "Temp Help", JobTitle: "Seasonal"})
	require.NoError(t, err)
	require.Len(t, resp.Rows, 4)
	adHoc := resp.Rows[3]
	assert.NotEmpty(t, adHoc.ID)
	assert.False(t, adHoc.IsGuest)
	assert.Empty(t, adHoc.EmployeeID)
}

func TestUpdateRow_NormalizesPlan(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	_, err := svc.GetSchedule(ctx, testWeek)
	require.NoError(t, err)

	resp, err := svc.UpdateRow(ctx, schedule.UpdateRowRequest{
		StoreWeek: testWeek,
		RowID:     "emp-a",
		Shifts:    map[string]string{"monday": "9am-5pm", "Tuesday": "1-5"},
		DailyObjectives: map[string]decimal.Decimal{
			"monday":  decimal.NewFromInt(400),
			"tuesday": decimal.NewFromInt(200),
		},
	})
	require.NoError(t, err)

	row := resp.Rows[0]
	assert.Equal(t, 7.0, row.ScheduledHours[week.Monday])
	assert.Equal(t, 4.0, row.ScheduledHours[week.Tuesday])
	assert.Equal(t, 11.0, row.TotalScheduledHours)
	assert.True(t, row.Objective.Equal(decimal.NewFromInt(600)))
	assert.True(t, resp.WeeklyTarget.Equal(decimal.NewFromInt(600)))

	_, err = svc.UpdateRow(ctx, schedule.UpdateRowRequest{StoreWeek: testWeek, RowID: "missing"})
	assert.ErrorIs(t, err, schedule.ErrRowNotFound)
}

func TestActualHours_LockAndOverride(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	_, err := svc.GetSchedule(ctx, testWeek)
	require.NoError(t, err)

	req := schedule.UpdateActualHoursRequest{
		StoreWeek: testWeek,
		RowID:     "emp-b",
		Hours:     map[string]float64{"friday": 8},
	}
	resp, err := svc.UpdateActualHours(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, 8.0, resp.Rows[1].ActualHours[week.Friday])

	locked, err := svc.SetLocked(ctx, testWeek, true)
	require.NoError(t, err)
	assert.True(t, locked.IsLocked)

	req.Hours = map[string]float64{"friday": 6}
	_, err = svc.UpdateActualHours(ctx, req)
	assert.ErrorIs(t, err, schedule.ErrScheduleLocked)

	resp, err = svc.OverrideActualHours(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, 6.0, resp.Rows[1].ActualHours[week.Friday])
	assert.True(t, resp.IsLocked)
}

func TestUpdateActualHours_ScheduleMissing(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.UpdateActualHours(context.Background(), schedule.UpdateActualHoursRequest{
		StoreWeek: testWeek,
		RowID:     "emp-a",
		Hours:     map[string]float64{"monday": 4},
	})
	assert.ErrorIs(t, err, schedule.ErrScheduleNotFound)
}
