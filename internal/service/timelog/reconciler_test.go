package timelog

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/storeops-backend-go/internal/domain/schedule"
	"github.com/cmlabs-hris/storeops-backend-go/internal/domain/timelog"
	"github.com/cmlabs-hris/storeops-backend-go/internal/pkg/week"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ts(t *testing.T, s string) *time.Time {
	t.Helper()
	v, err := time.Parse(time.RFC3339, s)
	require.NoError(t, err)
	return &v
}

func TestReconcile(t *testing.T) {
	// 2024-03-04 is a Monday
	entries := []timelog.Entry{
		{EmployeeID: "emp-a", ClockIn: ts(t, "2024-03-04T09:00:00Z"), ClockOut: ts(t, "2024-03-04T13:00:00Z")},
		{EmployeeID: "emp-a", ClockIn: ts(t, "2024-03-04T14:00:00Z"), ClockOut: ts(t, "2024-03-04T17:30:00Z")},
		{EmployeeID: "emp-a", ClockIn: ts(t, "2024-03-06T10:00:00Z"), ClockOut: ts(t, "2024-03-06T16:00:00Z")},
		// open entry does not count
		{EmployeeID: "emp-a", ClockIn: ts(t, "2024-03-07T09:00:00Z")},
		// overnight shift is filed under the clock-in day
		{EmployeeID: "emp-b", ClockIn: ts(t, "2024-03-08T22:00:00Z"), ClockOut: ts(t, "2024-03-09T02:00:00Z")},
		// no row for this employee
		{EmployeeID: "emp-x", ClockIn: ts(t, "2024-03-04T09:00:00Z"), ClockOut: ts(t, "2024-03-04T10:00:00Z")},
	}
	rows := []schedule.Row{
		{ID: "emp-a", Name: "Alice", ActualHours: map[week.Day]float64{week.Sunday: 3}},
		{ID: "emp-b", Name: "Bo"},
		{ID: "emp-c", Name: "Cy", ActualHours: map[week.Day]float64{week.Tuesday: 5}},
	}

	got := Reconcile(entries, rows, time.UTC)
	require.Len(t, got, 3)

	// replaced wholesale, Sunday's manual value is gone
	assert.Equal(t, map[week.Day]float64{week.Monday: 7.5, week.Wednesday: 6}, got[0].ActualHours)
	assert.Equal(t, map[week.Day]float64{week.Friday: 4}, got[1].ActualHours)
	// unmatched row untouched
	assert.Equal(t, map[week.Day]float64{week.Tuesday: 5}, got[2].ActualHours)

	// inputs are not mutated
	assert.Equal(t, map[week.Day]float64{week.Sunday: 3}, rows[0].ActualHours)
	assert.Nil(t, rows[1].ActualHours)
}

func TestReconcile_Idempotent(t *testing.T) {
	entries := []timelog.Entry{
		{EmployeeID: "emp-a", ClockIn: ts(t, "2024-03-04T09:00:00Z"), ClockOut: ts(t, "2024-03-04T17:00:00Z")},
	}
	rows := []schedule.Row{{ID: "emp-a"}}

	once := Reconcile(entries, rows, time.UTC)
	twice := Reconcile(entries, once, time.UTC)

	assert.Equal(t, once, twice)
	assert.Equal(t, 0, changedRows(once, twice))
	assert.Equal(t, 1, changedRows(rows, once))
}

func TestReconcile_UsesLocalCalendarDay(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tzdata not available")
	}
	// 02:00 UTC Tuesday is still Monday evening in New York
	entries := []timelog.Entry{
		{EmployeeID: "emp-a", ClockIn: ts(t, "2024-03-05T02:00:00Z"), ClockOut: ts(t, "2024-03-05T04:00:00Z")},
	}

	got := Reconcile(entries, []schedule.Row{{ID: "emp-a"}}, ny)
	assert.Equal(t, map[week.Day]float64{week.Monday: 2}, got[0].ActualHours)
}

func TestReconcile_EmptyInputs(t *testing.T) {
	assert.Empty(t, Reconcile(nil, nil, nil))

	rows := []schedule.Row{{ID: "emp-a", ActualHours: map[week.Day]float64{week.Monday: 1}}}
	got := Reconcile(nil, rows, nil)
	assert.Equal(t, rows, got)
}
