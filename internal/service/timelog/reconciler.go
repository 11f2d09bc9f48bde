package timelog

import (
	"time"

	"github.com/cmlabs-hris/storeops-backend-go/internal/domain/schedule"
	"github.com/cmlabs-hris/storeops-backend-go/internal/domain/timelog"
	"github.com/cmlabs-hris/storeops-backend-go/internal/pkg/week"
)

// Reconcile derives actual hours from a complete snapshot of a
// store-week's time logs.
//
// Closed entries are summed per employee and per weekday of their clock
// in (read in loc). An employee with at least one closed entry gets the
// sum as the row's entire ActualHours map; every other row keeps its
// hours. The input rows are not modified, so replaying the same snapshot
// always yields the same result.
func Reconcile(entries []timelog.Entry, rows []schedule.Row, loc *time.Location) []schedule.Row {
	if loc == nil {
		loc = time.UTC
	}

	hoursByEmployee := make(map[string]map[week.Day]float64)
	for _, e := range entries {
		if !e.IsClosed() {
			continue
		}
		d := e.ClockOut.Sub(*e.ClockIn).Hours()
		if d < 0 {
			continue
		}

		byDay, ok := hoursByEmployee[e.EmployeeID]
		if !ok {
			byDay = make(map[week.Day]float64)
			hoursByEmployee[e.EmployeeID] = byDay
		}
		byDay[week.DayOf(e.ClockIn.In(loc))] += d
	}

	out := make([]schedule.Row, len(rows))
	for i, r := range rows {
		out[i] = r.Clone()
		if byDay, ok := hoursByEmployee[r.ID]; ok {
			actual := make(map[week.Day]float64, len(byDay))
			for day, h := range byDay {
				actual[day] = h
			}
			out[i].ActualHours = actual
		}
	}
	return out
}

// changedRows counts rows whose actual hours differ between two
// snapshots of the same schedule.
func changedRows(before, after []schedule.Row) int {
	n := 0
	for i := range after {
		if i >= len(before) || !sameHours(before[i].ActualHours, after[i].ActualHours) {
			n++
		}
	}
	return n
}

func sameHours(a, b map[week.Day]float64) bool {
	for _, day := range week.Days {
		if a[day] != b[day] {
			return false
		}
	}
	return true
}
