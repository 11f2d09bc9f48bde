package schedule

import (
	"time"

	"github.com/cmlabs-hris/storeops-backend-go/internal/pkg/week"
	"github.com/shopspring/decimal"
)

// Schedule is one store's plan for one week.
type Schedule struct {
	ID        string
	StoreID   string
	Week      int
	Year      int
	IsLocked  bool
	Rows      []Row
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Row is one employee's line in a Schedule. ID equals the employee id for
// rostered employees and a generated id for ad-hoc rows.
type Row struct {
	ID              string                       `json:"id"`
	Name            string                       `json:"name"`
	EmployeeID      string                       `json:"employee_id"` // badge code
	JobTitle        string                       `json:"job_title"`
	Objective       decimal.Decimal              `json:"objective"`
	DailyObjectives map[week.Day]decimal.Decimal `json:"daily_objectives"`
	Shifts          map[week.Day]string          `json:"shifts"`
	ScheduledHours  map[week.Day]float64         `json:"scheduled_hours"`
	ActualHours     map[week.Day]float64         `json:"actual_hours"`
	IsGuest         bool                         `json:"is_guest,omitempty"`
	HomeStore       string                       `json:"home_store,omitempty"`
}

// TotalActualHours sums ActualHours over the week.
func (r Row) TotalActualHours() float64 {
	var total float64
	for _, h := range r.ActualHours {
		total += h
	}
	return total
}

// TotalScheduledHours sums ScheduledHours over the week.
func (r Row) TotalScheduledHours() float64 {
	var total float64
	for _, h := range r.ScheduledHours {
		total += h
	}
	return total
}

// Clone returns a deep copy so snapshots can be transformed without
// aliasing the caller's maps.
func (r Row) Clone() Row {
	c := r
	if r.DailyObjectives != nil {
		c.DailyObjectives = make(map[week.Day]decimal.Decimal, len(r.DailyObjectives))
		for k, v := range r.DailyObjectives {
			c.DailyObjectives[k] = v
		}
	}
	if r.Shifts != nil {
		c.Shifts = make(map[week.Day]string, len(r.Shifts))
		for k, v := range r.Shifts {
			c.Shifts[k] = v
		}
	}
	c.ScheduledHours = cloneHours(r.ScheduledHours)
	c.ActualHours = cloneHours(r.ActualHours)
	return c
}

func cloneHours(m map[week.Day]float64) map[week.Day]float64 {
	if m == nil {
		return nil
	}
	out := make(map[week.Day]float64, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// FindRow returns the index of the row with id, or -1.
func (s Schedule) FindRow(id string) int {
	for i, r := range s.Rows {
		if r.ID == id {
			return i
		}
	}
	return -1
}

// WeeklyTarget is the store's sales target: the sum of row objectives.
func (s Schedule) WeeklyTarget() decimal.Decimal {
	total := decimal.Zero
	for _, r := range s.Rows {
		total = total.Add(r.Objective)
	}
	return total
}
