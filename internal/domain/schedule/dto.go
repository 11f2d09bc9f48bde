package schedule

import (
	"github.com/cmlabs-hris/storeops-backend-go/internal/pkg/validator"
	"github.com/cmlabs-hris/storeops-backend-go/internal/pkg/week"
	"github.com/shopspring/decimal"
)

// StoreWeek identifies a schedule.
type StoreWeek struct {
	StoreID string `json:"store_id"`
	Week    int    `json:"week"`
	Year    int    `json:"year"`
}

func (r StoreWeek) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidStoreCode(r.StoreID) {
		errs = append(errs, validator.ValidationError{Field: "store_id", Message: "must be a valid store code"})
	}
	if !validator.IsValidWeek(r.Week) {
		errs = append(errs, validator.ValidationError{Field: "week", Message: "must be between 1 and 54"})
	}
	if !validator.IsValidYear(r.Year) {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be between 2000 and 2100"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// AddRowRequest adds an employee (possibly a guest from another store) or
// an ad-hoc row with no employee record.
type AddRowRequest struct {
	StoreWeek
	EmployeeID *string `json:"employee_id,omitempty"` // employee record id
	Name       string  `json:"name"`
	JobTitle   string  `json:"job_title"`
}

func (r *AddRowRequest) Validate() error {
	if err := r.StoreWeek.Validate(); err != nil {
		return err
	}
	if (r.EmployeeID == nil || validator.IsEmpty(*r.EmployeeID)) && validator.IsEmpty(r.Name) {
		return validator.ValidationErrors{{Field: "name", Message: "is required for rows without an employee"}}
	}
	return nil
}

// UpdateRowRequest patches the plan of one row. Days absent from the maps
// keep their current value.
type UpdateRowRequest struct {
	StoreWeek
	RowID           string                     `json:"-"`
	Shifts          map[string]string          `json:"shifts,omitempty"`
	DailyObjectives map[string]decimal.Decimal `json:"daily_objectives,omitempty"`
	JobTitle        *string                    `json:"job_title,omitempty"`
}

func (r *UpdateRowRequest) Validate() error {
	if err := r.StoreWeek.Validate(); err != nil {
		return err
	}
	var errs validator.ValidationErrors
	for day := range r.Shifts {
		if _, ok := week.ParseDay(day); !ok {
			errs = append(errs, validator.ValidationError{Field: "shifts." + day, Message: ErrInvalidDay.Error()})
		}
	}
	for day, objective := range r.DailyObjectives {
		if _, ok := week.ParseDay(day); !ok {
			errs = append(errs, validator.ValidationError{Field: "daily_objectives." + day, Message: ErrInvalidDay.Error()})
		} else if objective.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: "daily_objectives." + day, Message: "must be non-negative"})
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateActualHoursRequest sets hours for the given days of one row.
type UpdateActualHoursRequest struct {
	StoreWeek
	RowID string             `json:"-"`
	Hours map[string]float64 `json:"hours"`
}

func (r *UpdateActualHoursRequest) Validate() error {
	if err := r.StoreWeek.Validate(); err != nil {
		return err
	}
	var errs validator.ValidationErrors
	if len(r.Hours) == 0 {
		errs = append(errs, validator.ValidationError{Field: "hours", Message: "at least one day is required"})
	}
	for day, h := range r.Hours {
		if _, ok := week.ParseDay(day); !ok {
			errs = append(errs, validator.ValidationError{Field: "hours." + day, Message: ErrInvalidDay.Error()})
		} else if h < 0 || h > 24 {
			errs = append(errs, validator.ValidationError{Field: "hours." + day, Message: "must be between 0 and 24"})
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RowResponse struct {
	Row
	TotalScheduledHours float64 `json:"total_scheduled_hours"`
	TotalActualHours    float64 `json:"total_actual_hours"`
}

type ScheduleResponse struct {
	ID           string          `json:"id"`
	StoreID      string          `json:"store_id"`
	Week         int             `json:"week"`
	Year         int             `json:"year"`
	IsLocked     bool            `json:"is_locked"`
	WeeklyTarget decimal.Decimal `json:"weekly_target"`
	Rows         []RowResponse   `json:"rows"`
}

func NewScheduleResponse(s Schedule) ScheduleResponse {
	rows := make([]RowResponse, 0, len(s.Rows))
	for _, r := range s.Rows {
		rows = append(rows, RowResponse{
			Row:                 r,
			TotalScheduledHours: r.TotalScheduledHours(),
			TotalActualHours:    r.TotalActualHours(),
		})
	}
	return ScheduleResponse{
		ID:           s.ID,
		StoreID:      s.StoreID,
		Week:         s.Week,
		Year:         s.Year,
		IsLocked:     s.IsLocked,
		WeeklyTarget: s.WeeklyTarget(),
		Rows:         rows,
	}
}
