package timelog

import (
	"time"

	"github.com/cmlabs-hris/storeops-backend-go/internal/pkg/validator"
)

// ClockRequest is a badge punch at a store's time clock. At is optional
// and defaults to the server clock; when given it must be RFC3339.
type ClockRequest struct {
	StoreID    string  `json:"-"`
	PositionID string  `json:"position_id"`
	At         *string `json:"at,omitempty"`
}

func (r *ClockRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidStoreCode(r.StoreID) {
		errs = append(errs, validator.ValidationError{Field: "store_id", Message: "must be a valid store code"})
	}
	if !validator.IsValidPositionID(r.PositionID) {
		errs = append(errs, validator.ValidationError{Field: "position_id", Message: "must be 3-10 digits"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Timestamp resolves At, falling back to now.
func (r *ClockRequest) Timestamp(now time.Time) (time.Time, error) {
	at, err := validator.OptionalTimestamp("at", r.At)
	if err != nil {
		return time.Time{}, err
	}
	if at == nil {
		return now, nil
	}
	return *at, nil
}

type EntryResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	StoreID      string  `json:"store_id"`
	ClockIn      *string `json:"clock_in,omitempty"`
	ClockOut     *string `json:"clock_out,omitempty"`
	Hours        float64 `json:"hours"`
	Week         int     `json:"week"`
	Year         int     `json:"year"`
}

func NewEntryResponse(e Entry) EntryResponse {
	return EntryResponse{
		ID:           e.ID,
		EmployeeID:   e.EmployeeID,
		EmployeeName: e.EmployeeName,
		StoreID:      e.StoreID,
		ClockIn:      formatTime(e.ClockIn),
		ClockOut:     formatTime(e.ClockOut),
		Hours:        e.Hours(),
		Week:         e.Week,
		Year:         e.Year,
	}
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}

type ReconcileResponse struct {
	StoreID     string `json:"store_id"`
	Week        int    `json:"week"`
	Year        int    `json:"year"`
	EntryCount  int    `json:"entry_count"`
	RowsUpdated int    `json:"rows_updated"`
	Skipped     bool   `json:"skipped"`
}
