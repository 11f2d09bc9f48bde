package timelog

import "time"

// Entry is one clock session. ClockOut is nil while the session is open;
// an employee has at most one open entry at a time.
type Entry struct {
	ID         string
	EmployeeID string
	StoreID    string
	ClockIn    *time.Time
	ClockOut   *time.Time
	Week       int
	Year       int
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined fields
	EmployeeName *string
}

// IsOpen reports whether the session has not been clocked out yet.
func (e Entry) IsOpen() bool {
	return e.ClockOut == nil
}

// IsClosed reports whether both timestamps are present.
func (e Entry) IsClosed() bool {
	return e.ClockIn != nil && e.ClockOut != nil
}

// Hours is the decimal duration of a closed entry, 0 otherwise.
func (e Entry) Hours() float64 {
	if !e.IsClosed() {
		return 0
	}
	return e.ClockOut.Sub(*e.ClockIn).Hours()
}
