package payroll

import "errors"

var (
	ErrNoScheduleForWeek = errors.New("no schedule exists for this store and week")
)
