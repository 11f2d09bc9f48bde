package schedule

import "errors"

var (
	ErrScheduleNotFound = errors.New("schedule not found")
	ErrScheduleLocked   = errors.New("schedule is locked, actual hours can only be changed through an override")
	ErrRowNotFound      = errors.New("schedule row not found")
	ErrRowAlreadyExists = errors.New("employee already has a row in this schedule")
	ErrInvalidDay       = errors.New("invalid day, expected sunday through saturday")
)
