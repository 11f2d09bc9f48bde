package timelog

import "errors"

var (
	ErrAlreadyClockedIn = errors.New("employee already has an open time log")
	ErrNotClockedIn     = errors.New("employee has no open time log")
	ErrEntryNotFound    = errors.New("time log entry not found")
	ErrUnknownBadge     = errors.New("no employee matches this badge code")
	ErrClockOutBeforeIn = errors.New("clock out must be after clock in")
)
