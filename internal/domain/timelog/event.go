package timelog

import "context"

// EventChannel is the pub/sub channel carrying time-log changes.
const EventChannel = "storeops:timelog:changed"

// Event announces that the time logs of a store-week changed and its
// schedule should be reconciled.
type Event struct {
	StoreID    string `json:"store_id"`
	Week       int    `json:"week"`
	Year       int    `json:"year"`
	EmployeeID string `json:"employee_id,omitempty"`
}

// Publisher delivers events to whoever reconciles schedules.
type Publisher interface {
	Publish(ctx context.Context, channel string, payload any) error
}
