// Package week implements the store calendar: Sunday-start weeks numbered
// from the first (possibly partial) week of January, and lowercase English
// weekday keys used by schedules and sales.
package week

import (
	"math"
	"strings"
	"time"
)

// Day is a lowercase English weekday name used as a map key in schedules.
type Day string

const (
	Sunday    Day = "sunday"
	Monday    Day = "monday"
	Tuesday   Day = "tuesday"
	Wednesday Day = "wednesday"
	Thursday  Day = "thursday"
	Friday    Day = "friday"
	Saturday  Day = "saturday"
)

// Days lists the week in store order, Sunday first.
var Days = []Day{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

// DayFromWeekday maps a time.Weekday (Sunday == 0) to its key.
func DayFromWeekday(wd time.Weekday) Day {
	return Days[int(wd)]
}

// DayOf returns the weekday key of t in t's own location.
func DayOf(t time.Time) Day {
	return DayFromWeekday(t.Weekday())
}

// ParseDay accepts any casing and surrounding spaces.
func ParseDay(s string) (Day, bool) {
	d := Day(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Days {
		if d == known {
			return d, true
		}
	}
	return "", false
}

// Index returns the position of d in Days, or -1.
func (d Day) Index() int {
	for i, known := range Days {
		if d == known {
			return i
		}
	}
	return -1
}

// Number returns the store week number of t:
//
//	ceil((daysSinceJan1 + weekdayOf(Jan1) + 1) / 7)
//
// This is not ISO-8601. Week 1 is the week containing January 1st and
// every week starts on Sunday.
func Number(t time.Time) int {
	jan1 := time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	daysSinceJan1 := day.YearDay() - jan1.YearDay()
	return int(math.Ceil(float64(daysSinceJan1+int(jan1.Weekday())+1) / 7))
}

// Of returns the (week, year) pair for t.
func Of(t time.Time) (int, int) {
	return Number(t), t.Year()
}

// Start returns midnight of the Sunday that begins week n of year in loc.
// For week 1 this may fall in the previous calendar year.
func Start(year, n int, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
	firstSunday := jan1.AddDate(0, 0, -int(jan1.Weekday()))
	return firstSunday.AddDate(0, 0, (n-1)*7)
}

// Date returns midnight of day d in week n of year.
func Date(year, n int, d Day, loc *time.Location) time.Time {
	idx := d.Index()
	if idx < 0 {
		idx = 0
	}
	return Start(year, n, loc).AddDate(0, 0, idx)
}
