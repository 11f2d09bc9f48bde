package schedule

import (
	"strconv"
	"strings"

	"github.com/cmlabs-hris/storeops-backend-go/internal/domain/schedule"
	"github.com/cmlabs-hris/storeops-backend-go/internal/pkg/week"
	"github.com/shopspring/decimal"
)

// Shifts longer than this many hours carry an unpaid one-hour meal break.
const breakThresholdHours = 5

var noWorkTokens = map[string]struct{}{
	"off":      {},
	"o":        {},
	"vac":      {},
	"vacation": {},
}

// ParseShiftHours converts a free-text shift such as "9am-5pm",
// "13:00-21:00" or "vac" into paid hours. It never fails: anything it
// cannot read is worth 0 hours.
//
// Without am/pm on either side, times are read as retail hours: an end
// at or before the start (and before noon) is taken as PM, and a start
// before 7 is taken as an afternoon shift.
func ParseShiftHours(text string) float64 {
	s := strings.ToLower(strings.TrimSpace(text))
	if s == "" {
		return 0
	}
	if _, ok := noWorkTokens[s]; ok {
		return 0
	}

	s = strings.ReplaceAll(s, "–", "-")
	parts := strings.Split(s, "-")
	if len(parts) != 2 {
		return 0
	}

	start, startMeridiem, ok := parseClock(parts[0])
	if !ok {
		return 0
	}
	end, endMeridiem, ok := parseClock(parts[1])
	if !ok {
		return 0
	}

	if !startMeridiem && !endMeridiem {
		if end <= start && end < 12 {
			end += 12
		}
		if start < 7 && end > start {
			start += 12
			end += 12
		}
	}

	duration := end - start
	if duration < 0 {
		duration += 24
	}
	if duration > breakThresholdHours {
		duration--
	}
	if duration < 0 {
		return 0
	}
	return duration
}

// parseClock reads "H", "H:MM", optionally suffixed with am/pm, into
// decimal hours. The bool reports whether a suffix was present.
func parseClock(field string) (hours float64, hasMeridiem bool, ok bool) {
	f := strings.TrimSpace(field)

	var pm bool
	switch {
	case strings.HasSuffix(f, "am"):
		hasMeridiem = true
		f = strings.TrimSpace(strings.TrimSuffix(f, "am"))
	case strings.HasSuffix(f, "pm"):
		hasMeridiem, pm = true, true
		f = strings.TrimSpace(strings.TrimSuffix(f, "pm"))
	}

	hourText, minuteText, _ := strings.Cut(f, ":")
	hour, err := strconv.Atoi(strings.TrimSpace(hourText))
	if err != nil {
		return 0, false, false
	}
	minute, err := strconv.Atoi(strings.TrimSpace(minuteText))
	if err != nil {
		minute = 0
	}

	if hasMeridiem {
		if pm && hour < 12 {
			hour += 12
		}
		if !pm && hour == 12 {
			hour = 0
		}
	}

	return float64(hour) + float64(minute)/60, hasMeridiem, true
}

// NormalizeRow re-derives the computed fields of a row: scheduled hours
// from shifts, and the weekly objective as the sum of daily objectives.
// Actual hours are left as they are.
func NormalizeRow(row schedule.Row) schedule.Row {
	r := row.Clone()

	r.ScheduledHours = make(map[week.Day]float64, len(week.Days))
	objective := decimal.Zero
	for _, day := range week.Days {
		r.ScheduledHours[day] = ParseShiftHours(r.Shifts[day])
		if v, ok := r.DailyObjectives[day]; ok {
			objective = objective.Add(v)
		}
	}
	r.Objective = objective

	if r.Shifts == nil {
		r.Shifts = make(map[week.Day]string)
	}
	if r.DailyObjectives == nil {
		r.DailyObjectives = make(map[week.Day]decimal.Decimal)
	}
	if r.ActualHours == nil {
		r.ActualHours = make(map[week.Day]float64)
	}
	return r
}
