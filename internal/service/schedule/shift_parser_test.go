package schedule

import (
	"testing"

	"github.com/cmlabs-hris/storeops-backend-go/internal/domain/schedule"
	"github.com/cmlabs-hris/storeops-backend-go/internal/pkg/week"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseShiftHours(t *testing.T) {
	cases := []struct {
		input string
		want  float64
	}{
		// no-work markers
		{"off", 0},
		{"OFF", 0},
		{"o", 0},
		{"VAC", 0},
		{"Vacation", 0},
		{"", 0},
		{"   ", 0},

		// explicit am/pm
		{"9:00am-5:00pm", 7},
		{"1:00pm-9:00pm", 7},
		{"9am-2pm", 5},
		{"9:30am-6pm", 7.5},
		{"12pm-4pm", 4},
		{"12am-6am", 5},
		{"11pm-7am", 7},
		{"9 am - 5 PM", 7},
		{"9-5pm", 7},

		// 24-hour style and the no-suffix heuristic
		{"9-17", 7},
		{"13:00-21:00", 7},
		{"10-6", 7},
		{"1-5", 4},
		{"9-1", 4},
		{"10:15-14:45", 4.5},

		// en-dash separator
		{"9am–5pm", 7},

		// malformed
		{"9am", 0},
		{"9-5-7", 0},
		{"abc-5pm", 0},
		{"-5", 0},
		{"9am-", 0},
	}
	for _, c := range cases {
		got := ParseShiftHours(c.input)
		assert.InDelta(t, c.want, got, 1e-9, "ParseShiftHours(%q)", c.input)
	}
}

func TestParseShiftHours_NeverNegativeAndDeterministic(t *testing.T) {
	inputs := []string{"5-5", "12-12", "7am-7am", "0-0", "23:59-0:00", "x-y", "9-17"}
	for _, in := range inputs {
		first := ParseShiftHours(in)
		assert.GreaterOrEqual(t, first, 0.0, in)
		assert.Equal(t, first, ParseShiftHours(in), in)
	}
}

func TestNormalizeRow(t *testing.T) {
	row := schedule.Row{
		ID:   "emp-1",
		Name: "Dana Reyes",
		Shifts: map[week.Day]string{
			week.Monday:  "9am-5pm",
			week.Tuesday: "off",
			week.Friday:  "1-5",
		},
		DailyObjectives: map[week.Day]decimal.Decimal{
			week.Monday: decimal.NewFromInt(500),
			week.Friday: decimal.RequireFromString("250.50"),
		},
		Objective: decimal.NewFromInt(99999),
	}

	got := NormalizeRow(row)

	assert.True(t, got.Objective.Equal(decimal.RequireFromString("750.50")))
	assert.Len(t, got.ScheduledHours, 7)
	assert.Equal(t, 7.0, got.ScheduledHours[week.Monday])
	assert.Equal(t, 0.0, got.ScheduledHours[week.Tuesday])
	assert.Equal(t, 4.0, got.ScheduledHours[week.Friday])
	assert.Equal(t, 0.0, got.ScheduledHours[week.Sunday])
	assert.NotNil(t, got.ActualHours)

	// input untouched
	assert.True(t, row.Objective.Equal(decimal.NewFromInt(99999)))
	assert.Nil(t, row.ScheduledHours)
}
