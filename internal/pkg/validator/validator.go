package validator

import (
	"regexp"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Store codes are short uppercase identifiers such as "NYC01".
var storeCodeRegex = regexp.MustCompile(`^[A-Z0-9_-]{2,20}$`)

func IsValidStoreCode(code string) bool {
	return storeCodeRegex.MatchString(code)
}

// Badge codes double as clock-in PINs.
var positionIDRegex = regexp.MustCompile(`^[0-9]{3,10}$`)

func IsValidPositionID(code string) bool {
	return positionIDRegex.MatchString(code)
}

// IsValidWeek checks a store week number; week 53 exists in long years.
func IsValidWeek(week int) bool {
	return week >= 1 && week <= 54
}

func IsValidYear(year int) bool {
	return year >= 2000 && year <= 2100
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}

// IsValidDateTime checks if a string is a valid ISO8601 timestamp.
// Accepts formats like: "2024-01-15T10:30:00Z" or "2024-01-15T10:30:00+07:00"
func IsValidDateTime(dateTimeStr string) (time.Time, bool) {
	t, err := time.Parse(time.RFC3339, dateTimeStr)
	if err == nil {
		return t, true
	}

	t, err = time.Parse(time.RFC3339Nano, dateTimeStr)
	if err == nil {
		return t, true
	}

	return time.Time{}, false
}
