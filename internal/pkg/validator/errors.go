package validator

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Contract violations a caller can commit when handing records to the
// labor core. They are reported synchronously and never retried.
var (
	ErrUnparsableTime = errors.New("unparsable time")
	ErrNotANumber     = errors.New("not a number")
	ErrMissingField   = errors.New("missing required field")
)

// FieldError ties one of the contract violations above to the offending field.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("%s: %v: %q", e.Field, e.Err, e.Value)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// RequireTimestamp parses a required RFC3339 timestamp.
func RequireTimestamp(field, value string) (time.Time, error) {
	if IsEmpty(value) {
		return time.Time{}, &FieldError{Field: field, Err: ErrMissingField}
	}
	t, ok := IsValidDateTime(strings.TrimSpace(value))
	if !ok {
		return time.Time{}, &FieldError{Field: field, Value: value, Err: ErrUnparsableTime}
	}
	return t, nil
}

// OptionalTimestamp parses an RFC3339 timestamp that may be absent.
func OptionalTimestamp(field string, value *string) (*time.Time, error) {
	if value == nil || IsEmpty(*value) {
		return nil, nil
	}
	t, err := RequireTimestamp(field, *value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// RequireNumber parses a required decimal number given as text.
func RequireNumber(field, value string) (float64, error) {
	if IsEmpty(value) {
		return 0, &FieldError{Field: field, Err: ErrMissingField}
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, &FieldError{Field: field, Value: value, Err: ErrNotANumber}
	}
	return f, nil
}

// RequireString reports ErrMissingField for blank values.
func RequireString(field, value string) error {
	if IsEmpty(value) {
		return &FieldError{Field: field, Err: ErrMissingField}
	}
	return nil
}
