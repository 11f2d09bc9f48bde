package http

import (
	"net/http"
	"strconv"

	"github.com/cmlabs-hris/storeops-backend-go/internal/domain/schedule"
	"github.com/cmlabs-hris/storeops-backend-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

// storeWeekFromRequest reads /stores/{storeID}/weeks/{year}/{week}.
func storeWeekFromRequest(r *http.Request) (schedule.StoreWeek, error) {
	year, err := intParam(r, "year")
	if err != nil {
		return schedule.StoreWeek{}, err
	}
	week, err := intParam(r, "week")
	if err != nil {
		return schedule.StoreWeek{}, err
	}

	return schedule.StoreWeek{
		StoreID: storeIDFromRequest(r),
		Week:    week,
		Year:    year,
	}, nil
}

func storeIDFromRequest(r *http.Request) string {
	return chi.URLParam(r, "storeID")
}

func intParam(r *http.Request, name string) (int, error) {
	value := chi.URLParam(r, name)
	if value == "" {
		return 0, &validator.FieldError{Field: name, Err: validator.ErrMissingField}
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, &validator.FieldError{Field: name, Value: value, Err: validator.ErrNotANumber}
	}
	return n, nil
}
