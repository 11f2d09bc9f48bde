package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/storeops-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/storeops-backend-go/internal/domain/payroll"
	"github.com/cmlabs-hris/storeops-backend-go/internal/domain/sale"
	"github.com/cmlabs-hris/storeops-backend-go/internal/domain/schedule"
	"github.com/cmlabs-hris/storeops-backend-go/internal/domain/timelog"
	"github.com/cmlabs-hris/storeops-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/storeops-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Unparsable time, non-numeric or missing field
	var fieldErr *validator.FieldError
	if errors.As(err, &fieldErr) {
		BadRequest(w, fieldErr.Error(), map[string]string{fieldErr.Field: fieldErr.Err.Error()})
		return
	}

	switch {
	// Auth errors
	case errors.Is(err, jwt.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, jwt.ErrManagerRequired):
		Forbidden(w, "Manager role required")
	case errors.Is(err, jwt.ErrStoreAccessDenied):
		Forbidden(w, "Token is not scoped to this store")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrPositionIDExists):
		Conflict(w, "Position ID already assigned to another employee")

	// Schedule domain errors
	case errors.Is(err, schedule.ErrScheduleNotFound):
		NotFound(w, "Schedule not found")
	case errors.Is(err, schedule.ErrRowNotFound):
		NotFound(w, "Schedule row not found")
	case errors.Is(err, schedule.ErrScheduleLocked):
		Conflict(w, err.Error())
	case errors.Is(err, schedule.ErrRowAlreadyExists):
		Conflict(w, "Employee already has a row in this schedule")
	case errors.Is(err, schedule.ErrInvalidDay):
		BadRequest(w, err.Error(), nil)

	// Time log domain errors
	case errors.Is(err, timelog.ErrUnknownBadge):
		NotFound(w, "No employee matches this badge code")
	case errors.Is(err, timelog.ErrEntryNotFound):
		NotFound(w, "Time log entry not found")
	case errors.Is(err, timelog.ErrAlreadyClockedIn):
		Conflict(w, "Employee is already clocked in")
	case errors.Is(err, timelog.ErrNotClockedIn):
		Conflict(w, "Employee is not clocked in")
	case errors.Is(err, timelog.ErrClockOutBeforeIn):
		BadRequest(w, err.Error(), nil)

	// Sale domain errors
	case errors.Is(err, sale.ErrSaleNotFound):
		NotFound(w, "Sale not found")
	case errors.Is(err, sale.ErrNoItems),
		errors.Is(err, sale.ErrInvalidSaleType),
		errors.Is(err, sale.ErrReturnViaCreateSale):
		BadRequest(w, err.Error(), nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrNoScheduleForWeek):
		NotFound(w, "No schedule exists for this store and week")

	// Default
	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
