package employee

import (
	"github.com/cmlabs-hris/storeops-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type UpsertEmployeeRequest struct {
	ID              string           `json:"-"`
	Name            string           `json:"name"`
	PositionID      string           `json:"position_id"`
	JobTitle        string           `json:"job_title"`
	Rate            *decimal.Decimal `json:"rate,omitempty"`
	BaseSalary      *decimal.Decimal `json:"base_salary,omitempty"`
	CommissionPlan  CommissionPlan   `json:"commission_plan"`
	AssociatedStore string           `json:"associated_store"`
}

func (r *UpsertEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "is required"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if !validator.IsValidPositionID(r.PositionID) {
		errs = append(errs, validator.ValidationError{Field: "position_id", Message: "must be 3-10 digits"})
	}
	if !validator.IsValidStoreCode(r.AssociatedStore) {
		errs = append(errs, validator.ValidationError{Field: "associated_store", Message: "must be a valid store code"})
	}
	if r.Rate != nil && r.Rate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "rate", Message: "must be non-negative"})
	}
	if r.BaseSalary != nil && r.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ToEntity applies defaults: missing rate and salary are zero, missing
// commission plan is DefaultCommissionPlan.
func (r *UpsertEmployeeRequest) ToEntity() Employee {
	e := Employee{
		ID:              r.ID,
		Name:            r.Name,
		PositionID:      r.PositionID,
		JobTitle:        r.JobTitle,
		Rate:            decimal.Zero,
		BaseSalary:      decimal.Zero,
		CommissionPlan:  r.CommissionPlan.Or(DefaultCommissionPlan),
		AssociatedStore: r.AssociatedStore,
	}
	if r.Rate != nil {
		e.Rate = *r.Rate
	}
	if r.BaseSalary != nil {
		e.BaseSalary = *r.BaseSalary
	}
	return e
}

type EmployeeResponse struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	PositionID      string          `json:"position_id"`
	JobTitle        string          `json:"job_title"`
	Rate            decimal.Decimal `json:"rate"`
	BaseSalary      decimal.Decimal `json:"base_salary"`
	CommissionPlan  decimal.Decimal `json:"commission_plan"`
	AssociatedStore string          `json:"associated_store"`
}

func NewEmployeeResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:              e.ID,
		Name:            e.Name,
		PositionID:      e.PositionID,
		JobTitle:        e.JobTitle,
		Rate:            e.Rate,
		BaseSalary:      e.BaseSalary,
		CommissionPlan:  e.CommissionPercent(),
		AssociatedStore: e.AssociatedStore,
	}
}
