package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultCommissionPlan is the commission percentage applied when an
// employee record carries none.
var DefaultCommissionPlan = decimal.NewFromInt(2)

type Employee struct {
	ID              string
	Name            string
	PositionID      string // badge code, also the clock-in PIN
	JobTitle        string
	Rate            decimal.Decimal // hourly
	BaseSalary      decimal.Decimal // annual
	CommissionPlan  decimal.Decimal // percentage, 2 == 2%
	AssociatedStore string          // home store code
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// CommissionPercent returns the plan as stored. The default is applied
// when the record is decoded; a stored 0 means no commission.
func (e Employee) CommissionPercent() decimal.Decimal {
	return e.CommissionPlan
}

// IsHomeStore reports whether storeID is the employee's associated store.
func (e Employee) IsHomeStore(storeID string) bool {
	return e.AssociatedStore == storeID
}
