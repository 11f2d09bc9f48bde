package traffic

import (
	"github.com/cmlabs-hris/storeops-backend-go/internal/pkg/validator"
	"github.com/cmlabs-hris/storeops-backend-go/internal/pkg/week"
	"github.com/shopspring/decimal"
)

type RecordCountRequest struct {
	StoreID      string `json:"-"`
	Week         int    `json:"week"`
	Year         int    `json:"year"`
	Day          string `json:"day"`
	Hour         int    `json:"hour"`
	Traffic      int    `json:"traffic"`
	Transactions int    `json:"transactions"`
}

func (r *RecordCountRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidStoreCode(r.StoreID) {
		errs = append(errs, validator.ValidationError{Field: "store_id", Message: "must be a valid store code"})
	}
	if !validator.IsValidWeek(r.Week) {
		errs = append(errs, validator.ValidationError{Field: "week", Message: "must be between 1 and 54"})
	}
	if !validator.IsValidYear(r.Year) {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be between 2000 and 2100"})
	}
	if _, ok := week.ParseDay(r.Day); !ok {
		errs = append(errs, validator.ValidationError{Field: "day", Message: "must be sunday through saturday"})
	}
	if r.Hour < 0 || r.Hour > 23 {
		errs = append(errs, validator.ValidationError{Field: "hour", Message: "must be between 0 and 23"})
	}
	if r.Traffic < 0 {
		errs = append(errs, validator.ValidationError{Field: "traffic", Message: "must be non-negative"})
	}
	if r.Transactions < 0 {
		errs = append(errs, validator.ValidationError{Field: "transactions", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type HourlyCountResponse struct {
	Day          week.Day `json:"day"`
	Hour         int      `json:"hour"`
	Traffic      int      `json:"traffic"`
	Transactions int      `json:"transactions"`
}

type StoreTrafficResponse struct {
	StoreID           string                `json:"store_id"`
	Week              int                   `json:"week"`
	Year              int                   `json:"year"`
	TotalTraffic      int                   `json:"total_traffic"`
	TotalTransactions int                   `json:"total_transactions"`
	ConversionRate    decimal.Decimal       `json:"conversion_rate"`
	Hours             []HourlyCountResponse `json:"hours"`
}
