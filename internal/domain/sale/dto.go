package sale

import (
	"fmt"

	"github.com/cmlabs-hris/storeops-backend-go/internal/pkg/validator"
	"github.com/cmlabs-hris/storeops-backend-go/internal/pkg/week"
	"github.com/shopspring/decimal"
)

type CreateSaleRequest struct {
	StoreID       string           `json:"-"`
	Week          int              `json:"week"`
	Year          int              `json:"year"`
	Day           string           `json:"day"`
	Type          string           `json:"type"`
	Total         *decimal.Decimal `json:"total,omitempty"`
	Items         []Item           `json:"items"`
	PaymentMethod string           `json:"payment_method"`
}

func (r *CreateSaleRequest) Validate() error {
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
	if !validator.IsInSlice(r.Type, TypeValues) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: ErrInvalidSaleType.Error()})
	}
	if len(r.Items) == 0 {
		errs = append(errs, validator.ValidationError{Field: "items", Message: ErrNoItems.Error()})
	}
	errs = append(errs, validateItems(r.Items)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateReturnRequest struct {
	StoreID             string  `json:"-"`
	Week                int     `json:"week"`
	Year                int     `json:"year"`
	Day                 string  `json:"day"`
	Items               []Item  `json:"items"`
	PaymentMethod       string  `json:"payment_method"`
	OriginalStore       *string `json:"original_store,omitempty"`
	OriginalSalesPerson *string `json:"original_sales_person,omitempty"`
}

func (r *CreateReturnRequest) Validate() error {
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
	if r.OriginalStore != nil && !validator.IsValidStoreCode(*r.OriginalStore) {
		errs = append(errs, validator.ValidationError{Field: "original_store", Message: "must be a valid store code"})
	}
	if len(r.Items) == 0 {
		errs = append(errs, validator.ValidationError{Field: "items", Message: ErrNoItems.Error()})
	}
	errs = append(errs, validateItems(r.Items)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateItems(items []Item) validator.ValidationErrors {
	var errs validator.ValidationErrors
	for i, it := range items {
		if it.Quantity < 0 {
			errs = append(errs, validator.ValidationError{Field: fmt.Sprintf("items[%d].quantity", i), Message: "must be non-negative"})
		}
		if validator.IsEmpty(it.SalesRep) {
			errs = append(errs, validator.ValidationError{Field: fmt.Sprintf("items[%d].sales_rep", i), Message: "is required"})
		}
	}
	return errs
}

type SaleResponse struct {
	ID                  string          `json:"id"`
	StoreID             string          `json:"store_id"`
	Week                int             `json:"week"`
	Year                int             `json:"year"`
	Day                 week.Day        `json:"day"`
	Type                Type            `json:"type"`
	Total               decimal.Decimal `json:"total"`
	Items               []Item          `json:"items"`
	PaymentMethod       string          `json:"payment_method"`
	OriginalStore       *string         `json:"original_store,omitempty"`
	OriginalSalesPerson *string         `json:"original_sales_person,omitempty"`
	LinkedRecordID      *string         `json:"linked_record_id,omitempty"`
}

func NewSaleResponse(r Record) SaleResponse {
	return SaleResponse{
		ID:                  r.ID,
		StoreID:             r.StoreID,
		Week:                r.Week,
		Year:                r.Year,
		Day:                 r.Day,
		Type:                r.Type,
		Total:               r.Total,
		Items:               r.Items,
		PaymentMethod:       r.PaymentMethod,
		OriginalStore:       r.OriginalStore,
		OriginalSalesPerson: r.OriginalSalesPerson,
		LinkedRecordID:      r.LinkedRecordID,
	}
}

// ReturnResponse holds the processing-store record and, for cross-store
// returns, the originating-store twin.
type ReturnResponse struct {
	Processing  SaleResponse  `json:"processing"`
	Originating *SaleResponse `json:"originating,omitempty"`
}
