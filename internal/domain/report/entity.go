package report

import "github.com/shopspring/decimal"

// SellerMetrics is the KPI line of one seller, or of the whole store for
// the totals line.
type SellerMetrics struct {
	Name                  string          `json:"name"`
	Objective             decimal.Decimal `json:"objective"`
	TotalSales            decimal.Decimal `json:"total_sales"`
	HoursWorked           float64         `json:"hours_worked"`
	UnitsSold             int             `json:"units_sold"`
	NumTransactions       int             `json:"num_transactions"`
	CategoryUnits         map[string]int  `json:"category_units"`
	Differential          decimal.Decimal `json:"differential"`
	PercentOfObjective    decimal.Decimal `json:"percent_of_objective"`
	DollarsPerHour        decimal.Decimal `json:"dollars_per_hour"`
	DollarsPerTransaction decimal.Decimal `json:"dollars_per_transaction"`
	UnitsPerTransaction   decimal.Decimal `json:"units_per_transaction"`
}

// SellerReport holds per-seller lines in schedule order plus a totals
// line derived from summed numerators and denominators.
type SellerReport struct {
	Sellers []SellerMetrics `json:"sellers"`
	Totals  SellerMetrics   `json:"totals"`
}
