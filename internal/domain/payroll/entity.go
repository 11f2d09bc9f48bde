package payroll

import "github.com/shopspring/decimal"

// OvertimeThreshold is the weekly hours after which overtime applies.
const OvertimeThreshold = 40

// OvertimeMultiplier is applied to the hourly rate for overtime hours.
var OvertimeMultiplier = decimal.RequireFromString("1.5")

// WeeksPerYear converts an annual base salary into a weekly amount.
var WeeksPerYear = decimal.NewFromInt(52)

// LaborTotals is one employee's hours and attributed sales across every
// store and week in a snapshot.
type LaborTotals struct {
	TotalHours    float64
	TotalSales    decimal.Decimal
	WorkLocations []string // "{storeID} (Home)" or "{storeID} (Guest)"
}

// Row is a derived payroll line. It is recomputed on every pass and never
// stored.
type Row struct {
	EmployeeID          string          `json:"employee_id"`
	Name                string          `json:"name"`
	JobTitle            string          `json:"job_title"`
	WorkLocations       []string        `json:"work_locations"`
	HoursWorked         float64         `json:"hours_worked"`
	RegularHours        float64         `json:"regular_hours"`
	OTHours             float64         `json:"ot_hours"`
	Rate                decimal.Decimal `json:"rate"`
	SalesResults        decimal.Decimal `json:"sales_results"`
	Commission          decimal.Decimal `json:"commission"`
	Base                decimal.Decimal `json:"base"`
	WeeklyGrossEarnings decimal.Decimal `json:"weekly_gross_earnings"`
}

// StoreSummary is the store-level payroll rollup for reporting.
type StoreSummary struct {
	TotalGross        decimal.Decimal `json:"total_gross"`
	NetSales          decimal.Decimal `json:"net_sales"`
	WeeklySalesTarget decimal.Decimal `json:"weekly_sales_target"`
	PayrollPercentage decimal.Decimal `json:"payroll_percentage"`
	TargetVsActual    decimal.Decimal `json:"target_vs_actual"`
}
