package payroll

import "github.com/shopspring/decimal"

type WeeklyPayrollResponse struct {
	StoreID     string          `json:"store_id"`
	Week        int             `json:"week"`
	Year        int             `json:"year"`
	IsLocked    bool            `json:"is_locked"`
	Rows        []Row           `json:"rows"`
	Summary     StoreSummary    `json:"summary"`
	TotalHours  float64         `json:"total_hours"`
	TotalOTPay  decimal.Decimal `json:"total_ot_pay"`
	GeneratedAt string          `json:"generated_at"`
}
