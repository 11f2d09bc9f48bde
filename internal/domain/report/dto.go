package report

import "github.com/shopspring/decimal"

type StoreReportResponse struct {
	StoreID           string          `json:"store_id"`
	Week              int             `json:"week"`
	Year              int             `json:"year"`
	Sellers           []SellerMetrics `json:"sellers"`
	Totals            SellerMetrics   `json:"totals"`
	TotalTraffic      int             `json:"total_traffic"`
	TotalTransactions int             `json:"total_transactions"`
	ConversionRate    decimal.Decimal `json:"conversion_rate"`
}
