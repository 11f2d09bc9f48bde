package report

import (
	"fmt"

	"github.com/cmlabs-hris/storeops-backend-go/internal/domain/report"
	"github.com/cmlabs-hris/storeops-backend-go/internal/domain/sale"
	"github.com/cmlabs-hris/storeops-backend-go/internal/domain/schedule"
	"github.com/cmlabs-hris/storeops-backend-go/internal/domain/traffic"
	"github.com/shopspring/decimal"
)

// TotalsName labels the aggregate line of a SellerReport.
const TotalsName = "Totals"

var hundred = decimal.NewFromInt(100)

type accumulator struct {
	metrics      report.SellerMetrics
	transactions map[string]struct{}
}

// ComputeSellerMetrics attributes sales to the sellers on a schedule.
//
// Sellers are keyed by row name, matching the free-text SalesRep of sale
// items. Gift card sales are ignored. Returns lower a seller's sales but
// add no units or transactions. A transaction counts once per seller no
// matter how many of its items they sold.
func ComputeSellerMetrics(rows []schedule.Row, sales []sale.Record) report.SellerReport {
	var order []string
	acc := make(map[string]*accumulator)
	for _, row := range rows {
		if row.Name == "" {
			continue
		}
		a, ok := acc[row.Name]
		if !ok {
			a = &accumulator{
				metrics: report.SellerMetrics{
					Name:          row.Name,
					Objective:     decimal.Zero,
					TotalSales:    decimal.Zero,
					CategoryUnits: make(map[string]int),
				},
				transactions: make(map[string]struct{}),
			}
			acc[row.Name] = a
			order = append(order, row.Name)
		}
		a.metrics.Objective = a.metrics.Objective.Add(row.Objective)
		a.metrics.HoursWorked += row.TotalActualHours()
	}

	for i, rec := range sales {
		if rec.IsGiftCard() {
			continue
		}
		txKey := rec.ID
		if txKey == "" {
			txKey = fmt.Sprintf("#%d", i)
		}

		for _, item := range rec.Items {
			a, ok := acc[item.SalesRep]
			if !ok {
				continue
			}
			a.metrics.TotalSales = a.metrics.TotalSales.Add(item.LineTotal())
			if rec.IsReturn() {
				continue
			}
			a.metrics.UnitsSold += item.Quantity
			a.metrics.CategoryUnits[item.Category] += item.Quantity
			a.transactions[txKey] = struct{}{}
		}
	}

	out := report.SellerReport{
		Sellers: make([]report.SellerMetrics, 0, len(order)),
		Totals: report.SellerMetrics{
			Name:          TotalsName,
			Objective:     decimal.Zero,
			TotalSales:    decimal.Zero,
			CategoryUnits: make(map[string]int),
		},
	}
	for _, name := range order {
		a := acc[name]
		m := a.metrics
		m.NumTransactions = len(a.transactions)
		derive(&m)
		out.Sellers = append(out.Sellers, m)

		t := &out.Totals
		t.Objective = t.Objective.Add(m.Objective)
		t.TotalSales = t.TotalSales.Add(m.TotalSales)
		t.HoursWorked += m.HoursWorked
		t.UnitsSold += m.UnitsSold
		t.NumTransactions += m.NumTransactions
		for category, units := range m.CategoryUnits {
			t.CategoryUnits[category] += units
		}
	}
	derive(&out.Totals)

	return out
}

// derive fills the ratio fields from the raw sums. Every ratio is 0 when
// its denominator is 0.
func derive(m *report.SellerMetrics) {
	m.Differential = m.TotalSales.Sub(m.Objective)
	m.PercentOfObjective = percent(m.TotalSales, m.Objective)
	m.DollarsPerHour = ratio(m.TotalSales, decimal.NewFromFloat(m.HoursWorked))

	tx := decimal.NewFromInt(int64(m.NumTransactions))
	m.DollarsPerTransaction = ratio(m.TotalSales, tx)
	m.UnitsPerTransaction = ratio(decimal.NewFromInt(int64(m.UnitsSold)), tx)
}

func ratio(num, den decimal.Decimal) decimal.Decimal {
	if den.IsZero() {
		return decimal.Zero
	}
	return num.Div(den)
}

func percent(num, den decimal.Decimal) decimal.Decimal {
	return ratio(num, den).Mul(hundred)
}

// ConversionRate is transactions per hundred visitors, from the door and
// register counts. It is 0 without traffic.
func ConversionRate(counts []traffic.HourlyCount) decimal.Decimal {
	var visitors, transactions int64
	for _, c := range counts {
		visitors += int64(c.Traffic)
		transactions += int64(c.Transactions)
	}
	return percent(decimal.NewFromInt(transactions), decimal.NewFromInt(visitors))
}
