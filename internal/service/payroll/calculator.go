package payroll

import (
	"math"

	"github.com/cmlabs-hris/storeops-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/storeops-backend-go/internal/domain/payroll"
	"github.com/cmlabs-hris/storeops-backend-go/internal/domain/sale"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Calculate derives one employee's weekly payroll line:
//
//	gross = rate*regular + rate*1.5*overtime + baseSalary/52 + sales*plan/100
//
// Hours above the overtime threshold are overtime. Zero rate or salary
// simply contribute nothing.
func Calculate(emp employee.Employee, hoursWorked float64, totalSales decimal.Decimal) payroll.Row {
	if math.IsNaN(hoursWorked) || math.IsInf(hoursWorked, 0) || hoursWorked < 0 {
		hoursWorked = 0
	}

	regular := math.Min(hoursWorked, payroll.OvertimeThreshold)
	overtime := math.Max(0, hoursWorked-payroll.OvertimeThreshold)

	commission := totalSales.Mul(emp.CommissionPercent()).Div(hundred)
	base := emp.BaseSalary.Div(payroll.WeeksPerYear)

	regularPay := emp.Rate.Mul(decimal.NewFromFloat(regular))
	overtimePay := emp.Rate.Mul(payroll.OvertimeMultiplier).Mul(decimal.NewFromFloat(overtime))
	gross := regularPay.Add(overtimePay).Add(base).Add(commission)

	return payroll.Row{
		EmployeeID:          emp.ID,
		Name:                emp.Name,
		JobTitle:            emp.JobTitle,
		WorkLocations:       []string{},
		HoursWorked:         hoursWorked,
		RegularHours:        regular,
		OTHours:             overtime,
		Rate:                emp.Rate,
		SalesResults:        totalSales,
		Commission:          commission,
		Base:                base,
		WeeklyGrossEarnings: gross,
	}
}

// OvertimePay returns the overtime part of a row's gross.
func OvertimePay(row payroll.Row) decimal.Decimal {
	return row.Rate.Mul(payroll.OvertimeMultiplier).Mul(decimal.NewFromFloat(row.OTHours))
}

// NetSales sums record totals, excluding gift card sales. Returns are
// negative and reduce the total.
func NetSales(sales []sale.Record) decimal.Decimal {
	total := decimal.Zero
	for _, rec := range sales {
		if rec.IsGiftCard() {
			continue
		}
		total = total.Add(rec.Total)
	}
	return total
}

// Summarize rolls payroll rows up against the store's net sales and
// weekly target. The payroll percentage is 0 when there are no net
// sales.
func Summarize(rows []payroll.Row, sales []sale.Record, weeklyTarget decimal.Decimal) payroll.StoreSummary {
	totalGross := decimal.Zero
	for _, r := range rows {
		totalGross = totalGross.Add(r.WeeklyGrossEarnings)
	}
	net := NetSales(sales)

	percentage := decimal.Zero
	if !net.IsZero() {
		percentage = totalGross.Div(net).Mul(hundred)
	}

	return payroll.StoreSummary{
		TotalGross:        totalGross,
		NetSales:          net,
		WeeklySalesTarget: weeklyTarget,
		PayrollPercentage: percentage,
		TargetVsActual:    net.Sub(weeklyTarget),
	}
}
