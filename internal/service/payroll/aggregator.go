package payroll

import (
	"sort"

	"github.com/cmlabs-hris/storeops-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/storeops-backend-go/internal/domain/payroll"
	"github.com/cmlabs-hris/storeops-backend-go/internal/domain/sale"
	"github.com/cmlabs-hris/storeops-backend-go/internal/domain/schedule"
	"github.com/shopspring/decimal"
)

// Aggregate collects one employee's hours and attributed sales across
// every schedule and sale in the snapshot.
//
// Hours come from rows whose ID is the employee id. Sales are matched on
// the item's SalesRep against the employee's name; gift card sales are
// not attributed. Work locations list each store where the employee
// logged hours, marked Home or Guest.
func Aggregate(emp employee.Employee, schedules []schedule.Schedule, sales []sale.Record) payroll.LaborTotals {
	totals := payroll.LaborTotals{
		TotalSales:    decimal.Zero,
		WorkLocations: []string{},
	}

	hoursByStore := make(map[string]float64)
	for _, s := range schedules {
		for _, row := range s.Rows {
			if row.ID != emp.ID {
				continue
			}
			h := row.TotalActualHours()
			totals.TotalHours += h
			hoursByStore[s.StoreID] += h
		}
	}
	for storeID, h := range hoursByStore {
		if h <= 0 {
			continue
		}
		totals.WorkLocations = append(totals.WorkLocations, locationLabel(emp, storeID))
	}
	sort.Strings(totals.WorkLocations)

	if emp.Name == "" {
		return totals
	}
	for _, rec := range sales {
		if rec.IsGiftCard() {
			continue
		}
		for _, item := range rec.Items {
			if item.SalesRep == emp.Name {
				totals.TotalSales = totals.TotalSales.Add(item.LineTotal())
			}
		}
	}
	return totals
}

func locationLabel(emp employee.Employee, storeID string) string {
	if emp.IsHomeStore(storeID) {
		return storeID + " (Home)"
	}
	return storeID + " (Guest)"
}
