package sale

import (
	"time"

	"github.com/cmlabs-hris/storeops-backend-go/internal/pkg/week"
	"github.com/shopspring/decimal"
)

// Type is the transaction kind.
type Type string

const (
	TypeRegular  Type = "Regular"
	TypeEmployee Type = "Employee"
	TypeGiftCard Type = "GiftCard"
	TypeReturn   Type = "Return"
)

var TypeValues = []string{
	string(TypeRegular),
	string(TypeEmployee),
	string(TypeGiftCard),
	string(TypeReturn),
}

// Record is one transaction. Return records always carry Total <= 0.
type Record struct {
	ID                  string
	StoreID             string
	Week                int
	Year                int
	Day                 week.Day
	Type                Type
	Total               decimal.Decimal
	Items               []Item
	PaymentMethod       string
	OriginalStore       *string
	OriginalSalesPerson *string
	// LinkedRecordID points at the twin record of a cross-store return.
	LinkedRecordID *string
	CreatedAt      time.Time
}

func (r Record) IsGiftCard() bool { return r.Type == TypeGiftCard }

func (r Record) IsReturn() bool { return r.Type == TypeReturn }

// Item is one line of a transaction. SalesRep holds the seller's display
// name, not an employee id.
type Item struct {
	Description string           `json:"description"`
	Category    string           `json:"category"`
	Quantity    int              `json:"quantity"`
	Price       decimal.Decimal  `json:"price"`
	Total       *decimal.Decimal `json:"total,omitempty"`
	SalesRep    string           `json:"sales_rep"`
}

// LineTotal is Total when recorded, otherwise Price * Quantity.
func (i Item) LineTotal() decimal.Decimal {
	if i.Total != nil {
		return *i.Total
	}
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// ItemsTotal sums LineTotal over items.
func ItemsTotal(items []Item) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.LineTotal())
	}
	return total
}
