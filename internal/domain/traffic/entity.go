package traffic

import (
	"time"

	"github.com/cmlabs-hris/storeops-backend-go/internal/pkg/week"
)

// HourlyCount is the door counter (traffic) and register count
// (transactions) for one hour of one store day. It is recorded
// independently of sale records.
type HourlyCount struct {
	StoreID      string
	Week         int
	Year         int
	Day          week.Day
	Hour         int // 0-23
	Traffic      int
	Transactions int
	UpdatedAt    time.Time
}
