package traffic

import (
	"context"

	"github.com/cmlabs-hris/storeops-backend-go/internal/domain/schedule"
)

type TrafficService interface {
	RecordCount(ctx context.Context, req RecordCountRequest) (HourlyCountResponse, error)
	GetStoreTraffic(ctx context.Context, req schedule.StoreWeek) (StoreTrafficResponse, error)
}
