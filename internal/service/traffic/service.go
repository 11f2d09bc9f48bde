package traffic

import (
	"context"
	"fmt"
	"sort"

	"github.com/cmlabs-hris/storeops-backend-go/internal/domain/schedule"
	"github.com/cmlabs-hris/storeops-backend-go/internal/domain/traffic"
	"github.com/cmlabs-hris/storeops-backend-go/internal/pkg/week"
	"github.com/cmlabs-hris/storeops-backend-go/internal/service/report"
)

type trafficServiceImpl struct {
	trafficRepo traffic.TrafficRepository
}

func NewTrafficService(trafficRepo traffic.TrafficRepository) traffic.TrafficService {
	return &trafficServiceImpl{trafficRepo: trafficRepo}
}

// RecordCount implements traffic.TrafficService. A second count for the
// same hour replaces the first.
func (s *trafficServiceImpl) RecordCount(ctx context.Context, req traffic.RecordCountRequest) (traffic.HourlyCountResponse, error) {
	if err := req.Validate(); err != nil {
		return traffic.HourlyCountResponse{}, err
	}

	day, _ := week.ParseDay(req.Day)
	count, err := s.trafficRepo.Upsert(ctx, traffic.HourlyCount{
		StoreID:      req.StoreID,
		Week:         req.Week,
		Year:         req.Year,
		Day:          day,
		Hour:         req.Hour,
		Traffic:      req.Traffic,
		Transactions: req.Transactions,
	})
	if err != nil {
		return traffic.HourlyCountResponse{}, fmt.Errorf("failed to record traffic count: %w", err)
	}
	return toResponse(count), nil
}

// GetStoreTraffic implements traffic.TrafficService.
func (s *trafficServiceImpl) GetStoreTraffic(ctx context.Context, req schedule.StoreWeek) (traffic.StoreTrafficResponse, error) {
	if err := req.Validate(); err != nil {
		return traffic.StoreTrafficResponse{}, err
	}

	counts, err := s.trafficRepo.ListByStoreWeek(ctx, req.StoreID, req.Week, req.Year)
	if err != nil {
		return traffic.StoreTrafficResponse{}, fmt.Errorf("failed to list traffic counts: %w", err)
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Day != counts[j].Day {
			return counts[i].Day.Index() < counts[j].Day.Index()
		}
		return counts[i].Hour < counts[j].Hour
	})

	resp := traffic.StoreTrafficResponse{
		StoreID:        req.StoreID,
		Week:           req.Week,
		Year:           req.Year,
		ConversionRate: report.ConversionRate(counts),
		Hours:          make([]traffic.HourlyCountResponse, 0, len(counts)),
	}
	for _, c := range counts {
		resp.TotalTraffic += c.Traffic
		resp.TotalTransactions += c.Transactions
		resp.Hours = append(resp.Hours, toResponse(c))
	}
	return resp, nil
}

func toResponse(c traffic.HourlyCount) traffic.HourlyCountResponse {
	return traffic.HourlyCountResponse{
		Day:          c.Day,
		Hour:         c.Hour,
		Traffic:      c.Traffic,
		Transactions: c.Transactions,
	}
}
