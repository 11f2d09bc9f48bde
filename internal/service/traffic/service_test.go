package traffic

import (
	"context"
	"fmt"
	"testing"

	"github.com/cmlabs-hris/storeops-backend-go/internal/domain/schedule"
	"github.com/cmlabs-hris/storeops-backend-go/internal/domain/traffic"
	"github.com/cmlabs-hris/storeops-backend-go/internal/pkg/validator"
	"github.com/cmlabs-hris/storeops-backend-go/internal/pkg/week"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTrafficRepo struct {
	counts map[string]traffic.HourlyCount
}

func (f *fakeTrafficRepo) Upsert(ctx context.Context, c traffic.HourlyCount) (traffic.HourlyCount, error) {
	f.counts[fmt.Sprintf("%s/%d", c.Day, c.Hour)] = c
	return c, nil
}

func (f *fakeTrafficRepo) ListByStoreWeek(ctx context.Context, storeID string, wk, year int) ([]traffic.HourlyCount, error) {
	var out []traffic.HourlyCount
	for _, c := range f.counts {
		out = append(out, c)
	}
	return out, nil
}

func TestRecordAndGetTraffic(t *testing.T) {
	repo := &fakeTrafficRepo{counts: map[string]traffic.HourlyCount{}}
	svc := NewTrafficService(repo)
	ctx := context.Background()

	record := func(day string, hour, visitors, tx int) {
		_, err := svc.RecordCount(ctx, traffic.RecordCountRequest{
			StoreID: "NYC01", Week: 10, Year: 2024, Day: day, Hour: hour, Traffic: visitors, Transactions: tx,
		})
		require.NoError(t, err)
	}
	record("tuesday", 9, 10, 1)
	record("monday", 14, 50, 5)
	record("monday", 10, 30, 2)
	// replaces the earlier count for that hour
	record("monday", 10, 40, 4)

	resp, err := svc.GetStoreTraffic(ctx, schedule.StoreWeek{StoreID: "NYC01", Week: 10, Year: 2024})
	require.NoError(t, err)

	assert.Equal(t, 100, resp.TotalTraffic)
	assert.Equal(t, 10, resp.TotalTransactions)
	assert.True(t, resp.ConversionRate.Equal(decimal.NewFromInt(10)))
	require.Len(t, resp.Hours, 3)
	assert.Equal(t, week.Monday, resp.Hours[0].Day)
	assert.Equal(t, 10, resp.Hours[0].Hour)
	assert.Equal(t, 14, resp.Hours[1].Hour)
	assert.Equal(t, week.Tuesday, resp.Hours[2].Day)
}

func TestRecordCount_Invalid(t *testing.T) {
	svc := NewTrafficService(&fakeTrafficRepo{counts: map[string]traffic.HourlyCount{}})

	_, err := svc.RecordCount(context.Background(), traffic.RecordCountRequest{
		StoreID: "NYC01", Week: 10, Year: 2024, Day: "monday", Hour: 24, Traffic: -1,
	})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 2)
}
