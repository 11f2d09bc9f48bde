package sale

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/storeops-backend-go/internal/domain/sale"
	"github.com/cmlabs-hris/storeops-backend-go/internal/domain/schedule"
	"github.com/cmlabs-hris/storeops-backend-go/internal/pkg/validator"
	"github.com/cmlabs-hris/storeops-backend-go/internal/pkg/week"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSaleRepo struct {
	records []sale.Record
	linked  int
}

func (f *fakeSaleRepo) Create(ctx context.Context, r sale.Record) (sale.Record, error) {
	f.records = append(f.records, r)
	return r, nil
}

func (f *fakeSaleRepo) CreateLinked(ctx context.Context, p, o sale.Record) (sale.Record, sale.Record, error) {
	f.linked++
	f.records = append(f.records, p, o)
	return p, o, nil
}

func (f *fakeSaleRepo) ListByStoreWeek(ctx context.Context, storeID string, wk, year int) ([]sale.Record, error) {
	var out []sale.Record
	for _, r := range f.records {
		if r.StoreID == storeID && r.Week == wk && r.Year == year {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeSaleRepo) ListByWeek(ctx context.Context, wk, year int) ([]sale.Record, error) {
	return f.records, nil
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func items() []sale.Item {
	return []sale.Item{
		{Description: "Runner", Category: "Shoes", Quantity: 1, Price: dec("30"), SalesRep: "Alice"},
		{Description: "Socks", Category: "Socks", Quantity: 2, Price: dec("10"), SalesRep: "Alice"},
	}
}

func TestCreateSale(t *testing.T) {
	repo := &fakeSaleRepo{}
	svc := NewSaleService(repo)
	ctx := context.Background()

	resp, err := svc.CreateSale(ctx, sale.CreateSaleRequest{
		StoreID: "NYC01", Week: 10, Year: 2024, Day: "Monday",
		Type: "Regular", Items: items(), PaymentMethod: "card",
	})
	require.NoError(t, err)
	assert.True(t, resp.Total.Equal(dec("50")))
	assert.Equal(t, week.Monday, resp.Day)
	assert.NotEmpty(t, resp.ID)

	given := dec("45")
	resp, err = svc.CreateSale(ctx, sale.CreateSaleRequest{
		StoreID: "NYC01", Week: 10, Year: 2024, Day: "monday",
		Type: "GiftCard", Total: &given, Items: items(),
	})
	require.NoError(t, err)
	assert.True(t, resp.Total.Equal(given))

	_, err = svc.CreateSale(ctx, sale.CreateSaleRequest{
		StoreID: "NYC01", Week: 10, Year: 2024, Day: "monday", Type: "Return", Items: items(),
	})
	assert.ErrorIs(t, err, sale.ErrReturnViaCreateSale)

	_, err = svc.CreateSale(ctx, sale.CreateSaleRequest{StoreID: "NYC01", Week: 10, Year: 2024, Day: "someday", Type: "Barter"})
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

func TestCreateReturn_SameStore(t *testing.T) {
	repo := &fakeSaleRepo{}
	svc := NewSaleService(repo)

	resp, err := svc.CreateReturn(context.Background(), sale.CreateReturnRequest{
		StoreID: "NYC01", Week: 10, Year: 2024, Day: "tuesday", Items: items(),
	})
	require.NoError(t, err)
	assert.Nil(t, resp.Originating)
	assert.Equal(t, sale.TypeReturn, resp.Processing.Type)
	assert.True(t, resp.Processing.Total.Equal(dec("-50")))
	for _, it := range resp.Processing.Items {
		require.NotNil(t, it.Total)
		assert.True(t, it.Total.IsNegative())
	}
	assert.Equal(t, 0, repo.linked)
}

func TestCreateReturn_CrossStore(t *testing.T) {
	repo := &fakeSaleRepo{}
	svc := NewSaleService(repo)
	origin := "BOS02"
	seller := "Cy"

	resp, err := svc.CreateReturn(context.Background(), sale.CreateReturnRequest{
		StoreID: "NYC01", Week: 10, Year: 2024, Day: "tuesday", Items: items(),
		OriginalStore: &origin, OriginalSalesPerson: &seller,
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Originating)
	assert.Equal(t, 1, repo.linked)

	p, o := resp.Processing, *resp.Originating
	assert.Equal(t, "NYC01", p.StoreID)
	assert.Equal(t, "BOS02", o.StoreID)
	assert.True(t, p.Total.IsZero())
	assert.True(t, o.Total.Equal(dec("-50")))
	assert.Len(t, p.Items, 2)
	assert.Len(t, o.Items, 2)
	assert.Equal(t, "Cy", o.Items[0].SalesRep)

	require.NotNil(t, p.LinkedRecordID)
	require.NotNil(t, o.LinkedRecordID)
	assert.Equal(t, o.ID, *p.LinkedRecordID)
	assert.Equal(t, p.ID, *o.LinkedRecordID)
}

func TestListSales(t *testing.T) {
	repo := &fakeSaleRepo{records: []sale.Record{
		{ID: "a", StoreID: "NYC01", Week: 10, Year: 2024},
		{ID: "b", StoreID: "BOS02", Week: 10, Year: 2024},
	}}
	svc := NewSaleService(repo)

	resp, err := svc.ListSales(context.Background(), schedule.StoreWeek{StoreID: "NYC01", Week: 10, Year: 2024})
	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, "a", resp[0].ID)
}
