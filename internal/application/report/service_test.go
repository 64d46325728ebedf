package report_test

import (
	"context"
	"testing"

	"github.com/jhoicas/rustock/internal/application/report"
	"github.com/jhoicas/rustock/internal/domain/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Fakes mínimos: solo List se usa en los reportes.

type fakeProducts struct {
	productsPort
	list []*entity.Product
}

func (f fakeProducts) List(context.Context) ([]*entity.Product, error) { return f.list, nil }

type fakeSales struct {
	salesPort
	list []*entity.Sale
}

func (f fakeSales) List(context.Context) ([]*entity.Sale, error) { return f.list, nil }

type fakePurchases struct {
	purchasesPort
	list []*entity.Purchase
}

func (f fakePurchases) List(context.Context) ([]*entity.Purchase, error) { return f.list, nil }

type captureRenderer struct{ got *report.Summary }

func (c *captureRenderer) RenderSummary(_ context.Context, s *report.Summary) ([]byte, error) {
	c.got = s
	return []byte("%PDF"), nil
}

func fixture() (fakeProducts, fakeSales, fakePurchases) {
	widget := entity.NewProduct("Widget", "", decimal.RequireFromString("10.00"), 2)
	gadget := entity.NewProduct("Gadget", "", decimal.RequireFromString("2.50"), 40)

	sale := entity.NewSale([]entity.SaleItem{
		entity.NewSaleItem(widget, 3),
		entity.NewSaleItem(gadget, 2),
	})
	p1 := entity.NewPurchase(widget.ID, 5, decimal.RequireFromString("6.00"))
	p2 := entity.NewPurchase(gadget.ID, 10, decimal.RequireFromString("1.00"))

	return fakeProducts{list: []*entity.Product{gadget, widget}},
		fakeSales{list: []*entity.Sale{sale}},
		fakePurchases{list: []*entity.Purchase{p1, p2}}
}

func TestInventory_TotalesYStockBajo(t *testing.T) {
	products, sales, purchases := fixture()
	svc := report.NewService(products, sales, purchases, nil, 5)

	r, err := svc.Inventory(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, r.TotalProducts)
	assert.Equal(t, 42, r.TotalUnits)
	assert.True(t, r.StockValue.Equal(decimal.RequireFromString("120.00")), "20 + 100, fue %s", r.StockValue)
	require.Len(t, r.LowStock, 1)
	assert.Equal(t, "Widget", r.LowStock[0].Name)
}

func TestSalesYPurchases(t *testing.T) {
	products, sales, purchases := fixture()
	svc := report.NewService(products, sales, purchases, nil, 5)
	ctx := context.Background()

	s, err := svc.Sales(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Count)
	assert.Equal(t, 5, s.Units)
	assert.True(t, s.Revenue.Equal(decimal.RequireFromString("35.00")))

	p, err := svc.Purchases(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, p.Count)
	assert.Equal(t, 15, p.Units)
	assert.True(t, p.TotalCost.Equal(decimal.RequireFromString("40.00")))
}

func TestSummaryPDF(t *testing.T) {
	products, sales, purchases := fixture()
	r := &captureRenderer{}
	svc := report.NewService(products, sales, purchases, r, 5)

	out, err := svc.SummaryPDF(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF"), out)
	require.NotNil(t, r.got)
	assert.Equal(t, 1, r.got.Sales.Count)
}

func TestSummaryPDF_SinRenderer(t *testing.T) {
	products, sales, purchases := fixture()
	svc := report.NewService(products, sales, purchases, nil, 5)
	_, err := svc.SummaryPDF(context.Background())
	assert.ErrorIs(t, err, report.ErrNoRenderer)
}
