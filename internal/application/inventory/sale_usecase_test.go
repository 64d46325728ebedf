package inventory_test

import (
	"context"
	"testing"

	"github.com/jhoicas/rustock/internal/application/dto"
	"github.com/jhoicas/rustock/internal/application/inventory"
	"github.com/jhoicas/rustock/internal/domain"
	"github.com/jhoicas/rustock/internal/domain/entity"
	"github.com/jhoicas/rustock/internal/testutil/memstore"
	"github.com/jhoicas/rustock/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSaleUC(db *memstore.Store) *inventory.SaleUseCase {
	return inventory.NewSaleUseCase(db, db.ProductRepo(), db.SaleRepo(), logger.Nop())
}

func seedProduct(t *testing.T, db *memstore.Store, name, price string, qty int) *entity.Product {
	t.Helper()
	p := entity.NewProduct(name, "", decimal.RequireFromString(price), qty)
	require.NoError(t, (db.ProductRepo()).Create(context.Background(), p))
	return p
}

func saleOf(lines ...dto.SaleLineRequest) dto.CreateSaleRequest {
	return dto.CreateSaleRequest{Items: lines}
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenario Widget: stock 5, vender 3 → 2 y total 30.00; vender 3 otra vez → stock insuficiente.
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordSale_EscenarioWidget(t *testing.T) {
	ctx := context.Background()
	db := memstore.New()
	uc := newSaleUC(db)
	widget := seedProduct(t, db, "Widget", "10.00", 5)

	out, err := uc.RecordSale(ctx, "mgr-1", saleOf(dto.SaleLineRequest{ProductID: widget.ID, Quantity: 3}))
	require.NoError(t, err)
	assert.True(t, out.TotalAmount.Equal(decimal.RequireFromString("30.00")), "total debe ser 30.00, fue %s", out.TotalAmount)
	assert.Equal(t, "mgr-1", out.ManagerID)
	assert.Equal(t, 2, db.Quantity(widget.ID))

	_, err = uc.RecordSale(ctx, "mgr-1", saleOf(dto.SaleLineRequest{ProductID: widget.ID, Quantity: 3}))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	var stockErr *domain.StockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 2, stockErr.Available)
	assert.Equal(t, 3, stockErr.Requested)

	assert.Equal(t, 2, db.Quantity(widget.ID), "el stock no debe cambiar tras una venta rechazada")
	assert.Len(t, db.SaleRows, 1, "la venta rechazada no debe persistir")
}

// Ítem 2 de 3 sin stock: los ítems 1 y 3 deben quedar exactamente como antes.
func TestRecordSale_AtomicidadSegundoItem(t *testing.T) {
	ctx := context.Background()
	db := memstore.New()
	uc := newSaleUC(db)
	a := seedProduct(t, db, "A", "1.00", 10)
	b := seedProduct(t, db, "B", "2.00", 1)
	c := seedProduct(t, db, "C", "3.00", 10)

	_, err := uc.RecordSale(ctx, "", saleOf(
		dto.SaleLineRequest{ProductID: a.ID, Quantity: 2},
		dto.SaleLineRequest{ProductID: b.ID, Quantity: 5},
		dto.SaleLineRequest{ProductID: c.ID, Quantity: 3},
	))
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, 10, db.Quantity(a.ID))
	assert.Equal(t, 1, db.Quantity(b.ID))
	assert.Equal(t, 10, db.Quantity(c.ID))
	assert.Empty(t, db.SaleRows)
}

// Un fallo de almacenamiento al insertar una línea también revierte todo.
func TestRecordSale_FalloInsertandoLinea(t *testing.T) {
	ctx := context.Background()
	db := memstore.New()
	db.FailSaleItemAt = 1
	uc := newSaleUC(db)
	a := seedProduct(t, db, "A", "1.00", 10)
	b := seedProduct(t, db, "B", "2.00", 10)

	_, err := uc.RecordSale(ctx, "", saleOf(
		dto.SaleLineRequest{ProductID: a.ID, Quantity: 1},
		dto.SaleLineRequest{ProductID: b.ID, Quantity: 1},
	))
	require.ErrorIs(t, err, memstore.ErrInjected)
	assert.Equal(t, 10, db.Quantity(a.ID))
	assert.Equal(t, 10, db.Quantity(b.ID))
	assert.Empty(t, db.SaleRows)
}

// Dos líneas del mismo producto se suman contra el mismo stock.
func TestRecordSale_LineasRepetidasNoSobrevenden(t *testing.T) {
	ctx := context.Background()
	db := memstore.New()
	uc := newSaleUC(db)
	a := seedProduct(t, db, "A", "1.00", 5)

	_, err := uc.RecordSale(ctx, "", saleOf(
		dto.SaleLineRequest{ProductID: a.ID, Quantity: 3},
		dto.SaleLineRequest{ProductID: a.ID, Quantity: 3},
	))
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 5, db.Quantity(a.ID))
}

func TestRecordSale_SinItems(t *testing.T) {
	uc := newSaleUC(memstore.New())
	_, err := uc.RecordSale(context.Background(), "", saleOf())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRecordSale_CantidadNoPositiva(t *testing.T) {
	db := memstore.New()
	uc := newSaleUC(db)
	a := seedProduct(t, db, "A", "1.00", 5)
	_, err := uc.RecordSale(context.Background(), "", saleOf(dto.SaleLineRequest{ProductID: a.ID, Quantity: 0}))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 5, db.Quantity(a.ID))
}

func TestRecordSale_ProductoInexistente(t *testing.T) {
	uc := newSaleUC(memstore.New())
	_, err := uc.RecordSale(context.Background(), "", saleOf(dto.SaleLineRequest{ProductID: "nope", Quantity: 1}))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// El producto se borra entre la lectura de precio y la tx: la venta falla sin efectos.
func TestRecordSaleTx_ProductoBorradoAntesDeLaTx(t *testing.T) {
	ctx := context.Background()
	db := memstore.New()
	uc := newSaleUC(db)
	a := seedProduct(t, db, "A", "1.00", 5)
	sale := entity.NewSale([]entity.SaleItem{entity.NewSaleItem(a, 1)})
	delete(db.ProductRows, a.ID)

	err := uc.RecordSaleTx(ctx, sale)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, db.SaleRows)
}

func TestSale_GetByIDYList(t *testing.T) {
	ctx := context.Background()
	db := memstore.New()
	uc := newSaleUC(db)
	a := seedProduct(t, db, "A", "1.50", 5)

	out, err := uc.RecordSale(ctx, "", saleOf(dto.SaleLineRequest{ProductID: a.ID, Quantity: 2}))
	require.NoError(t, err)

	got, err := uc.GetByID(ctx, out.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "A", got.Items[0].ProductName)
	assert.True(t, got.Items[0].TotalPrice.Equal(decimal.RequireFromString("3.00")))

	missing, err := uc.GetByID(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)

	list, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
