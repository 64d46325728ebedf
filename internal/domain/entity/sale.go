package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/rustock/internal/domain/validation"
	"github.com/shopspring/decimal"
)

// SaleItem línea de una venta. UnitPrice es una foto del precio al momento de vender.
type SaleItem struct {
	ProductID   string
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	TotalPrice  decimal.Decimal
}

// Sale agrupa las líneas vendidas en una sola operación atómica.
// TotalProfit queda reservado: no se calcula contra costo.
type Sale struct {
	ID          string
	Items       []SaleItem
	TotalAmount decimal.Decimal
	TotalProfit decimal.Decimal
	ManagerID   string
	Timestamp   time.Time
}

// NewSaleItem arma la línea con el precio actual del producto.
func NewSaleItem(product *Product, quantity int) SaleItem {
	return SaleItem{
		ProductID:   product.ID,
		ProductName: product.Name,
		Quantity:    quantity,
		UnitPrice:   product.Price,
		TotalPrice:  product.Price.Mul(decimal.NewFromInt(int64(quantity))),
	}
}

// NewSale crea la venta y calcula TotalAmount como suma de los totales de línea.
func NewSale(items []SaleItem) *Sale {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.TotalPrice)
	}
	return &Sale{
		ID:          uuid.New().String(),
		Items:       items,
		TotalAmount: total,
		TotalProfit: decimal.Zero,
		Timestamp:   time.Now().UTC(),
	}
}

// Validate delega en validation.Sale.
func (s *Sale) Validate() error {
	lines := make([]validation.SaleLine, 0, len(s.Items))
	for _, it := range s.Items {
		lines = append(lines, validation.SaleLine{
			Quantity:   it.Quantity,
			UnitPrice:  it.UnitPrice,
			TotalPrice: it.TotalPrice,
		})
	}
	return validation.Sale(lines)
}

// Units devuelve la cantidad total de unidades vendidas.
func (s *Sale) Units() int {
	n := 0
	for _, it := range s.Items {
		n += it.Quantity
	}
	return n
}
