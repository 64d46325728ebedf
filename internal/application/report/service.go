// Package report arma los reportes de inventario, ventas y compras a partir de los repositorios.
package report

import (
	"context"
	"time"

	"github.com/jhoicas/rustock/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// ProductLine fila de producto en el reporte de inventario.
type ProductLine struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Value    decimal.Decimal `json:"value"` // Price × Quantity
}

// InventoryReport existencias a la fecha.
type InventoryReport struct {
	Products      []ProductLine   `json:"products"`
	TotalProducts int             `json:"total_products"`
	TotalUnits    int             `json:"total_units"`
	StockValue    decimal.Decimal `json:"stock_value"`
	Threshold     int             `json:"low_stock_threshold"`
	LowStock      []ProductLine   `json:"low_stock"` // Quantity <= Threshold
}

// SalesReport totales de ventas.
type SalesReport struct {
	Count   int             `json:"count"`
	Units   int             `json:"units"`
	Revenue decimal.Decimal `json:"revenue"`
}

// PurchaseReport totales de compras.
type PurchaseReport struct {
	Count     int             `json:"count"`
	Units     int             `json:"units"`
	TotalCost decimal.Decimal `json:"total_cost"`
}

// Summary reporte combinado.
type Summary struct {
	GeneratedAt time.Time       `json:"generated_at"`
	Inventory   InventoryReport `json:"inventory"`
	Sales       SalesReport     `json:"sales"`
	Purchases   PurchaseReport  `json:"purchases"`
}

// Renderer convierte un Summary a un documento (PDF).
type Renderer interface {
	RenderSummary(ctx context.Context, s *Summary) ([]byte, error)
}

// Service calcula los reportes.
type Service struct {
	products  repository.ProductRepository
	sales     repository.SaleRepository
	purchases repository.PurchaseRepository
	renderer  Renderer
	threshold int
}

// NewService construye el servicio. renderer puede ser nil si no se exporta PDF.
func NewService(
	products repository.ProductRepository,
	sales repository.SaleRepository,
	purchases repository.PurchaseRepository,
	renderer Renderer,
	lowStockThreshold int,
) *Service {
	return &Service{
		products:  products,
		sales:     sales,
		purchases: purchases,
		renderer:  renderer,
		threshold: lowStockThreshold,
	}
}

// Inventory totales de existencias y productos con stock bajo.
func (s *Service) Inventory(ctx context.Context) (*InventoryReport, error) {
	list, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}
	r := &InventoryReport{
		Products:   make([]ProductLine, 0, len(list)),
		StockValue: decimal.Zero,
		Threshold:  s.threshold,
	}
	for _, p := range list {
		line := ProductLine{
			ID:       p.ID,
			Name:     p.Name,
			Quantity: p.Quantity,
			Price:    p.Price,
			Value:    p.StockValue(),
		}
		r.Products = append(r.Products, line)
		r.TotalUnits += p.Quantity
		r.StockValue = r.StockValue.Add(line.Value)
		if p.Quantity <= s.threshold {
			r.LowStock = append(r.LowStock, line)
		}
	}
	r.TotalProducts = len(r.Products)
	return r, nil
}

// Sales suma de ventas registradas.
func (s *Service) Sales(ctx context.Context) (*SalesReport, error) {
	list, err := s.sales.List(ctx)
	if err != nil {
		return nil, err
	}
	r := &SalesReport{Count: len(list), Revenue: decimal.Zero}
	for _, sale := range list {
		r.Units += sale.Units()
		r.Revenue = r.Revenue.Add(sale.TotalAmount)
	}
	return r, nil
}

// Purchases suma de compras registradas.
func (s *Service) Purchases(ctx context.Context) (*PurchaseReport, error) {
	list, err := s.purchases.List(ctx)
	if err != nil {
		return nil, err
	}
	r := &PurchaseReport{Count: len(list), TotalCost: decimal.Zero}
	for _, p := range list {
		r.Units += p.Quantity
		r.TotalCost = r.TotalCost.Add(p.TotalCost)
	}
	return r, nil
}

// Summary los tres reportes juntos.
func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	inv, err := s.Inventory(ctx)
	if err != nil {
		return nil, err
	}
	sales, err := s.Sales(ctx)
	if err != nil {
		return nil, err
	}
	purchases, err := s.Purchases(ctx)
	if err != nil {
		return nil, err
	}
	return &Summary{
		GeneratedAt: time.Now(),
		Inventory:   *inv,
		Sales:       *sales,
		Purchases:   *purchases,
	}, nil
}

// SummaryPDF genera el resumen y lo renderiza.
func (s *Service) SummaryPDF(ctx context.Context) ([]byte, error) {
	if s.renderer == nil {
		return nil, ErrNoRenderer
	}
	sum, err := s.Summary(ctx)
	if err != nil {
		return nil, err
	}
	return s.renderer.RenderSummary(ctx, sum)
}
