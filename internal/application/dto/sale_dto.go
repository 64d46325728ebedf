package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleLineRequest producto y cantidad a vender. El precio se toma del producto.
type SaleLineRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

// CreateSaleRequest entrada para registrar una venta.
type CreateSaleRequest struct {
	Items []SaleLineRequest `json:"items" validate:"required,min=1,dive"`
}

// SaleItemResponse línea de venta.
type SaleItemResponse struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
}

// SaleResponse salida de una venta.
type SaleResponse struct {
	ID          string             `json:"id"`
	Items       []SaleItemResponse `json:"items"`
	TotalAmount decimal.Decimal    `json:"total_amount"`
	TotalProfit decimal.Decimal    `json:"total_profit"`
	ManagerID   string             `json:"manager_id,omitempty"`
	Timestamp   time.Time          `json:"timestamp"`
}
