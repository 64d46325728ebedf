package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RestockRequest compra de un producto existente.
type RestockRequest struct {
	ProductID     string          `json:"product_id" validate:"required"`
	Quantity      int             `json:"quantity" validate:"required,gt=0"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
}

// NewProductPurchaseRequest compra que da de alta un producto nuevo.
type NewProductPurchaseRequest struct {
	Name          string          `json:"name" validate:"required"`
	Description   string          `json:"description"`
	SellingPrice  decimal.Decimal `json:"selling_price"`
	Quantity      int             `json:"quantity" validate:"required,gt=0"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
}

// PurchaseResponse salida de una compra.
type PurchaseResponse struct {
	ID            string          `json:"id"`
	ProductID     string          `json:"product_id"`
	ProductName   string          `json:"product_name"`
	Quantity      int             `json:"quantity"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	TotalCost     decimal.Decimal `json:"total_cost"`
	ManagerID     string          `json:"manager_id,omitempty"`
	PurchaseDate  time.Time       `json:"purchase_date"`
}
