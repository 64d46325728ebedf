package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/rustock/internal/domain/validation"
	"github.com/shopspring/decimal"
)

// Purchase entrada de mercancía para un producto existente o recién creado.
type Purchase struct {
	ID            string
	ProductID     string
	ProductName   string
	Quantity      int
	PurchasePrice decimal.Decimal // costo unitario
	TotalCost     decimal.Decimal
	ManagerID     string
	PurchaseDate  time.Time
}

// NewPurchase calcula TotalCost = PurchasePrice × Quantity.
func NewPurchase(productID string, quantity int, purchasePrice decimal.Decimal) *Purchase {
	return &Purchase{
		ID:            uuid.New().String(),
		ProductID:     productID,
		Quantity:      quantity,
		PurchasePrice: purchasePrice,
		TotalCost:     purchasePrice.Mul(decimal.NewFromInt(int64(quantity))),
		PurchaseDate:  time.Now().UTC(),
	}
}

// Validate delega en validation.Purchase.
func (p *Purchase) Validate() error {
	return validation.Purchase(p.Quantity, p.PurchasePrice)
}
