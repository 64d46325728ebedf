package inventory

import (
	"context"

	"github.com/jhoicas/rustock/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Garantiza atomicidad para ventas y compras: si fn devuelve error, nada se confirma.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
		purchaseRepo repository.PurchaseRepository,
	) error) error
}
