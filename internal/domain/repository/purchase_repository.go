package repository

import (
	"context"

	"github.com/jhoicas/rustock/internal/domain/entity"
)

// PurchaseRepository persiste las compras (entradas de stock).
type PurchaseRepository interface {
	Create(ctx context.Context, purchase *entity.Purchase) error
	// List devuelve las compras más recientes primero.
	List(ctx context.Context) ([]*entity.Purchase, error)
}
