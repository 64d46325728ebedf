package repository

import (
	"context"

	"github.com/jhoicas/rustock/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE); solo tiene efecto dentro de una tx.
	GetForUpdate(ctx context.Context, id string) (*entity.Product, error)
	List(ctx context.Context) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	// AdjustQuantity suma delta (positivo o negativo) al stock y refresca updated_at.
	AdjustQuantity(ctx context.Context, id string, delta int) error
	Delete(ctx context.Context, id string) error
}
