package repository

import (
	"context"

	"github.com/jhoicas/rustock/internal/domain/entity"
)

// SaleRepository persiste la cabecera de venta y sus líneas.
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	// CreateItem inserta la línea lineNo (base 0) de la venta.
	CreateItem(ctx context.Context, saleID string, lineNo int, item entity.SaleItem) error
	GetByID(ctx context.Context, id string) (*entity.Sale, error)
	// List devuelve las ventas más recientes primero.
	List(ctx context.Context) ([]*entity.Sale, error)
}
