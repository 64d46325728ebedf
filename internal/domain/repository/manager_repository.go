package repository

import (
	"context"

	"github.com/jhoicas/rustock/internal/domain/entity"
)

// ManagerRepository define el puerto de persistencia para Manager.
type ManagerRepository interface {
	Create(ctx context.Context, manager *entity.Manager) error
	GetByID(ctx context.Context, id string) (*entity.Manager, error)
	GetByUsername(ctx context.Context, username string) (*entity.Manager, error)
	// List devuelve el roster completo, más recientes primero.
	List(ctx context.Context) ([]*entity.Manager, error)
	Count(ctx context.Context) (int, error)
	UpdateStatus(ctx context.Context, id string, active bool) error
}
