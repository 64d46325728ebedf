package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/rustock/internal/domain/entity"
	"github.com/jhoicas/rustock/internal/domain/repository"
)

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

// PurchaseRepo implementación de PurchaseRepository sobre PostgreSQL (usable con pool o tx).
type PurchaseRepo struct {
	q Querier
}

// NewPurchaseRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPurchaseRepository(q Querier) *PurchaseRepo {
	return &PurchaseRepo{q: q}
}

// Create inserta la compra.
func (r *PurchaseRepo) Create(ctx context.Context, p *entity.Purchase) error {
	query := `
		INSERT INTO purchases (id, product_id, product_name, quantity, purchase_price, total_cost, manager_id, purchase_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.ProductID, p.ProductName, p.Quantity, p.PurchasePrice, p.TotalCost,
		nullIfEmpty(p.ManagerID), p.PurchaseDate,
	)
	if err != nil {
		return fmt.Errorf("insert purchase: %w", err)
	}
	return nil
}

// List devuelve las compras más recientes primero.
func (r *PurchaseRepo) List(ctx context.Context) ([]*entity.Purchase, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, product_id, product_name, quantity, purchase_price, total_cost, manager_id, purchase_date
		FROM purchases ORDER BY purchase_date DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	defer rows.Close()
	var list []*entity.Purchase
	for rows.Next() {
		var p entity.Purchase
		var managerID *string
		if err := rows.Scan(&p.ID, &p.ProductID, &p.ProductName, &p.Quantity, &p.PurchasePrice,
			&p.TotalCost, &managerID, &p.PurchaseDate); err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		if managerID != nil {
			p.ManagerID = *managerID
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
