package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/rustock/internal/domain/entity"
	"github.com/jhoicas/rustock/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo persiste ventas normalizadas en sales (cabecera) + sale_items (líneas).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create inserta la cabecera. Las líneas se insertan con CreateItem en la misma tx.
func (r *SaleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, total_amount, total_profit, manager_id, sale_date)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query,
		sale.ID, sale.TotalAmount, sale.TotalProfit, nullIfEmpty(sale.ManagerID), sale.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// CreateItem inserta una línea de la venta.
func (r *SaleRepo) CreateItem(ctx context.Context, saleID string, lineNo int, item entity.SaleItem) error {
	query := `
		INSERT INTO sale_items (sale_id, line_no, product_id, product_name, quantity, unit_price, total_price)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		saleID, lineNo, item.ProductID, item.ProductName, item.Quantity, item.UnitPrice, item.TotalPrice,
	)
	if err != nil {
		return fmt.Errorf("insert sale item: %w", err)
	}
	return nil
}

// GetByID obtiene la venta con sus líneas en orden. Devuelve (nil, nil) si no existe.
func (r *SaleRepo) GetByID(ctx context.Context, id string) (*entity.Sale, error) {
	var s entity.Sale
	var managerID *string
	err := r.q.QueryRow(ctx,
		`SELECT id, total_amount, total_profit, manager_id, sale_date FROM sales WHERE id = $1`, id,
	).Scan(&s.ID, &s.TotalAmount, &s.TotalProfit, &managerID, &s.Timestamp)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	if managerID != nil {
		s.ManagerID = *managerID
	}
	items, err := r.items(ctx, id)
	if err != nil {
		return nil, err
	}
	s.Items = items
	return &s, nil
}

// List devuelve todas las ventas con sus líneas, más recientes primero.
// Se usa una sola consulta para no retener una conexión mientras se abre otra.
func (r *SaleRepo) List(ctx context.Context) ([]*entity.Sale, error) {
	query := `
		SELECT s.id, s.total_amount, s.total_profit, s.manager_id, s.sale_date,
		       i.product_id, i.product_name, i.quantity, i.unit_price, i.total_price
		FROM sales s
		JOIN sale_items i ON i.sale_id = s.id
		ORDER BY s.sale_date DESC, s.id, i.line_no`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	var list []*entity.Sale
	var current *entity.Sale
	for rows.Next() {
		var (
			s         entity.Sale
			managerID *string
			it        entity.SaleItem
		)
		if err := rows.Scan(&s.ID, &s.TotalAmount, &s.TotalProfit, &managerID, &s.Timestamp,
			&it.ProductID, &it.ProductName, &it.Quantity, &it.UnitPrice, &it.TotalPrice); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		if current == nil || current.ID != s.ID {
			if managerID != nil {
				s.ManagerID = *managerID
			}
			current = &s
			list = append(list, current)
		}
		current.Items = append(current.Items, it)
	}
	return list, rows.Err()
}

func (r *SaleRepo) items(ctx context.Context, saleID string) ([]entity.SaleItem, error) {
	rows, err := r.q.Query(ctx, `
		SELECT product_id, product_name, quantity, unit_price, total_price
		FROM sale_items WHERE sale_id = $1 ORDER BY line_no`, saleID)
	if err != nil {
		return nil, fmt.Errorf("list sale items: %w", err)
	}
	defer rows.Close()
	var items []entity.SaleItem
	for rows.Next() {
		var it entity.SaleItem
		if err := rows.Scan(&it.ProductID, &it.ProductName, &it.Quantity, &it.UnitPrice, &it.TotalPrice); err != nil {
			return nil, fmt.Errorf("scan sale item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
