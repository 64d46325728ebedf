// Package memstore implementa los repositorios y el TxRunner en memoria para tests.
// Run toma una copia del estado y la restaura si la función devuelve error.
package memstore

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/jhoicas/rustock/internal/domain"
	"github.com/jhoicas/rustock/internal/domain/entity"
	"github.com/jhoicas/rustock/internal/domain/repository"
)

// ErrInjected error devuelto por los fallos inyectados.
var ErrInjected = errors.New("memstore: fallo inyectado")

// Store estado en memoria. Los campos exportados se pueden inspeccionar desde los tests.
type Store struct {
	mu sync.Mutex

	ProductRows  map[string]entity.Product
	SaleRows     []entity.Sale // orden de inserción
	PurchaseRows []entity.Purchase
	ManagerRows  []*entity.Manager

	FailPurchaseInsert bool
	FailSaleItemAt     int // índice de línea que falla; -1 = nunca
}

// New crea un store vacío.
func New() *Store {
	return &Store{ProductRows: map[string]entity.Product{}, FailSaleItemAt: -1}
}

func (s *Store) ProductRepo() repository.ProductRepository   { return productRepo{s} }
func (s *Store) SaleRepo() repository.SaleRepository         { return saleRepo{s} }
func (s *Store) PurchaseRepo() repository.PurchaseRepository { return purchaseRepo{s} }
func (s *Store) ManagerRepo() repository.ManagerRepository   { return managerRepo{s} }

// Quantity stock actual del producto (0 si no existe).
func (s *Store) Quantity(id string) int {
	return s.ProductRows[id].Quantity
}

// Run implementa inventory.TxRunner.
func (s *Store) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
	purchaseRepo repository.PurchaseRepository,
) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	products := make(map[string]entity.Product, len(s.ProductRows))
	for k, v := range s.ProductRows {
		products[k] = v
	}
	sales := make([]entity.Sale, 0, len(s.SaleRows))
	for _, sale := range s.SaleRows {
		sale.Items = append([]entity.SaleItem(nil), sale.Items...)
		sales = append(sales, sale)
	}
	purchases := append([]entity.Purchase(nil), s.PurchaseRows...)

	if err := fn(productRepo{s}, saleRepo{s}, purchaseRepo{s}); err != nil {
		s.ProductRows, s.SaleRows, s.PurchaseRows = products, sales, purchases
		return err
	}
	return nil
}

// ── Productos ─────────────────────────────────────────────────────────────────

type productRepo struct{ s *Store }

func (r productRepo) Create(_ context.Context, p *entity.Product) error {
	if _, ok := r.s.ProductRows[p.ID]; ok {
		return domain.ErrDuplicate
	}
	r.s.ProductRows[p.ID] = *p
	return nil
}

func (r productRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	p, ok := r.s.ProductRows[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r productRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

func (r productRepo) List(_ context.Context) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.s.ProductRows))
	for _, p := range r.s.ProductRows {
		p := p
		out = append(out, &p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r productRepo) Update(_ context.Context, p *entity.Product) error {
	if _, ok := r.s.ProductRows[p.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.ProductRows[p.ID] = *p
	return nil
}

// AdjustQuantity replica el CHECK (quantity >= 0) de la tabla.
func (r productRepo) AdjustQuantity(_ context.Context, id string, delta int) error {
	p, ok := r.s.ProductRows[id]
	if !ok {
		return domain.ErrNotFound
	}
	if p.Quantity+delta < 0 {
		return domain.ErrInsufficientStock
	}
	p.Quantity += delta
	r.s.ProductRows[id] = p
	return nil
}

func (r productRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.s.ProductRows[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.ProductRows, id)
	return nil
}

// ── Ventas ────────────────────────────────────────────────────────────────────

type saleRepo struct{ s *Store }

func (r saleRepo) Create(_ context.Context, sale *entity.Sale) error {
	header := *sale
	header.Items = nil
	r.s.SaleRows = append(r.s.SaleRows, header)
	return nil
}

func (r saleRepo) CreateItem(_ context.Context, saleID string, lineNo int, item entity.SaleItem) error {
	if lineNo == r.s.FailSaleItemAt {
		return ErrInjected
	}
	for i := range r.s.SaleRows {
		if r.s.SaleRows[i].ID == saleID {
			r.s.SaleRows[i].Items = append(r.s.SaleRows[i].Items, item)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r saleRepo) GetByID(_ context.Context, id string) (*entity.Sale, error) {
	for _, sale := range r.s.SaleRows {
		if sale.ID == id {
			sale := sale
			return &sale, nil
		}
	}
	return nil, nil
}

// List más recientes primero.
func (r saleRepo) List(_ context.Context) ([]*entity.Sale, error) {
	out := make([]*entity.Sale, 0, len(r.s.SaleRows))
	for i := len(r.s.SaleRows) - 1; i >= 0; i-- {
		sale := r.s.SaleRows[i]
		out = append(out, &sale)
	}
	return out, nil
}

// ── Compras ───────────────────────────────────────────────────────────────────

type purchaseRepo struct{ s *Store }

func (r purchaseRepo) Create(_ context.Context, p *entity.Purchase) error {
	if r.s.FailPurchaseInsert {
		return ErrInjected
	}
	r.s.PurchaseRows = append(r.s.PurchaseRows, *p)
	return nil
}

// List más recientes primero.
func (r purchaseRepo) List(_ context.Context) ([]*entity.Purchase, error) {
	out := make([]*entity.Purchase, 0, len(r.s.PurchaseRows))
	for i := len(r.s.PurchaseRows) - 1; i >= 0; i-- {
		p := r.s.PurchaseRows[i]
		out = append(out, &p)
	}
	return out, nil
}

// ── Managers ──────────────────────────────────────────────────────────────────

type managerRepo struct{ s *Store }

func (r managerRepo) Create(_ context.Context, m *entity.Manager) error {
	for _, existing := range r.s.ManagerRows {
		if existing.Username == m.Username {
			return domain.ErrDuplicate
		}
	}
	r.s.ManagerRows = append(r.s.ManagerRows, m)
	return nil
}

func (r managerRepo) GetByID(_ context.Context, id string) (*entity.Manager, error) {
	for _, m := range r.s.ManagerRows {
		if m.ID == id {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

func (r managerRepo) GetByUsername(_ context.Context, username string) (*entity.Manager, error) {
	for _, m := range r.s.ManagerRows {
		if m.Username == username {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

// List más recientes primero.
func (r managerRepo) List(_ context.Context) ([]*entity.Manager, error) {
	out := make([]*entity.Manager, 0, len(r.s.ManagerRows))
	for i := len(r.s.ManagerRows) - 1; i >= 0; i-- {
		cp := *r.s.ManagerRows[i]
		out = append(out, &cp)
	}
	return out, nil
}

func (r managerRepo) Count(_ context.Context) (int, error) {
	return len(r.s.ManagerRows), nil
}

func (r managerRepo) UpdateStatus(_ context.Context, id string, active bool) error {
	for _, m := range r.s.ManagerRows {
		if m.ID == id {
			m.IsActive = active
			return nil
		}
	}
	return domain.ErrNotFound
}
