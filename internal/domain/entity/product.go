package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/rustock/internal/domain/validation"
	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario con su stock disponible.
// Sale y Purchase lo referencian por ID sin ser dueños de él.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal // precio de venta unitario
	Quantity    int             // stock disponible
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProductPatch lista solo los campos a sobrescribir. Un campo nil conserva el valor actual;
// un puntero a "" en Description limpia la descripción.
type ProductPatch struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	Quantity    *int
}

// IsEmpty indica si el patch no trae ningún campo.
func (p ProductPatch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.Price == nil && p.Quantity == nil
}

// NewProduct crea un producto con ID nuevo y timestamps en now.
func NewProduct(name, description string, price decimal.Decimal, quantity int) *Product {
	now := time.Now().UTC()
	return &Product{
		ID:          uuid.New().String(),
		Name:        name,
		Description: description,
		Price:       price,
		Quantity:    quantity,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Apply aplica los campos presentes del patch. UpdatedAt se refresca siempre.
func (p *Product) Apply(patch ProductPatch) {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Quantity != nil {
		p.Quantity = *patch.Quantity
	}
	p.UpdatedAt = time.Now().UTC()
}

// Validate delega en validation.Product.
func (p *Product) Validate() error {
	return validation.Product(p.Name, p.Price, p.Quantity)
}

// StockValue devuelve Price × Quantity.
func (p *Product) StockValue() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.Quantity)))
}
