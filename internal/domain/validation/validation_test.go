package validation_test

import (
	"errors"
	"testing"

	"github.com/jhoicas/rustock/internal/domain"
	"github.com/jhoicas/rustock/internal/domain/validation"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// ──────────────────────────────────────────────────────────────────────────────
// Product
// ──────────────────────────────────────────────────────────────────────────────

func TestProduct(t *testing.T) {
	cases := []struct {
		name     string
		prodName string
		price    string
		qty      int
		field    string
	}{
		{"válido", "Widget", "10.00", 5, ""},
		{"precio cero y stock cero válidos", "Widget", "0", 0, ""},
		{"nombre vacío", "", "10.00", 5, "name"},
		{"nombre en blanco", "   \t", "10.00", 5, "name"},
		{"precio negativo", "Widget", "-0.01", 5, "price"},
		{"cantidad negativa", "Widget", "10.00", -1, "quantity"},
		{"precio con 3 decimales", "Widget", "10.005", 5, "price"},
		{"ceros a la derecha no cuentan", "Widget", "10.500", 5, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validation.Product(tc.prodName, dec(tc.price), tc.qty)
			if tc.field == "" {
				assert.NoError(t, err)
				return
			}
			var vErr *domain.ValidationError
			require.True(t, errors.As(err, &vErr), "debe ser ValidationError")
			assert.Equal(t, tc.field, vErr.Field)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Sale
// ──────────────────────────────────────────────────────────────────────────────

func TestSale_SinItems(t *testing.T) {
	err := validation.Sale(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSale_Lineas(t *testing.T) {
	cases := []struct {
		name  string
		line  validation.SaleLine
		field string
	}{
		{"consistente", validation.SaleLine{Quantity: 3, UnitPrice: dec("10.00"), TotalPrice: dec("30.00")}, ""},
		{"dentro de la tolerancia", validation.SaleLine{Quantity: 3, UnitPrice: dec("3.33"), TotalPrice: dec("10.00")}, ""},
		{"precio unitario con 3 decimales", validation.SaleLine{Quantity: 3, UnitPrice: dec("3.333"), TotalPrice: dec("10.00")}, "unit_price"},
		{"total con 3 decimales", validation.SaleLine{Quantity: 1, UnitPrice: dec("10.00"), TotalPrice: dec("10.005")}, "total_price"},
		{"justo en la tolerancia", validation.SaleLine{Quantity: 1, UnitPrice: dec("10.00"), TotalPrice: dec("10.01")}, ""},
		{"fuera de la tolerancia", validation.SaleLine{Quantity: 1, UnitPrice: dec("10.00"), TotalPrice: dec("10.02")}, "total_price"},
		{"cantidad cero", validation.SaleLine{Quantity: 0, UnitPrice: dec("10.00"), TotalPrice: dec("0")}, "quantity"},
		{"precio unitario cero", validation.SaleLine{Quantity: 1, UnitPrice: dec("0"), TotalPrice: dec("0")}, "unit_price"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validation.Sale([]validation.SaleLine{tc.line})
			if tc.field == "" {
				assert.NoError(t, err)
				return
			}
			var vErr *domain.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tc.field, vErr.Field)
		})
	}
}

// Una línea inválida después de una válida también invalida la venta.
func TestSale_SegundaLineaInvalida(t *testing.T) {
	err := validation.Sale([]validation.SaleLine{
		{Quantity: 1, UnitPrice: dec("5"), TotalPrice: dec("5")},
		{Quantity: 2, UnitPrice: dec("5"), TotalPrice: dec("5")},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Purchase
// ──────────────────────────────────────────────────────────────────────────────

func TestPurchase(t *testing.T) {
	assert.NoError(t, validation.Purchase(4, dec("2.50")))
	assert.ErrorIs(t, validation.Purchase(0, dec("2.50")), domain.ErrInvalidInput)
	assert.ErrorIs(t, validation.Purchase(4, dec("0")), domain.ErrInvalidInput)

	var vErr *domain.ValidationError
	require.ErrorAs(t, validation.Purchase(3, dec("0.333")), &vErr)
	assert.Equal(t, "purchase_price", vErr.Field)
}

// ──────────────────────────────────────────────────────────────────────────────
// Manager
// ──────────────────────────────────────────────────────────────────────────────

func TestManager(t *testing.T) {
	cases := []struct {
		name                         string
		username, password, fullName string
		field                        string
	}{
		{"válido", "ana", "1234", "Ana Pérez", ""},
		{"usuario vacío", "  ", "1234", "Ana", "username"},
		{"usuario corto", "an", "1234", "Ana", "username"},
		{"usuario corto con espacios", "  ab ", "1234", "Ana", "username"},
		{"contraseña vacía", "ana", "    ", "Ana", "password"},
		{"contraseña corta", "ana", "123", "Ana", "password"},
		{"nombre vacío", "ana", "1234", "", "full_name"},
		{"usuario multibyte de 3 runas", "ñoñ", "1234", "Ñoño", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validation.Manager(tc.username, tc.password, tc.fullName)
			if tc.field == "" {
				assert.NoError(t, err)
				return
			}
			var vErr *domain.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tc.field, vErr.Field)
		})
	}
}
