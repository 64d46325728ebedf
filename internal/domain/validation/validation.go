// Package validation contiene las reglas puras de los invariantes de entidad.
// Ninguna función toca almacenamiento; el caller las invoca antes de persistir.
package validation

import (
	"strings"
	"unicode/utf8"

	"github.com/jhoicas/rustock/internal/domain"
	"github.com/shopspring/decimal"
)

// MoneyScale decimales que admiten las columnas NUMERIC(14,2).
const MoneyScale = 2

// Longitudes mínimas para credenciales de Manager.
const (
	MinUsernameLength = 3
	MinPasswordLength = 4
)

// TotalTolerance diferencia absoluta admitida entre unit_price × quantity y total_price.
var TotalTolerance = decimal.NewFromFloat(0.01)

// SaleLine valores de una línea de venta que se validan.
type SaleLine struct {
	Quantity   int
	UnitPrice  decimal.Decimal
	TotalPrice decimal.Decimal
}

// Product valida nombre no vacío, precio >= 0 y cantidad >= 0.
func Product(name string, price decimal.Decimal, quantity int) error {
	if strings.TrimSpace(name) == "" {
		return domain.NewValidationError("name", "el nombre del producto no puede estar vacío")
	}
	if price.IsNegative() {
		return domain.NewValidationError("price", "el precio del producto no puede ser negativo")
	}
	if !fitsMoneyScale(price) {
		return domain.NewValidationError("price", "el precio del producto admite como máximo 2 decimales")
	}
	if quantity < 0 {
		return domain.NewValidationError("quantity", "la cantidad del producto no puede ser negativa")
	}
	return nil
}

// Sale valida que exista al menos una línea y que cada una sea consistente.
func Sale(lines []SaleLine) error {
	if len(lines) == 0 {
		return domain.NewValidationError("items", "la venta debe tener al menos un ítem")
	}
	for _, l := range lines {
		if l.Quantity <= 0 {
			return domain.NewValidationError("quantity", "la cantidad del ítem debe ser positiva")
		}
		if !l.UnitPrice.IsPositive() {
			return domain.NewValidationError("unit_price", "el precio unitario del ítem debe ser positivo")
		}
		if !fitsMoneyScale(l.UnitPrice) {
			return domain.NewValidationError("unit_price", "el precio unitario admite como máximo 2 decimales")
		}
		if !fitsMoneyScale(l.TotalPrice) {
			return domain.NewValidationError("total_price", "el total del ítem admite como máximo 2 decimales")
		}
		expected := l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
		if expected.Sub(l.TotalPrice).Abs().GreaterThan(TotalTolerance) {
			return domain.NewValidationError("total_price", "el total del ítem no coincide con precio unitario × cantidad")
		}
	}
	return nil
}

// Purchase valida cantidad y precio de compra positivos.
func Purchase(quantity int, purchasePrice decimal.Decimal) error {
	if quantity <= 0 {
		return domain.NewValidationError("quantity", "la cantidad comprada debe ser positiva")
	}
	if !purchasePrice.IsPositive() {
		return domain.NewValidationError("purchase_price", "el precio de compra debe ser positivo")
	}
	if !fitsMoneyScale(purchasePrice) {
		return domain.NewValidationError("purchase_price", "el precio de compra admite como máximo 2 decimales")
	}
	return nil
}

// Manager valida usuario, contraseña y nombre completo.
func Manager(username, password, fullName string) error {
	if strings.TrimSpace(username) == "" {
		return domain.NewValidationError("username", "el usuario no puede estar vacío")
	}
	if utf8.RuneCountInString(strings.TrimSpace(username)) < MinUsernameLength {
		return domain.NewValidationError("username", "el usuario debe tener al menos 3 caracteres")
	}
	if strings.TrimSpace(password) == "" {
		return domain.NewValidationError("password", "la contraseña no puede estar vacía")
	}
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return domain.NewValidationError("password", "la contraseña debe tener al menos 4 caracteres")
	}
	if strings.TrimSpace(fullName) == "" {
		return domain.NewValidationError("full_name", "el nombre completo no puede estar vacío")
	}
	return nil
}

// fitsMoneyScale indica si d se guarda sin redondeo ("10.50" sí, "10.005" no).
func fitsMoneyScale(d decimal.Decimal) bool {
	return d.Equal(d.Round(MoneyScale))
}
