package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrTooManyAttempts   = errors.New("demasiados intentos de inicio de sesión")
)

// ValidationError describe el primer invariante violado de una entidad.
// Envuelve ErrInvalidInput para que los callers puedan usar errors.Is.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Unwrap permite errors.Is(err, ErrInvalidInput).
func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// NewValidationError construye un ValidationError.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// StockError detalla un faltante de stock al registrar una venta. Envuelve ErrInsufficientStock.
type StockError struct {
	ProductID string
	Available int
	Requested int
}

func (e *StockError) Error() string {
	return fmt.Sprintf("%s: producto %s, disponible %d, solicitado %d",
		ErrInsufficientStock.Error(), e.ProductID, e.Available, e.Requested)
}

// Unwrap permite errors.Is(err, ErrInsufficientStock).
func (e *StockError) Unwrap() error {
	return ErrInsufficientStock
}
