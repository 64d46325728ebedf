package auth

import (
	"context"

	"github.com/jhoicas/rustock/internal/domain"
	"github.com/jhoicas/rustock/internal/domain/entity"
)

// DefaultMaxAttempts intentos fallidos permitidos antes de cerrar la sesión.
const DefaultMaxAttempts = 3

// Authenticator resuelve credenciales a un manager activo, o nil.
type Authenticator interface {
	Authenticate(ctx context.Context, username, password string) (*entity.Manager, error)
}

// LoginGuard aplica la política de intentos a una sola sesión (cliente de consola).
// Tras maxAttempts fallos, todo intento posterior devuelve domain.ErrTooManyAttempts.
type LoginGuard struct {
	auth        Authenticator
	maxAttempts int
	failures    int
}

// NewLoginGuard crea el guard. maxAttempts <= 0 usa DefaultMaxAttempts.
func NewLoginGuard(auth Authenticator, maxAttempts int) *LoginGuard {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &LoginGuard{auth: auth, maxAttempts: maxAttempts}
}

// Try intenta autenticar. Credenciales inválidas → domain.ErrUnauthorized mientras queden intentos.
// Los errores de almacenamiento no consumen intentos.
func (g *LoginGuard) Try(ctx context.Context, username, password string) (*entity.Manager, error) {
	if g.Exhausted() {
		return nil, domain.ErrTooManyAttempts
	}
	m, err := g.auth.Authenticate(ctx, username, password)
	if err != nil {
		return nil, err
	}
	if m == nil {
		g.failures++
		if g.Exhausted() {
			return nil, domain.ErrTooManyAttempts
		}
		return nil, domain.ErrUnauthorized
	}
	g.failures = 0
	return m, nil
}

// Remaining intentos que quedan.
func (g *LoginGuard) Remaining() int {
	if g.failures >= g.maxAttempts {
		return 0
	}
	return g.maxAttempts - g.failures
}

// Exhausted indica si la sesión ya no acepta intentos.
func (g *LoginGuard) Exhausted() bool {
	return g.failures >= g.maxAttempts
}
