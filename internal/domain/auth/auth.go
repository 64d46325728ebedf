// Package auth compara credenciales contra el roster de managers.
package auth

import (
	"strings"

	"github.com/jhoicas/rustock/internal/domain/entity"
)

// Authenticate devuelve el manager activo cuyo usuario (sensible a mayúsculas) y contraseña
// coinciden. Devuelve nil en cualquier otro caso sin distinguir la causa.
func Authenticate(username, password string, roster []*entity.Manager) *entity.Manager {
	for _, m := range roster {
		if m == nil || m.Username != username {
			continue
		}
		if m.IsActive && m.CheckPassword(password) {
			return m
		}
	}
	return nil
}

// HasCredentials rechaza usuario o contraseña en blanco antes de llegar al almacenamiento.
func HasCredentials(username, password string) bool {
	return strings.TrimSpace(username) != "" && strings.TrimSpace(password) != ""
}
