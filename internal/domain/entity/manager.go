package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/rustock/internal/domain/validation"
	"golang.org/x/crypto/bcrypt"
)

// Manager operador autorizado. Nunca se borra: se desactiva con IsActive=false.
type Manager struct {
	ID           string
	Username     string
	Password     string // texto plano, solo antes de HashPassword
	PasswordHash string // bcrypt
	FullName     string
	CreatedAt    time.Time
	IsActive     bool
}

// NewManager crea un manager activo con la contraseña aún en texto plano.
func NewManager(username, password, fullName string) *Manager {
	return &Manager{
		ID:        uuid.New().String(),
		Username:  username,
		Password:  password,
		FullName:  fullName,
		CreatedAt: time.Now().UTC(),
		IsActive:  true,
	}
}

// Validate delega en validation.Manager. Debe llamarse antes de HashPassword.
func (m *Manager) Validate() error {
	return validation.Manager(m.Username, m.Password, m.FullName)
}

// HashPassword calcula el hash bcrypt y descarta el texto plano.
func (m *Manager) HashPassword() error {
	hash, err := bcrypt.GenerateFromPassword([]byte(m.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	m.PasswordHash = string(hash)
	m.Password = ""
	return nil
}

// CheckPassword compara password con el hash almacenado.
func (m *Manager) CheckPassword(password string) bool {
	if m.PasswordHash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(m.PasswordHash), []byte(password)) == nil
}
