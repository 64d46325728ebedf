package dto

import "time"

// CreateManagerRequest entrada para crear un manager (password en texto, se hashea en use case).
type CreateManagerRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=4"`
	FullName string `json:"full_name" validate:"required"`
}

// UpdateManagerStatusRequest activa o desactiva un manager. is_active es obligatorio.
type UpdateManagerStatusRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}

// ManagerResponse salida de un manager (sin password).
type ManagerResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	FullName  string    `json:"full_name"`
	CreatedAt time.Time `json:"created_at"`
	IsActive  bool      `json:"is_active"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT.
type LoginResponse struct {
	Token   string          `json:"token"`
	Manager ManagerResponse `json:"manager"`
}
