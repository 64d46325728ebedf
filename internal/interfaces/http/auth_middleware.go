package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/rustock/internal/application/dto"
	"github.com/jhoicas/rustock/pkg/jwt"
)

// Locals keys para el manager autenticado en Fiber.
const (
	LocalManagerID = "manager_id"
	LocalUsername  = "username"
)

// AuthMiddleware valida el Bearer Token JWT y extrae ManagerID y Username a c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		managerID, username, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil || managerID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalManagerID, managerID)
		c.Locals(LocalUsername, username)
		return c.Next()
	}
}

// activeChecker contrato mínimo para verificar que el manager del token sigue activo.
// Lo implementa *auth.ManagerUseCase.
type activeChecker interface {
	IsActive(ctx context.Context, managerID string) (bool, error)
}

// RequireActiveManager rechaza tokens de managers desactivados después de emitido el token.
// Debe usarse DESPUÉS de AuthMiddleware.
//
// Comportamiento:
//   - 401 si no hay manager en el contexto.
//   - 403 si el manager no existe o está inactivo.
//   - 503 si falla la consulta.
func RequireActiveManager(checker activeChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		managerID := GetManagerID(c)
		if managerID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "manager no encontrado en el token"})
		}
		active, err := checker.IsActive(c.UserContext(), managerID)
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "MANAGER_CHECK_FAILED",
				Message: "no se pudo verificar el manager, intente más tarde",
			})
		}
		if !active {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "MANAGER_INACTIVE", Message: "el manager está desactivado"})
		}
		return c.Next()
	}
}

// GetManagerID devuelve el ManagerID del contexto (después del middleware de auth).
func GetManagerID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalManagerID).(string)
	return s
}

// GetUsername devuelve el usuario del contexto (después del middleware de auth).
func GetUsername(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUsername).(string)
	return s
}
