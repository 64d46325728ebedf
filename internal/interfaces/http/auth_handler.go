package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/rustock/internal/application/auth"
	"github.com/jhoicas/rustock/internal/application/dto"
)

// AuthHandler maneja el login.
type AuthHandler struct {
	login *auth.ThrottledLogin
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(login *auth.ThrottledLogin) *AuthHandler {
	return &AuthHandler{login: login}
}

// Login godoc
// @Summary      Iniciar sesión
// @Description  Tras 3 intentos fallidos el usuario queda bloqueado temporalmente (429).
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "username, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      429   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.Username == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "username y password son requeridos"})
	}
	out, err := h.login.Login(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Me godoc
// @Summary      Manager autenticado
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"manager_id": GetManagerID(c), "username": GetUsername(c)})
}
