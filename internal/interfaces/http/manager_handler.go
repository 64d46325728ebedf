package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/rustock/internal/application/auth"
	"github.com/jhoicas/rustock/internal/application/dto"
	"github.com/jhoicas/rustock/internal/domain"
)

// ManagerHandler administración del roster.
type ManagerHandler struct {
	uc *auth.ManagerUseCase
}

// NewManagerHandler construye el handler.
func NewManagerHandler(uc *auth.ManagerUseCase) *ManagerHandler {
	return &ManagerHandler{uc: uc}
}

// Create godoc
// @Summary      Crear manager
// @Tags         managers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateManagerRequest  true  "Datos del manager"
// @Success      201   {object}  dto.ManagerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/managers [post]
func (h *ManagerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateManagerRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreateManager(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar managers (más recientes primero)
// @Tags         managers
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ManagerResponse
// @Router       /api/managers [get]
func (h *ManagerHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListManagers(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByUsername godoc
// @Summary      Buscar manager por usuario
// @Tags         managers
// @Security     Bearer
// @Produce      json
// @Param        username  path  string  true  "Usuario"
// @Success      200  {object}  dto.ManagerResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/managers/by-username/{username} [get]
func (h *ManagerHandler) GetByUsername(c *fiber.Ctx) error {
	out, err := h.uc.GetByUsername(c.UserContext(), c.Params("username"))
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "manager no encontrado")
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Activar o desactivar manager
// @Tags         managers
// @Security     Bearer
// @Accept       json
// @Param        id    path  string  true  "ID del manager"
// @Param        body  body  dto.UpdateManagerStatusRequest  true  "Nuevo estado"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/managers/{id}/status [patch]
func (h *ManagerHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateManagerStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.IsActive == nil {
		return writeError(c, domain.NewValidationError("is_active", "is_active es obligatorio"))
	}
	if err := h.uc.SetStatus(c.UserContext(), GetManagerID(c), c.Params("id"), *in.IsActive); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
