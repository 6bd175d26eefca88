package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
)

// OptionHandler maneja las peticiones HTTP de administración de opciones y
// sus valores.
type OptionHandler struct {
	uc *usecase.OptionUseCase
}

// NewOptionHandler construye el handler.
func NewOptionHandler(uc *usecase.OptionUseCase) *OptionHandler {
	return &OptionHandler{uc: uc}
}

// Create godoc
// @Summary      Crear opción con sus valores
// @Tags         options
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOptionRequest  true  "Datos de la opción"
// @Success      201   {object}  dto.OptionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/admin/options [post]
func (h *OptionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOptionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener opción con sus valores
// @Tags         options
// @Produce      json
// @Param        id   path  int  true  "ID de la opción"
// @Success      200  {object}  dto.OptionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/options/{id} [get]
func (h *OptionHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetByID(c.UserContext(), int64(id))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "opción no encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar opciones
// @Tags         options
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.OptionListResponse
// @Router       /api/admin/options [get]
func (h *OptionHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	out, err := h.uc.List(c.UserContext(), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar opción (values presentes reemplazan los actuales)
// @Tags         options
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la opción"
// @Param        body  body  dto.UpdateOptionRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.OptionResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/admin/options/{id} [put]
func (h *OptionHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateOptionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.UserContext(), int64(id), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "opción no encontrada"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar opción (sus valores caen en cascada)
// @Tags         options
// @Produce      json
// @Param        id   path  int  true  "ID de la opción"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/options/{id} [delete]
func (h *OptionHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Delete(c.UserContext(), int64(id)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
