package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
)

// ConfiguratorHandler expone el API público del configurador: navegación del
// catálogo y cálculo de configuraciones. No requiere autenticación.
type ConfiguratorHandler struct {
	uc *usecase.ConfiguratorUseCase
}

// NewConfiguratorHandler construye el handler.
func NewConfiguratorHandler(uc *usecase.ConfiguratorUseCase) *ConfiguratorHandler {
	return &ConfiguratorHandler{uc: uc}
}

// Categories godoc
// @Summary      Categorías del catálogo público
// @Tags         configurator
// @Produce      json
// @Success      200  {array}  dto.ConfiguratorCategoryResponse
// @Router       /api/configurator/categories [get]
func (h *ConfiguratorHandler) Categories(c *fiber.Ctx) error {
	out, err := h.uc.Categories(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ProductsByCategory godoc
// @Summary      Productos configurables de una categoría
// @Description  Cada producto trae sus opciones con solo los valores
// @Description  habilitados y el precio final de elegir cada valor.
// @Tags         configurator
// @Produce      json
// @Param        id      path   int  true   "ID de la categoría"
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200  {object}  dto.ConfiguratorProductListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/configurator/categories/{id}/products [get]
func (h *ConfiguratorHandler) ProductsByCategory(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	out, err := h.uc.ProductsByCategory(c.UserContext(), int64(id), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Configure godoc
// @Summary      Configurar un producto
// @Description  Valida la selección (un valor por opción, solo valores
// @Description  habilitados) y devuelve SKU de variante y precio total.
// @Tags         configurator
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ConfigureRequest  true  "Producto y valores seleccionados"
// @Success      200   {object}  dto.ConfigureResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/configurator/configure [post]
func (h *ConfiguratorHandler) Configure(c *fiber.Ctx) error {
	var in dto.ConfigureRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ProductID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id es requerido"})
	}
	out, err := h.uc.Configure(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
