package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/catalog"
)

// respondError traduce errores de dominio a respuestas HTTP. Los errores
// tipados del catálogo cargan los ids ofensivos en el cuerpo para que el
// cliente pueda señalar exactamente qué selección falló.
func respondError(c *fiber.Ctx, err error) error {
	var (
		invalidOptions  *catalog.InvalidOptionsError
		invalidValues   *catalog.InvalidOptionValuesError
		duplicateOption *catalog.DuplicateOptionSelectionError
		missingValue    *catalog.MissingOptionValueError
	)

	switch {
	case errors.As(err, &invalidOptions):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
			Code:             "INVALID_OPTIONS",
			Message:          invalidOptions.Error(),
			InvalidOptionIDs: invalidOptions.OptionIDs,
		})
	case errors.As(err, &invalidValues):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
			Code:                  "INVALID_OPTION_VALUES",
			Message:               invalidValues.Error(),
			InvalidOptionValueIDs: invalidValues.ValueIDs,
		})
	case errors.As(err, &duplicateOption):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
			Code:               "DUPLICATE_OPTION_SELECTION",
			Message:            duplicateOption.Error(),
			DuplicateOptionIDs: duplicateOption.OptionIDs,
		})
	case errors.As(err, &missingValue):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
			Code:       "MISSING_OPTION_VALUE",
			Message:    missingValue.Error(),
			OptionID:   missingValue.OptionID,
			OptionName: missingValue.OptionName,
		})
	case errors.Is(err, catalog.ErrMissingBaseSKU):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code: "MISSING_BASE_SKU", Message: err.Error(),
		})
	case errors.Is(err, catalog.ErrSKUExhausted):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code: "SKU_EXHAUSTED", Message: err.Error(),
		})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code: "NOT_FOUND", Message: err.Error(),
		})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: err.Error(),
		})
	case errors.Is(err, domain.ErrDuplicate), errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code: "DUPLICATE", Message: err.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
}
