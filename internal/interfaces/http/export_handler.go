package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-api/internal/application/export"
)

// ExportHandler expone las exportaciones del catálogo: lista de precios en
// PDF y feed de productos en XML.
type ExportHandler struct {
	uc *export.ExportUseCase
}

// NewExportHandler construye el handler.
func NewExportHandler(uc *export.ExportUseCase) *ExportHandler {
	return &ExportHandler{uc: uc}
}

// PriceListPDF godoc
// @Summary      Descargar lista de precios en PDF
// @Tags         exports
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/admin/exports/pricelist.pdf [get]
func (h *ExportHandler) PriceListPDF(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.uc.PriceListPDF(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}

// ProductFeedXML godoc
// @Summary      Descargar feed de productos en XML
// @Tags         exports
// @Produce      application/xml
// @Success      200  {file}  binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/feed/products.xml [get]
func (h *ExportHandler) ProductFeedXML(c *fiber.Ctx) error {
	feedBytes, filename, err := h.uc.ProductFeedXML(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/xml; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(feedBytes)
}
