package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-api/internal/application/export"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CategoryUC     *usecase.CategoryUseCase
	OptionUC       *usecase.OptionUseCase
	ProductUC      *usecase.ProductUseCase
	ConfiguratorUC *usecase.ConfiguratorUseCase
	ExportUC       *export.ExportUseCase
}

// Router registra las rutas de la API: administración del catálogo bajo
// /api/admin y el configurador público bajo /api/configurator.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Administración del catálogo
	admin := api.Group("/admin")

	categories := admin.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	options := admin.Group("/options")
	optionHandler := NewOptionHandler(deps.OptionUC)
	options.Post("/", optionHandler.Create)
	options.Get("/", optionHandler.List)
	options.Get("/:id", optionHandler.GetByID)
	options.Put("/:id", optionHandler.Update)
	options.Delete("/:id", optionHandler.Delete)

	products := admin.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	if deps.ExportUC != nil {
		exportHandler := NewExportHandler(deps.ExportUC)
		admin.Get("/exports/pricelist.pdf", exportHandler.PriceListPDF)
		// El feed es público: lo consumen comparadores externos sin sesión.
		api.Get("/feed/products.xml", exportHandler.ProductFeedXML)
	}

	// Configurador (público)
	configurator := api.Group("/configurator")
	configuratorHandler := NewConfiguratorHandler(deps.ConfiguratorUC)
	configurator.Get("/categories", configuratorHandler.Categories)
	configurator.Get("/categories/:id/products", configuratorHandler.ProductsByCategory)
	configurator.Post("/configure", configuratorHandler.Configure)
}
