package dto

import "github.com/shopspring/decimal"

// ConfigureRequest entrada del configurador público. option_value_ids vacío o
// ausente es una configuración válida "sin opciones" al precio base.
type ConfigureRequest struct {
	ProductID      int64   `json:"product_id" validate:"required"`
	OptionValueIDs []int64 `json:"option_value_ids"`
}

// SelectedOptionResponse detalle de una selección dentro de la configuración,
// en el orden que fija la secuencia de códigos del SKU de variante.
type SelectedOptionResponse struct {
	OptionID   int64           `json:"option_id"`
	OptionName string          `json:"option_name"`
	ValueID    int64           `json:"value_id"`
	ValueName  string          `json:"value_name"`
	PriceAdder decimal.Decimal `json:"price_adder"`
	SKU        string          `json:"sku"`
}

// ConfiguredProductResponse identifica el producto configurado.
type ConfiguredProductResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Slug    string `json:"slug"`
	BaseSKU string `json:"base_sku"`
}

// ConfigurationResponse cuerpo interno de la respuesta de configure.
type ConfigurationResponse struct {
	Product         ConfiguredProductResponse `json:"product"`
	SelectedOptions []SelectedOptionResponse  `json:"selected_options"`
}

// ConfigureResponse respuesta del endpoint de configuración.
type ConfigureResponse struct {
	SKU           string                `json:"sku"`
	TotalPrice    decimal.Decimal       `json:"total_price"`
	BasePrice     decimal.Decimal       `json:"base_price"`
	Configuration ConfigurationResponse `json:"configuration"`
}

// ConfiguratorValueResponse valor habilitado de un producto en el catálogo
// público, con el precio final que implica elegirlo.
type ConfiguratorValueResponse struct {
	ID         int64           `json:"id"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	PriceAdder decimal.Decimal `json:"price_adder"`
}

// ConfiguratorOptionResponse opción de un producto en el catálogo público,
// solo con los valores habilitados para ese producto.
type ConfiguratorOptionResponse struct {
	ID     int64                       `json:"id"`
	Name   string                      `json:"name"`
	Values []ConfiguratorValueResponse `json:"values"`
}

// ConfiguratorProductResponse producto del catálogo público del configurador.
type ConfiguratorProductResponse struct {
	ID          int64                        `json:"id"`
	Name        string                       `json:"name"`
	Slug        string                       `json:"slug"`
	SKU         string                       `json:"sku,omitempty"`
	Price       decimal.Decimal              `json:"price"`
	Description string                       `json:"description,omitempty"`
	Image       string                       `json:"image,omitempty"`
	Category    ConfiguratorCategoryResponse `json:"category"`
	Options     []ConfiguratorOptionResponse `json:"options"`
}

// ConfiguratorCategoryResponse categoría en el catálogo público.
type ConfiguratorCategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug,omitempty"`
}

// ConfiguratorProductListResponse productos de una categoría para el
// configurador, con paginación.
type ConfiguratorProductListResponse struct {
	Category ConfiguratorCategoryResponse  `json:"category"`
	Products []ConfiguratorProductResponse `json:"products"`
	Page     PageResponse                  `json:"page"`
}
