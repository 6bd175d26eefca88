package export

import (
	"context"

	"github.com/shopspring/decimal"
)

// PriceListItem es una línea de la lista de precios: un producto con su
// precio base, más una línea por valor habilitado con recargo distinto de 0.
type PriceListItem struct {
	Category string
	Name     string
	SKU      string
	Price    decimal.Decimal
	// Detail distingue las líneas de valor ("Talla M (+$1.00)") de la línea
	// base del producto (vacío).
	Detail string
}

// FeedValue valor habilitado dentro de una opción del feed.
type FeedValue struct {
	ID         int64
	Name       string
	SKU        string
	PriceAdder decimal.Decimal
	Price      decimal.Decimal
}

// FeedOption opción de producto en el feed, solo con valores habilitados.
type FeedOption struct {
	ID     int64
	Name   string
	Values []FeedValue
}

// FeedProduct producto del feed XML.
type FeedProduct struct {
	ID          int64
	Name        string
	Slug        string
	SKU         string
	Description string
	BasePrice   decimal.Decimal
	Options     []FeedOption
}

// FeedCategory categoría del feed con sus productos.
type FeedCategory struct {
	ID       int64
	Name     string
	Slug     string
	Products []FeedProduct
}

// PriceListGenerator genera el PDF de la lista de precios.
type PriceListGenerator interface {
	GeneratePriceListPDF(ctx context.Context, items []PriceListItem) ([]byte, error)
}

// FeedBuilder serializa el catálogo como feed XML.
type FeedBuilder interface {
	BuildProductFeed(ctx context.Context, categories []FeedCategory) ([]byte, error)
}
