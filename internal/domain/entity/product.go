package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product pertenece a una Category. SKU es el identificador base del producto
// (vacío = aún sin asignar); los SKUs de variante se derivan de él y no se
// persisten. Slug y SKU son únicos globales entre productos.
type Product struct {
	ID          int64
	CategoryID  int64
	Name        string
	Slug        string
	SKU         string // vacío si no tiene SKU base
	Description string
	BasePrice   decimal.Decimal // >= 0
	Image       string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Asociaciones cargadas bajo demanda.
	Category     *Category
	Options      []Option      // opciones habilitadas (pivot product_option), con Values
	OptionValues []OptionValue // valores habilitados (pivot product_option_value)
}
