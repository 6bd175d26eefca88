package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OptionValue es una elección concreta dentro de una Option (ej. "M" en Talla).
// PriceAdder es un delta firmado sobre el precio base: puede ser negativo.
// Único por (option_id, name).
type OptionValue struct {
	ID         int64
	OptionID   int64
	Name       string
	PriceAdder decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
