package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OptionValueInput valor dentro de una opción. ID presente = actualizar;
// ausente = crear. Los valores existentes que no vienen se eliminan (replace).
type OptionValueInput struct {
	ID         int64           `json:"id"`
	Name       string          `json:"name" validate:"required,min=1,max=255"`
	PriceAdder decimal.Decimal `json:"price_adder"`
}

// CreateOptionRequest entrada para crear una opción con sus valores.
type CreateOptionRequest struct {
	Name   string             `json:"name" validate:"required,min=1,max=255"`
	Values []OptionValueInput `json:"values"`
}

// UpdateOptionRequest entrada para actualizar una opción. Values nil = no
// tocar los valores; lista (aunque vacía) = sincronizar estilo replace.
type UpdateOptionRequest struct {
	Name   *string            `json:"name" validate:"omitempty,min=1,max=255"`
	Values []OptionValueInput `json:"values"`
}

// OptionValueResponse salida de un valor de opción.
type OptionValueResponse struct {
	ID         int64           `json:"id"`
	OptionID   int64           `json:"option_id"`
	Name       string          `json:"name"`
	PriceAdder decimal.Decimal `json:"price_adder"`
}

// OptionResponse salida de una opción con sus valores.
type OptionResponse struct {
	ID        int64                 `json:"id"`
	Name      string                `json:"name"`
	Values    []OptionValueResponse `json:"values"`
	CreatedAt time.Time             `json:"created_at"`
	UpdatedAt time.Time             `json:"updated_at"`
}

// OptionListResponse lista paginada de opciones.
type OptionListResponse struct {
	Items []OptionResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
