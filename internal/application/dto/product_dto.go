package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. Slug y SKU se derivan
// automáticamente cuando no vienen.
type CreateProductRequest struct {
	Name           string          `json:"name" validate:"required,min=1,max=255"`
	Slug           string          `json:"slug" validate:"omitempty,max=255"`
	SKU            string          `json:"sku" validate:"omitempty,max=255"`
	CategoryID     int64           `json:"category_id" validate:"required"`
	Description    string          `json:"description"`
	BasePrice      decimal.Decimal `json:"base_price"`
	Image          string          `json:"image"`
	OptionIDs      []int64         `json:"option_ids"`
	OptionValueIDs []int64         `json:"option_value_ids"`
}

// UpdateProductRequest entrada para actualizar un producto. OptionIDs /
// OptionValueIDs nil = no tocar asociaciones; lista = reemplazo completo.
type UpdateProductRequest struct {
	Name           *string          `json:"name" validate:"omitempty,min=1,max=255"`
	Slug           *string          `json:"slug" validate:"omitempty,max=255"`
	SKU            *string          `json:"sku" validate:"omitempty,max=255"`
	CategoryID     *int64           `json:"category_id"`
	Description    *string          `json:"description"`
	BasePrice      *decimal.Decimal `json:"base_price"`
	Image          *string          `json:"image"`
	OptionIDs      []int64          `json:"option_ids"`
	OptionValueIDs []int64          `json:"option_value_ids"`
}

// ProductResponse salida de un producto (vista de administración).
type ProductResponse struct {
	ID          int64             `json:"id"`
	CategoryID  int64             `json:"category_id"`
	Name        string            `json:"name"`
	Slug        string            `json:"slug"`
	SKU         string            `json:"sku,omitempty"`
	Description string            `json:"description,omitempty"`
	BasePrice   decimal.Decimal   `json:"base_price"`
	Image       string            `json:"image,omitempty"`
	Category    *CategoryResponse `json:"category,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
