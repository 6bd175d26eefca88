package dto

import "time"

// CreateCategoryRequest entrada para crear una categoría. Slug opcional: si no
// viene se deriva del nombre y se resuelve unicidad.
type CreateCategoryRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=255"`
	Slug        string  `json:"slug" validate:"omitempty,max=255"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	OptionIDs   []int64 `json:"option_ids"`
}

// UpdateCategoryRequest entrada para actualizar una categoría.
type UpdateCategoryRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=255"`
	Slug        *string `json:"slug" validate:"omitempty,max=255"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
	OptionIDs   []int64 `json:"option_ids"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID          int64            `json:"id"`
	Name        string           `json:"name"`
	Slug        string           `json:"slug"`
	Description string           `json:"description,omitempty"`
	Image       string           `json:"image,omitempty"`
	Options     []OptionResponse `json:"options,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// CategoryListResponse lista paginada de categorías.
type CategoryListResponse struct {
	Items []CategoryResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
