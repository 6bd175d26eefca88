package repository

import (
	"context"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id int64) (*entity.Category, error)
	// GetWithOptions carga la categoría con sus opciones (y valores) adjuntas
	// vía category_option.
	GetWithOptions(ctx context.Context, id int64) (*entity.Category, error)
	// List busca por nombre/slug/descripción (ILIKE) con paginación; devuelve
	// también el total sin paginar.
	List(ctx context.Context, search string, limit, offset int) ([]*entity.Category, int64, error)
	// ListAll devuelve todas las categorías ordenadas por nombre (configurador).
	ListAll(ctx context.Context) ([]*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id int64) error
	// SlugExists verifica unicidad de slug entre categorías; excludeID > 0
	// excluye esa fila (update).
	SlugExists(ctx context.Context, slug string, excludeID int64) (bool, error)
	// OptionIDs devuelve los ids de opciones adjuntas a la categoría.
	OptionIDs(ctx context.Context, categoryID int64) ([]int64, error)
	// SyncOptions reemplaza por completo el pivot category_option.
	SyncOptions(ctx context.Context, categoryID int64, optionIDs []int64) error
}
