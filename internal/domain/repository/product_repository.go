package repository

import (
	"context"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// Los métodos Sync* reemplazan los pivots por completo, nunca mezclan.
type ProductRepository interface {
	// Create inserta el producto y asigna product.ID (RETURNING id). El SKU
	// puede ir vacío: el write path lo deriva del id recién asignado y
	// actualiza la fila dentro de la misma transacción.
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	// GetForConfiguration carga el snapshot completo que consume el motor de
	// configuración: categoría, opciones habilitadas (con valores) y valores
	// habilitados.
	GetForConfiguration(ctx context.Context, id int64) (*entity.Product, error)
	// List busca por nombre/slug/descripción con paginación.
	List(ctx context.Context, search string, limit, offset int) ([]*entity.Product, int64, error)
	// ListByCategory devuelve productos de una categoría con asociaciones
	// cargadas, ordenados por nombre (configurador público).
	ListByCategory(ctx context.Context, categoryID int64, limit, offset int) ([]*entity.Product, int64, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id int64) error
	SlugExists(ctx context.Context, slug string, excludeID int64) (bool, error)
	SKUExists(ctx context.Context, sku string, excludeID int64) (bool, error)
	SyncOptions(ctx context.Context, productID int64, optionIDs []int64) error
	SyncOptionValues(ctx context.Context, productID int64, optionValueIDs []int64) error
}
