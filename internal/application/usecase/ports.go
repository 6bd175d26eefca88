package usecase

import (
	"context"

	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando un
// repositorio de productos atado a esa tx. Garantiza que la fila del producto
// y la sincronización de sus dos pivots se apliquen como una unidad.
type TxRunner interface {
	Run(ctx context.Context, fn func(products repository.ProductRepository) error) error
}
