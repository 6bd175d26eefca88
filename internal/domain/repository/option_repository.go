package repository

import (
	"context"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// OptionRepository define el puerto de persistencia para Option y sus valores.
type OptionRepository interface {
	Create(ctx context.Context, option *entity.Option) error
	// GetByID carga la opción con sus valores.
	GetByID(ctx context.Context, id int64) (*entity.Option, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Option, int64, error)
	// ListByIDs carga opciones (con valores) para un conjunto de ids.
	ListByIDs(ctx context.Context, ids []int64) ([]entity.Option, error)
	Update(ctx context.Context, option *entity.Option) error
	// Delete elimina la opción; sus valores caen en cascada (FK).
	Delete(ctx context.Context, id int64) error
	// ReplaceValues sincroniza option_values estilo "replace": borra los que no
	// vienen, actualiza los que traen id y crea los nuevos.
	ReplaceValues(ctx context.Context, optionID int64, values []entity.OptionValue) error
}
