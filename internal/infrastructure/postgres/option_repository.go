package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

var _ repository.OptionRepository = (*OptionRepo)(nil)

// OptionRepo implementación del puerto OptionRepository sobre PostgreSQL (usable con pool o tx).
type OptionRepo struct {
	q Querier
}

// NewOptionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOptionRepository(q Querier) *OptionRepo {
	return &OptionRepo{q: q}
}

// Create persiste la opción y sus valores iniciales; asigna los ids.
func (r *OptionRepo) Create(ctx context.Context, option *entity.Option) error {
	err := r.q.QueryRow(ctx,
		`INSERT INTO options (name, created_at, updated_at) VALUES ($1, $2, $3) RETURNING id`,
		option.Name, option.CreatedAt, option.UpdatedAt,
	).Scan(&option.ID)
	if err != nil {
		return fmt.Errorf("insert option: %w", err)
	}
	for i := range option.Values {
		v := &option.Values[i]
		v.OptionID = option.ID
		err := r.q.QueryRow(ctx,
			`INSERT INTO option_values (option_id, name, price_adder, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
			v.OptionID, v.Name, v.PriceAdder, v.CreatedAt, v.UpdatedAt,
		).Scan(&v.ID)
		if err != nil {
			if isUniqueViolation(err) {
				return domain.ErrDuplicate
			}
			return fmt.Errorf("insert option value: %w", err)
		}
	}
	return nil
}

// GetByID obtiene la opción con sus valores. Devuelve nil si no existe.
func (r *OptionRepo) GetByID(ctx context.Context, id int64) (*entity.Option, error) {
	options, err := r.ListByIDs(ctx, []int64{id})
	if err != nil {
		return nil, err
	}
	if len(options) == 0 {
		return nil, nil
	}
	return &options[0], nil
}

// List lista opciones con valores y paginación; devuelve el total sin paginar.
func (r *OptionRepo) List(ctx context.Context, limit, offset int) ([]*entity.Option, int64, error) {
	var total int64
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM options`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count options: %w", err)
	}

	rows, err := r.q.Query(ctx,
		`SELECT id, name, created_at, updated_at FROM options ORDER BY created_at, id LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("list options: %w", err)
	}
	defer rows.Close()
	var options []entity.Option
	for rows.Next() {
		var o entity.Option
		if err := rows.Scan(&o.ID, &o.Name, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan option: %w", err)
		}
		options = append(options, o)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	if err := attachOptionValues(ctx, r.q, options); err != nil {
		return nil, 0, err
	}
	list := make([]*entity.Option, len(options))
	for i := range options {
		list[i] = &options[i]
	}
	return list, total, nil
}

// ListByIDs carga opciones (con valores) para un conjunto de ids. Ids que no
// existen simplemente no aparecen en el resultado.
func (r *OptionRepo) ListByIDs(ctx context.Context, ids []int64) ([]entity.Option, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := r.q.Query(ctx,
		`SELECT id, name, created_at, updated_at FROM options WHERE id = ANY($1) ORDER BY created_at, id`,
		ids,
	)
	if err != nil {
		return nil, fmt.Errorf("list options by ids: %w", err)
	}
	defer rows.Close()
	var options []entity.Option
	for rows.Next() {
		var o entity.Option
		if err := rows.Scan(&o.ID, &o.Name, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan option: %w", err)
		}
		options = append(options, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := attachOptionValues(ctx, r.q, options); err != nil {
		return nil, err
	}
	return options, nil
}

// Update actualiza el nombre de la opción.
func (r *OptionRepo) Update(ctx context.Context, option *entity.Option) error {
	_, err := r.q.Exec(ctx,
		`UPDATE options SET name = $2, updated_at = $3 WHERE id = $1`,
		option.ID, option.Name, option.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update option: %w", err)
	}
	return nil
}

// Delete elimina la opción; valores y pivots caen en cascada (FK).
func (r *OptionRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM options WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete option: %w", err)
	}
	return nil
}

// ReplaceValues sincroniza option_values estilo "replace": borra los que no
// vienen, actualiza los que traen id y crea los nuevos.
func (r *OptionRepo) ReplaceValues(ctx context.Context, optionID int64, values []entity.OptionValue) error {
	keep := make([]int64, 0, len(values))
	for _, v := range values {
		if v.ID > 0 {
			keep = append(keep, v.ID)
		}
	}
	_, err := r.q.Exec(ctx,
		`DELETE FROM option_values WHERE option_id = $1 AND NOT (id = ANY($2))`,
		optionID, keep,
	)
	if err != nil {
		return fmt.Errorf("prune option values: %w", err)
	}

	for i := range values {
		v := &values[i]
		v.OptionID = optionID
		if v.ID > 0 {
			_, err = r.q.Exec(ctx,
				`UPDATE option_values SET name = $3, price_adder = $4, updated_at = $5 WHERE id = $1 AND option_id = $2`,
				v.ID, optionID, v.Name, v.PriceAdder, v.UpdatedAt,
			)
		} else {
			err = r.q.QueryRow(ctx,
				`INSERT INTO option_values (option_id, name, price_adder, created_at, updated_at)
				 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
				optionID, v.Name, v.PriceAdder, v.CreatedAt, v.UpdatedAt,
			).Scan(&v.ID)
		}
		if err != nil {
			if isUniqueViolation(err) {
				return domain.ErrDuplicate
			}
			return fmt.Errorf("sync option value: %w", err)
		}
	}
	return nil
}

// attachOptionValues carga en una sola consulta los valores de un lote de
// opciones y los reparte por OptionID.
func attachOptionValues(ctx context.Context, q Querier, options []entity.Option) error {
	if len(options) == 0 {
		return nil
	}
	ids := make([]int64, 0, len(options))
	for _, o := range options {
		ids = append(ids, o.ID)
	}
	rows, err := q.Query(ctx,
		`SELECT id, option_id, name, price_adder, created_at, updated_at
		 FROM option_values WHERE option_id = ANY($1) ORDER BY created_at, id`,
		ids,
	)
	if err != nil {
		return fmt.Errorf("list option values: %w", err)
	}
	defer rows.Close()

	byOption := make(map[int64][]entity.OptionValue, len(options))
	for rows.Next() {
		var v entity.OptionValue
		if err := rows.Scan(&v.ID, &v.OptionID, &v.Name, &v.PriceAdder, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return fmt.Errorf("scan option value: %w", err)
		}
		byOption[v.OptionID] = append(byOption[v.OptionID], v)
	}
	if err := rows.Err(); err != nil {
		return err
	}
	for i := range options {
		options[i].Values = byOption[options[i].ID]
	}
	return nil
}
