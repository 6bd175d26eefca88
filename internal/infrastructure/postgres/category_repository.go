package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL (usable con pool o tx).
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

const categoryColumns = `id, name, slug, description, image, created_at, updated_at`

// Create persiste una categoría nueva y asigna category.ID.
func (r *CategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	query := `
		INSERT INTO categories (name, slug, description, image, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		category.Name, category.Slug, category.Description, category.Image,
		category.CreatedAt, category.UpdatedAt,
	).Scan(&category.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID. Devuelve nil si no existe.
func (r *CategoryRepo) GetByID(ctx context.Context, id int64) (*entity.Category, error) {
	var c entity.Category
	err := r.q.QueryRow(ctx, `SELECT `+categoryColumns+` FROM categories WHERE id = $1`, id).Scan(
		&c.ID, &c.Name, &c.Slug, &c.Description, &c.Image, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}

// GetWithOptions obtiene la categoría con sus opciones (y valores) adjuntas.
func (r *CategoryRepo) GetWithOptions(ctx context.Context, id int64) (*entity.Category, error) {
	category, err := r.GetByID(ctx, id)
	if err != nil || category == nil {
		return category, err
	}
	query := `
		SELECT o.id, o.name, o.created_at, o.updated_at
		FROM options o
		JOIN category_option co ON co.option_id = o.id
		WHERE co.category_id = $1
		ORDER BY o.created_at, o.id`
	rows, err := r.q.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("list category options: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var o entity.Option
		if err := rows.Scan(&o.ID, &o.Name, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan option: %w", err)
		}
		category.Options = append(category.Options, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := attachOptionValues(ctx, r.q, category.Options); err != nil {
		return nil, err
	}
	return category, nil
}

// List busca por nombre, slug o descripción con paginación; devuelve el total sin paginar.
func (r *CategoryRepo) List(ctx context.Context, search string, limit, offset int) ([]*entity.Category, int64, error) {
	pattern := "%" + search + "%"
	var total int64
	err := r.q.QueryRow(ctx,
		`SELECT count(*) FROM categories WHERE $1 = '%%' OR name ILIKE $1 OR slug ILIKE $1 OR description ILIKE $1`,
		pattern,
	).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count categories: %w", err)
	}

	query := `
		SELECT ` + categoryColumns + `
		FROM categories
		WHERE $1 = '%%' OR name ILIKE $1 OR slug ILIKE $1 OR description ILIKE $1
		ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, pattern, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.Image, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &c)
	}
	return list, total, rows.Err()
}

// ListAll devuelve todas las categorías ordenadas por nombre.
func (r *CategoryRepo) ListAll(ctx context.Context) ([]*entity.Category, error) {
	rows, err := r.q.Query(ctx, `SELECT `+categoryColumns+` FROM categories ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.Image, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza una categoría existente.
func (r *CategoryRepo) Update(ctx context.Context, category *entity.Category) error {
	query := `
		UPDATE categories SET name = $2, slug = $3, description = $4, image = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		category.ID, category.Name, category.Slug, category.Description, category.Image, category.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// Delete elimina una categoría; productos y pivots caen en cascada (FK).
func (r *CategoryRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

// SlugExists verifica unicidad de slug entre categorías, excluyendo una fila si excludeID > 0.
func (r *CategoryRepo) SlugExists(ctx context.Context, slug string, excludeID int64) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM categories WHERE slug = $1 AND id <> $2)`,
		slug, excludeID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check category slug: %w", err)
	}
	return exists, nil
}

// OptionIDs devuelve los ids de opciones adjuntas a la categoría.
func (r *CategoryRepo) OptionIDs(ctx context.Context, categoryID int64) ([]int64, error) {
	rows, err := r.q.Query(ctx,
		`SELECT option_id FROM category_option WHERE category_id = $1 ORDER BY option_id`,
		categoryID,
	)
	if err != nil {
		return nil, fmt.Errorf("list category option ids: %w", err)
	}
	defer rows.Close()
	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan option id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// SyncOptions reemplaza por completo el pivot category_option.
func (r *CategoryRepo) SyncOptions(ctx context.Context, categoryID int64, optionIDs []int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM category_option WHERE category_id = $1`, categoryID); err != nil {
		return fmt.Errorf("clear category options: %w", err)
	}
	for _, optionID := range optionIDs {
		_, err := r.q.Exec(ctx,
			`INSERT INTO category_option (category_id, option_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			categoryID, optionID,
		)
		if err != nil {
			return fmt.Errorf("attach option %d: %w", optionID, err)
		}
	}
	return nil
}
