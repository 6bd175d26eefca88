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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// sku se guarda NULL cuando está vacío: la columna es UNIQUE y varios
// productos pueden no tener SKU base todavía.
const productColumns = `id, category_id, name, slug, COALESCE(sku, ''), description, base_price, image, created_at, updated_at`

func scanProduct(row pgx.Row, p *entity.Product) error {
	return row.Scan(
		&p.ID, &p.CategoryID, &p.Name, &p.Slug, &p.SKU, &p.Description,
		&p.BasePrice, &p.Image, &p.CreatedAt, &p.UpdatedAt,
	)
}

// Create inserta el producto y asigna product.ID.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (category_id, name, slug, sku, description, base_price, image, created_at, updated_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7, $8, $9)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		product.CategoryID, product.Name, product.Slug, product.SKU,
		product.Description, product.BasePrice, product.Image,
		product.CreatedAt, product.UpdatedAt,
	).Scan(&product.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. Devuelve nil si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	var p entity.Product
	err := scanProduct(r.q.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id), &p)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// GetForConfiguration carga el snapshot completo que consume el motor de
// configuración: categoría, opciones habilitadas con todos sus valores y los
// valores habilitados del producto.
func (r *ProductRepo) GetForConfiguration(ctx context.Context, id int64) (*entity.Product, error) {
	product, err := r.GetByID(ctx, id)
	if err != nil || product == nil {
		return product, err
	}
	if err := r.loadAssociations(ctx, product); err != nil {
		return nil, err
	}
	category, err := NewCategoryRepository(r.q).GetByID(ctx, product.CategoryID)
	if err != nil {
		return nil, err
	}
	product.Category = category
	return product, nil
}

// List busca por nombre, slug o descripción con paginación; devuelve el total sin paginar.
func (r *ProductRepo) List(ctx context.Context, search string, limit, offset int) ([]*entity.Product, int64, error) {
	pattern := "%" + search + "%"
	var total int64
	err := r.q.QueryRow(ctx,
		`SELECT count(*) FROM products WHERE $1 = '%%' OR name ILIKE $1 OR slug ILIKE $1 OR description ILIKE $1`,
		pattern,
	).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE $1 = '%%' OR name ILIKE $1 OR slug ILIKE $1 OR description ILIKE $1
		ORDER BY created_at DESC, id DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, pattern, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, 0, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, total, rows.Err()
}

// ListByCategory devuelve productos de una categoría con asociaciones
// cargadas, ordenados por nombre.
func (r *ProductRepo) ListByCategory(ctx context.Context, categoryID int64, limit, offset int) ([]*entity.Product, int64, error) {
	var total int64
	err := r.q.QueryRow(ctx, `SELECT count(*) FROM products WHERE category_id = $1`, categoryID).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	query := `
		SELECT ` + productColumns + `
		FROM products WHERE category_id = $1
		ORDER BY name, id LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, categoryID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list products by category: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, 0, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	for _, p := range list {
		if err := r.loadAssociations(ctx, p); err != nil {
			return nil, 0, err
		}
	}
	return list, total, nil
}

// Update actualiza un producto existente (incluido el SKU base).
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products SET category_id = $2, name = $3, slug = $4, sku = NULLIF($5, ''),
			description = $6, base_price = $7, image = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.CategoryID, product.Name, product.Slug, product.SKU,
		product.Description, product.BasePrice, product.Image, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Delete elimina un producto; sus pivots caen en cascada (FK).
func (r *ProductRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// SlugExists verifica unicidad de slug entre productos, excluyendo una fila si excludeID > 0.
func (r *ProductRepo) SlugExists(ctx context.Context, slug string, excludeID int64) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM products WHERE slug = $1 AND id <> $2)`,
		slug, excludeID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check product slug: %w", err)
	}
	return exists, nil
}

// SKUExists verifica unicidad de SKU base entre productos, excluyendo una fila si excludeID > 0.
func (r *ProductRepo) SKUExists(ctx context.Context, sku string, excludeID int64) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM products WHERE sku = $1 AND id <> $2)`,
		sku, excludeID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check product sku: %w", err)
	}
	return exists, nil
}

// SyncOptions reemplaza por completo el pivot product_option.
func (r *ProductRepo) SyncOptions(ctx context.Context, productID int64, optionIDs []int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM product_option WHERE product_id = $1`, productID); err != nil {
		return fmt.Errorf("clear product options: %w", err)
	}
	for _, optionID := range optionIDs {
		_, err := r.q.Exec(ctx,
			`INSERT INTO product_option (product_id, option_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			productID, optionID,
		)
		if err != nil {
			return fmt.Errorf("attach option %d: %w", optionID, err)
		}
	}
	return nil
}

// SyncOptionValues reemplaza por completo el pivot product_option_value.
func (r *ProductRepo) SyncOptionValues(ctx context.Context, productID int64, optionValueIDs []int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM product_option_value WHERE product_id = $1`, productID); err != nil {
		return fmt.Errorf("clear product option values: %w", err)
	}
	for _, valueID := range optionValueIDs {
		_, err := r.q.Exec(ctx,
			`INSERT INTO product_option_value (product_id, option_value_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			productID, valueID,
		)
		if err != nil {
			return fmt.Errorf("attach option value %d: %w", valueID, err)
		}
	}
	return nil
}

// loadAssociations carga opciones habilitadas (con todos sus valores) y los
// valores habilitados del producto.
func (r *ProductRepo) loadAssociations(ctx context.Context, product *entity.Product) error {
	rows, err := r.q.Query(ctx,
		`SELECT o.id, o.name, o.created_at, o.updated_at
		 FROM options o
		 JOIN product_option po ON po.option_id = o.id
		 WHERE po.product_id = $1
		 ORDER BY o.created_at, o.id`,
		product.ID,
	)
	if err != nil {
		return fmt.Errorf("list product options: %w", err)
	}
	defer rows.Close()
	product.Options = nil
	for rows.Next() {
		var o entity.Option
		if err := rows.Scan(&o.ID, &o.Name, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return fmt.Errorf("scan option: %w", err)
		}
		product.Options = append(product.Options, o)
	}
	if err := rows.Err(); err != nil {
		return err
	}
	if err := attachOptionValues(ctx, r.q, product.Options); err != nil {
		return err
	}

	vrows, err := r.q.Query(ctx,
		`SELECT ov.id, ov.option_id, ov.name, ov.price_adder, ov.created_at, ov.updated_at
		 FROM option_values ov
		 JOIN product_option_value pov ON pov.option_value_id = ov.id
		 WHERE pov.product_id = $1
		 ORDER BY ov.created_at, ov.id`,
		product.ID,
	)
	if err != nil {
		return fmt.Errorf("list product option values: %w", err)
	}
	defer vrows.Close()
	product.OptionValues = nil
	for vrows.Next() {
		var v entity.OptionValue
		if err := vrows.Scan(&v.ID, &v.OptionID, &v.Name, &v.PriceAdder, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return fmt.Errorf("scan option value: %w", err)
		}
		product.OptionValues = append(product.OptionValues, v)
	}
	return vrows.Err()
}
