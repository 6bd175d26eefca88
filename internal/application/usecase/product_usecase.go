package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/catalog"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// ProductUseCase write path de producto. Las reglas de consistencia del
// catálogo corren ANTES de cualquier persistencia; la fila y los dos pivots se
// escriben dentro de una sola transacción (TxRunner), así un fallo no deja
// asociaciones aplicadas a medias.
type ProductUseCase struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	options    repository.OptionRepository
	tx         TxRunner
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	products repository.ProductRepository,
	categories repository.CategoryRepository,
	options repository.OptionRepository,
	tx TxRunner,
) *ProductUseCase {
	return &ProductUseCase{products: products, categories: categories, options: options, tx: tx}
}

// Create crea un producto. Slug y SKU se derivan cuando no vienen; el SKU base
// necesita el id asignado, por eso se calcula tras el INSERT y se actualiza la
// fila dentro de la misma transacción.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.BasePrice.IsNegative() {
		return nil, fmt.Errorf("%w: base_price debe ser >= 0", domain.ErrInvalidInput)
	}

	category, err := uc.categories.GetByID(ctx, in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, fmt.Errorf("categoría %d: %w", in.CategoryID, domain.ErrNotFound)
	}

	if err := uc.validateSelections(ctx, in.CategoryID, in.OptionIDs, in.OptionValueIDs); err != nil {
		return nil, err
	}

	base := in.Slug
	if base == "" {
		base = catalog.GenerateSlug(in.Name)
	}
	slug, err := catalog.GenerateUniqueSlug(ctx, base, uc.products.SlugExists, 0)
	if err != nil {
		return nil, fmt.Errorf("resolver slug de producto: %w", err)
	}

	now := time.Now()
	product := &entity.Product{
		CategoryID:  in.CategoryID,
		Name:        in.Name,
		Slug:        slug,
		Description: in.Description,
		BasePrice:   in.BasePrice,
		Image:       in.Image,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = uc.tx.Run(ctx, func(products repository.ProductRepository) error {
		if err := products.Create(ctx, product); err != nil {
			return err
		}
		sku := in.SKU
		if sku == "" {
			sku = catalog.GenerateBaseSKU(category.Name, product.ID, product.Name)
		}
		sku, err := catalog.EnsureUniqueSKU(ctx, sku, products.SKUExists, product.ID)
		if err != nil {
			return err
		}
		product.SKU = sku
		if err := products.Update(ctx, product); err != nil {
			return err
		}
		if err := products.SyncOptions(ctx, product.ID, in.OptionIDs); err != nil {
			return err
		}
		return products.SyncOptionValues(ctx, product.ID, in.OptionValueIDs)
	})
	if err != nil {
		return nil, err
	}
	return uc.GetByID(ctx, product.ID)
}

// GetByID obtiene un producto por id.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	product, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	out := toProductResponse(product)
	return &out, nil
}

// List lista productos con búsqueda y paginación.
func (uc *ProductUseCase) List(ctx context.Context, search string, page dto.PageRequest) (*dto.ProductListResponse, error) {
	page.DefaultPage()
	list, total, err := uc.products.List(ctx, search, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

// Update actualiza un producto. Asociaciones nil no se tocan; listas se
// reemplazan por completo tras validar las reglas de consistencia contra el
// estado efectivo (categoría nueva o actual, opciones nuevas o actuales).
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.products.GetForConfiguration(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.BasePrice != nil && in.BasePrice.IsNegative() {
		return nil, fmt.Errorf("%w: base_price debe ser >= 0", domain.ErrInvalidInput)
	}

	categoryID := product.CategoryID
	if in.CategoryID != nil {
		categoryID = *in.CategoryID
	}
	category, err := uc.categories.GetByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, fmt.Errorf("categoría %d: %w", categoryID, domain.ErrNotFound)
	}

	// Estado efectivo de asociaciones: lo que trae el request o lo vigente.
	optionIDs := in.OptionIDs
	if optionIDs == nil {
		optionIDs = make([]int64, 0, len(product.Options))
		for _, o := range product.Options {
			optionIDs = append(optionIDs, o.ID)
		}
	}
	valueIDs := in.OptionValueIDs
	if valueIDs == nil {
		valueIDs = make([]int64, 0, len(product.OptionValues))
		for _, v := range product.OptionValues {
			valueIDs = append(valueIDs, v.ID)
		}
	}
	if err := uc.validateSelections(ctx, categoryID, optionIDs, valueIDs); err != nil {
		return nil, err
	}

	slug, err := uc.resolveSlug(ctx, product, in)
	if err != nil {
		return nil, err
	}

	nameChanged := in.Name != nil && *in.Name != product.Name
	categoryChanged := categoryID != product.CategoryID

	product.CategoryID = categoryID
	product.Slug = slug
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.BasePrice != nil {
		product.BasePrice = *in.BasePrice
	}
	if in.Image != nil {
		product.Image = *in.Image
	}
	product.UpdatedAt = time.Now()

	err = uc.tx.Run(ctx, func(products repository.ProductRepository) error {
		// SKU explícito se respeta. Ausente, el vigente se conserva salvo que
		// el producto no tenga o hayan cambiado nombre/categoría: los SKU ya
		// asignados son identificadores externos y no se tocan en ediciones
		// que no los afectan.
		sku := ""
		if in.SKU != nil {
			sku = *in.SKU
		} else if !nameChanged && !categoryChanged {
			sku = product.SKU
		}
		if sku == "" {
			sku = catalog.GenerateBaseSKU(category.Name, product.ID, product.Name)
		}
		sku, err := catalog.EnsureUniqueSKU(ctx, sku, products.SKUExists, product.ID)
		if err != nil {
			return err
		}
		product.SKU = sku

		if err := products.Update(ctx, product); err != nil {
			return err
		}
		if err := products.SyncOptions(ctx, product.ID, optionIDs); err != nil {
			return err
		}
		return products.SyncOptionValues(ctx, product.ID, valueIDs)
	})
	if err != nil {
		return nil, err
	}
	return uc.GetByID(ctx, id)
}

// Delete elimina un producto; sus pivots caen en cascada.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) error {
	product, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.products.Delete(ctx, id)
}

// validateSelections aplica las tres reglas de consistencia del catálogo en
// orden: opciones ⊆ categoría, cobertura de valores por opción, y pertenencia
// de cada valor a alguna opción seleccionada. Ningún fallo llega a persistir.
func (uc *ProductUseCase) validateSelections(ctx context.Context, categoryID int64, optionIDs, valueIDs []int64) error {
	categoryOptionIDs, err := uc.categories.OptionIDs(ctx, categoryID)
	if err != nil {
		return err
	}
	if err := catalog.ValidateProductOptions(categoryOptionIDs, optionIDs); err != nil {
		return err
	}
	selected, err := uc.options.ListByIDs(ctx, optionIDs)
	if err != nil {
		return err
	}
	if err := catalog.ValidateOptionValueCoverage(selected, valueIDs); err != nil {
		return err
	}
	return catalog.ValidateValueOwnership(selected, valueIDs)
}

// resolveSlug aplica las reglas en cascada del update: nombre nuevo → derivar
// (o respetar slug explícito), slug explícito distinto → respetarlo; siempre
// resolviendo unicidad con exclusión de la propia fila.
func (uc *ProductUseCase) resolveSlug(ctx context.Context, product *entity.Product, in dto.UpdateProductRequest) (string, error) {
	switch {
	case in.Name != nil && *in.Name != product.Name:
		base := catalog.GenerateSlug(*in.Name)
		if in.Slug != nil && *in.Slug != "" {
			base = *in.Slug
		}
		return catalog.GenerateUniqueSlug(ctx, base, uc.products.SlugExists, product.ID)
	case in.Slug != nil && *in.Slug != "" && *in.Slug != product.Slug:
		return catalog.GenerateUniqueSlug(ctx, *in.Slug, uc.products.SlugExists, product.ID)
	default:
		return product.Slug, nil
	}
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	out := dto.ProductResponse{
		ID:          p.ID,
		CategoryID:  p.CategoryID,
		Name:        p.Name,
		Slug:        p.Slug,
		SKU:         p.SKU,
		Description: p.Description,
		BasePrice:   p.BasePrice,
		Image:       p.Image,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if p.Category != nil {
		c := toCategoryResponse(p.Category)
		out.Category = &c
	}
	return out
}
