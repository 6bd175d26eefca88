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

// CategoryUseCase casos de uso CRUD para categorías. El slug se deriva del
// nombre cuando no viene y siempre pasa por la resolución de unicidad.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// Create crea una categoría y sincroniza sus opciones si vienen.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	base := in.Slug
	if base == "" {
		base = catalog.GenerateSlug(in.Name)
	}
	slug, err := catalog.GenerateUniqueSlug(ctx, base, uc.repo.SlugExists, 0)
	if err != nil {
		return nil, fmt.Errorf("resolver slug de categoría: %w", err)
	}

	now := time.Now()
	category := &entity.Category{
		Name:        in.Name,
		Slug:        slug,
		Description: in.Description,
		Image:       in.Image,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, category); err != nil {
		return nil, err
	}
	if in.OptionIDs != nil {
		if err := uc.repo.SyncOptions(ctx, category.ID, in.OptionIDs); err != nil {
			return nil, err
		}
	}
	return uc.GetByID(ctx, category.ID)
}

// GetByID obtiene una categoría con sus opciones adjuntas.
func (uc *CategoryUseCase) GetByID(ctx context.Context, id int64) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetWithOptions(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}
	out := toCategoryResponse(category)
	return &out, nil
}

// List lista categorías con búsqueda y paginación.
func (uc *CategoryUseCase) List(ctx context.Context, search string, page dto.PageRequest) (*dto.CategoryListResponse, error) {
	page.DefaultPage()
	list, total, err := uc.repo.List(ctx, search, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, toCategoryResponse(c))
	}
	return &dto.CategoryListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

// Update actualiza una categoría. El slug se regenera cuando cambia el nombre
// sin slug explícito, o cuando viene un slug explícito distinto.
func (uc *CategoryUseCase) Update(ctx context.Context, id int64, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}

	slug, err := uc.resolveSlug(ctx, category, in)
	if err != nil {
		return nil, err
	}
	category.Slug = slug

	if in.Name != nil {
		category.Name = *in.Name
	}
	if in.Description != nil {
		category.Description = *in.Description
	}
	if in.Image != nil {
		category.Image = *in.Image
	}
	category.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, category); err != nil {
		return nil, err
	}
	if in.OptionIDs != nil {
		if err := uc.repo.SyncOptions(ctx, id, in.OptionIDs); err != nil {
			return nil, err
		}
	}
	return uc.GetByID(ctx, id)
}

// resolveSlug decide el slug final de un update siguiendo las mismas reglas en
// cascada que el alta: nombre nuevo sin slug explícito → derivar del nombre;
// slug explícito distinto → respetarlo; en ambos casos resolver unicidad
// excluyendo la propia fila.
func (uc *CategoryUseCase) resolveSlug(ctx context.Context, category *entity.Category, in dto.UpdateCategoryRequest) (string, error) {
	switch {
	case in.Name != nil && *in.Name != category.Name:
		base := catalog.GenerateSlug(*in.Name)
		if in.Slug != nil && *in.Slug != "" {
			base = *in.Slug
		}
		return catalog.GenerateUniqueSlug(ctx, base, uc.repo.SlugExists, category.ID)
	case in.Slug != nil && *in.Slug != "" && *in.Slug != category.Slug:
		return catalog.GenerateUniqueSlug(ctx, *in.Slug, uc.repo.SlugExists, category.ID)
	default:
		return category.Slug, nil
	}
}

// Delete elimina una categoría. Las filas pivot category_option caen en
// cascada; las opciones en sí permanecen.
func (uc *CategoryUseCase) Delete(ctx context.Context, id int64) error {
	category, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func toCategoryResponse(c *entity.Category) dto.CategoryResponse {
	out := dto.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		Image:       c.Image,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
	for _, opt := range c.Options {
		out.Options = append(out.Options, toOptionResponse(&opt))
	}
	return out
}
