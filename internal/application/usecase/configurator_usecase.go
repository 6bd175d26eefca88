package usecase

import (
	"context"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/catalog"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// ConfiguratorUseCase API pública del configurador: catálogo navegable por
// categoría y el cálculo de configuración (SKU de variante + precio total).
// Configure es un cálculo puro sobre un snapshot: carga el producto con sus
// asociaciones y delega en el motor del dominio; no escribe nada.
type ConfiguratorUseCase struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
}

// NewConfiguratorUseCase construye el caso de uso.
func NewConfiguratorUseCase(
	products repository.ProductRepository,
	categories repository.CategoryRepository,
) *ConfiguratorUseCase {
	return &ConfiguratorUseCase{products: products, categories: categories}
}

// Categories devuelve todas las categorías ordenadas por nombre.
func (uc *ConfiguratorUseCase) Categories(ctx context.Context) ([]dto.ConfiguratorCategoryResponse, error) {
	list, err := uc.categories.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ConfiguratorCategoryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, dto.ConfiguratorCategoryResponse{ID: c.ID, Name: c.Name, Slug: c.Slug})
	}
	return out, nil
}

// ProductsByCategory devuelve los productos de una categoría con sus opciones
// y solo los valores habilitados por producto, cada valor con el precio final
// que implica elegirlo.
func (uc *ConfiguratorUseCase) ProductsByCategory(ctx context.Context, categoryID int64, page dto.PageRequest) (*dto.ConfiguratorProductListResponse, error) {
	page.DefaultPage()
	category, err := uc.categories.GetByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}

	products, total, err := uc.products.ListByCategory(ctx, categoryID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}

	items := make([]dto.ConfiguratorProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, toConfiguratorProduct(p, category))
	}
	return &dto.ConfiguratorProductListResponse{
		Category: dto.ConfiguratorCategoryResponse{ID: category.ID, Name: category.Name, Slug: category.Slug},
		Products: items,
		Page:     dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

// Configure valida la selección y computa SKU de variante y precio total.
// Los errores tipados del motor (valores inválidos, opción duplicada, sin SKU
// base) suben intactos para que la capa HTTP arme la respuesta estructurada.
func (uc *ConfiguratorUseCase) Configure(ctx context.Context, in dto.ConfigureRequest) (*dto.ConfigureResponse, error) {
	product, err := uc.products.GetForConfiguration(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	cfg, err := catalog.Configure(product, in.OptionValueIDs)
	if err != nil {
		return nil, err
	}

	selected := make([]dto.SelectedOptionResponse, 0, len(cfg.Selections))
	for _, sel := range cfg.Selections {
		selected = append(selected, dto.SelectedOptionResponse{
			OptionID:   sel.OptionID,
			OptionName: sel.OptionName,
			ValueID:    sel.ValueID,
			ValueName:  sel.ValueName,
			PriceAdder: sel.PriceAdder,
			SKU:        sel.SKU,
		})
	}
	return &dto.ConfigureResponse{
		SKU:        cfg.VariantSKU,
		TotalPrice: cfg.TotalPrice,
		BasePrice:  cfg.BasePrice,
		Configuration: dto.ConfigurationResponse{
			Product: dto.ConfiguredProductResponse{
				ID:      product.ID,
				Name:    product.Name,
				Slug:    product.Slug,
				BaseSKU: product.SKU,
			},
			SelectedOptions: selected,
		},
	}, nil
}

// toConfiguratorProduct arma la vista pública: por cada opción habilitada,
// solo los valores también habilitados en el producto, con precio base+adder.
func toConfiguratorProduct(p *entity.Product, category *entity.Category) dto.ConfiguratorProductResponse {
	enabled := make(map[int64]bool, len(p.OptionValues))
	for _, v := range p.OptionValues {
		enabled[v.ID] = true
	}

	options := make([]dto.ConfiguratorOptionResponse, 0, len(p.Options))
	for _, opt := range p.Options {
		values := make([]dto.ConfiguratorValueResponse, 0, len(opt.Values))
		for _, v := range opt.Values {
			if !enabled[v.ID] {
				continue
			}
			values = append(values, dto.ConfiguratorValueResponse{
				ID:         v.ID,
				Name:       v.Name,
				Price:      p.BasePrice.Add(v.PriceAdder),
				PriceAdder: v.PriceAdder,
			})
		}
		options = append(options, dto.ConfiguratorOptionResponse{ID: opt.ID, Name: opt.Name, Values: values})
	}

	return dto.ConfiguratorProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Slug:        p.Slug,
		SKU:         p.SKU,
		Price:       p.BasePrice,
		Description: p.Description,
		Image:       p.Image,
		Category:    dto.ConfiguratorCategoryResponse{ID: category.ID, Name: category.Name},
		Options:     options,
	}
}
