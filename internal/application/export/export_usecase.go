package export

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/catalogo-api/internal/domain/catalog"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// pageSize tamaño de página al recorrer productos por categoría.
const pageSize = 200

// ExportUseCase arma las exportaciones del catálogo: lista de precios en PDF
// y feed de productos en XML. Los formatos concretos viven detrás de puertos
// para que la capa de aplicación no dependa de maroto ni etree.
type ExportUseCase struct {
	categories repository.CategoryRepository
	products   repository.ProductRepository
	pdf        PriceListGenerator
	feed       FeedBuilder
}

// NewExportUseCase construye el caso de uso inyectando sus dependencias.
func NewExportUseCase(
	categories repository.CategoryRepository,
	products repository.ProductRepository,
	pdf PriceListGenerator,
	feed FeedBuilder,
) *ExportUseCase {
	return &ExportUseCase{categories: categories, products: products, pdf: pdf, feed: feed}
}

// PriceListPDF genera la lista de precios del catálogo completo: una línea
// por producto y una por cada valor habilitado con recargo, con el precio
// final y el SKU de esa variante de un solo valor.
func (uc *ExportUseCase) PriceListPDF(ctx context.Context) ([]byte, string, error) {
	categories, err := uc.loadCatalog(ctx)
	if err != nil {
		return nil, "", err
	}

	var items []PriceListItem
	for _, cat := range categories {
		for _, p := range cat.Products {
			items = append(items, PriceListItem{
				Category: cat.Name,
				Name:     p.Name,
				SKU:      p.SKU,
				Price:    p.BasePrice,
			})
			for _, opt := range p.Options {
				for _, v := range opt.Values {
					if v.PriceAdder.IsZero() {
						continue
					}
					items = append(items, PriceListItem{
						Category: cat.Name,
						Name:     p.Name,
						SKU:      v.SKU,
						Price:    v.Price,
						Detail:   fmt.Sprintf("%s: %s", opt.Name, v.Name),
					})
				}
			}
		}
	}

	pdfBytes, err := uc.pdf.GeneratePriceListPDF(ctx, items)
	if err != nil {
		return nil, "", fmt.Errorf("export: generar lista de precios: %w", err)
	}
	filename := fmt.Sprintf("lista-precios-%s.pdf", time.Now().Format("2006-01-02"))
	return pdfBytes, filename, nil
}

// ProductFeedXML genera el feed XML del catálogo completo.
func (uc *ExportUseCase) ProductFeedXML(ctx context.Context) ([]byte, string, error) {
	categories, err := uc.loadCatalog(ctx)
	if err != nil {
		return nil, "", err
	}
	feedBytes, err := uc.feed.BuildProductFeed(ctx, categories)
	if err != nil {
		return nil, "", fmt.Errorf("export: generar feed: %w", err)
	}
	return feedBytes, "products.xml", nil
}

// loadCatalog recorre todas las categorías y pagina sus productos con las
// asociaciones cargadas.
func (uc *ExportUseCase) loadCatalog(ctx context.Context) ([]FeedCategory, error) {
	categories, err := uc.categories.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("export: listar categorías: %w", err)
	}

	out := make([]FeedCategory, 0, len(categories))
	for _, cat := range categories {
		fc := FeedCategory{ID: cat.ID, Name: cat.Name, Slug: cat.Slug}
		for offset := 0; ; offset += pageSize {
			products, total, err := uc.products.ListByCategory(ctx, cat.ID, pageSize, offset)
			if err != nil {
				return nil, fmt.Errorf("export: listar productos de %s: %w", cat.Slug, err)
			}
			for _, p := range products {
				fc.Products = append(fc.Products, toFeedProduct(p))
			}
			if int64(offset+pageSize) >= total || len(products) == 0 {
				break
			}
		}
		out = append(out, fc)
	}
	return out, nil
}

func toFeedProduct(p *entity.Product) FeedProduct {
	enabled := make(map[int64]bool, len(p.OptionValues))
	for _, v := range p.OptionValues {
		enabled[v.ID] = true
	}

	fp := FeedProduct{
		ID:          p.ID,
		Name:        p.Name,
		Slug:        p.Slug,
		SKU:         p.SKU,
		Description: p.Description,
		BasePrice:   p.BasePrice,
	}
	for _, opt := range p.Options {
		fo := FeedOption{ID: opt.ID, Name: opt.Name}
		for _, v := range opt.Values {
			if !enabled[v.ID] {
				continue
			}
			sku := ""
			if p.SKU != "" {
				sku = catalog.GenerateVariantSKU(p.SKU, []catalog.OptionValueRef{
					{OptionName: opt.Name, ValueName: v.Name},
				})
			}
			fo.Values = append(fo.Values, FeedValue{
				ID:         v.ID,
				Name:       v.Name,
				SKU:        sku,
				PriceAdder: v.PriceAdder,
				Price:      p.BasePrice.Add(v.PriceAdder),
			})
		}
		fp.Options = append(fp.Options, fo)
	}
	return fp
}
