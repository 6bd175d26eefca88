package export_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-api/internal/application/export"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// ─────────────────────────────────────────────────────────────────────────────
// Dobles de prueba
// ─────────────────────────────────────────────────────────────────────────────

type stubCategoryRepo struct {
	categories []*entity.Category
}

var _ repository.CategoryRepository = (*stubCategoryRepo)(nil)

func (s *stubCategoryRepo) Create(context.Context, *entity.Category) error { return nil }
func (s *stubCategoryRepo) GetByID(context.Context, int64) (*entity.Category, error) {
	return nil, nil
}
func (s *stubCategoryRepo) GetWithOptions(context.Context, int64) (*entity.Category, error) {
	return nil, nil
}
func (s *stubCategoryRepo) List(context.Context, string, int, int) ([]*entity.Category, int64, error) {
	return nil, 0, nil
}
func (s *stubCategoryRepo) ListAll(context.Context) ([]*entity.Category, error) {
	return s.categories, nil
}
func (s *stubCategoryRepo) Update(context.Context, *entity.Category) error { return nil }
func (s *stubCategoryRepo) Delete(context.Context, int64) error            { return nil }
func (s *stubCategoryRepo) SlugExists(context.Context, string, int64) (bool, error) {
	return false, nil
}
func (s *stubCategoryRepo) OptionIDs(context.Context, int64) ([]int64, error) { return nil, nil }
func (s *stubCategoryRepo) SyncOptions(context.Context, int64, []int64) error { return nil }

type stubProductRepo struct {
	byCategory map[int64][]*entity.Product
	pageCalls  int
}

var _ repository.ProductRepository = (*stubProductRepo)(nil)

func (s *stubProductRepo) Create(context.Context, *entity.Product) error { return nil }
func (s *stubProductRepo) GetByID(context.Context, int64) (*entity.Product, error) {
	return nil, nil
}
func (s *stubProductRepo) GetForConfiguration(context.Context, int64) (*entity.Product, error) {
	return nil, nil
}
func (s *stubProductRepo) List(context.Context, string, int, int) ([]*entity.Product, int64, error) {
	return nil, 0, nil
}
func (s *stubProductRepo) ListByCategory(_ context.Context, categoryID int64, limit, offset int) ([]*entity.Product, int64, error) {
	s.pageCalls++
	all := s.byCategory[categoryID]
	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}
func (s *stubProductRepo) Update(context.Context, *entity.Product) error { return nil }
func (s *stubProductRepo) Delete(context.Context, int64) error           { return nil }
func (s *stubProductRepo) SlugExists(context.Context, string, int64) (bool, error) {
	return false, nil
}
func (s *stubProductRepo) SKUExists(context.Context, string, int64) (bool, error) {
	return false, nil
}
func (s *stubProductRepo) SyncOptions(context.Context, int64, []int64) error      { return nil }
func (s *stubProductRepo) SyncOptionValues(context.Context, int64, []int64) error { return nil }

// capturas de lo que llega a los generadores, sin tocar maroto ni etree.
type capturePDF struct {
	items []export.PriceListItem
}

func (c *capturePDF) GeneratePriceListPDF(_ context.Context, items []export.PriceListItem) ([]byte, error) {
	c.items = items
	return []byte("%PDF"), nil
}

type captureFeed struct {
	categories []export.FeedCategory
}

func (c *captureFeed) BuildProductFeed(_ context.Context, categories []export.FeedCategory) ([]byte, error) {
	c.categories = categories
	return []byte("<catalog/>"), nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Fixtures
// ─────────────────────────────────────────────────────────────────────────────

func money(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// camisetasCatalog arma una categoría con un producto configurable: Talla con
// S (sin recargo) y M (+1.00), donde solo S y M están habilitados pero la
// opción también trae un valor L deshabilitado.
func camisetasCatalog() (*stubCategoryRepo, *stubProductRepo) {
	talla := entity.Option{
		ID:        1,
		Name:      "Talla",
		CreatedAt: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		Values: []entity.OptionValue{
			{ID: 1, OptionID: 1, Name: "S", PriceAdder: money("0")},
			{ID: 2, OptionID: 1, Name: "M", PriceAdder: money("1.00")},
			{ID: 3, OptionID: 1, Name: "L", PriceAdder: money("2.00")},
		},
	}
	product := &entity.Product{
		ID:         7,
		CategoryID: 1,
		Name:       "Crew Neck",
		Slug:       "crew-neck",
		SKU:        "MENS-T-CREW-N-7",
		BasePrice:  money("19.99"),
		Options:    []entity.Option{talla},
		OptionValues: []entity.OptionValue{
			{ID: 1, OptionID: 1, Name: "S", PriceAdder: money("0")},
			{ID: 2, OptionID: 1, Name: "M", PriceAdder: money("1.00")},
		},
	}
	cats := &stubCategoryRepo{categories: []*entity.Category{
		{ID: 1, Name: "Camisetas", Slug: "camisetas"},
	}}
	prods := &stubProductRepo{byCategory: map[int64][]*entity.Product{1: {product}}}
	return cats, prods
}

// ─────────────────────────────────────────────────────────────────────────────
// Lista de precios
// ─────────────────────────────────────────────────────────────────────────────

func TestExportUseCase_PriceListPDF(t *testing.T) {
	cats, prods := camisetasCatalog()
	pdf := &capturePDF{}
	uc := export.NewExportUseCase(cats, prods, pdf, &captureFeed{})

	out, filename, err := uc.PriceListPDF(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF"), out)
	assert.Equal(t, fmt.Sprintf("lista-precios-%s.pdf", time.Now().Format("2006-01-02")), filename)

	// línea base + una sola línea de variante: S no tiene recargo y L está
	// deshabilitado, solo M genera línea.
	require.Len(t, pdf.items, 2)

	base := pdf.items[0]
	assert.Equal(t, "Camisetas", base.Category)
	assert.Equal(t, "Crew Neck", base.Name)
	assert.Equal(t, "MENS-T-CREW-N-7", base.SKU)
	assert.True(t, base.Price.Equal(money("19.99")))
	assert.Empty(t, base.Detail)

	variant := pdf.items[1]
	assert.Equal(t, "MENS-T-CREW-N-7-M", variant.SKU)
	assert.True(t, variant.Price.Equal(money("20.99")))
	assert.Equal(t, "Talla: M", variant.Detail)
}

// ─────────────────────────────────────────────────────────────────────────────
// Feed XML
// ─────────────────────────────────────────────────────────────────────────────

func TestExportUseCase_ProductFeedXML(t *testing.T) {
	cats, prods := camisetasCatalog()
	feed := &captureFeed{}
	uc := export.NewExportUseCase(cats, prods, &capturePDF{}, feed)

	out, filename, err := uc.ProductFeedXML(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []byte("<catalog/>"), out)
	assert.Equal(t, "products.xml", filename)

	require.Len(t, feed.categories, 1)
	cat := feed.categories[0]
	assert.Equal(t, "camisetas", cat.Slug)
	require.Len(t, cat.Products, 1)

	p := cat.Products[0]
	assert.Equal(t, "MENS-T-CREW-N-7", p.SKU)
	require.Len(t, p.Options, 1)

	// solo valores habilitados, con el SKU de variante derivado del base.
	values := p.Options[0].Values
	require.Len(t, values, 2)
	assert.Equal(t, "MENS-T-CREW-N-7-S", values[0].SKU)
	assert.Equal(t, "MENS-T-CREW-N-7-M", values[1].SKU)
	assert.True(t, values[1].Price.Equal(money("20.99")))
}

func TestExportUseCase_CatalogoVacio(t *testing.T) {
	feed := &captureFeed{}
	uc := export.NewExportUseCase(&stubCategoryRepo{}, &stubProductRepo{}, &capturePDF{}, feed)

	_, _, err := uc.ProductFeedXML(context.Background())
	require.NoError(t, err)
	assert.Empty(t, feed.categories)
}
