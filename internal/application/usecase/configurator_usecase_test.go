package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/catalog"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// seedConfigurable deja en los fakes un producto listo para configurar, con
// Talla creada antes que Color para fijar el orden de los códigos de variante.
func seedConfigurable(t *testing.T) (*fakeProductRepo, *fakeCategoryRepo) {
	t.Helper()

	tTalla := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	tColor := time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC)

	talla := entity.Option{
		ID: 1, Name: "Talla", CreatedAt: tTalla,
		Values: []entity.OptionValue{
			{ID: 1, OptionID: 1, Name: "S", PriceAdder: decimal.Zero},
			{ID: 2, OptionID: 1, Name: "M", PriceAdder: decimal.RequireFromString("1.00")},
		},
	}
	color := entity.Option{
		ID: 2, Name: "Color", CreatedAt: tColor,
		Values: []entity.OptionValue{
			{ID: 3, OptionID: 2, Name: "Rojo", PriceAdder: decimal.RequireFromString("1.01")},
			{ID: 4, OptionID: 2, Name: "Azul Marino", PriceAdder: decimal.Zero},
		},
	}

	categories := newFakeCategoryRepo()
	require.NoError(t, categories.Create(context.Background(), &entity.Category{ID: 1, Name: "Men's T-Shirts", Slug: "mens-t-shirts"}))

	products := newFakeProductRepo()
	products.products[7] = &entity.Product{
		ID:         7,
		CategoryID: 1,
		Name:       "Crew Neck",
		Slug:       "crew-neck",
		SKU:        "MENS-T-CREW-N-7",
		BasePrice:  decimal.RequireFromString("19.99"),
		Options:    []entity.Option{talla, color},
		OptionValues: []entity.OptionValue{
			talla.Values[0], talla.Values[1], color.Values[0], color.Values[1],
		},
	}
	return products, categories
}

func TestConfiguratorUseCase_Configure(t *testing.T) {
	ctx := context.Background()

	t.Run("computa SKU de variante y precio total", func(t *testing.T) {
		products, categories := seedConfigurable(t)
		uc := usecase.NewConfiguratorUseCase(products, categories)

		got, err := uc.Configure(ctx, dto.ConfigureRequest{
			ProductID:      7,
			OptionValueIDs: []int64{3, 1}, // Rojo antes que S: el orden lo fija la opción
		})
		require.NoError(t, err)

		assert.Equal(t, "MENS-T-CREW-N-7-S-ROJO", got.SKU)
		assert.True(t, got.TotalPrice.Equal(decimal.RequireFromString("21.00")),
			"total %s", got.TotalPrice)
		assert.True(t, got.BasePrice.Equal(decimal.RequireFromString("19.99")))
		assert.Equal(t, "MENS-T-CREW-N-7", got.Configuration.Product.BaseSKU)

		require.Len(t, got.Configuration.SelectedOptions, 2)
		assert.Equal(t, "Talla", got.Configuration.SelectedOptions[0].OptionName)
		assert.Equal(t, "S", got.Configuration.SelectedOptions[0].ValueName)
		assert.Equal(t, "Color", got.Configuration.SelectedOptions[1].OptionName)
		assert.Equal(t, "ROJO", got.Configuration.SelectedOptions[1].SKU)
	})

	t.Run("selección vacía configura al precio base", func(t *testing.T) {
		products, categories := seedConfigurable(t)
		uc := usecase.NewConfiguratorUseCase(products, categories)

		got, err := uc.Configure(ctx, dto.ConfigureRequest{ProductID: 7})
		require.NoError(t, err)

		assert.Equal(t, "MENS-T-CREW-N-7", got.SKU)
		assert.True(t, got.TotalPrice.Equal(decimal.RequireFromString("19.99")))
		assert.Empty(t, got.Configuration.SelectedOptions)
	})

	t.Run("producto inexistente", func(t *testing.T) {
		products, categories := seedConfigurable(t)
		uc := usecase.NewConfiguratorUseCase(products, categories)

		_, err := uc.Configure(ctx, dto.ConfigureRequest{ProductID: 404})
		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("producto sin SKU base no es configurable", func(t *testing.T) {
		products, categories := seedConfigurable(t)
		products.products[7].SKU = ""
		uc := usecase.NewConfiguratorUseCase(products, categories)

		_, err := uc.Configure(ctx, dto.ConfigureRequest{ProductID: 7, OptionValueIDs: []int64{1}})
		require.ErrorIs(t, err, catalog.ErrMissingBaseSKU)
	})

	t.Run("valores desconocidos suben como error tipado", func(t *testing.T) {
		products, categories := seedConfigurable(t)
		uc := usecase.NewConfiguratorUseCase(products, categories)

		_, err := uc.Configure(ctx, dto.ConfigureRequest{ProductID: 7, OptionValueIDs: []int64{1, 77}})

		var invalid *catalog.InvalidOptionValuesError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, []int64{77}, invalid.ValueIDs)
	})
}

func TestConfiguratorUseCase_Catalog(t *testing.T) {
	ctx := context.Background()

	t.Run("lista productos de una categoría con valores habilitados", func(t *testing.T) {
		products, categories := seedConfigurable(t)
		// El producto deshabilita "Azul Marino": no debe aparecer.
		p := products.products[7]
		p.OptionValues = p.OptionValues[:3]
		uc := usecase.NewConfiguratorUseCase(products, categories)

		got, err := uc.ProductsByCategory(ctx, 1, dto.PageRequest{})
		require.NoError(t, err)

		require.Len(t, got.Products, 1)
		prod := got.Products[0]
		assert.Equal(t, "Crew Neck", prod.Name)
		require.Len(t, prod.Options, 2)
		assert.Len(t, prod.Options[0].Values, 2)
		require.Len(t, prod.Options[1].Values, 1)
		assert.Equal(t, "Rojo", prod.Options[1].Values[0].Name)
		assert.True(t, prod.Options[1].Values[0].Price.Equal(decimal.RequireFromString("21.00")))
	})

	t.Run("categoría inexistente", func(t *testing.T) {
		products, categories := seedConfigurable(t)
		uc := usecase.NewConfiguratorUseCase(products, categories)

		_, err := uc.ProductsByCategory(ctx, 404, dto.PageRequest{})
		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("categorías del catálogo público", func(t *testing.T) {
		products, categories := seedConfigurable(t)
		uc := usecase.NewConfiguratorUseCase(products, categories)

		got, err := uc.Categories(ctx)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Men's T-Shirts", got[0].Name)
	})
}
