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

func ptr[T any](v T) *T { return &v }

// fixture arma una categoría "Men's T-Shirts" con dos opciones: Talla (S, M)
// creada antes que Color (Rojo, Azul Marino). Los ids son estables para poder
// afirmar sobre SKUs y órdenes exactos.
type fixture struct {
	products   *fakeProductRepo
	categories *fakeCategoryRepo
	options    *fakeOptionRepo
	uc         *usecase.ProductUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	tTalla := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	tColor := time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC)

	categories := newFakeCategoryRepo()
	require.NoError(t, categories.Create(context.Background(), &entity.Category{ID: 1, Name: "Men's T-Shirts", Slug: "mens-t-shirts"}))
	categories.optionIDs[1] = []int64{1, 2}

	options := newFakeOptionRepo()
	require.NoError(t, options.Create(context.Background(), &entity.Option{
		ID: 1, Name: "Talla", CreatedAt: tTalla,
		Values: []entity.OptionValue{
			{ID: 1, OptionID: 1, Name: "S", PriceAdder: decimal.Zero},
			{ID: 2, OptionID: 1, Name: "M", PriceAdder: decimal.RequireFromString("1.00")},
		},
	}))
	require.NoError(t, options.Create(context.Background(), &entity.Option{
		ID: 2, Name: "Color", CreatedAt: tColor,
		Values: []entity.OptionValue{
			{ID: 3, OptionID: 2, Name: "Rojo", PriceAdder: decimal.RequireFromString("1.01")},
			{ID: 4, OptionID: 2, Name: "Azul Marino", PriceAdder: decimal.Zero},
		},
	}))

	products := newFakeProductRepo()
	return &fixture{
		products:   products,
		categories: categories,
		options:    options,
		uc:         usecase.NewProductUseCase(products, categories, options, &fakeTxRunner{products: products}),
	}
}

func TestProductUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("deriva slug y SKU base con el id asignado", func(t *testing.T) {
		f := newFixture(t)

		got, err := f.uc.Create(ctx, dto.CreateProductRequest{
			Name:           "Crew Neck",
			CategoryID:     1,
			BasePrice:      decimal.RequireFromString("19.99"),
			OptionIDs:      []int64{1, 2},
			OptionValueIDs: []int64{1, 2, 3, 4},
		})
		require.NoError(t, err)

		assert.Equal(t, "crew-neck", got.Slug)
		assert.Equal(t, "MENS-T-CREW-N-1", got.SKU)
		assert.Equal(t, []int64{1, 2}, f.products.optionSync[got.ID])
		assert.Equal(t, []int64{1, 2, 3, 4}, f.products.valueSync[got.ID])
	})

	t.Run("respeta slug y SKU explícitos resolviendo colisiones", func(t *testing.T) {
		f := newFixture(t)
		f.products.products[99] = &entity.Product{ID: 99, Slug: "crew-neck", SKU: "CUSTOM"}
		f.products.nextID = 99

		got, err := f.uc.Create(ctx, dto.CreateProductRequest{
			Name:       "Crew Neck",
			SKU:        "CUSTOM",
			CategoryID: 1,
			BasePrice:  decimal.RequireFromString("10.00"),
		})
		require.NoError(t, err)

		assert.Equal(t, "crew-neck-1", got.Slug)
		assert.Equal(t, "CUSTOM-1", got.SKU)
	})

	t.Run("rechaza precio base negativo", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.uc.Create(ctx, dto.CreateProductRequest{
			Name:       "Crew Neck",
			CategoryID: 1,
			BasePrice:  decimal.RequireFromString("-0.01"),
		})
		require.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Empty(t, f.products.writes)
	})

	t.Run("rechaza categoría inexistente", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.uc.Create(ctx, dto.CreateProductRequest{
			Name:       "Crew Neck",
			CategoryID: 42,
			BasePrice:  decimal.RequireFromString("10.00"),
		})
		require.ErrorIs(t, err, domain.ErrNotFound)
		assert.Empty(t, f.products.writes)
	})

	t.Run("rechaza opciones fuera de la categoría sin persistir nada", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.uc.Create(ctx, dto.CreateProductRequest{
			Name:       "Crew Neck",
			CategoryID: 1,
			BasePrice:  decimal.RequireFromString("10.00"),
			OptionIDs:  []int64{1, 99},
		})

		var invalid *catalog.InvalidOptionsError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, []int64{99}, invalid.OptionIDs)
		assert.Empty(t, f.products.writes)
	})

	t.Run("rechaza opción seleccionada sin valor habilitado", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.uc.Create(ctx, dto.CreateProductRequest{
			Name:       "Crew Neck",
			CategoryID: 1,
			BasePrice:  decimal.RequireFromString("10.00"),
			OptionIDs:  []int64{1},
		})

		var missing *catalog.MissingOptionValueError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, int64(1), missing.OptionID)
		assert.Equal(t, "Talla", missing.OptionName)
		assert.Empty(t, f.products.writes)
	})

	t.Run("rechaza valores que no pertenecen a las opciones elegidas", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.uc.Create(ctx, dto.CreateProductRequest{
			Name:           "Crew Neck",
			CategoryID:     1,
			BasePrice:      decimal.RequireFromString("10.00"),
			OptionIDs:      []int64{1},
			OptionValueIDs: []int64{1, 3},
		})

		var stray *catalog.InvalidOptionValuesError
		require.ErrorAs(t, err, &stray)
		assert.Equal(t, []int64{3}, stray.ValueIDs)
		assert.Empty(t, f.products.writes)
	})
}

func TestProductUseCase_Update(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T, f *fixture) *dto.ProductResponse {
		t.Helper()
		got, err := f.uc.Create(ctx, dto.CreateProductRequest{
			Name:           "Crew Neck",
			CategoryID:     1,
			BasePrice:      decimal.RequireFromString("19.99"),
			OptionIDs:      []int64{1, 2},
			OptionValueIDs: []int64{1, 2, 3, 4},
		})
		require.NoError(t, err)
		return got
	}

	t.Run("nombre nuevo regenera slug y SKU base", func(t *testing.T) {
		f := newFixture(t)
		created := seed(t, f)

		got, err := f.uc.Update(ctx, created.ID, dto.UpdateProductRequest{
			Name: ptr("Camiseta Basica"),
		})
		require.NoError(t, err)

		assert.Equal(t, "camiseta-basica", got.Slug)
		assert.Equal(t, "MENS-T-CAMISE-1", got.SKU)
	})

	t.Run("SKU explícito se respeta tal cual", func(t *testing.T) {
		f := newFixture(t)
		created := seed(t, f)

		got, err := f.uc.Update(ctx, created.ID, dto.UpdateProductRequest{
			SKU: ptr("PROMO-2025"),
		})
		require.NoError(t, err)
		assert.Equal(t, "PROMO-2025", got.SKU)
	})

	t.Run("edición sin tocar nombre ni categoría conserva el SKU asignado", func(t *testing.T) {
		f := newFixture(t)
		created := seed(t, f)

		_, err := f.uc.Update(ctx, created.ID, dto.UpdateProductRequest{
			SKU: ptr("PROMO-2025"),
		})
		require.NoError(t, err)

		got, err := f.uc.Update(ctx, created.ID, dto.UpdateProductRequest{
			Description: ptr("Camiseta de algodón peinado"),
		})
		require.NoError(t, err)

		assert.Equal(t, "PROMO-2025", got.SKU)
		assert.Equal(t, "Camiseta de algodón peinado", got.Description)
	})

	t.Run("listas de asociaciones reemplazan por completo", func(t *testing.T) {
		f := newFixture(t)
		created := seed(t, f)

		_, err := f.uc.Update(ctx, created.ID, dto.UpdateProductRequest{
			OptionIDs:      []int64{1},
			OptionValueIDs: []int64{1, 2},
		})
		require.NoError(t, err)

		assert.Equal(t, []int64{1}, f.products.optionSync[created.ID])
		assert.Equal(t, []int64{1, 2}, f.products.valueSync[created.ID])
	})

	t.Run("validación fallida no toca la persistencia", func(t *testing.T) {
		f := newFixture(t)
		created := seed(t, f)
		baseline := len(f.products.writes)

		_, err := f.uc.Update(ctx, created.ID, dto.UpdateProductRequest{
			OptionIDs: []int64{99},
		})

		var invalid *catalog.InvalidOptionsError
		require.ErrorAs(t, err, &invalid)
		assert.Len(t, f.products.writes, baseline)
	})

	t.Run("producto inexistente devuelve nil", func(t *testing.T) {
		f := newFixture(t)

		got, err := f.uc.Update(ctx, 404, dto.UpdateProductRequest{Name: ptr("X")})
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestProductUseCase_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("elimina un producto existente", func(t *testing.T) {
		f := newFixture(t)
		f.products.products[5] = &entity.Product{ID: 5, Name: "Crew Neck"}

		require.NoError(t, f.uc.Delete(ctx, 5))
		assert.NotContains(t, f.products.products, int64(5))
	})

	t.Run("inexistente devuelve not found", func(t *testing.T) {
		f := newFixture(t)
		require.ErrorIs(t, f.uc.Delete(ctx, 404), domain.ErrNotFound)
	})
}
