package usecase_test

import (
	"context"
	"sort"
	"strings"

	"github.com/jhoicas/catalogo-api/internal/application/usecase"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para los puertos de persistencia. Registran cada operación
// de escritura en writes para poder afirmar "ningún fallo de validación llega
// a persistir" (la garantía central del write path).
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products   map[int64]*entity.Product
	nextID     int64
	writes     []string
	optionSync map[int64][]int64
	valueSync  map[int64][]int64
}

var _ repository.ProductRepository = (*fakeProductRepo)(nil)

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{
		products:   make(map[int64]*entity.Product),
		optionSync: make(map[int64][]int64),
		valueSync:  make(map[int64][]int64),
	}
}

func (f *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	f.nextID++
	p.ID = f.nextID
	clone := *p
	f.products[p.ID] = &clone
	f.writes = append(f.writes, "create")
	return nil
}

func (f *fakeProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, nil
	}
	clone := *p
	return &clone, nil
}

func (f *fakeProductRepo) GetForConfiguration(ctx context.Context, id int64) (*entity.Product, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeProductRepo) List(_ context.Context, search string, limit, offset int) ([]*entity.Product, int64, error) {
	var out []*entity.Product
	for _, p := range f.products {
		if search == "" || strings.Contains(strings.ToLower(p.Name), strings.ToLower(search)) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, int64(len(out)), nil
}

func (f *fakeProductRepo) ListByCategory(_ context.Context, categoryID int64, _, _ int) ([]*entity.Product, int64, error) {
	var out []*entity.Product
	for _, p := range f.products {
		if p.CategoryID == categoryID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, int64(len(out)), nil
}

func (f *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	clone := *p
	f.products[p.ID] = &clone
	f.writes = append(f.writes, "update")
	return nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id int64) error {
	delete(f.products, id)
	f.writes = append(f.writes, "delete")
	return nil
}

func (f *fakeProductRepo) SlugExists(_ context.Context, slug string, excludeID int64) (bool, error) {
	for _, p := range f.products {
		if p.Slug == slug && p.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeProductRepo) SKUExists(_ context.Context, sku string, excludeID int64) (bool, error) {
	for _, p := range f.products {
		if p.SKU == sku && p.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeProductRepo) SyncOptions(_ context.Context, productID int64, optionIDs []int64) error {
	f.optionSync[productID] = append([]int64(nil), optionIDs...)
	f.writes = append(f.writes, "sync_options")
	return nil
}

func (f *fakeProductRepo) SyncOptionValues(_ context.Context, productID int64, valueIDs []int64) error {
	f.valueSync[productID] = append([]int64(nil), valueIDs...)
	f.writes = append(f.writes, "sync_option_values")
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────

type fakeCategoryRepo struct {
	categories map[int64]*entity.Category
	optionIDs  map[int64][]int64
}

var _ repository.CategoryRepository = (*fakeCategoryRepo)(nil)

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{
		categories: make(map[int64]*entity.Category),
		optionIDs:  make(map[int64][]int64),
	}
}

func (f *fakeCategoryRepo) Create(_ context.Context, c *entity.Category) error {
	if c.ID == 0 {
		c.ID = int64(len(f.categories) + 1)
	}
	clone := *c
	f.categories[c.ID] = &clone
	return nil
}

func (f *fakeCategoryRepo) GetByID(_ context.Context, id int64) (*entity.Category, error) {
	c, ok := f.categories[id]
	if !ok {
		return nil, nil
	}
	clone := *c
	return &clone, nil
}

func (f *fakeCategoryRepo) GetWithOptions(ctx context.Context, id int64) (*entity.Category, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeCategoryRepo) List(_ context.Context, _ string, _, _ int) ([]*entity.Category, int64, error) {
	var out []*entity.Category
	for _, c := range f.categories {
		out = append(out, c)
	}
	return out, int64(len(out)), nil
}

func (f *fakeCategoryRepo) ListAll(ctx context.Context) ([]*entity.Category, error) {
	list, _, err := f.List(ctx, "", 0, 0)
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, err
}

func (f *fakeCategoryRepo) Update(_ context.Context, c *entity.Category) error {
	clone := *c
	f.categories[c.ID] = &clone
	return nil
}

func (f *fakeCategoryRepo) Delete(_ context.Context, id int64) error {
	delete(f.categories, id)
	return nil
}

func (f *fakeCategoryRepo) SlugExists(_ context.Context, slug string, excludeID int64) (bool, error) {
	for _, c := range f.categories {
		if c.Slug == slug && c.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCategoryRepo) OptionIDs(_ context.Context, categoryID int64) ([]int64, error) {
	return f.optionIDs[categoryID], nil
}

func (f *fakeCategoryRepo) SyncOptions(_ context.Context, categoryID int64, optionIDs []int64) error {
	f.optionIDs[categoryID] = append([]int64(nil), optionIDs...)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────

type fakeOptionRepo struct {
	options map[int64]*entity.Option
}

var _ repository.OptionRepository = (*fakeOptionRepo)(nil)

func newFakeOptionRepo() *fakeOptionRepo {
	return &fakeOptionRepo{options: make(map[int64]*entity.Option)}
}

func (f *fakeOptionRepo) Create(_ context.Context, o *entity.Option) error {
	if o.ID == 0 {
		o.ID = int64(len(f.options) + 1)
	}
	clone := *o
	f.options[o.ID] = &clone
	return nil
}

func (f *fakeOptionRepo) GetByID(_ context.Context, id int64) (*entity.Option, error) {
	o, ok := f.options[id]
	if !ok {
		return nil, nil
	}
	clone := *o
	return &clone, nil
}

func (f *fakeOptionRepo) List(_ context.Context, _, _ int) ([]*entity.Option, int64, error) {
	var out []*entity.Option
	for _, o := range f.options {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, int64(len(out)), nil
}

func (f *fakeOptionRepo) ListByIDs(_ context.Context, ids []int64) ([]entity.Option, error) {
	var out []entity.Option
	for _, id := range ids {
		if o, ok := f.options[id]; ok {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (f *fakeOptionRepo) Update(_ context.Context, o *entity.Option) error {
	clone := *o
	f.options[o.ID] = &clone
	return nil
}

func (f *fakeOptionRepo) Delete(_ context.Context, id int64) error {
	delete(f.options, id)
	return nil
}

func (f *fakeOptionRepo) ReplaceValues(_ context.Context, optionID int64, values []entity.OptionValue) error {
	if o, ok := f.options[optionID]; ok {
		o.Values = append([]entity.OptionValue(nil), values...)
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────

// fakeTxRunner ejecuta el callback directamente sobre el repo compartido: las
// aserciones de atomicidad se hacen contando escrituras, no simulando rollback.
type fakeTxRunner struct {
	products *fakeProductRepo
}

var _ usecase.TxRunner = (*fakeTxRunner)(nil)

func (f *fakeTxRunner) Run(_ context.Context, fn func(products repository.ProductRepository) error) error {
	return fn(f.products)
}
