package catalog

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// Selection describe un valor elegido dentro de una configuración: la opción
// que lo posee, el valor, su delta de precio y su fragmento de SKU.
type Selection struct {
	OptionID        int64
	OptionName      string
	OptionCreatedAt time.Time
	ValueID         int64
	ValueName       string
	PriceAdder      decimal.Decimal
	SKU             string
}

// Configuration es el resultado de configurar un producto: SKU de variante,
// precio total y el detalle ordenado de selecciones.
type Configuration struct {
	VariantSKU string
	BasePrice  decimal.Decimal
	TotalPrice decimal.Decimal
	Selections []Selection
}

// Configure valida una selección de valores contra el snapshot inmutable de un
// producto (con Options+Values y OptionValues habilitados ya cargados) y
// produce el SKU de variante y el precio total. Es un cálculo sin estado sobre
// datos en memoria: no escribe nada y no emite consultas propias.
//
// Reglas:
//   - el producto debe tener SKU base (ErrMissingBaseSKU);
//   - una selección vacía es válida: precio base y sin selecciones;
//   - todo id pedido debe estar habilitado en el producto
//     (InvalidOptionValuesError con los ids ofensivos);
//   - a lo sumo un valor por opción (DuplicateOptionSelectionError);
//   - total = base + Σ adders, en decimal; adders negativos pueden dejar el
//     total por debajo del precio base y no se acota en cero;
//   - las selecciones se ordenan por CreatedAt de la opción dueña (asc); el
//     orden es relevante porque fija la secuencia de códigos del SKU de
//     variante. Empates conservan el orden de los valores habilitados, así dos
//     llamadas con el mismo conjunto de ids producen SKUs idénticos sin
//     importar el orden de entrada.
func Configure(product *entity.Product, requestedValueIDs []int64) (*Configuration, error) {
	if product.SKU == "" {
		return nil, ErrMissingBaseSKU
	}

	if len(requestedValueIDs) == 0 {
		return &Configuration{
			VariantSKU: product.SKU,
			BasePrice:  product.BasePrice,
			TotalPrice: product.BasePrice,
			Selections: []Selection{},
		}, nil
	}

	enabled := make(map[int64]bool, len(product.OptionValues))
	for _, ov := range product.OptionValues {
		enabled[ov.ID] = true
	}

	var invalid []int64
	requested := make(map[int64]bool, len(requestedValueIDs))
	for _, id := range requestedValueIDs {
		if !enabled[id] {
			invalid = append(invalid, id)
		}
		requested[id] = true
	}
	if len(invalid) > 0 {
		return nil, &InvalidOptionValuesError{ValueIDs: invalid}
	}

	// Recorrer los valores habilitados (no el request) colapsa ids repetidos
	// del mismo valor y fija un orden de partida estable.
	selections := make([]Selection, 0, len(requested))
	seenOptions := make(map[int64]bool)
	var duplicates []int64
	total := product.BasePrice

	for _, ov := range product.OptionValues {
		if !requested[ov.ID] {
			continue
		}
		sel := Selection{
			ValueID:    ov.ID,
			ValueName:  ov.Name,
			PriceAdder: ov.PriceAdder,
			SKU:        GenerateOptionValueSKU(ov.Name),
		}
		if owner := findOwningOption(product.Options, ov.ID); owner != nil {
			sel.OptionID = owner.ID
			sel.OptionName = owner.Name
			sel.OptionCreatedAt = owner.CreatedAt
			if seenOptions[owner.ID] {
				duplicates = append(duplicates, owner.ID)
			}
			seenOptions[owner.ID] = true
		}
		total = total.Add(ov.PriceAdder)
		selections = append(selections, sel)
	}

	if len(duplicates) > 0 {
		return nil, &DuplicateOptionSelectionError{OptionIDs: duplicates}
	}

	sort.SliceStable(selections, func(i, j int) bool {
		return selections[i].OptionCreatedAt.Before(selections[j].OptionCreatedAt)
	})

	refs := make([]OptionValueRef, 0, len(selections))
	for _, sel := range selections {
		refs = append(refs, OptionValueRef{OptionName: sel.OptionName, ValueName: sel.ValueName})
	}

	return &Configuration{
		VariantSKU: GenerateVariantSKU(product.SKU, refs),
		BasePrice:  product.BasePrice,
		TotalPrice: total,
		Selections: selections,
	}, nil
}

// findOwningOption busca la opción habilitada cuyo conjunto de valores
// contiene valueID. nil si ninguna lo posee.
func findOwningOption(options []entity.Option, valueID int64) *entity.Option {
	for i := range options {
		if options[i].HasValue(valueID) {
			return &options[i]
		}
	}
	return nil
}
