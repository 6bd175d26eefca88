package catalog

import (
	"errors"
	"fmt"
)

// Errores del motor de configuración y los generadores de identificadores.
// Los tipos estructurados cargan los ids ofensivos para que la capa HTTP
// pueda devolver mensajes accionables en la respuesta del configurador.
var (
	// ErrMissingBaseSKU: el producto no tiene SKU base, precondición para
	// componer el SKU de variante.
	ErrMissingBaseSKU = errors.New("el producto no tiene SKU base")

	// ErrSKUExhausted: la búsqueda de SKU único agotó los 999 intentos.
	// Es un fallo sistémico de nomenclatura, no un error del usuario.
	ErrSKUExhausted = errors.New("no se pudo generar un SKU único tras 999 intentos")
)

// InvalidOptionsError: opciones seleccionadas que no pertenecen a la categoría.
type InvalidOptionsError struct {
	OptionIDs []int64
}

func (e *InvalidOptionsError) Error() string {
	return fmt.Sprintf("opciones no disponibles para la categoría: %v", e.OptionIDs)
}

// InvalidOptionValuesError: valores que no pertenecen a las opciones
// seleccionadas (escritura) o no están habilitados en el producto (configure).
type InvalidOptionValuesError struct {
	ValueIDs []int64
}

func (e *InvalidOptionValuesError) Error() string {
	return fmt.Sprintf("valores de opción no válidos: %v", e.ValueIDs)
}

// DuplicateOptionSelectionError: dos valores seleccionados resuelven a la
// misma opción. La regla central del configurador es un valor por opción.
type DuplicateOptionSelectionError struct {
	OptionIDs []int64
}

func (e *DuplicateOptionSelectionError) Error() string {
	return fmt.Sprintf("no se puede seleccionar más de un valor de la misma opción: %v", e.OptionIDs)
}

// MissingOptionValueError: una opción seleccionada con valores definidos no
// tiene ningún valor elegido. Se reporta la primera opción que falla.
type MissingOptionValueError struct {
	OptionID   int64
	OptionName string
}

func (e *MissingOptionValueError) Error() string {
	return fmt.Sprintf("la opción %q requiere al menos un valor seleccionado", e.OptionName)
}
