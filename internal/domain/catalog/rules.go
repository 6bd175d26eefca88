package catalog

import "github.com/jhoicas/catalogo-api/internal/domain/entity"

// Reglas de consistencia del catálogo, aplicadas en el write path de producto
// ANTES de cualquier persistencia. Las tres comparten semántica con el motor
// de configuración; viven aquí para que el caso de uso las reutilice tal cual.

// ValidateProductOptions exige que toda opción seleccionada pertenezca a las
// opciones adjuntas a la categoría del producto. Devuelve InvalidOptionsError
// con los ids foráneos.
func ValidateProductOptions(categoryOptionIDs, selectedOptionIDs []int64) error {
	attached := make(map[int64]bool, len(categoryOptionIDs))
	for _, id := range categoryOptionIDs {
		attached[id] = true
	}
	var foreign []int64
	for _, id := range selectedOptionIDs {
		if !attached[id] {
			foreign = append(foreign, id)
		}
	}
	if len(foreign) > 0 {
		return &InvalidOptionsError{OptionIDs: foreign}
	}
	return nil
}

// ValidateOptionValueCoverage exige que cada opción seleccionada con >= 1
// valor definido tenga al menos un valor elegido. Reporta la primera opción
// que falla; opciones sin valores quedan implícitamente satisfechas.
func ValidateOptionValueCoverage(selectedOptions []entity.Option, selectedValueIDs []int64) error {
	chosen := make(map[int64]bool, len(selectedValueIDs))
	for _, id := range selectedValueIDs {
		chosen[id] = true
	}
	for _, opt := range selectedOptions {
		if len(opt.Values) == 0 {
			continue
		}
		covered := false
		for _, v := range opt.Values {
			if chosen[v.ID] {
				covered = true
				break
			}
		}
		if !covered {
			return &MissingOptionValueError{OptionID: opt.ID, OptionName: opt.Name}
		}
	}
	return nil
}

// ValidateValueOwnership exige que cada valor elegido pertenezca al conjunto
// de valores de alguna opción seleccionada. Los ids huérfanos se reportan en
// InvalidOptionValuesError.
func ValidateValueOwnership(selectedOptions []entity.Option, selectedValueIDs []int64) error {
	owned := make(map[int64]bool)
	for _, opt := range selectedOptions {
		for _, v := range opt.Values {
			owned[v.ID] = true
		}
	}
	var stray []int64
	for _, id := range selectedValueIDs {
		if !owned[id] {
			stray = append(stray, id)
		}
	}
	if len(stray) > 0 {
		return &InvalidOptionValuesError{ValueIDs: stray}
	}
	return nil
}
