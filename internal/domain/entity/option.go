package entity

import "time"

// Option es una dimensión configurable de producto (ej. Talla, Color).
// CreatedAt es relevante para el negocio: define el orden de los códigos
// en el SKU de variante, no solo auditoría.
type Option struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time

	// Values cargados desde option_values (one-to-many).
	Values []OptionValue
}

// HasValue indica si el id pertenece a los valores de esta opción.
func (o Option) HasValue(valueID int64) bool {
	for _, v := range o.Values {
		if v.ID == valueID {
			return true
		}
	}
	return false
}
