package entity

import "time"

// Category agrupa productos y define qué opciones pueden ofrecer
// (pivot category_option). Slug único global entre categorías.
type Category struct {
	ID          int64
	Name        string
	Slug        string
	Description string // vacío si no tiene
	Image       string // ruta o URL; el almacenamiento del archivo es externo
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Options cargadas desde el pivot category_option (solo en lecturas que lo piden).
	Options []Option
}
