// Package catalog contiene la lógica central del catálogo: generación de
// slugs y SKUs, el motor de configuración de productos y las reglas de
// consistencia del write path. Todo es puro salvo el predicado de existencia
// inyectado (ExistsFunc), único punto de suspensión hacia la persistencia.
package catalog

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

var (
	nonWordRe   = regexp.MustCompile(`[^\w\s-]`)
	separatorRe = regexp.MustCompile(`[\s_-]+`)
)

// ExistsFunc es el predicado asíncrono de existencia sobre la persistencia,
// acotado a la tabla correcta por quien lo inyecta. excludeID > 0 excluye esa
// fila (caso update); 0 no excluye nada.
type ExistsFunc func(ctx context.Context, candidate string, excludeID int64) (bool, error)

// GenerateSlug normaliza texto a slug: minúsculas, trim, elimina todo salvo
// caracteres de palabra/espacios/guiones, colapsa separadores a un guion y
// recorta guiones en los bordes. Total e idempotente; "" produce "".
func GenerateSlug(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	s = nonWordRe.ReplaceAllString(s, "")
	s = separatorRe.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// GenerateUniqueSlug resuelve unicidad partiendo de baseSlug: prueba el
// candidato y si está tomado anexa -1, -2, … sin tope. Termina porque los
// contadores son enteros crecientes que eventualmente esquivan cualquier
// conjunto finito de filas. Solo lee; el caller persiste el resultado.
func GenerateUniqueSlug(ctx context.Context, baseSlug string, exists ExistsFunc, excludeID int64) (string, error) {
	candidate := baseSlug
	for counter := 1; ; counter++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		taken, err := exists(ctx, candidate, excludeID)
		if err != nil {
			return "", fmt.Errorf("verificar slug %q: %w", candidate, err)
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", baseSlug, counter)
	}
}
