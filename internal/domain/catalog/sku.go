package catalog

import (
	"context"
	"fmt"
	"strings"
)

// skuRetryLimit acota la resolución de unicidad de SKUs. A diferencia de los
// slugs, el formato del SKU es significativo hacia afuera (se muestra y se
// almacena en columnas de ancho acotado), así que el diseño acepta un techo
// duro y un fallo fatal en lugar de crecimiento sin límite.
const skuRetryLimit = 999

// skuRetryBaseLen: largo máximo de la base sobre la que se anexa el contador.
const skuRetryBaseLen = 20

// ToSKUCode normaliza un nombre a código de SKU: la misma familia de
// normalización que GenerateSlug pero en mayúsculas y acotada a maxLength.
func ToSKUCode(name string, maxLength int) string {
	s := strings.ToUpper(strings.TrimSpace(name))
	s = nonWordRe.ReplaceAllString(s, "")
	s = separatorRe.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if len(s) > maxLength {
		s = s[:maxLength]
	}
	return s
}

// GenerateBaseSKU compone el SKU base {catCode(6)}-{prodCode(6)|PROD}-{id}.
// El id del producto va incluido a propósito: garantiza unicidad incondicional
// aunque dos productos compartan códigos truncados idénticos.
func GenerateBaseSKU(categoryName string, productID int64, productName string) string {
	categoryCode := ToSKUCode(categoryName, 6)
	productCode := "PROD"
	if productName != "" {
		productCode = ToSKUCode(productName, 6)
	}
	return fmt.Sprintf("%s-%s-%d", categoryCode, productCode, productID)
}

// EnsureUniqueSKU prueba el candidato y luego {base(20)}-{n} para n = 1..999.
// Si todos están tomados devuelve ErrSKUExhausted. Las verificaciones son
// secuenciales por naturaleza: cada candidato depende de saber que el anterior
// estaba ocupado.
func EnsureUniqueSKU(ctx context.Context, sku string, exists ExistsFunc, excludeID int64) (string, error) {
	base := sku
	if len(base) > skuRetryBaseLen {
		base = base[:skuRetryBaseLen]
	}

	candidate := sku
	for counter := 1; ; counter++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		taken, err := exists(ctx, candidate, excludeID)
		if err != nil {
			return "", fmt.Errorf("verificar sku %q: %w", candidate, err)
		}
		if !taken {
			return candidate, nil
		}
		if counter > skuRetryLimit {
			return "", ErrSKUExhausted
		}
		candidate = fmt.Sprintf("%s-%d", base, counter)
	}
}

// GenerateOptionValueSKU deriva el fragmento de SKU de un valor de opción:
// mayúsculas, limpieza, separadores a guion, hasta 4 caracteres por palabra y
// 8 en total. "Azul Marino" -> "AZUL-MAR".
func GenerateOptionValueSKU(valueName string) string {
	s := strings.ToUpper(strings.TrimSpace(valueName))
	s = nonWordRe.ReplaceAllString(s, "")
	s = separatorRe.ReplaceAllString(s, "-")

	var words []string
	for _, w := range strings.Split(s, "-") {
		if w == "" {
			continue
		}
		if len(w) > 4 {
			w = w[:4]
		}
		words = append(words, w)
	}
	code := strings.Join(words, "-")
	if len(code) > 8 {
		code = code[:8]
	}
	return code
}

// OptionValueRef es una selección (opción, valor) ya ordenada por el motor de
// configuración.
type OptionValueRef struct {
	OptionName string
	ValueName  string
}

// GenerateVariantSKU concatena {skuBase}-{code1}-{code2}-… en el orden
// recibido. Pura y sin chequeo de unicidad: los SKUs de variante se derivan
// bajo demanda, no se persisten como claves.
func GenerateVariantSKU(productSKU string, optionValues []OptionValueRef) string {
	if len(optionValues) == 0 {
		return productSKU
	}
	codes := make([]string, 0, len(optionValues))
	for _, ov := range optionValues {
		codes = append(codes, GenerateOptionValueSKU(ov.ValueName))
	}
	return productSKU + "-" + strings.Join(codes, "-")
}
