// Package pdf implementa la lista de precios del catálogo como PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + fecha de generación                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Por categoría:                                              │
//	│    CABECERA DE CATEGORÍA                                     │
//	│    TABLA: SKU | Producto | Variante | Precio                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: leyenda de vigencia                                 │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/jhoicas/catalogo-api/internal/application/export"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// amountPrinter formatea montos con separadores es-CO (1.234.567,89).
var amountPrinter = message.NewPrinter(language.MustParse("es-CO"))

// ── Generator ─────────────────────────────────────────────────────────────────

var _ export.PriceListGenerator = (*PriceListGenerator)(nil)

// PriceListGenerator implementa export.PriceListGenerator usando Maroto v2.
type PriceListGenerator struct {
	title string
}

// NewPriceListGenerator construye el generador. title encabeza el documento
// (normalmente el nombre de la tienda).
func NewPriceListGenerator(title string) *PriceListGenerator {
	return &PriceListGenerator{title: title}
}

// GeneratePriceListPDF genera el PDF y devuelve sus bytes. Los items llegan
// agrupados por categoría; cada cambio de categoría abre una cabecera nueva.
func (g *PriceListGenerator) GeneratePriceListPDF(_ context.Context, items []export.PriceListItem) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Lista de Precios", true).
		WithAuthor(g.title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.title))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	currentCategory := ""
	for _, item := range items {
		if item.Category != currentCategory {
			currentCategory = item.Category
			m.AddRows(categoryRow(item.Category))
			m.AddRows(tableHeaderRow())
		}
		m.AddRows(itemRow(item))
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y fecha de generación (der).
func headerRow(title string) core.Row {
	fecha := time.Now().Format("02/01/2006")
	return row.New(14).Add(
		col.New(8).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Lista de precios del catálogo", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Generada: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

// categoryRow: cabecera de sección por categoría.
func categoryRow(name string) core.Row {
	return row.New(10).Add(col.New(12).Add(
		text.New(name, props.Text{
			Style: fontstyle.Bold, Size: 11, Color: colorPrimary, Top: 3,
		}),
	))
}

// tableHeaderRow: cabecera de la tabla de precios.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorGray, Top: 1, Left: 1, Right: 1,
		}))
	}
	return row.New(6).Add(
		h("SKU", 3, align.Left),
		h("Producto", 4, align.Left),
		h("Variante", 3, align.Left),
		h("Precio", 2, align.Right),
	)
}

// itemRow: una fila por línea de precio. Las variantes van con sangría.
func itemRow(item export.PriceListItem) core.Row {
	style := fontstyle.Normal
	left := 1.0
	if item.Detail == "" {
		style = fontstyle.Bold
	} else {
		left = 3.0
	}
	return row.New(6).Add(
		col.New(3).Add(text.New(item.SKU, props.Text{
			Size: 7.5, Align: align.Left, Top: 1, Left: left, Color: colorGray,
		})),
		col.New(4).Add(text.New(item.Name, props.Text{
			Size: 8, Style: style, Align: align.Left, Top: 1, Left: left,
		})),
		col.New(3).Add(text.New(item.Detail, props.Text{
			Size: 8, Align: align.Left, Top: 1, Left: 1,
		})),
		col.New(2).Add(text.New(formatAmount(item.Price), props.Text{
			Size: 8, Style: style, Align: align.Right, Top: 1, Right: 1,
		})),
	)
}

// footerRow: leyenda de vigencia.
func footerRow() core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(
			"Precios sujetos a cambio sin previo aviso. Los precios de variante "+
				"corresponden al precio base más el recargo del valor indicado.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

// formatAmount formatea un monto con separadores es-CO: 1234567.89 → $ 1.234.567,89
func formatAmount(d decimal.Decimal) string {
	f, _ := d.Float64()
	return amountPrinter.Sprintf("$ %v",
		number.Decimal(f, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}
