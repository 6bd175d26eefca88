// Package feed serializa el catálogo como feed XML de productos, pensado
// para consumirse desde comparadores de precios y sincronizadores externos.
package feed

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/beevik/etree"

	"github.com/jhoicas/catalogo-api/internal/application/export"
)

var _ export.FeedBuilder = (*XMLBuilder)(nil)

// XMLBuilder implementa export.FeedBuilder usando etree.
type XMLBuilder struct {
	baseURL string
}

// NewXMLBuilder construye el builder. baseURL arma los enlaces de producto
// (baseURL + "/productos/" + slug); vacío omite los enlaces.
func NewXMLBuilder(baseURL string) *XMLBuilder {
	return &XMLBuilder{baseURL: baseURL}
}

// BuildProductFeed serializa el catálogo completo:
//
//	<catalog generated="...">
//	  <category id="1" slug="camisetas">
//	    <name>Camisetas</name>
//	    <product id="7" sku="MENS-T-CREW-N-7">...</product>
//	  </category>
//	</catalog>
func (b *XMLBuilder) BuildProductFeed(_ context.Context, categories []export.FeedCategory) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("catalog")
	root.CreateAttr("generated", time.Now().UTC().Format(time.RFC3339))

	for _, cat := range categories {
		catEl := root.CreateElement("category")
		catEl.CreateAttr("id", strconv.FormatInt(cat.ID, 10))
		catEl.CreateAttr("slug", cat.Slug)
		catEl.CreateElement("name").SetText(cat.Name)
		for _, p := range cat.Products {
			b.appendProduct(catEl, p)
		}
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("feed: serializar XML: %w", err)
	}
	return out, nil
}

func (b *XMLBuilder) appendProduct(parent *etree.Element, p export.FeedProduct) {
	el := parent.CreateElement("product")
	el.CreateAttr("id", strconv.FormatInt(p.ID, 10))
	if p.SKU != "" {
		el.CreateAttr("sku", p.SKU)
	}
	el.CreateElement("name").SetText(p.Name)
	el.CreateElement("slug").SetText(p.Slug)
	if p.Description != "" {
		el.CreateElement("description").SetText(p.Description)
	}
	el.CreateElement("base_price").SetText(p.BasePrice.StringFixed(2))
	if b.baseURL != "" {
		el.CreateElement("link").SetText(b.baseURL + "/productos/" + p.Slug)
	}

	if len(p.Options) == 0 {
		return
	}
	optsEl := el.CreateElement("options")
	for _, opt := range p.Options {
		optEl := optsEl.CreateElement("option")
		optEl.CreateAttr("id", strconv.FormatInt(opt.ID, 10))
		optEl.CreateAttr("name", opt.Name)
		for _, v := range opt.Values {
			vEl := optEl.CreateElement("value")
			vEl.CreateAttr("id", strconv.FormatInt(v.ID, 10))
			if v.SKU != "" {
				vEl.CreateAttr("sku", v.SKU)
			}
			vEl.CreateElement("name").SetText(v.Name)
			vEl.CreateElement("price_adder").SetText(v.PriceAdder.StringFixed(2))
			vEl.CreateElement("price").SetText(v.Price.StringFixed(2))
		}
	}
}
