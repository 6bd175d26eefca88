package feed_test

import (
	"context"
	"testing"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-api/internal/application/export"
	"github.com/jhoicas/catalogo-api/internal/infrastructure/feed"
)

func sampleCatalog() []export.FeedCategory {
	return []export.FeedCategory{
		{
			ID:   1,
			Name: "Camisetas",
			Slug: "camisetas",
			Products: []export.FeedProduct{
				{
					ID:          7,
					Name:        "Crew Neck",
					Slug:        "crew-neck",
					SKU:         "MENS-T-CREW-N-7",
					Description: "Camiseta cuello redondo",
					BasePrice:   decimal.RequireFromString("19.99"),
					Options: []export.FeedOption{
						{
							ID:   1,
							Name: "Talla",
							Values: []export.FeedValue{
								{
									ID:         2,
									Name:       "M",
									SKU:        "MENS-T-CREW-N-7-M",
									PriceAdder: decimal.RequireFromString("1.00"),
									Price:      decimal.RequireFromString("20.99"),
								},
							},
						},
					},
				},
			},
		},
	}
}

func TestXMLBuilder_EstructuraDelFeed(t *testing.T) {
	builder := feed.NewXMLBuilder("https://tienda.example.com")

	out, err := builder.BuildProductFeed(context.Background(), sampleCatalog())
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))

	root := doc.Root()
	require.NotNil(t, root)
	assert.Equal(t, "catalog", root.Tag)
	assert.NotEmpty(t, root.SelectAttrValue("generated", ""))

	cat := root.SelectElement("category")
	require.NotNil(t, cat)
	assert.Equal(t, "1", cat.SelectAttrValue("id", ""))
	assert.Equal(t, "camisetas", cat.SelectAttrValue("slug", ""))
	assert.Equal(t, "Camisetas", cat.SelectElement("name").Text())

	prod := cat.SelectElement("product")
	require.NotNil(t, prod)
	assert.Equal(t, "7", prod.SelectAttrValue("id", ""))
	assert.Equal(t, "MENS-T-CREW-N-7", prod.SelectAttrValue("sku", ""))
	assert.Equal(t, "Crew Neck", prod.SelectElement("name").Text())
	assert.Equal(t, "19.99", prod.SelectElement("base_price").Text())
	assert.Equal(t, "https://tienda.example.com/productos/crew-neck", prod.SelectElement("link").Text())

	opt := prod.SelectElement("options").SelectElement("option")
	require.NotNil(t, opt)
	assert.Equal(t, "Talla", opt.SelectAttrValue("name", ""))

	val := opt.SelectElement("value")
	require.NotNil(t, val)
	assert.Equal(t, "MENS-T-CREW-N-7-M", val.SelectAttrValue("sku", ""))
	assert.Equal(t, "M", val.SelectElement("name").Text())
	assert.Equal(t, "1.00", val.SelectElement("price_adder").Text())
	assert.Equal(t, "20.99", val.SelectElement("price").Text())
}

func TestXMLBuilder_SinBaseURLOmiteEnlaces(t *testing.T) {
	builder := feed.NewXMLBuilder("")

	out, err := builder.BuildProductFeed(context.Background(), sampleCatalog())
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))

	prod := doc.Root().SelectElement("category").SelectElement("product")
	require.NotNil(t, prod)
	assert.Nil(t, prod.SelectElement("link"))
}

func TestXMLBuilder_ProductoSinSKUNiOpciones(t *testing.T) {
	builder := feed.NewXMLBuilder("")

	catalog := []export.FeedCategory{
		{
			ID:   2,
			Name: "Accesorios",
			Slug: "accesorios",
			Products: []export.FeedProduct{
				{ID: 9, Name: "Gorra", Slug: "gorra", BasePrice: decimal.RequireFromString("5.00")},
			},
		},
	}

	out, err := builder.BuildProductFeed(context.Background(), catalog)
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))

	prod := doc.Root().SelectElement("category").SelectElement("product")
	require.NotNil(t, prod)
	assert.Empty(t, prod.SelectAttrValue("sku", ""))
	assert.Nil(t, prod.SelectElement("options"))
	assert.Nil(t, prod.SelectElement("description"))
}
