package orderControllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseItemsPayloadArray(t *testing.T) {
	records := ParseItemsPayload([]byte(`[{"nom":"Vase"},{"nom":"Tapis"}]`))
	require.Len(t, records, 2)
	assert.Equal(t, "Vase", records[0]["nom"])
}

func TestParseItemsPayloadDoubleEncodedString(t *testing.T) {
	records := ParseItemsPayload([]byte(`"[{\"nom\":\"Vase\",\"quantite\":2,\"prix\":\"45 DTN\"}]"`))
	require.Len(t, records, 1)
	assert.Equal(t, "Vase", records[0]["nom"])
}

func TestParseItemsPayloadItemsWrapper(t *testing.T) {
	records := ParseItemsPayload([]byte(`{"items":[{"name":"Vase"}],"total":45}`))
	require.Len(t, records, 1)
	assert.Equal(t, "Vase", records[0]["name"])
}

func TestParseItemsPayloadObjectOfObjects(t *testing.T) {
	raw := []byte(`{"10":{"name":"Dixieme"},"2":{"name":"Deuxieme"},"1":{"name":"Premier"}}`)
	records := ParseItemsPayload(raw)
	require.Len(t, records, 3)
	// numeric key order, not lexicographic
	assert.Equal(t, "Premier", records[0]["name"])
	assert.Equal(t, "Deuxieme", records[1]["name"])
	assert.Equal(t, "Dixieme", records[2]["name"])
}

func TestParseItemsPayloadGarbage(t *testing.T) {
	assert.Nil(t, ParseItemsPayload(nil))
	assert.Nil(t, ParseItemsPayload([]byte(`42`)))
	assert.Nil(t, ParseItemsPayload([]byte(`"not json inside"`)))
	assert.Nil(t, ParseItemsPayload([]byte(`{"total":45}`)))
	assert.Empty(t, ParseItemsPayload([]byte(`{}`)))
}

func TestResolveItemNamePriority(t *testing.T) {
	item := map[string]interface{}{"nom": "NomValue", "title": "TitleValue"}
	assert.Equal(t, "NomValue", ResolveItemName(item, 0))

	item["name"] = "NameValue"
	assert.Equal(t, "NameValue", ResolveItemName(item, 0))
}

func TestResolveItemNameNestedAndFallback(t *testing.T) {
	nested := map[string]interface{}{
		"product": map[string]interface{}{"name": "Nested"},
	}
	assert.Equal(t, "Nested", ResolveItemName(nested, 0))

	nestedFr := map[string]interface{}{
		"produit": map[string]interface{}{"nom": "Imbriqué"},
	}
	assert.Equal(t, "Imbriqué", ResolveItemName(nestedFr, 0))

	assert.Equal(t, "Article 3", ResolveItemName(map[string]interface{}{}, 2))
}

func TestResolveItemQuantity(t *testing.T) {
	assert.Equal(t, 2, ResolveItemQuantity(map[string]interface{}{"quantity": float64(2)}))
	assert.Equal(t, 3, ResolveItemQuantity(map[string]interface{}{"quantite": "3"}))
	assert.Equal(t, 1, ResolveItemQuantity(map[string]interface{}{"quantity": float64(0)}))
	assert.Equal(t, 1, ResolveItemQuantity(map[string]interface{}{}))
}

func TestResolveUnitPrice(t *testing.T) {
	p := ResolveUnitPrice(map[string]interface{}{"price": "45.5 DTN"})
	require.NotNil(t, p)
	assert.Equal(t, 45.5, *p)

	p = ResolveUnitPrice(map[string]interface{}{"prix_unitaire": float64(12), "price": float64(99)})
	require.NotNil(t, p)
	assert.Equal(t, float64(12), *p)

	assert.Nil(t, ResolveUnitPrice(map[string]interface{}{}))
}

func TestReconstructItemsDerivesLineTotal(t *testing.T) {
	raw := []byte(`[{"nom":"Vase","quantite":3,"prix":"45 DTN"},{"nom":"Mystère"}]`)

	items := ReconstructItems(raw, nil)
	require.Len(t, items, 2)

	require.NotNil(t, items[0].LineTotal)
	assert.Equal(t, float64(135), *items[0].LineTotal)

	// nothing to derive from when the record has no price at all
	assert.Nil(t, items[1].UnitPrice)
	assert.Nil(t, items[1].LineTotal)
}

func TestReconstructItemsKeepsStoredLineTotal(t *testing.T) {
	raw := []byte(`[{"nom":"Vase","quantite":2,"prix":"45 DTN","sous_total":80}]`)

	items := ReconstructItems(raw, nil)
	require.Len(t, items, 1)
	require.NotNil(t, items[0].LineTotal)
	// a stored total wins over quantity × unit price
	assert.Equal(t, float64(80), *items[0].LineTotal)
}

func TestReconstructItemsWithImageIndex(t *testing.T) {
	imageIndex := map[string]string{"vase": "/uploads/produits/vase.jpg"}
	raw := []byte(`[{"nom":" Vase ","quantite":2,"prix":"45 DTN","sous_total":90}]`)

	items := ReconstructItems(raw, imageIndex)
	require.Len(t, items, 1)
	assert.Equal(t, " Vase ", items[0].Name)
	assert.Equal(t, 2, items[0].Quantity)
	require.NotNil(t, items[0].UnitPrice)
	assert.Equal(t, float64(45), *items[0].UnitPrice)
	require.NotNil(t, items[0].LineTotal)
	assert.Equal(t, float64(90), *items[0].LineTotal)
	assert.Equal(t, "/uploads/produits/vase.jpg", items[0].Image)
}
