package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartAddMergesOnIDAndName(t *testing.T) {
	cart := Cart{}
	cart = cart.Add(CartItem{ID: "1", Name: "Vase", Price: "45 DTN"})
	cart = cart.Add(CartItem{ID: "1", Name: "Vase", Price: "45 DTN"})
	cart = cart.Add(CartItem{ID: "2", Name: "Tapis", Price: "120 DTN"})

	require.Len(t, cart, 2)
	assert.Equal(t, 2, cart[0].Quantity)
	assert.Equal(t, 1, cart[1].Quantity)
	assert.Equal(t, 3, cart.Count())
}

func TestCartAddSameIDDifferentName(t *testing.T) {
	cart := Cart{}
	cart = cart.Add(CartItem{ID: "1", Name: "Vase bleu"})
	cart = cart.Add(CartItem{ID: "1", Name: "Vase rouge"})

	require.Len(t, cart, 2)
}

func TestCartAddDoesNotMutateReceiver(t *testing.T) {
	cart := Cart{{ID: "1", Name: "Vase", Quantity: 1}}
	_ = cart.Add(CartItem{ID: "1", Name: "Vase"})

	assert.Equal(t, 1, cart[0].Quantity)
}

func TestCartUpdateQuantity(t *testing.T) {
	cart := Cart{{ID: "1", Name: "Vase", Quantity: 1}}

	updated := cart.UpdateQuantity(0, 5)
	assert.Equal(t, 5, updated[0].Quantity)

	// quantities below 1 and bad indexes are ignored
	assert.Equal(t, cart, cart.UpdateQuantity(0, 0))
	assert.Equal(t, cart, cart.UpdateQuantity(0, -3))
	assert.Equal(t, cart, cart.UpdateQuantity(7, 2))
}

func TestCartRemove(t *testing.T) {
	cart := Cart{
		{ID: "1", Name: "Vase", Quantity: 1},
		{ID: "2", Name: "Tapis", Quantity: 2},
	}

	removed := cart.Remove(0)
	require.Len(t, removed, 1)
	assert.Equal(t, "Tapis", removed[0].Name)

	assert.Equal(t, cart, cart.Remove(5))
	assert.Equal(t, cart, cart.Remove(-1))
}

func TestCartEncodeDecodeRoundTrip(t *testing.T) {
	cart := Cart{
		{ID: "1", Name: "Vase", Category: "Déco", Price: "45 DTN", Quantity: 2},
	}

	raw, err := cart.Encode()
	require.NoError(t, err)

	decoded, err := DecodeCart(raw)
	require.NoError(t, err)
	assert.Equal(t, cart, decoded)
}

func TestDecodeCartEmptyString(t *testing.T) {
	cart, err := DecodeCart("")
	require.NoError(t, err)
	assert.Empty(t, cart)
}

func TestDecodeCartClampsQuantity(t *testing.T) {
	cart, err := DecodeCart(`[{"id":"1","name":"Vase","quantity":0}]`)
	require.NoError(t, err)
	require.Len(t, cart, 1)
	assert.Equal(t, 1, cart[0].Quantity)
}

func TestFlexIDAcceptsStringAndNumber(t *testing.T) {
	cart, err := DecodeCart(`[{"id":42,"name":"A","quantity":1},{"id":"abc","name":"B","quantity":1}]`)
	require.NoError(t, err)
	require.Len(t, cart, 2)
	assert.Equal(t, "42", cart[0].ID.String())
	assert.Equal(t, "abc", cart[1].ID.String())
}

func TestParseIndex(t *testing.T) {
	n, ok := ParseIndex("3")
	assert.True(t, ok)
	assert.Equal(t, 3, n)

	_, ok = ParseIndex("-1")
	assert.False(t, ok)
	_, ok = ParseIndex("abc")
	assert.False(t, ok)
}
