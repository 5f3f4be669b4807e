package models

import (
	"encoding/json"
	"strconv"
)

// FlexID accepts product identifiers that arrive either as JSON numbers or
// strings, which varies by catalog source.
type FlexID string

func (f *FlexID) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexID(n.String())
	return nil
}

func (f FlexID) String() string { return string(f) }

type CartItem struct {
	ID       FlexID `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Price    string `json:"price"` // display string, e.g. "120.00 DTN"
	Image    string `json:"image"`
	Quantity int    `json:"quantity"`
}

// Cart is the shopper's ordered selection. Mutating operations return a new
// slice so callers decide whether to persist the result.
type Cart []CartItem

// Add merges on (id, name): an existing entry gets its quantity bumped by
// one, anything else is appended with quantity 1.
func (c Cart) Add(item CartItem) Cart {
	for i, existing := range c {
		if existing.ID == item.ID && existing.Name == item.Name {
			out := make(Cart, len(c))
			copy(out, c)
			if out[i].Quantity < 1 {
				out[i].Quantity = 1
			}
			out[i].Quantity++
			return out
		}
	}
	item.Quantity = 1
	out := make(Cart, len(c), len(c)+1)
	copy(out, c)
	return append(out, item)
}

// UpdateQuantity ignores quantities below 1 and indexes out of range.
func (c Cart) UpdateQuantity(index, quantity int) Cart {
	if quantity < 1 || index < 0 || index >= len(c) {
		return c
	}
	out := make(Cart, len(c))
	copy(out, c)
	out[index].Quantity = quantity
	return out
}

// Remove drops the entry at index; out of range is a no-op.
func (c Cart) Remove(index int) Cart {
	if index < 0 || index >= len(c) {
		return c
	}
	out := make(Cart, 0, len(c)-1)
	out = append(out, c[:index]...)
	out = append(out, c[index+1:]...)
	return out
}

// Count is the total number of articles (sum of quantities).
func (c Cart) Count() int {
	total := 0
	for _, item := range c {
		q := item.Quantity
		if q < 1 {
			q = 1
		}
		total += q
	}
	return total
}

func (c Cart) Encode() (string, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func DecodeCart(raw string) (Cart, error) {
	if raw == "" {
		return Cart{}, nil
	}
	var c Cart
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		return nil, err
	}
	for i := range c {
		if c[i].Quantity < 1 {
			c[i].Quantity = 1
		}
	}
	return c, nil
}

// ParseIndex reads a list index from a route parameter.
func ParseIndex(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
