package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// CartItem is one line of the cashier cart.
type CartItem struct {
	ProductID uint  `json:"id" validate:"gt=0"`
	Qty       int   `json:"qty" validate:"gt=0"`
	Price     int64 `json:"price" validate:"gte=0"`
}

// flexNumber accepts a JSON number or a numeric string, as the cashier screen sends either.
type flexNumber int64

func (n *flexNumber) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		data = []byte(strings.TrimSpace(s))
	}
	if len(data) == 0 || string(data) == "null" {
		*n = 0
		return nil
	}
	v, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		// whole-number floats such as 10000.0
		f, ferr := strconv.ParseFloat(string(data), 64)
		if ferr != nil || f != float64(int64(f)) {
			return fmt.Errorf("%q is not a whole number", string(data))
		}
		v = int64(f)
	}
	*n = flexNumber(v)
	return nil
}

func (c *CartItem) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID    flexNumber `json:"id"`
		Qty   flexNumber `json:"qty"`
		Price flexNumber `json:"price"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.ID < 0 {
		return fmt.Errorf("invalid product id %d", raw.ID)
	}
	c.ProductID = uint(raw.ID)
	c.Qty = int(raw.Qty)
	c.Price = int64(raw.Price)
	return nil
}

// ParseCart decodes the keranjang form field.
func ParseCart(raw string) ([]CartItem, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, validationError("cart is empty")
	}
	var items []CartItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, validationError("cart is not valid JSON: " + err.Error())
	}
	if len(items) == 0 {
		return nil, validationError("cart is empty")
	}
	return items, nil
}
