package models

import "github.com/shopspring/decimal"

// Cart is the server-confirmed cart snapshot. The totals are always the
// server's numbers; the client replaces the whole snapshot on every mutation
// and never merges or recomputes locally.
type Cart struct {
	Items     []CartItem `json:"items"`
	Totals    CartTotals `json:"totals"`
	ItemCount int        `json:"item_count"`
}

type CartTotals struct {
	Subtotal string `json:"subtotal"`
	Total    string `json:"total"`
	Tax      string `json:"tax"`
	Discount string `json:"discount"`
	Shipping string `json:"shipping"`
}

// CartItem is one server-confirmed line. Key identifies the line for
// update/remove calls; Attributes carries selected variation labels for display.
type CartItem struct {
	ID          int               `json:"id"`
	Key         string            `json:"key"`
	ProductID   int               `json:"product_id"`
	VariationID int               `json:"variation_id"`
	Quantity    int               `json:"quantity"`
	Name        string            `json:"name"`
	Price       string            `json:"price"`
	Image       string            `json:"image"`
	Attributes  map[string]string `json:"attributes"`
	Subtotal    string            `json:"subtotal"`
}

// EmptyCart is the snapshot a fresh session starts from, matching what the
// store returns for a cart with nothing in it.
func EmptyCart() Cart {
	return Cart{
		Items: []CartItem{},
		Totals: CartTotals{
			Subtotal: "0.00",
			Total:    "0.00",
			Tax:      "0.00",
			Discount: "0.00",
			Shipping: "0.00",
		},
	}
}

func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// LineSubtotal echoes price × qty for display while a quantity change awaits
// server confirmation. Falls back to the confirmed subtotal if the price
// string does not parse.
func (i CartItem) LineSubtotal(qty int) string {
	price, err := decimal.NewFromString(i.Price)
	if err != nil {
		return i.Subtotal
	}
	return price.Mul(decimal.NewFromInt(int64(qty))).StringFixed(2)
}
