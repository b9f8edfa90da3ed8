package cart

import (
	"github.com/shopspring/decimal"
)

// LineItem is one product entry in the cart. The unit price is captured at
// add-to-cart time and never silently re-fetched: the cart reflects the
// catalog price the shopper saw, not live re-pricing.
type LineItem struct {
	ProductID string          `json:"productId"`
	SKUCode   string          `json:"skuCode"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	ImageURL  string          `json:"imageUrl,omitempty"`
}

// Subtotal is unit price times quantity for this line.
func (l LineItem) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart is an ordered sequence of line items keyed by product id: at most
// one line per product. The zero value is an empty cart.
type Cart struct {
	Lines []LineItem
}

// Total recomputes the cart total on every call; it is never cached.
func (c Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.Lines {
		total = total.Add(line.Subtotal())
	}
	return total
}

// IsEmpty reports whether the cart has no lines.
func (c Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// clone returns a cart whose line slice shares nothing with the receiver.
func (c Cart) clone() Cart {
	if len(c.Lines) == 0 {
		return Cart{}
	}
	lines := make([]LineItem, len(c.Lines))
	copy(lines, c.Lines)
	return Cart{Lines: lines}
}

// add merges the item into the cart: an existing product line has its
// quantity incremented, otherwise the item is appended. Quantities below
// one are treated as one.
func add(c Cart, item LineItem) Cart {
	if item.Quantity < 1 {
		item.Quantity = 1
	}
	next := c.clone()
	for i, line := range next.Lines {
		if line.ProductID == item.ProductID {
			next.Lines[i].Quantity += item.Quantity
			return next
		}
	}
	next.Lines = append(next.Lines, item)
	return next
}

// updateQuantity sets a line's quantity. A quantity at or below zero
// removes the line; an absent product id is a no-op.
func updateQuantity(c Cart, productID string, quantity int) Cart {
	if quantity <= 0 {
		return remove(c, productID)
	}
	next := c.clone()
	for i, line := range next.Lines {
		if line.ProductID == productID {
			next.Lines[i].Quantity = quantity
			break
		}
	}
	return next
}

// remove deletes the line for the product id, preserving order of the rest.
func remove(c Cart, productID string) Cart {
	next := Cart{}
	for _, line := range c.Lines {
		if line.ProductID == productID {
			continue
		}
		next.Lines = append(next.Lines, line)
	}
	return next
}
