package models

// CartLine is one product entry in a cart with its selected quantity.
// A line's quantity is always >= 1: a quantity that would drop to zero or
// below deletes the line instead.
type CartLine struct {
	Product
	Quantity int `json:"quantity"`
}

// Cart is the ordered collection of selected lines. Insertion order is
// preserved across mutations and across a persist/reload round trip.
// At most one line exists per distinct product ID.
type Cart struct {
	Lines []CartLine `json:"lines"`
}

// Add increments the matching line's quantity by one, or appends a new
// line with quantity 1 when the product is not in the cart yet.
func (c *Cart) Add(p Product) {
	for i := range c.Lines {
		if c.Lines[i].ID == p.ID {
			c.Lines[i].Quantity++
			return
		}
	}
	c.Lines = append(c.Lines, CartLine{Product: p, Quantity: 1})
}

// ChangeQuantity applies delta to the line with the given product ID.
// A resulting quantity <= 0 removes the line entirely. Returns false when
// no line matches.
func (c *Cart) ChangeQuantity(productID string, delta int) bool {
	for i := range c.Lines {
		if c.Lines[i].ID != productID {
			continue
		}
		c.Lines[i].Quantity += delta
		if c.Lines[i].Quantity <= 0 {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
		}
		return true
	}
	return false
}

// Remove deletes the line with the given product ID regardless of its
// quantity. Returns false when no line matches.
func (c *Cart) Remove(productID string) bool {
	for i := range c.Lines {
		if c.Lines[i].ID == productID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return true
		}
	}
	return false
}

// Total is the sum of price*quantity over all lines, 0 for an empty cart.
// Plain float64 summation; no rounding policy is applied.
func (c Cart) Total() float64 {
	var total float64
	for _, line := range c.Lines {
		total += line.Price * float64(line.Quantity)
	}
	return total
}

// ItemCount is the sum of quantities across all lines. This feeds the
// badge counter, so it counts units, not lines.
func (c Cart) ItemCount() int {
	var n int
	for _, line := range c.Lines {
		n += line.Quantity
	}
	return n
}

// Snapshot returns an independent copy of the lines, safe to keep after
// the cart itself is mutated or cleared.
func (c Cart) Snapshot() []CartLine {
	items := make([]CartLine, len(c.Lines))
	copy(items, c.Lines)
	return items
}
