package models

// Product carries one storefront card's worth of data.
// ID is the canonical identity: every cart line lookup, on every path,
// matches on this field and nothing else.
type Product struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"` // unit price, display-locale decimal, never negative
	Image string  `json:"image"`
}
