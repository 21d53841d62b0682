package catalog

import (
	"github.com/gosimple/slug"

	"github.com/okoval/handmade-shop/internal/models"
)

// Catalog is the read-only list of product cards the storefront renders.
// The cards post their display fields back on add-to-cart, so the cart
// never depends on this list at mutation time.
type Catalog struct {
	products []models.Product
}

// ProductID returns the canonical identity for a product. An explicit id
// wins; otherwise one is derived by slugifying the name, which keeps the
// key stable across image swaps and markup changes.
func ProductID(id, name string) string {
	if id != "" {
		return id
	}
	return slug.Make(name)
}

// Seed returns the storefront's handmade goods.
func Seed() *Catalog {
	items := []struct {
		name  string
		price float64
		image string
	}{
		{"Плетений кошик", 450, "/images/basket.jpg"},
		{"Керамічна чашка", 280, "/images/cup.jpg"},
		{"В'язаний шарф", 520, "/images/scarf.jpg"},
		{"Дерев'яна шкатулка", 760, "/images/box.jpg"},
		{"Лляна серветка", 120, "/images/napkin.jpg"},
		{"Свічка з бджолиного воску", 95.5, "/images/candle.jpg"},
	}

	c := &Catalog{}
	for _, item := range items {
		c.products = append(c.products, models.Product{
			ID:    ProductID("", item.name),
			Name:  item.name,
			Price: item.price,
			Image: item.image,
		})
	}
	return c
}

// All returns the cards in display order.
func (c *Catalog) All() []models.Product {
	return c.products
}
