package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okoval/handmade-shop/internal/models"
)

func twoLineCart() models.Cart {
	return models.Cart{Lines: []models.CartLine{
		{Product: models.Product{ID: "p1", Name: "Чашка", Price: 100, Image: "/images/cup.jpg"}, Quantity: 2},
		{Product: models.Product{ID: "p2", Name: "Шарф", Price: 50, Image: "/images/scarf.jpg"}, Quantity: 1},
	}}
}

func TestNewCartViewEmptyState(t *testing.T) {
	view := NewCartView(models.Cart{}, "грн")

	assert.True(t, view.Empty)
	assert.Empty(t, view.Rows)
	assert.Equal(t, "0 грн", view.TotalText)
}

func TestNewCartViewRows(t *testing.T) {
	view := NewCartView(twoLineCart(), "грн")

	assert.False(t, view.Empty)
	require.Len(t, view.Rows, 2)
	assert.Equal(t, "p1", view.Rows[0].ID)
	assert.Equal(t, "100 грн", view.Rows[0].PriceText)
	assert.Equal(t, 2, view.Rows[0].Quantity)
	assert.Equal(t, "250 грн", view.TotalText)
}

func TestTemplatesRenderCartPage(t *testing.T) {
	tmpl := Templates()

	view := NewCartView(twoLineCart(), "грн")
	view.Page = Page{Title: "Кошик", BadgeCount: 3}

	var sb strings.Builder
	require.NoError(t, tmpl.ExecuteTemplate(&sb, "cart.tmpl", view))
	body := sb.String()

	assert.Contains(t, body, "Чашка")
	assert.Contains(t, body, "Разом до сплати: 250 грн")
	assert.Contains(t, body, `<span class="cart-counter">3</span>`)
	assert.NotContains(t, body, "Ваш кошик порожній")
}

func TestTemplatesRenderEmptyCartPage(t *testing.T) {
	tmpl := Templates()

	view := NewCartView(models.Cart{}, "грн")
	view.Page = Page{Title: "Кошик"}

	var sb strings.Builder
	require.NoError(t, tmpl.ExecuteTemplate(&sb, "cart.tmpl", view))
	body := sb.String()

	assert.Contains(t, body, "Ваш кошик порожній")
	assert.Contains(t, body, "Разом до сплати: 0 грн")
	// Badge is hidden entirely at zero, not rendered as "0".
	assert.NotContains(t, body, "cart-counter")
}
