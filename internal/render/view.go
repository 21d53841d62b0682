package render

import (
	"github.com/okoval/handmade-shop/internal/models"
	"github.com/okoval/handmade-shop/internal/notify"
)

// Page carries what every template needs: the nav badge and the pending
// toasts. BadgeCount of zero hides the badge entirely.
type Page struct {
	Title      string
	BadgeCount int
	Toasts     []notify.Toast
}

// Card is one product card on the catalog page. PriceText is the
// display form the card posts back on add-to-cart.
type Card struct {
	models.Product
	PriceText string
}

// IndexView renders the catalog page.
type IndexView struct {
	Page
	Cards []Card
}

// Row is one cart line row with its controls.
type Row struct {
	ID        string
	Image     string
	Name      string
	PriceText string
	Quantity  int
}

// CartView renders the cart page, including the distinct empty state.
type CartView struct {
	Page
	Empty     bool
	Rows      []Row
	TotalText string
	Notice    string
	// Customer repopulates the checkout form after a failed validation.
	Customer models.Customer
}

// ConfirmationView renders the post-checkout modal.
type ConfirmationView struct {
	Page
	Order     models.Order
	TotalText string
}

// NewCards builds the catalog page's card list.
func NewCards(products []models.Product, suffix string) []Card {
	cards := make([]Card, len(products))
	for i, p := range products {
		cards[i] = Card{Product: p, PriceText: FormatPrice(p.Price, suffix)}
	}
	return cards
}

// NewCartView projects a cart into its page view. An empty cart renders
// the empty state with the total forced to display as zero.
func NewCartView(cart models.Cart, suffix string) CartView {
	view := CartView{
		Empty:     len(cart.Lines) == 0,
		TotalText: FormatPrice(cart.Total(), suffix),
	}
	for _, line := range cart.Lines {
		view.Rows = append(view.Rows, Row{
			ID:        line.ID,
			Image:     line.Image,
			Name:      line.Name,
			PriceText: FormatPrice(line.Price, suffix),
			Quantity:  line.Quantity,
		})
	}
	return view
}
