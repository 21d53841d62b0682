package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/okoval/handmade-shop/internal/render"
)

// Index is the handler for GET /
// It renders the catalog page: product cards plus the nav badge.
func (h *Handlers) Index(c *gin.Context) {
	current := h.currentCart(c)

	view := render.IndexView{
		Page:  h.page(c, "Крамниця", current),
		Cards: render.NewCards(h.Catalog.All(), h.Suffix),
	}
	c.HTML(http.StatusOK, "index.tmpl", view)
}

// ShowCart is the handler for GET /cart
// Every mutation redirects back here, so each change is a full re-render
// of the cart view rather than an incremental patch.
func (h *Handlers) ShowCart(c *gin.Context) {
	current := h.currentCart(c)

	view := render.NewCartView(current, h.Suffix)
	view.Page = h.page(c, "Кошик", current)
	c.HTML(http.StatusOK, "cart.tmpl", view)
}
