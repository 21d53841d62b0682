package handlers

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/okoval/handmade-shop/internal/cart"
	"github.com/okoval/handmade-shop/internal/catalog"
	"github.com/okoval/handmade-shop/internal/checkout"
	"github.com/okoval/handmade-shop/internal/models"
	"github.com/okoval/handmade-shop/internal/notify"
	"github.com/okoval/handmade-shop/internal/render"
	"github.com/okoval/handmade-shop/internal/session"
)

// Handlers holds every dependency the HTTP layer needs. All handlers are
// methods on this struct.
type Handlers struct {
	Cart     *cart.Service
	Checkout *checkout.Service
	Catalog  *catalog.Catalog
	Toasts   *notify.Queue
	Suffix   string
	Log      *slog.Logger
}

// currentCart loads the visitor's cart, substituting an empty one when
// the store is unreachable. Read failures never surface to the page.
func (h *Handlers) currentCart(c *gin.Context) models.Cart {
	scope := session.Scope(c)
	current, err := h.Cart.Get(c, scope)
	if err != nil {
		h.Log.Warn("cart load failed, rendering empty", "scope", scope, "error", err)
		return models.Cart{}
	}
	return current
}

// page assembles the shared chrome: title, badge counter, active toasts.
func (h *Handlers) page(c *gin.Context, title string, current models.Cart) render.Page {
	return render.Page{
		Title:      title,
		BadgeCount: current.ItemCount(),
		Toasts:     h.Toasts.Active(session.Scope(c)),
	}
}
