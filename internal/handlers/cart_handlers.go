package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/okoval/handmade-shop/internal/catalog"
	"github.com/okoval/handmade-shop/internal/models"
	"github.com/okoval/handmade-shop/internal/render"
	"github.com/okoval/handmade-shop/internal/session"
)

// AddToCartInput carries a product card's display fields. Price arrives
// as the card's display text, suffix included; the card markup owns that
// format, not the cart.
type AddToCartInput struct {
	ID    string `form:"id"`
	Name  string `form:"name"`
	Image string `form:"image"`
	Price string `form:"price"`
}

// AddToCart is the handler for POST /cart/items
func (h *Handlers) AddToCart(c *gin.Context) {
	scope := session.Scope(c)

	var input AddToCartInput
	if err := c.ShouldBind(&input); err != nil {
		h.Log.Warn("unreadable add-to-cart form", "scope", scope, "error", err)
		h.backToReferer(c)
		return
	}

	price, err := render.ParsePrice(input.Price, h.Suffix)
	if err != nil {
		// A card with broken price text is a page defect; the click
		// no-ops rather than failing the whole page.
		h.Log.Warn("rejecting add-to-cart", "scope", scope, "error", err)
		h.backToReferer(c)
		return
	}

	product := models.Product{
		ID:    catalog.ProductID(input.ID, input.Name),
		Name:  input.Name,
		Price: price,
		Image: input.Image,
	}

	if _, err := h.Cart.AddItem(c, scope, product); err != nil {
		h.Log.Warn("add to cart failed", "scope", scope, "product", product.ID, "error", err)
		h.backToReferer(c)
		return
	}

	h.Toasts.Push(scope, fmt.Sprintf("Товар %q додано до кошика!", product.Name))
	h.backToReferer(c)
}

// UpdateCartItem is the handler for POST /cart/items/:product_id/quantity
// The +/- controls post delta=1 or delta=-1; a quantity driven to zero
// removes the line.
func (h *Handlers) UpdateCartItem(c *gin.Context) {
	scope := session.Scope(c)
	productID := c.Param("product_id")

	delta, err := strconv.Atoi(c.PostForm("delta"))
	if err != nil || delta == 0 {
		c.Redirect(http.StatusSeeOther, "/cart")
		return
	}

	if _, err := h.Cart.ChangeQuantity(c, scope, productID, delta); err != nil {
		h.Log.Warn("quantity change failed", "scope", scope, "product", productID, "error", err)
	}
	c.Redirect(http.StatusSeeOther, "/cart")
}

// RemoveCartItem is the handler for POST /cart/items/:product_id/remove
func (h *Handlers) RemoveCartItem(c *gin.Context) {
	scope := session.Scope(c)
	productID := c.Param("product_id")

	if _, err := h.Cart.RemoveItem(c, scope, productID); err != nil {
		h.Log.Warn("remove failed", "scope", scope, "product", productID, "error", err)
	}
	c.Redirect(http.StatusSeeOther, "/cart")
}

// backToReferer lands the visitor back on the page they clicked, so the
// catalog keeps scrolling position semantics of the old widget.
func (h *Handlers) backToReferer(c *gin.Context) {
	target := c.Request.Referer()
	if target == "" {
		target = "/"
	}
	c.Redirect(http.StatusSeeOther, target)
}
