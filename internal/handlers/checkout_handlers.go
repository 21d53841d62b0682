package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/okoval/handmade-shop/internal/checkout"
	"github.com/okoval/handmade-shop/internal/models"
	"github.com/okoval/handmade-shop/internal/render"
	"github.com/okoval/handmade-shop/internal/session"
)

// PlaceOrder is the handler for POST /checkout
// The whole flow either completes or aborts back to the cart page with a
// notice; an abort leaves no residue, not even a partial order.
func (h *Handlers) PlaceOrder(c *gin.Context) {
	scope := session.Scope(c)

	var customer models.Customer
	// Blank fields are the flow's own abort condition, not a bind error.
	_ = c.ShouldBind(&customer)

	order, err := h.Checkout.PlaceOrder(c, scope, customer)
	switch {
	case errors.Is(err, checkout.ErrEmptyCart):
		h.cartWithNotice(c, "Ваш кошик порожній!", customer)
		return
	case errors.Is(err, checkout.ErrInvalidCustomer):
		h.cartWithNotice(c, "Заповніть, будь ласка, всі поля замовлення.", customer)
		return
	case err != nil:
		h.Log.Warn("checkout failed", "scope", scope, "error", err)
		h.cartWithNotice(c, "Не вдалося оформити замовлення, спробуйте ще раз.", customer)
		return
	}

	// The cart is cleared now, so the badge renders hidden.
	view := render.ConfirmationView{
		Page:      h.page(c, "Замовлення оформлено", h.currentCart(c)),
		Order:     order,
		TotalText: render.FormatPrice(order.Total, h.Suffix),
	}
	c.HTML(http.StatusOK, "confirmation.tmpl", view)
}

// cartWithNotice re-renders the cart page with a blocking notice and the
// visitor's form input preserved.
func (h *Handlers) cartWithNotice(c *gin.Context, notice string, customer models.Customer) {
	current := h.currentCart(c)

	view := render.NewCartView(current, h.Suffix)
	view.Page = h.page(c, "Кошик", current)
	view.Notice = notice
	view.Customer = customer
	c.HTML(http.StatusOK, "cart.tmpl", view)
}
