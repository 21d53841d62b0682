package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/okoval/handmade-shop/internal/handlers"
	"github.com/okoval/handmade-shop/internal/render"
	"github.com/okoval/handmade-shop/internal/session"
)

func SetupRouter(h *handlers.Handlers) *gin.Engine {
	router := gin.Default()

	router.SetHTMLTemplate(render.Templates())

	// Every route runs under a visitor scope; there is no auth tier.
	router.Use(session.Middleware())

	router.GET("/", h.Index)
	router.GET("/cart", h.ShowCart)

	router.POST("/cart/items", h.AddToCart)
	router.POST("/cart/items/:product_id/quantity", h.UpdateCartItem)
	router.POST("/cart/items/:product_id/remove", h.RemoveCartItem)

	router.POST("/checkout", h.PlaceOrder)

	return router
}
