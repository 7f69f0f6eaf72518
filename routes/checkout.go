package routes

import (
	"github.com/gin-gonic/gin"

	checkoutControllers "github.com/avinay/boutique-journey/controllers/checkout"
	"github.com/avinay/boutique-journey/gateway"
	"github.com/avinay/boutique-journey/middleware"
	"github.com/avinay/boutique-journey/store"
)

// SetupCheckoutRoutes registers checkout behind the session guard.
func SetupCheckoutRoutes(r *gin.Engine, api *gateway.Client, auth *store.AuthStore, carts *store.CartStore) {
	checkoutGroup := r.Group("/checkout")
	checkoutGroup.Use(middleware.RequireSession(auth))
	{
		checkoutGroup.GET("/", checkoutControllers.CheckoutPage(auth, carts))      // GET /checkout
		checkoutGroup.POST("/", checkoutControllers.PlaceOrder(api, auth, carts)) // POST /checkout
	}
}
