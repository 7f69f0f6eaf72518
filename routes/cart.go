package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/avinay/boutique-journey/controllers/cart"
	"github.com/avinay/boutique-journey/store"
)

// SetupCartRoutes registers the cart page and its mutating actions.
func SetupCartRoutes(r *gin.Engine, auth *store.AuthStore, carts *store.CartStore) {
	cartGroup := r.Group("/cart")
	{
		cartGroup.GET("/", cartControllers.CartPage(auth, carts))        // GET /cart
		cartGroup.POST("/add", cartControllers.AddToCart(carts))         // POST /cart/add
		cartGroup.POST("/update", cartControllers.UpdateCartItem(carts)) // POST /cart/update
		cartGroup.POST("/remove", cartControllers.RemoveCartItem(carts)) // POST /cart/remove
	}
}
