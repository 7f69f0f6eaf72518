package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/avinay/boutique-journey/config"
	"github.com/avinay/boutique-journey/gateway"
	"github.com/avinay/boutique-journey/store"
)

// SetupRoutes is the single entry‐point that wires up the catalog, cart,
// account and checkout route groups.
func SetupRoutes(r *gin.Engine, api *gateway.Client, auth *store.AuthStore, carts *store.CartStore, cfg config.Config) {
	// Public catalog pages
	SetupCatalogRoutes(r, api, auth, carts, cfg)

	// Cart pages and mutations
	SetupCartRoutes(r, auth, carts)

	// Login / register / logout
	SetupAccountRoutes(r, auth, carts)

	// Checkout (session required)
	SetupCheckoutRoutes(r, api, auth, carts)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
