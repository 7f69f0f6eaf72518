package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/avinay/boutique-journey/config"
	productcontroller "github.com/avinay/boutique-journey/controllers/product"
	"github.com/avinay/boutique-journey/gateway"
	"github.com/avinay/boutique-journey/store"
)

// SetupCatalogRoutes registers the browsing pages.
func SetupCatalogRoutes(r *gin.Engine, api *gateway.Client, auth *store.AuthStore, carts *store.CartStore, cfg config.Config) {
	r.GET("/", productcontroller.HomePage(api, auth, carts, cfg.DemoFallback))                 // GET /
	r.GET("/shop", productcontroller.ShopPage(api, auth, carts, cfg.DemoFallback))             // GET /shop
	r.GET("/category/:id", productcontroller.CategoryPage(api, auth, carts, cfg.DemoFallback)) // GET /category/:id
	r.GET("/product/:id", productcontroller.ProductPage(api, auth, carts))                     // GET /product/:id
	r.GET("/export/products.xlsx", productcontroller.ExportProductsToExcel(api))               // GET /export/products.xlsx
}
