package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/avinay/boutique-journey/controllers/layout"
	"github.com/avinay/boutique-journey/gateway"
	"github.com/avinay/boutique-journey/store"
)

// GET /
func HomePage(api *gateway.Client, auth *store.AuthStore, carts *store.CartStore, demoFallback bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		featured, err := api.ListProducts(c.Request.Context(), gateway.ProductQuery{
			PerPage: 8,
			Sort:    gateway.SortPopularity,
		})
		categories, catErr := api.ListCategories(c.Request.Context())

		data := layout.Base(auth, carts, "Home")
		data["RetryURL"] = "/"
		if err != nil {
			data["Error"] = ErrorMessage(err)
			if demoFallback {
				data["Demo"] = true
				featured = gateway.DemoProducts()
			}
		}
		if catErr != nil && demoFallback {
			data["Demo"] = true
			categories = gateway.DemoCategories()
		}
		data["Featured"] = featured
		data["Categories"] = categories

		c.HTML(http.StatusOK, "home.tmpl", data)
	}
}
