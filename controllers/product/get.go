package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/avinay/boutique-journey/controllers/layout"
	"github.com/avinay/boutique-journey/gateway"
	"github.com/avinay/boutique-journey/store"
)

// GET /product/:id
func ProductPage(api *gateway.Client, auth *store.AuthStore, carts *store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			data := layout.Base(auth, carts, "Not found")
			data["Error"] = "Invalid product ID"
			c.HTML(http.StatusBadRequest, "error.tmpl", data)
			return
		}

		product, err := api.GetProduct(c.Request.Context(), id)
		if err != nil {
			data := layout.Base(auth, carts, "Product")
			data["Error"] = ErrorMessage(err)
			data["RetryURL"] = c.Request.URL.String()
			c.HTML(http.StatusOK, "error.tmpl", data)
			return
		}

		data := layout.Base(auth, carts, product.Name)
		data["Product"] = product
		data["Added"] = c.Query("added") == "1"
		c.HTML(http.StatusOK, "product.tmpl", data)
	}
}
