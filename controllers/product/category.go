package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/avinay/boutique-journey/controllers/layout"
	"github.com/avinay/boutique-journey/gateway"
	"github.com/avinay/boutique-journey/models"
	"github.com/avinay/boutique-journey/store"
)

// GET /category/:id
func CategoryPage(api *gateway.Client, auth *store.AuthStore, carts *store.CartStore, demoFallback bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.Redirect(http.StatusSeeOther, "/shop")
			return
		}

		products, prodErr := api.ListProducts(c.Request.Context(), gateway.ProductQuery{Category: id})
		categories, catErr := api.ListCategories(c.Request.Context())

		data := layout.Base(auth, carts, "Category")
		data["ActiveCategory"] = id
		data["RetryURL"] = c.Request.URL.String()

		if catErr == nil {
			if current := findCategory(categories, id); current != nil {
				data["Title"] = current.Name
				data["Category"] = current
			}
			data["Categories"] = categories
		}
		if prodErr != nil {
			data["Error"] = ErrorMessage(prodErr)
			if demoFallback {
				data["Demo"] = true
				products = gateway.DemoProducts()
			}
		}
		data["Products"] = products

		c.HTML(http.StatusOK, "category.tmpl", data)
	}
}

func findCategory(categories []models.Category, id int) *models.Category {
	for i := range categories {
		if categories[i].ID == id {
			return &categories[i]
		}
	}
	return nil
}
