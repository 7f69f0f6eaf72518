package productcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/avinay/boutique-journey/controllers/layout"
	"github.com/avinay/boutique-journey/gateway"
	"github.com/avinay/boutique-journey/store"
)

// GET /shop
func ShopPage(api *gateway.Client, auth *store.AuthStore, carts *store.CartStore, demoFallback bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Filtering & sorting params
		perPage := parsePerPage(c.DefaultQuery("per_page", "12"))
		sort := parseSort(c.DefaultQuery("sort", string(gateway.SortPopularity)))
		category, _ := strconv.Atoi(c.Query("category"))

		query := gateway.ProductQuery{PerPage: perPage, Sort: sort, Category: category}
		products, err := api.ListProducts(c.Request.Context(), query)
		categories, catErr := api.ListCategories(c.Request.Context())

		data := layout.Base(auth, carts, "Shop")
		data["Sort"] = string(sort)
		data["PerPage"] = perPage
		data["ActiveCategory"] = category
		data["RetryURL"] = c.Request.URL.String()

		if err != nil {
			data["Error"] = ErrorMessage(err)
			if demoFallback {
				// Non-authoritative placeholder content, marked in the page.
				data["Demo"] = true
				products = gateway.DemoProducts()
			}
		}
		if catErr != nil && demoFallback {
			// Placeholder categories carry the demo marker too.
			data["Demo"] = true
			categories = gateway.DemoCategories()
		}
		data["Products"] = products
		data["Categories"] = categories

		c.HTML(http.StatusOK, "shop.tmpl", data)
	}
}

func parsePerPage(raw string) int {
	pp, err := strconv.Atoi(raw)
	if err != nil {
		return 12
	}
	switch pp {
	case 12, 24, 36:
		return pp
	}
	return 12
}

func parseSort(raw string) gateway.SortOption {
	switch s := gateway.SortOption(raw); s {
	case gateway.SortPopularity, gateway.SortDate, gateway.SortPriceAsc, gateway.SortPriceDesc:
		return s
	}
	return gateway.SortPopularity
}

// ErrorMessage turns a gateway error into something a shopper can read.
func ErrorMessage(err error) string {
	var reqErr *gateway.RequestFailed
	if errors.As(err, &reqErr) && reqErr.Message != "" {
		return reqErr.Message
	}
	var netErr *gateway.NetworkUnreachable
	if errors.As(err, &netErr) {
		return "Could not reach the store. Please try again."
	}
	return "Something went wrong. Please try again."
}
