package layout

import (
	"github.com/gin-gonic/gin"

	"github.com/avinay/boutique-journey/store"
)

// Base builds the template data every page needs for the header: session
// state and the cart badge. Handlers add their own keys on top.
func Base(auth *store.AuthStore, carts *store.CartStore, title string) gin.H {
	data := gin.H{
		"Title":           title,
		"IsAuthenticated": auth.IsAuthenticated(),
		"CartCount":       carts.ItemCount(),
		"CartLoading":     carts.Loading(),
	}
	if user := auth.User(); user != nil {
		data["User"] = user
	}
	return data
}
