package cartControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/avinay/boutique-journey/controllers/layout"
	"github.com/avinay/boutique-journey/models"
	"github.com/avinay/boutique-journey/store"
)

// cartLine pairs a confirmed item with its displayed (possibly optimistic)
// quantity and the matching subtotal echo.
type cartLine struct {
	models.CartItem
	DisplayedQuantity int
	DisplayedSubtotal string
}

// GET /cart
func CartPage(auth *store.AuthStore, carts *store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		snapshot := carts.Snapshot()

		lines := make([]cartLine, 0, len(snapshot.Items))
		for _, item := range snapshot.Items {
			qty := carts.DisplayedQuantity(item.Key)
			lines = append(lines, cartLine{
				CartItem:          item,
				DisplayedQuantity: qty,
				DisplayedSubtotal: item.LineSubtotal(qty),
			})
		}

		data := layout.Base(auth, carts, "Your Cart")
		data["Cart"] = snapshot
		data["Lines"] = lines
		data["Error"] = carts.LastError()
		c.HTML(http.StatusOK, "cart.tmpl", data)
	}
}

// POST /cart/add
func AddToCart(carts *store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.Atoi(c.PostForm("product_id"))
		if err != nil {
			c.Redirect(http.StatusSeeOther, "/shop")
			return
		}
		quantity, err := strconv.Atoi(c.DefaultPostForm("quantity", "1"))
		if err != nil {
			quantity = 0
		}
		variationID, _ := strconv.Atoi(c.PostForm("variation_id"))

		err = carts.AddItem(c.Request.Context(), productID, quantity, variationID)
		if errors.Is(err, store.ErrInvalidQuantity) {
			// Rejected before any request was sent.
			c.Redirect(http.StatusSeeOther, "/product/"+strconv.Itoa(productID))
			return
		}
		if err != nil {
			c.Redirect(http.StatusSeeOther, "/cart")
			return
		}
		c.Redirect(http.StatusSeeOther, "/product/"+strconv.Itoa(productID)+"?added=1")
	}
}

// POST /cart/update
func UpdateCartItem(carts *store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		itemKey := c.PostForm("key")
		quantity, err := strconv.Atoi(c.PostForm("quantity"))
		if itemKey == "" || err != nil {
			c.Redirect(http.StatusSeeOther, "/cart")
			return
		}

		// The template disables the decrement button at 1; this is the
		// independent guard behind it.
		_ = carts.UpdateItem(c.Request.Context(), itemKey, quantity)
		c.Redirect(http.StatusSeeOther, "/cart")
	}
}

// POST /cart/remove
func RemoveCartItem(carts *store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		itemKey := c.PostForm("key")
		if itemKey == "" {
			c.Redirect(http.StatusSeeOther, "/cart")
			return
		}
		_ = carts.RemoveItem(c.Request.Context(), itemKey)
		c.Redirect(http.StatusSeeOther, "/cart")
	}
}
