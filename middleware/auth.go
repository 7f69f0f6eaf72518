package middleware

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/avinay/boutique-journey/store"
)

// RequireSession redirects unauthenticated visitors to the account page,
// carrying the original path so login can bounce them back.
func RequireSession(auth *store.AuthStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !auth.IsAuthenticated() {
			c.Redirect(http.StatusSeeOther, "/account?redirect="+url.QueryEscape(c.Request.URL.Path))
			c.Abort()
			return
		}
		c.Next()
	}
}
