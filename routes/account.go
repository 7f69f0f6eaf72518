package routes

import (
	"github.com/gin-gonic/gin"

	accountControllers "github.com/avinay/boutique-journey/controllers/account"
	"github.com/avinay/boutique-journey/store"
)

// SetupAccountRoutes registers all “/account/*” endpoints.
func SetupAccountRoutes(r *gin.Engine, auth *store.AuthStore, carts *store.CartStore) {
	accountGroup := r.Group("/account")
	{
		accountGroup.GET("/", accountControllers.AccountPage(auth, carts))       // GET /account
		accountGroup.POST("/login", accountControllers.Login(auth, carts))       // POST /account/login
		accountGroup.POST("/register", accountControllers.Register(auth, carts)) // POST /account/register
		accountGroup.POST("/logout", accountControllers.Logout(auth))            // POST /account/logout
	}
}
