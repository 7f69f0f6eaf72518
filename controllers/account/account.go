package accountControllers

import (
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/avinay/boutique-journey/controllers/layout"
	"github.com/avinay/boutique-journey/models"
	"github.com/avinay/boutique-journey/store"
)

var emailRx = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// GET /account
func AccountPage(auth *store.AuthStore, carts *store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if auth.IsAuthenticated() {
			c.Redirect(http.StatusSeeOther, "/")
			return
		}
		data := layout.Base(auth, carts, "Account")
		data["Redirect"] = safeRedirect(c.Query("redirect"))
		data["LoginUsername"] = ""
		c.HTML(http.StatusOK, "account.tmpl", data)
	}
}

// POST /account/login
func Login(auth *store.AuthStore, carts *store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		creds := models.LoginCredentials{
			Username: strings.TrimSpace(c.PostForm("username")),
			Password: c.PostForm("password"),
		}
		redirect := safeRedirect(c.PostForm("redirect"))

		// Client-side checks never reach the network.
		fieldErrors := ValidateLogin(creds)
		if len(fieldErrors) > 0 {
			renderAccount(c, auth, carts, gin.H{
				"LoginErrors":   fieldErrors,
				"LoginUsername": creds.Username,
				"Redirect":      redirect,
			})
			return
		}

		if err := auth.Login(c.Request.Context(), creds); err != nil {
			renderAccount(c, auth, carts, gin.H{
				"LoginError":    auth.LastError(),
				"LoginUsername": creds.Username,
				"Redirect":      redirect,
			})
			return
		}
		c.Redirect(http.StatusSeeOther, redirect)
	}
}

// POST /account/register
func Register(auth *store.AuthStore, carts *store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		data := models.RegisterData{
			Username:  strings.TrimSpace(c.PostForm("username")),
			Email:     strings.TrimSpace(c.PostForm("email")),
			Password:  c.PostForm("password"),
			FirstName: strings.TrimSpace(c.PostForm("first_name")),
			LastName:  strings.TrimSpace(c.PostForm("last_name")),
		}
		confirm := c.PostForm("confirm_password")

		fieldErrors := ValidateRegister(data, confirm)
		if len(fieldErrors) > 0 {
			renderAccount(c, auth, carts, gin.H{
				"RegisterErrors": fieldErrors,
				"RegisterData":   data,
			})
			return
		}

		if err := auth.Register(c.Request.Context(), data); err != nil {
			renderAccount(c, auth, carts, gin.H{
				"RegisterError": auth.LastError(),
				"RegisterData":  data,
			})
			return
		}
		// No auto-login after registration.
		renderAccount(c, auth, carts, gin.H{
			"Notice": "Registration successful. Please login.",
		})
	}
}

// POST /account/logout
func Logout(auth *store.AuthStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth.Logout()
		c.Redirect(http.StatusSeeOther, "/")
	}
}

// ValidateLogin checks required fields only; credentials themselves are the
// server's business.
func ValidateLogin(creds models.LoginCredentials) map[string]string {
	errs := map[string]string{}
	if creds.Username == "" {
		errs["username"] = "Username is required"
	}
	if creds.Password == "" {
		errs["password"] = "Password is required"
	}
	return errs
}

// ValidateRegister mirrors the store's registration rules so obviously bad
// submissions never reach the network. The server remains authoritative.
func ValidateRegister(data models.RegisterData, confirm string) map[string]string {
	errs := map[string]string{}
	switch {
	case data.Username == "":
		errs["username"] = "Username is required"
	case len(data.Username) < 3:
		errs["username"] = "Username must be at least 3 characters"
	}
	switch {
	case data.Email == "":
		errs["email"] = "Email is required"
	case !emailRx.MatchString(data.Email):
		errs["email"] = "Email is invalid"
	}
	switch {
	case data.Password == "":
		errs["password"] = "Password is required"
	case len(data.Password) < 6:
		errs["password"] = "Password must be at least 6 characters"
	}
	if data.Password != confirm {
		errs["confirm_password"] = "Passwords do not match"
	}
	return errs
}

func renderAccount(c *gin.Context, auth *store.AuthStore, carts *store.CartStore, extra gin.H) {
	data := layout.Base(auth, carts, "Account")
	data["Redirect"] = "/"
	data["LoginUsername"] = ""
	for k, v := range extra {
		data[k] = v
	}
	c.HTML(http.StatusOK, "account.tmpl", data)
}

// safeRedirect only allows site-local paths, defaulting to the home page.
// Backslashes are rejected outright since browsers treat them as slashes.
func safeRedirect(raw string) string {
	if raw == "" || !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") || strings.Contains(raw, `\`) {
		return "/"
	}
	if _, err := url.Parse(raw); err != nil {
		return "/"
	}
	return raw
}
