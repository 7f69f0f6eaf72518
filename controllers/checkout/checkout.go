package checkoutControllers

import (
	"errors"
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/avinay/boutique-journey/controllers/layout"
	"github.com/avinay/boutique-journey/gateway"
	"github.com/avinay/boutique-journey/models"
	"github.com/avinay/boutique-journey/store"
)

var emailRx = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// checkoutForm carries the shipping details the shopper fills in.
type checkoutForm struct {
	FirstName     string
	LastName      string
	Email         string
	Address       string
	City          string
	State         string
	PostalCode    string
	Country       string
	Phone         string
	Notes         string
	PaymentMethod string
}

// GET /checkout. The route group already requires a session.
func CheckoutPage(auth *store.AuthStore, carts *store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		snapshot := carts.Snapshot()
		if snapshot.IsEmpty() {
			c.Redirect(http.StatusSeeOther, "/cart")
			return
		}

		form := checkoutForm{Country: "US", PaymentMethod: "credit_card"}
		if user := auth.User(); user != nil {
			form.FirstName = user.FirstName
			form.LastName = user.LastName
			form.Email = user.Email
		}

		data := layout.Base(auth, carts, "Checkout")
		data["Cart"] = snapshot
		data["Form"] = form
		c.HTML(http.StatusOK, "checkout.tmpl", data)
	}
}

// POST /checkout
func PlaceOrder(api *gateway.Client, auth *store.AuthStore, carts *store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		snapshot := carts.Snapshot()
		if snapshot.IsEmpty() {
			c.Redirect(http.StatusSeeOther, "/cart")
			return
		}

		form := bindForm(c)
		fieldErrors := Validate(form)
		if len(fieldErrors) > 0 {
			data := layout.Base(auth, carts, "Checkout")
			data["Cart"] = snapshot
			data["Form"] = form
			data["FieldErrors"] = fieldErrors
			c.HTML(http.StatusOK, "checkout.tmpl", data)
			return
		}

		order := buildOrder(form, snapshot)
		confirmation, err := api.CreateOrder(c.Request.Context(), order)
		if err != nil {
			data := layout.Base(auth, carts, "Checkout")
			data["Cart"] = snapshot
			data["Form"] = form
			data["Error"] = orderErrorMessage(err)
			c.HTML(http.StatusOK, "checkout.tmpl", data)
			return
		}

		// The order now owns those items; drop the local snapshot.
		carts.Reset()

		data := layout.Base(auth, carts, "Order Confirmed")
		data["Order"] = confirmation
		c.HTML(http.StatusOK, "confirmation.tmpl", data)
	}
}

func bindForm(c *gin.Context) checkoutForm {
	return checkoutForm{
		FirstName:     strings.TrimSpace(c.PostForm("first_name")),
		LastName:      strings.TrimSpace(c.PostForm("last_name")),
		Email:         strings.TrimSpace(c.PostForm("email")),
		Address:       strings.TrimSpace(c.PostForm("address")),
		City:          strings.TrimSpace(c.PostForm("city")),
		State:         strings.TrimSpace(c.PostForm("state")),
		PostalCode:    strings.TrimSpace(c.PostForm("postal_code")),
		Country:       strings.TrimSpace(c.DefaultPostForm("country", "US")),
		Phone:         strings.TrimSpace(c.PostForm("phone")),
		Notes:         strings.TrimSpace(c.PostForm("notes")),
		PaymentMethod: c.DefaultPostForm("payment_method", "credit_card"),
	}
}

// Validate applies the required-field and email-shape checks before anything
// is sent. Not security-relevant; the server re-validates.
func Validate(form checkoutForm) map[string]string {
	errs := map[string]string{}
	if form.FirstName == "" {
		errs["first_name"] = "First name is required"
	}
	if form.LastName == "" {
		errs["last_name"] = "Last name is required"
	}
	switch {
	case form.Email == "":
		errs["email"] = "Email is required"
	case !emailRx.MatchString(form.Email):
		errs["email"] = "Email is invalid"
	}
	if form.Address == "" {
		errs["address"] = "Address is required"
	}
	if form.City == "" {
		errs["city"] = "City is required"
	}
	if form.State == "" {
		errs["state"] = "State is required"
	}
	if form.PostalCode == "" {
		errs["postal_code"] = "Postal code is required"
	}
	if form.Phone == "" {
		errs["phone"] = "Phone is required"
	}
	return errs
}

func buildOrder(form checkoutForm, cart models.Cart) models.OrderRequest {
	address := models.OrderAddress{
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Address1:  form.Address,
		City:      form.City,
		State:     form.State,
		Postcode:  form.PostalCode,
		Country:   form.Country,
		Email:     form.Email,
		Phone:     form.Phone,
	}

	lineItems := make([]models.OrderLineItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		lineItems = append(lineItems, models.OrderLineItem{
			ProductID:   item.ProductID,
			VariationID: item.VariationID,
			Quantity:    item.Quantity,
		})
	}

	return models.OrderRequest{
		PaymentMethod: form.PaymentMethod,
		Billing:       address,
		Shipping:      address,
		LineItems:     lineItems,
		CustomerNote:  form.Notes,
		ClientRef:     uuid.NewString(),
	}
}

func orderErrorMessage(err error) string {
	var reqErr *gateway.RequestFailed
	if errors.As(err, &reqErr) && reqErr.Message != "" {
		return reqErr.Message
	}
	return "Could not place the order. Please try again."
}
