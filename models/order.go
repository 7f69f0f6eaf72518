package models

// OrderAddress is the billing/shipping block of an order request.
type OrderAddress struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Address1  string `json:"address_1"`
	City      string `json:"city"`
	State     string `json:"state"`
	Postcode  string `json:"postcode"`
	Country   string `json:"country"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

type OrderLineItem struct {
	ProductID   int `json:"product_id"`
	VariationID int `json:"variation_id,omitempty"`
	Quantity    int `json:"quantity"`
}

// OrderRequest is the POST /orders payload, built from the confirmed cart
// snapshot at checkout time. ClientRef ties the order back to this session.
type OrderRequest struct {
	PaymentMethod string          `json:"payment_method"`
	Billing       OrderAddress    `json:"billing"`
	Shipping      OrderAddress    `json:"shipping"`
	LineItems     []OrderLineItem `json:"line_items"`
	CustomerNote  string          `json:"customer_note,omitempty"`
	ClientRef     string          `json:"client_ref"`
}

// OrderConfirmation is the server's acknowledgement of a placed order.
type OrderConfirmation struct {
	ID          int    `json:"id"`
	OrderKey    string `json:"order_key"`
	Status      string `json:"status"`
	Total       string `json:"total"`
	DateCreated string `json:"date_created"`
}
