package gateway

import (
	"context"
	"net/http"

	"github.com/avinay/boutique-journey/models"
)

type addItemRequest struct {
	ProductID   int `json:"product_id"`
	Quantity    int `json:"quantity"`
	VariationID int `json:"variation_id,omitempty"`
}

type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

// GET /cart
func (c *Client) GetCart(ctx context.Context) (*models.Cart, error) {
	var cart models.Cart
	if err := c.do(ctx, http.MethodGet, "/cart", nil, nil, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

// POST /cart/add. The server decides how the new line stacks with existing
// identical ones and returns the whole resulting cart.
func (c *Client) AddItem(ctx context.Context, productID, quantity, variationID int) (*models.Cart, error) {
	var cart models.Cart
	body := addItemRequest{ProductID: productID, Quantity: quantity, VariationID: variationID}
	if err := c.do(ctx, http.MethodPost, "/cart/add", nil, body, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

// PUT /cart/item/:key
func (c *Client) UpdateItem(ctx context.Context, itemKey string, quantity int) (*models.Cart, error) {
	var cart models.Cart
	if err := c.do(ctx, http.MethodPut, "/cart/item/"+itemKey, nil, updateItemRequest{Quantity: quantity}, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

// DELETE /cart/item/:key
func (c *Client) RemoveItem(ctx context.Context, itemKey string) (*models.Cart, error) {
	var cart models.Cart
	if err := c.do(ctx, http.MethodDelete, "/cart/item/"+itemKey, nil, nil, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}
