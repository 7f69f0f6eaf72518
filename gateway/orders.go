package gateway

import (
	"context"
	"net/http"

	"github.com/avinay/boutique-journey/models"
)

// POST /orders
func (c *Client) CreateOrder(ctx context.Context, order models.OrderRequest) (*models.OrderConfirmation, error) {
	var confirmation models.OrderConfirmation
	if err := c.do(ctx, http.MethodPost, "/orders", nil, order, &confirmation); err != nil {
		return nil, err
	}
	return &confirmation, nil
}
