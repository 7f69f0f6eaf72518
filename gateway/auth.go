package gateway

import (
	"context"
	"net/http"

	"github.com/avinay/boutique-journey/models"
)

// POST /auth/login. On success the returned token is written to the token
// store before the response reaches the caller.
func (c *Client) Login(ctx context.Context, creds models.LoginCredentials) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, creds, &resp); err != nil {
		return nil, err
	}
	if resp.Token != "" {
		if err := c.tokens.Save(resp.Token); err != nil {
			c.log.Error().Err(err).Msg("failed to persist session token")
		}
	}
	return &resp, nil
}

// POST /auth/register. Registration does not authenticate; no token comes back.
func (c *Client) Register(ctx context.Context, data models.RegisterData) (*models.APIResponse[models.User], error) {
	var resp models.APIResponse[models.User]
	if err := c.do(ctx, http.MethodPost, "/auth/register", nil, data, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GET /auth/me. A 401 clears the persisted token as a side effect of do.
func (c *Client) CurrentUser(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
