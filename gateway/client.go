package gateway

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
)

// TokenStore is the persisted bearer-token cell. The gateway reads it on
// every request, writes it on login and clears it on any 401.
type TokenStore interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// Config holds the store endpoint and the static consumer credentials used
// when no user token is present. All of it is injected, never hard-coded.
type Config struct {
	BaseURL        string
	ConsumerKey    string
	ConsumerSecret string
}

// Client is the typed HTTP client for the remote store API. It does not
// retry: every failure surfaces to the caller as a single typed error.
type Client struct {
	cfg    Config
	http   *http.Client
	tokens TokenStore
	log    zerolog.Logger
}

func New(cfg Config, tokens TokenStore, log zerolog.Logger) *Client {
	return &Client{
		cfg:    cfg,
		http:   &http.Client{},
		tokens: tokens,
		log:    log.With().Str("component", "gateway").Logger(),
	}
}

// authHeader picks Bearer when a session token exists, otherwise the static
// Basic consumer pair.
func (c *Client) authHeader() string {
	token, err := c.tokens.Load()
	if err == nil && token != "" {
		return "Bearer " + token
	}
	creds := c.cfg.ConsumerKey + ":" + c.cfg.ConsumerSecret
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(creds))
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", c.authHeader())

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("method", method).Str("path", path).Msg("transport failure")
		return &NetworkUnreachable{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkUnreachable{Err: err}
	}

	if resp.StatusCode == http.StatusUnauthorized {
		// A 401 means the token is dead. Clear it so the next request
		// falls back to consumer credentials.
		if clearErr := c.tokens.Clear(); clearErr != nil {
			c.log.Warn().Err(clearErr).Msg("failed to clear stale token")
		}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		failure := &RequestFailed{Status: resp.StatusCode, Message: serverMessage(raw)}
		c.log.Debug().Int("status", resp.StatusCode).Str("method", method).Str("path", path).Msg(failure.Message)
		return failure
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &MalformedResponse{Err: err}
	}
	return nil
}

// serverMessage pulls the optional message field out of an error body.
func serverMessage(raw []byte) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	return body.Message
}
