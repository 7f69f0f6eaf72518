package store

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/avinay/boutique-journey/gateway"
	"github.com/avinay/boutique-journey/models"
)

// AuthStore owns the single current user and authentication status for the
// process lifetime. It is constructed once in main and injected, never a
// package global, so tests build isolated instances.
type AuthStore struct {
	mu        sync.Mutex
	api       *gateway.Client
	tokens    gateway.TokenStore
	log       zerolog.Logger
	user      *models.User
	loading   bool
	lastError string
}

func NewAuthStore(api *gateway.Client, tokens gateway.TokenStore, log zerolog.Logger) *AuthStore {
	return &AuthStore{
		api:    api,
		tokens: tokens,
		log:    log.With().Str("component", "auth-store").Logger(),
	}
}

// RestoreSession loads the user for a previously persisted token. Failures
// are silent: a dead token just leaves the session logged out.
func (s *AuthStore) RestoreSession(ctx context.Context) {
	token, err := s.tokens.Load()
	if err != nil || token == "" {
		return
	}

	s.setLoading(true)
	user, err := s.api.CurrentUser(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		// A 401 already cleared the token inside the gateway.
		s.log.Debug().Err(err).Msg("session restore failed")
		s.user = nil
		return
	}
	s.user = user
	s.log.Info().Str("username", user.Username).Msg("session restored")
}

// Login authenticates and populates the user. On failure state is unchanged
// apart from lastError.
func (s *AuthStore) Login(ctx context.Context, creds models.LoginCredentials) error {
	s.setLoading(true)
	resp, err := s.api.Login(ctx, creds)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.lastError = messageOf(err, "Login failed")
		return err
	}
	if !resp.Success {
		msg := resp.Message
		if msg == "" {
			msg = "Login failed"
		}
		s.lastError = msg
		return errors.New(msg)
	}
	user := resp.Data
	s.user = &user
	s.lastError = ""
	return nil
}

// Register creates the account but does not authenticate.
func (s *AuthStore) Register(ctx context.Context, data models.RegisterData) error {
	s.setLoading(true)
	resp, err := s.api.Register(ctx, data)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.lastError = messageOf(err, "Registration failed")
		return err
	}
	if !resp.Success {
		msg := resp.Message
		if msg == "" {
			msg = "Registration failed"
		}
		s.lastError = msg
		return errors.New(msg)
	}
	s.lastError = ""
	return nil
}

// Logout clears the token and the in-memory user. It cannot fail.
func (s *AuthStore) Logout() {
	if err := s.tokens.Clear(); err != nil {
		s.log.Warn().Err(err).Msg("failed to clear token on logout")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.lastError = ""
}

func (s *AuthStore) User() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// IsAuthenticated is exactly user != nil.
func (s *AuthStore) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user != nil
}

func (s *AuthStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *AuthStore) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastError
}

func (s *AuthStore) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

// messageOf prefers the server's message over a generic one.
func messageOf(err error, fallback string) string {
	var reqErr *gateway.RequestFailed
	if errors.As(err, &reqErr) && reqErr.Message != "" {
		return reqErr.Message
	}
	return fallback
}
