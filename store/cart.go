package store

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/avinay/boutique-journey/gateway"
	"github.com/avinay/boutique-journey/models"
)

// ErrInvalidQuantity rejects non-positive quantities before any request is
// sent. The views also keep their decrement controls from going below 1.
var ErrInvalidQuantity = errors.New("quantity must be at least 1")

// CartStore owns the single current cart snapshot. Every successful mutation
// replaces the snapshot wholesale with the server's response; there is no
// local merge. One loading flag covers all operations; views disable
// mutating controls while it is set, since the store does not queue calls.
type CartStore struct {
	mu        sync.Mutex
	api       *gateway.Client
	log       zerolog.Logger
	cart      models.Cart
	loading   bool
	lastError string
	// pending holds displayed quantities awaiting server confirmation,
	// keyed by item key. Reconciled on response, rolled back on failure.
	pending map[string]int
}

func NewCartStore(api *gateway.Client, log zerolog.Logger) *CartStore {
	return &CartStore{
		api:     api,
		log:     log.With().Str("component", "cart-store").Logger(),
		cart:    models.EmptyCart(),
		pending: make(map[string]int),
	}
}

// Fetch loads the server's cart, done once at startup and on retry.
func (s *CartStore) Fetch(ctx context.Context) error {
	s.setLoading(true)
	cart, err := s.api.GetCart(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.lastError = messageOf(err, "Failed to load cart")
		return err
	}
	s.cart = *cart
	s.lastError = ""
	return nil
}

// AddItem adds quantity of a product (optionally a variation). The server
// decides how the line stacks with existing identical items.
func (s *CartStore) AddItem(ctx context.Context, productID, quantity, variationID int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}

	s.setLoading(true)
	cart, err := s.api.AddItem(ctx, productID, quantity, variationID)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.lastError = messageOf(err, "Failed to add item to cart")
		return err
	}
	s.cart = *cart
	s.lastError = ""
	return nil
}

// UpdateItem changes a line's quantity. The new quantity is echoed as the
// displayed value immediately and confirmed or rolled back on response.
func (s *CartStore) UpdateItem(ctx context.Context, itemKey string, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}

	s.mu.Lock()
	s.loading = true
	s.pending[itemKey] = quantity
	s.mu.Unlock()

	cart, err := s.api.UpdateItem(ctx, itemKey, quantity)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	delete(s.pending, itemKey)
	if err != nil {
		s.lastError = messageOf(err, "Failed to update cart")
		return err
	}
	s.cart = *cart
	s.lastError = ""
	return nil
}

// RemoveItem drops a line from the cart.
func (s *CartStore) RemoveItem(ctx context.Context, itemKey string) error {
	s.setLoading(true)
	cart, err := s.api.RemoveItem(ctx, itemKey)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.lastError = messageOf(err, "Failed to remove item from cart")
		return err
	}
	s.cart = *cart
	s.lastError = ""
	return nil
}

// Reset drops the local snapshot back to empty without a server call, used
// after checkout hands the cart off to an order.
func (s *CartStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = models.EmptyCart()
	s.pending = make(map[string]int)
	s.lastError = ""
}

// Snapshot returns a copy of the confirmed cart.
func (s *CartStore) Snapshot() models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart := s.cart
	cart.Items = append([]models.CartItem(nil), s.cart.Items...)
	return cart
}

// DisplayedQuantity is the optimistic value for a line: the pending echo if a
// change is in flight, the confirmed quantity otherwise.
func (s *CartStore) DisplayedQuantity(itemKey string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if q, ok := s.pending[itemKey]; ok {
		return q
	}
	for _, item := range s.cart.Items {
		if item.Key == itemKey {
			return item.Quantity
		}
	}
	return 0
}

func (s *CartStore) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.ItemCount
}

func (s *CartStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *CartStore) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastError
}

func (s *CartStore) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}
