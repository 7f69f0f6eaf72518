package store_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avinay/boutique-journey/gateway"
	"github.com/avinay/boutique-journey/models"
	"github.com/avinay/boutique-journey/store"
)

// fakeCartBackend is an in-memory store API implementing the cart routes.
// It stacks identical lines on add and always recomputes totals itself,
// which is exactly the contract the client relies on.
type fakeCartBackend struct {
	mu       sync.Mutex
	prices   map[int]string
	items    []models.CartItem
	requests int
	failNext bool
}

func newFakeCartBackend() *fakeCartBackend {
	return &fakeCartBackend{
		prices: map[int]string{1: "10.00", 2: "5.25"},
	}
}

func (f *fakeCartBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests++

	if f.failNext {
		f.failNext = false
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "cart unavailable"})
		return
	}

	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/cart":
		// nothing to mutate
	case r.Method == http.MethodPost && r.URL.Path == "/cart/add":
		var body struct {
			ProductID int `json:"product_id"`
			Quantity  int `json:"quantity"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body.Quantity < 1 {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "invalid quantity"})
			return
		}
		f.addLine(body.ProductID, body.Quantity)
	case r.Method == http.MethodPut && strings.HasPrefix(r.URL.Path, "/cart/item/"):
		var body struct {
			Quantity int `json:"quantity"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		key := strings.TrimPrefix(r.URL.Path, "/cart/item/")
		for i := range f.items {
			if f.items[i].Key == key {
				f.items[i].Quantity = body.Quantity
			}
		}
	case r.Method == http.MethodDelete && strings.HasPrefix(r.URL.Path, "/cart/item/"):
		key := strings.TrimPrefix(r.URL.Path, "/cart/item/")
		kept := f.items[:0]
		for _, item := range f.items {
			if item.Key != key {
				kept = append(kept, item)
			}
		}
		f.items = kept
	default:
		w.WriteHeader(http.StatusNotFound)
		return
	}

	_ = json.NewEncoder(w).Encode(f.snapshot())
}

func (f *fakeCartBackend) addLine(productID, quantity int) {
	for i := range f.items {
		if f.items[i].ProductID == productID {
			f.items[i].Quantity += quantity
			return
		}
	}
	f.items = append(f.items, models.CartItem{
		ID:        len(f.items) + 1,
		Key:       fmt.Sprintf("item-%d", productID),
		ProductID: productID,
		Name:      fmt.Sprintf("Product %d", productID),
		Price:     f.prices[productID],
		Quantity:  quantity,
	})
}

func (f *fakeCartBackend) snapshot() models.Cart {
	cart := models.EmptyCart()
	subtotal := decimal.Zero
	for _, item := range f.items {
		price, _ := decimal.NewFromString(item.Price)
		line := price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		item.Subtotal = line.StringFixed(2)
		cart.Items = append(cart.Items, item)
		cart.ItemCount += item.Quantity
		subtotal = subtotal.Add(line)
	}
	cart.Totals.Subtotal = subtotal.StringFixed(2)
	cart.Totals.Total = subtotal.StringFixed(2)
	return cart
}

func (f *fakeCartBackend) requestCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests
}

func (f *fakeCartBackend) setFailNext() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failNext = true
}

func newCartStore(t *testing.T, backend *fakeCartBackend) *store.CartStore {
	t.Helper()
	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)
	api := gateway.New(gateway.Config{BaseURL: srv.URL}, store.NewMemTokenStore(), zerolog.Nop())
	return store.NewCartStore(api, zerolog.Nop())
}

func TestCartStartsEmpty(t *testing.T) {
	carts := newCartStore(t, newFakeCartBackend())
	snapshot := carts.Snapshot()

	assert.True(t, snapshot.IsEmpty())
	assert.Equal(t, 0, snapshot.ItemCount)
	assert.Equal(t, "0.00", snapshot.Totals.Total)
}

func TestAddItemThenFetchIsConsistent(t *testing.T) {
	carts := newCartStore(t, newFakeCartBackend())
	ctx := context.Background()

	require.NoError(t, carts.AddItem(ctx, 1, 2, 0))
	require.NoError(t, carts.Fetch(ctx))
	first := carts.Snapshot()

	require.Len(t, first.Items, 1)
	assert.Equal(t, 1, first.Items[0].ProductID)
	assert.Equal(t, 2, first.Items[0].Quantity)

	// Re-fetch without mutation returns an identical snapshot.
	require.NoError(t, carts.Fetch(ctx))
	assert.Equal(t, first, carts.Snapshot())
}

func TestAddItemServerTotals(t *testing.T) {
	// Product 1 is priced "10.00": two of it makes a subtotal of "20.00"
	// and a total of "20.00" with zero tax, shipping and discount.
	carts := newCartStore(t, newFakeCartBackend())
	require.NoError(t, carts.AddItem(context.Background(), 1, 2, 0))

	snapshot := carts.Snapshot()
	require.Len(t, snapshot.Items, 1)
	assert.Equal(t, 2, snapshot.Items[0].Quantity)
	assert.Equal(t, "20.00", snapshot.Items[0].Subtotal)
	assert.Equal(t, "20.00", snapshot.Totals.Subtotal)
	assert.Equal(t, "20.00", snapshot.Totals.Total)
	assert.Equal(t, "0.00", snapshot.Totals.Tax)
	assert.Equal(t, "0.00", snapshot.Totals.Shipping)
	assert.Equal(t, "0.00", snapshot.Totals.Discount)
	assert.Equal(t, 2, snapshot.ItemCount)
}

func TestAddItemStacksOnServer(t *testing.T) {
	carts := newCartStore(t, newFakeCartBackend())
	ctx := context.Background()

	require.NoError(t, carts.AddItem(ctx, 1, 2, 0))
	require.NoError(t, carts.AddItem(ctx, 1, 3, 0))

	snapshot := carts.Snapshot()
	require.Len(t, snapshot.Items, 1)
	assert.Equal(t, 5, snapshot.Items[0].Quantity)
}

func TestInvalidQuantityRejectedBeforeRequest(t *testing.T) {
	backend := newFakeCartBackend()
	carts := newCartStore(t, backend)
	ctx := context.Background()

	assert.ErrorIs(t, carts.AddItem(ctx, 1, 0, 0), store.ErrInvalidQuantity)
	assert.ErrorIs(t, carts.AddItem(ctx, 1, -3, 0), store.ErrInvalidQuantity)
	assert.ErrorIs(t, carts.UpdateItem(ctx, "item-1", 0), store.ErrInvalidQuantity)
	assert.Equal(t, 0, backend.requestCount(), "rejected quantities must never reach the network")
}

func TestUpdateItemReplacesSnapshot(t *testing.T) {
	carts := newCartStore(t, newFakeCartBackend())
	ctx := context.Background()

	require.NoError(t, carts.AddItem(ctx, 1, 2, 0))
	require.NoError(t, carts.UpdateItem(ctx, "item-1", 4))

	snapshot := carts.Snapshot()
	assert.Equal(t, 4, snapshot.Items[0].Quantity)
	assert.Equal(t, "40.00", snapshot.Totals.Total)
	assert.Equal(t, 4, carts.DisplayedQuantity("item-1"))
}

func TestRemoveItemThenFetch(t *testing.T) {
	carts := newCartStore(t, newFakeCartBackend())
	ctx := context.Background()

	require.NoError(t, carts.AddItem(ctx, 1, 1, 0))
	require.NoError(t, carts.AddItem(ctx, 2, 1, 0))
	require.NoError(t, carts.RemoveItem(ctx, "item-1"))
	require.NoError(t, carts.Fetch(ctx))

	snapshot := carts.Snapshot()
	require.Len(t, snapshot.Items, 1)
	for _, item := range snapshot.Items {
		assert.NotEqual(t, "item-1", item.Key)
	}
}

func TestFailureKeepsPriorSnapshot(t *testing.T) {
	backend := newFakeCartBackend()
	carts := newCartStore(t, backend)
	ctx := context.Background()

	require.NoError(t, carts.AddItem(ctx, 1, 2, 0))
	before := carts.Snapshot()

	backend.setFailNext()
	err := carts.UpdateItem(ctx, "item-1", 9)
	require.Error(t, err)

	assert.Equal(t, before, carts.Snapshot(), "failed mutation must leave the snapshot unchanged")
	assert.Equal(t, "cart unavailable", carts.LastError())
	assert.False(t, carts.Loading())
	// The optimistic echo rolls back to the confirmed quantity.
	assert.Equal(t, 2, carts.DisplayedQuantity("item-1"))
}

func TestResetDropsLocalState(t *testing.T) {
	carts := newCartStore(t, newFakeCartBackend())
	require.NoError(t, carts.AddItem(context.Background(), 1, 2, 0))

	carts.Reset()
	assert.True(t, carts.Snapshot().IsEmpty())
	assert.Equal(t, "0.00", carts.Snapshot().Totals.Total)
}
