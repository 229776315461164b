package httpserver_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/jewelry_store/internal/models"
	"github.com/Skotchmaster/jewelry_store/internal/transport"
)

const session = "test-session"

func TestGetCart_UnknownSessionIsEmpty(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(http.MethodGet, "/api/cart", nil, "brand-new")
	require.Equal(t, http.StatusOK, rec.Code)

	view := decodeData[transport.CartView](t, rec)
	require.NotNil(t, view.Items)
	assert.Empty(t, view.Items)
}

func TestAddToCart_OK(t *testing.T) {
	env := newTestEnv(t)
	env.createProduct("ring-001", 1000, true)

	body := map[string]any{"productId": "ring-001", "quantity": 2}
	rec := env.request(http.MethodPost, "/api/cart", body, session)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeEnvelope(t, rec)
	require.True(t, resp.Success)
	assert.Equal(t, "Item added to cart successfully", resp.Message)

	cart := decodeData[models.Cart](t, rec)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, uint(2), cart.Items[0].Quantity)
}

func TestAddToCart_MissingSessionUsesDefault(t *testing.T) {
	env := newTestEnv(t)
	env.createProduct("ring-001", 1000, true)

	body := map[string]any{"productId": "ring-001", "quantity": 1}
	rec := env.request(http.MethodPost, "/api/cart", body, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.request(http.MethodGet, "/api/cart", nil, "default-session")
	view := decodeData[transport.CartView](t, rec)
	require.Len(t, view.Items, 1)
}

func TestAddToCart_ValidationErrors(t *testing.T) {
	env := newTestEnv(t)
	env.createProduct("ring-001", 1000, true)

	tests := []struct {
		name  string
		body  map[string]any
		field string
	}{
		{name: "missing product id", body: map[string]any{"quantity": 2}, field: "productId"},
		{name: "missing quantity", body: map[string]any{"productId": "ring-001"}, field: "quantity"},
		{name: "quantity too large", body: map[string]any{"productId": "ring-001", "quantity": 100}, field: "quantity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.request(http.MethodPost, "/api/cart", tt.body, session)
			require.Equal(t, http.StatusBadRequest, rec.Code)

			resp := decodeEnvelope(t, rec)
			assert.False(t, resp.Success)
			assert.Equal(t, "Validation failed", resp.Message)
			require.NotEmpty(t, resp.Errors)
			assert.Equal(t, tt.field, resp.Errors[0].Field)
		})
	}
}

func TestAddToCart_UnknownProduct(t *testing.T) {
	env := newTestEnv(t)

	body := map[string]any{"productId": "ghost", "quantity": 1}
	rec := env.request(http.MethodPost, "/api/cart", body, session)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Product not found", decodeEnvelope(t, rec).Message)
}

func TestAddToCart_OutOfStock(t *testing.T) {
	env := newTestEnv(t)
	env.createProduct("neck-002", 500, false)

	body := map[string]any{"productId": "neck-002", "quantity": 1}
	rec := env.request(http.MethodPost, "/api/cart", body, session)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Product is currently out of stock", decodeEnvelope(t, rec).Message)

	// cart unchanged
	rec = env.request(http.MethodGet, "/api/cart", nil, session)
	view := decodeData[transport.CartView](t, rec)
	assert.Empty(t, view.Items)
}

func TestUpdateCartItem_Errors(t *testing.T) {
	env := newTestEnv(t)
	env.createProduct("ring-001", 1000, true)

	// no cart for the session yet
	rec := env.request(http.MethodPut, "/api/cart/ring-001", map[string]any{"quantity": 5}, session)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Cart not found", decodeEnvelope(t, rec).Message)

	env.request(http.MethodPost, "/api/cart", map[string]any{"productId": "ring-001", "quantity": 2}, session)

	rec = env.request(http.MethodPut, "/api/cart/ring-001", map[string]any{"quantity": 0}, session)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Quantity must be between 1 and 99", decodeEnvelope(t, rec).Message)

	rec = env.request(http.MethodPut, "/api/cart/ghost", map[string]any{"quantity": 5}, session)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Item not found in cart", decodeEnvelope(t, rec).Message)
}

func TestRemoveFromCart_AbsentLineSucceeds(t *testing.T) {
	env := newTestEnv(t)
	env.createProduct("ring-001", 1000, true)
	env.request(http.MethodPost, "/api/cart", map[string]any{"productId": "ring-001", "quantity": 2}, session)

	rec := env.request(http.MethodDelete, "/api/cart/ghost", nil, session)
	require.Equal(t, http.StatusOK, rec.Code)

	cart := decodeData[models.Cart](t, rec)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, uint(2), cart.Items[0].Quantity)
}

func TestClearCart_Idempotent(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(http.MethodDelete, "/api/cart", nil, "never-seen")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Cart cleared successfully", decodeEnvelope(t, rec).Message)
}

// Full walk through the cart endpoints: seed one product, add it, read it
// back joined, bump the quantity, remove it, end with an empty cart.
func TestCartScenario(t *testing.T) {
	env := newTestEnv(t)
	env.createProduct("P1", 1000, true)

	rec := env.request(http.MethodPost, "/api/cart", map[string]any{"productId": "P1", "quantity": 2}, session)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.request(http.MethodGet, "/api/cart", nil, session)
	view := decodeData[transport.CartView](t, rec)
	require.Len(t, view.Items, 1)
	assert.Equal(t, uint(2), view.Items[0].Quantity)
	require.NotNil(t, view.Items[0].Product)
	assert.Equal(t, 1000.0, view.Items[0].Product.Price)
	assert.Equal(t, session, view.SessionID)

	rec = env.request(http.MethodPut, "/api/cart/P1", map[string]any{"quantity": 5}, session)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.request(http.MethodGet, "/api/cart", nil, session)
	view = decodeData[transport.CartView](t, rec)
	require.Len(t, view.Items, 1)
	assert.Equal(t, uint(5), view.Items[0].Quantity)

	rec = env.request(http.MethodDelete, "/api/cart/P1", nil, session)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.request(http.MethodGet, "/api/cart", nil, session)
	view = decodeData[transport.CartView](t, rec)
	assert.Empty(t, view.Items)
}

// Two sessions never see each other's carts.
func TestCartIsolationBetweenSessions(t *testing.T) {
	env := newTestEnv(t)
	env.createProduct("ring-001", 1000, true)

	env.request(http.MethodPost, "/api/cart", map[string]any{"productId": "ring-001", "quantity": 2}, "session-a")

	rec := env.request(http.MethodGet, "/api/cart", nil, "session-b")
	view := decodeData[transport.CartView](t, rec)
	assert.Empty(t, view.Items)
}
