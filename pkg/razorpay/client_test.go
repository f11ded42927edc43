package razorpay

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sharemitra/sharemitra-backend/internal/config"
)

func newTestClient(baseURL string) *Client {
	cfg := &config.Config{}
	cfg.Razorpay.BaseURL = baseURL
	cfg.Razorpay.KeyID = "key_id"
	cfg.Razorpay.KeySecret = "key_secret"
	return NewClient(cfg)
}

func TestClientCreateOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/orders", r.URL.Path)

		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "key_id", user)
		assert.Equal(t, "key_secret", pass)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, float64(1050), body["amount"])
		assert.Equal(t, "INR", body["currency"])

		json.NewEncoder(w).Encode(Order{
			ID:       "order_ABC",
			Amount:   1050,
			Currency: "INR",
			Receipt:  body["receipt"].(string),
			Status:   "created",
		})
	}))
	defer srv.Close()

	order, err := newTestClient(srv.URL).CreateOrder(context.Background(), 1050, "INR", "rcpt_1")
	require.NoError(t, err)
	assert.Equal(t, "order_ABC", order.ID)
	assert.Equal(t, int64(1050), order.Amount)
	assert.Equal(t, "rcpt_1", order.Receipt)
}

func TestClientFetchPayment(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/payments/pay_123", r.URL.Path)
		json.NewEncoder(w).Encode(PaymentInfo{ID: "pay_123", OrderID: "order_ABC", Status: StatusCaptured})
	}))
	defer srv.Close()

	info, err := newTestClient(srv.URL).FetchPayment(context.Background(), "pay_123")
	require.NoError(t, err)
	assert.Equal(t, "pay_123", info.ID)
	assert.Equal(t, StatusCaptured, info.Status)
}

func TestClientSurfacesAPIErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"description":"Authentication failed"}}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).CreateOrder(context.Background(), 1050, "INR", "rcpt_1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestMockGatewayAlwaysCaptures(t *testing.T) {
	g := NewMockGateway()

	order, err := g.CreateOrder(context.Background(), 1050, "INR", "rcpt_1")
	require.NoError(t, err)
	assert.Equal(t, int64(1050), order.Amount)
	assert.Equal(t, "created", order.Status)

	info, err := g.FetchPayment(context.Background(), "pay_1")
	require.NoError(t, err)
	assert.Equal(t, StatusCaptured, info.Status)
}
