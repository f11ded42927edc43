package razorpay

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Compile-time check to ensure MockGateway implements the interface
var _ Gateway = (*MockGateway)(nil)

// MockGateway simulates the gateway for local development and tests
type MockGateway struct {
	mu     sync.Mutex
	orders map[string]*Order
}

// NewMockGateway creates a new mock gateway
func NewMockGateway() *MockGateway {
	return &MockGateway{orders: make(map[string]*Order)}
}

// CreateOrder simulates order creation
func (g *MockGateway) CreateOrder(_ context.Context, amount int64, currency, receipt string) (*Order, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	order := &Order{
		ID:       fmt.Sprintf("order_MOCK%d", time.Now().UnixNano()),
		Amount:   amount,
		Currency: currency,
		Receipt:  receipt,
		Status:   "created",
	}
	g.orders[order.ID] = order
	return order, nil
}

// FetchPayment simulates a captured payment
func (g *MockGateway) FetchPayment(_ context.Context, paymentID string) (*PaymentInfo, error) {
	return &PaymentInfo{
		ID:     paymentID,
		Status: StatusCaptured,
		Method: "card",
	}, nil
}
