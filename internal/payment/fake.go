package payment

import (
	"context"
	"fmt"
	"sync/atomic"
)

// FakeGateway is an in-memory gateway used in tests and local development.
type FakeGateway struct {
	calls atomic.Int64
	// Err, when set, is returned by every CreateOrder call.
	Err error
}

var _ Gateway = (*FakeGateway)(nil)

func NewFakeGateway() *FakeGateway {
	return &FakeGateway{}
}

func (g *FakeGateway) CreateOrder(ctx context.Context, req OrderRequest) (*Order, error) {
	if g.Err != nil {
		return nil, g.Err
	}

	n := g.calls.Add(1)
	return &Order{
		ID:       fmt.Sprintf("order_fake_%d", n),
		Amount:   req.Amount,
		Currency: req.Currency,
	}, nil
}

func (g *FakeGateway) KeyID() string {
	return "rzp_test_fake"
}

// Calls reports how many orders were created.
func (g *FakeGateway) Calls() int64 {
	return g.calls.Load()
}
