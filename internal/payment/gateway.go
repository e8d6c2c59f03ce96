package payment

import (
	"context"

	"github.com/google/uuid"
)

const CurrencyINR = "INR"

// OrderRequest describes the order to create on the gateway side. Amount is
// in the gateway's minor unit (paise).
type OrderRequest struct {
	JobID         uuid.UUID
	Amount        int64
	Currency      string
	CustomerEmail string
	CustomerPhone string
}

// Order is the gateway-side record representing an intent to charge.
type Order struct {
	ID       string
	Amount   int64
	Currency string
}

// Gateway creates payment orders. Implementations must honor the context
// deadline; a hanging gateway call must not hang the request.
type Gateway interface {
	CreateOrder(ctx context.Context, req OrderRequest) (*Order, error)
	KeyID() string
}
