package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/fieldserve/fieldserve/internal/config"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/pkg/errors"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

// RazorpayGateway talks to the Razorpay orders API. Transient failures are
// retried by the underlying client; a breaker stops hammering the gateway
// once it is clearly down.
type RazorpayGateway struct {
	client  *retryablehttp.Client
	breaker *gobreaker.CircuitBreaker
	baseURL string
	keyID   string
	secret  string
}

var _ Gateway = (*RazorpayGateway)(nil)

func NewRazorpayGateway(cfg config.Razorpay) *RazorpayGateway {
	client := retryablehttp.NewClient()
	client.RetryMax = cfg.MaxRetries
	client.HTTPClient.Timeout = cfg.Timeout
	client.Logger = nil

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name: "razorpay",
		OnStateChange: func(name string, from, to gobreaker.State) {
			zap.S().Named("razorpay").Warnf("breaker '%s' changed state: %s -> %s", name, from, to)
		},
	})

	return &RazorpayGateway{
		client:  client,
		breaker: breaker,
		baseURL: cfg.BaseURL,
		keyID:   cfg.KeyID,
		secret:  cfg.KeySecret,
	}
}

func (g *RazorpayGateway) KeyID() string {
	return g.keyID
}

type razorpayOrderRequest struct {
	Amount   int64             `json:"amount"`
	Currency string            `json:"currency"`
	Receipt  string            `json:"receipt"`
	Notes    map[string]string `json:"notes,omitempty"`
}

type razorpayOrderResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Status   string `json:"status"`
}

func (g *RazorpayGateway) CreateOrder(ctx context.Context, req OrderRequest) (*Order, error) {
	payload := razorpayOrderRequest{
		Amount:   req.Amount,
		Currency: req.Currency,
		Receipt:  req.JobID.String(),
		Notes: map[string]string{
			"job_id":         req.JobID.String(),
			"customer_email": req.CustomerEmail,
			"customer_phone": req.CustomerPhone,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode order request")
	}

	result, err := g.breaker.Execute(func() (any, error) {
		return g.createOrder(ctx, body)
	})
	if err != nil {
		return nil, err
	}

	return result.(*Order), nil
}

func (g *RazorpayGateway) createOrder(ctx context.Context, body []byte) (*Order, error) {
	httpReq, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, fmt.Sprintf("%s/v1/orders", g.baseURL), bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "failed to build order request")
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.SetBasicAuth(g.keyID, g.secret)

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return nil, errors.Wrap(err, "order creation failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, errors.Errorf("order creation failed with status %d: %s", resp.StatusCode, string(data))
	}

	var orderResp razorpayOrderResponse
	if err := json.NewDecoder(resp.Body).Decode(&orderResp); err != nil {
		return nil, errors.Wrap(err, "failed to decode order response")
	}

	return &Order{ID: orderResp.ID, Amount: orderResp.Amount, Currency: orderResp.Currency}, nil
}
