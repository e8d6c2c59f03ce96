package payment_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/fieldserve/fieldserve/internal/config"
	"github.com/fieldserve/fieldserve/internal/payment"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func newGatewayConfig(baseURL string) config.Razorpay {
	return config.Razorpay{
		KeyID:      "rzp_test_key",
		KeySecret:  "secret",
		BaseURL:    baseURL,
		Timeout:    2 * time.Second,
		MaxRetries: 0,
	}
}

var _ = Describe("razorpay gateway", func() {
	Context("create order", func() {
		It("successfully creates an order", func() {
			var gotPath, gotUser, gotPass string
			var gotBody map[string]any

			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				gotUser, gotPass, _ = r.BasicAuth()
				_ = json.NewDecoder(r.Body).Decode(&gotBody)

				w.Header().Set("Content-Type", "application/json")
				_ = json.NewEncoder(w).Encode(map[string]any{
					"id":       "order_ABC123",
					"amount":   50000,
					"currency": "INR",
					"status":   "created",
				})
			}))
			defer ts.Close()

			g := payment.NewRazorpayGateway(newGatewayConfig(ts.URL))
			jobID := uuid.New()

			order, err := g.CreateOrder(context.TODO(), payment.OrderRequest{
				JobID:         jobID,
				Amount:        50000,
				Currency:      payment.CurrencyINR,
				CustomerEmail: "customer@example.com",
				CustomerPhone: "+910000000001",
			})
			Expect(err).To(BeNil())
			Expect(order.ID).To(Equal("order_ABC123"))
			Expect(order.Amount).To(Equal(int64(50000)))
			Expect(order.Currency).To(Equal("INR"))

			Expect(gotPath).To(Equal("/v1/orders"))
			Expect(gotUser).To(Equal("rzp_test_key"))
			Expect(gotPass).To(Equal("secret"))
			Expect(gotBody["amount"]).To(Equal(float64(50000)))
			Expect(gotBody["currency"]).To(Equal("INR"))
			Expect(gotBody["receipt"]).To(Equal(jobID.String()))
		})

		It("fails to create an order -- gateway rejects the request", func() {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(`{"error":{"description":"amount must be at least 100"}}`))
			}))
			defer ts.Close()

			g := payment.NewRazorpayGateway(newGatewayConfig(ts.URL))
			_, err := g.CreateOrder(context.TODO(), payment.OrderRequest{
				JobID:    uuid.New(),
				Amount:   1,
				Currency: payment.CurrencyINR,
			})
			Expect(err).ToNot(BeNil())
			Expect(err.Error()).To(ContainSubstring("status 400"))
		})

		It("fails to create an order -- gateway unreachable", func() {
			g := payment.NewRazorpayGateway(newGatewayConfig("http://127.0.0.1:1"))
			_, err := g.CreateOrder(context.TODO(), payment.OrderRequest{
				JobID:    uuid.New(),
				Amount:   50000,
				Currency: payment.CurrencyINR,
			})
			Expect(err).ToNot(BeNil())
		})

		It("exposes the configured key id", func() {
			g := payment.NewRazorpayGateway(newGatewayConfig("http://localhost"))
			Expect(g.KeyID()).To(Equal("rzp_test_key"))
		})
	})

	Context("fake gateway", func() {
		It("hands out sequential order ids and counts the calls", func() {
			g := payment.NewFakeGateway()

			first, err := g.CreateOrder(context.TODO(), payment.OrderRequest{Amount: 100, Currency: payment.CurrencyINR})
			Expect(err).To(BeNil())
			second, err := g.CreateOrder(context.TODO(), payment.OrderRequest{Amount: 100, Currency: payment.CurrencyINR})
			Expect(err).To(BeNil())

			Expect(first.ID).NotTo(Equal(second.ID))
			Expect(g.Calls()).To(Equal(int64(2)))
		})
	})
})
