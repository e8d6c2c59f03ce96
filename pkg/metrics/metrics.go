package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	fieldserve = "fieldserve"

	jobActionsTotal    = "job_actions_total"
	paymentOrdersTotal = "payment_orders_total"

	// Labels
	actionLabel = "action"
)

var jobActionsTotalMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: fieldserve,
		Name:      jobActionsTotal,
		Help:      "number of successfully applied job lifecycle actions",
	},
	[]string{actionLabel},
)

var paymentOrdersTotalMetric = prometheus.NewCounter(
	prometheus.CounterOpts{
		Subsystem: fieldserve,
		Name:      paymentOrdersTotal,
		Help:      "number of payment orders created on the gateway",
	},
)

func IncreaseJobActionsTotal(action string) {
	jobActionsTotalMetric.With(prometheus.Labels{actionLabel: action}).Inc()
}

func IncreasePaymentOrdersTotal() {
	paymentOrdersTotalMetric.Inc()
}

func RegisterMetrics() {
	prometheus.MustRegister(jobActionsTotalMetric)
	prometheus.MustRegister(paymentOrdersTotalMetric)
}
