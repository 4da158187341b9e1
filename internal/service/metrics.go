package service

import "github.com/prometheus/client_golang/prometheus"

// Metrics are the domain counters exported next to the HTTP metrics.
type Metrics struct {
	ordersCreated  prometheus.Counter
	ordersCanceled prometheus.Counter
	couponsApplied prometheus.Counter
}

// NewMetrics registers the domain counters with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		ordersCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "shop_orders_created_total",
			Help: "Orders placed by customers.",
		}),
		ordersCanceled: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "shop_orders_canceled_total",
			Help: "Orders canceled by customers.",
		}),
		couponsApplied: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "shop_coupons_applied_total",
			Help: "Coupons successfully applied to carts.",
		}),
	}
	for _, c := range []prometheus.Collector{m.ordersCreated, m.ordersCanceled, m.couponsApplied} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) orderCreated() {
	if m != nil {
		m.ordersCreated.Inc()
	}
}

func (m *Metrics) orderCanceled() {
	if m != nil {
		m.ordersCanceled.Inc()
	}
}

func (m *Metrics) couponApplied() {
	if m != nil {
		m.couponsApplied.Inc()
	}
}
