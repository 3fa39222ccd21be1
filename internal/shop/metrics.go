package shop

import (
	"github.com/prometheus/client_golang/prometheus"

	"ClothingShop/internal/nav"
)

const (
	outcomeFound  = "found"
	outcomeAbsent = "absent"
)

type shopMetrics struct {
	resolutions *prometheus.CounterVec
}

func newShopMetrics(reg prometheus.Registerer, sessions *nav.MemStore) *shopMetrics {
	m := &shopMetrics{
		resolutions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "shop_product_resolutions_total",
				Help: "Product detail lookups by outcome",
			},
			[]string{"outcome"},
		),
	}
	reg.MustRegister(m.resolutions)

	if sessions != nil {
		reg.MustRegister(prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Name: "shop_sessions_active",
				Help: "Navigation sessions currently held in memory",
			},
			func() float64 { return float64(sessions.Len()) },
		))
	}
	return m
}

func (m *shopMetrics) observeResolve(found bool) {
	if m == nil {
		return
	}
	outcome := outcomeAbsent
	if found {
		outcome = outcomeFound
	}
	m.resolutions.WithLabelValues(outcome).Inc()
}
