// Package metrics exposes the service's Prometheus instrumentation behind a
// single registry struct.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Registry struct {
	reg *prometheus.Registry

	SeedTotal         prometheus.Counter
	GenerateDuration  prometheus.Histogram
	DatasetUsers      prometheus.Gauge
	DatasetOrders     prometheus.Gauge
	DatasetProducts   prometheus.Gauge
	UserListDuration  prometheus.Histogram
	OrderListDuration prometheus.Histogram
	SlowQueries       prometheus.Counter
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()
	seedTotal := prometheus.NewCounter(prometheus.CounterOpts{Name: "mockshop_seed_total"})
	genDur := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "mockshop_generate_duration_seconds",
		Buckets: prometheus.DefBuckets,
	})
	users := prometheus.NewGauge(prometheus.GaugeOpts{Name: "mockshop_dataset_users"})
	orders := prometheus.NewGauge(prometheus.GaugeOpts{Name: "mockshop_dataset_orders"})
	products := prometheus.NewGauge(prometheus.GaugeOpts{Name: "mockshop_dataset_products"})
	userList := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "mockshop_users_query_duration_seconds",
		Buckets: prometheus.DefBuckets,
	})
	orderList := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "mockshop_user_orders_query_duration_seconds",
		Buckets: prometheus.DefBuckets,
	})
	slow := prometheus.NewCounter(prometheus.CounterOpts{Name: "mockshop_slow_queries_total"})

	r.MustRegister(seedTotal, genDur, users, orders, products, userList, orderList, slow)
	return &Registry{
		reg:               r,
		SeedTotal:         seedTotal,
		GenerateDuration:  genDur,
		DatasetUsers:      users,
		DatasetOrders:     orders,
		DatasetProducts:   products,
		UserListDuration:  userList,
		OrderListDuration: orderList,
		SlowQueries:       slow,
	}
}

// ObserveDataset records the sizes of the current generation.
func (r *Registry) ObserveDataset(users, orders, products int) {
	r.DatasetUsers.Set(float64(users))
	r.DatasetOrders.Set(float64(orders))
	r.DatasetProducts.Set(float64(products))
}

func (r *Registry) Handler() http.Handler { return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{}) }
