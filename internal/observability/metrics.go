package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	CategoriesCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "foodsync_categories_created_total",
		Help: "Catalog categories created by sync runs",
	})
	ProductsCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "foodsync_products_created_total",
		Help: "Catalog products created by sync runs",
	})
	ProductsUpdated = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "foodsync_products_updated_total",
		Help: "Catalog products updated by sync runs",
	})
	ItemsProcessed = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "foodsync_items_processed_total",
		Help: "Feed items successfully reconciled",
	})
	ItemsRejected = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "foodsync_items_rejected_total",
		Help: "Feed items excluded by the tobacco filter",
	})
	RunFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "foodsync_run_failures_total",
		Help: "Sync runs that failed before reconciliation",
	})
	RunDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "foodsync_run_duration_seconds",
		Help:    "Wall time of full sync runs",
		Buckets: prometheus.ExponentialBuckets(1, 2, 12),
	})
)

func Start(port string) {
	prometheus.MustRegister(
		CategoriesCreated,
		ProductsCreated,
		ProductsUpdated,
		ItemsProcessed,
		ItemsRejected,
		RunFailures,
		RunDuration,
	)
	http.Handle("/metrics", promhttp.Handler())
	go http.ListenAndServe(":"+port, nil)
}
