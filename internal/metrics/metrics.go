// Package metrics defines Prometheus metrics for orgatlas.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "orgatlas_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orgatlas_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	ErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orgatlas_errors_total",
			Help: "Total errors by type",
		},
		[]string{"type"},
	)

	BuildingCount = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "orgatlas_buildings_total",
			Help: "Total building count",
		},
	)

	OrganizationCount = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "orgatlas_organizations_total",
			Help: "Total organization count",
		},
	)
)

func init() {
	prometheus.MustRegister(
		RequestDuration, RequestsTotal, ErrorsTotal,
		BuildingCount, OrganizationCount,
	)
}
