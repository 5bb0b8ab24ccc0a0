package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the various metrics used for monitoring the application.
// It includes counters for HTTP requests and employee operations
// and histograms for request latency and database query duration.
type Metrics struct {
	HTTPRequests       *prometheus.CounterVec
	HTTPDuration       *prometheus.HistogramVec
	EmployeeOperations *prometheus.CounterVec
	DBQueryDuration    *prometheus.HistogramVec
}

// NewMetrics creates a new Metrics instance with the provided Registerer.
//
// Parameters:
//   - reg: A prometheus.Registerer used to register the metrics.
//
// Returns:
//   - A pointer to the newly created Metrics instance.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	metrics := &Metrics{
		HTTPRequests: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "hestia_http_requests_total",
			Help: "Total number of HTTP requests handled by the API.",
		}, []string{"method", "route", "status"}),
		HTTPDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "hestia_http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		EmployeeOperations: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "hestia_employee_operations_total",
			Help: "Total number of employee operations by outcome.",
		}, []string{"operation", "result"}),
		DBQueryDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "hestia_db_query_duration_seconds",
			Help:    "Duration of database queries.",
			Buckets: prometheus.DefBuckets,
		}, []string{"query_type"}), // query_type: 'create_employee', 'find_employees_by_salary_range'
	}

	return metrics
}
