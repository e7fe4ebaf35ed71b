package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tiffinbox_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tiffinbox_http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	orderOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tiffinbox_order_operations_total",
			Help: "Total number of order operations",
		},
		[]string{"operation", "status"},
	)

	paymentVerifications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tiffinbox_payment_verifications_total",
			Help: "Total number of payment signature verifications",
		},
		[]string{"result"},
	)
)

func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := strconv.Itoa(c.Writer.Status())
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		httpRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		httpRequestDuration.WithLabelValues(c.Request.Method, path, status).Observe(time.Since(start).Seconds())
	}
}

func RecordOrderOperation(operation string, success bool) {
	status := "failure"
	if success {
		status = "success"
	}
	orderOperations.WithLabelValues(operation, status).Inc()
}

func RecordPaymentVerification(ok bool) {
	result := "rejected"
	if ok {
		result = "verified"
	}
	paymentVerifications.WithLabelValues(result).Inc()
}
