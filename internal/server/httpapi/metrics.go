package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gatekeeper_requests_total",
		Help: "Total number of auth requests by handler and status code",
	}, []string{"handler", "status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "gatekeeper_request_duration_seconds",
		Help:    "Histogram of auth request latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"handler"})
)

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// instrument wraps a handler with request counting and latency metrics.
func instrument(name string, h http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		h(rec, r)

		requestsTotal.WithLabelValues(name, strconv.Itoa(rec.status)).Inc()
		requestDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
	})
}
