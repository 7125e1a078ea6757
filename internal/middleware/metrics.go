package middleware

import (
	"net/http"
	"strconv"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpInFlight = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "boba_service",
		Subsystem: "http",
		Name:      "in_flight_requests",
		Help:      "Requests currently being served by the order and shop API.",
	})

	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "boba_service",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Requests served, by route pattern and status code.",
	}, []string{"method", "route", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "boba_service",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Request latency by route pattern.",
		Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
	}, []string{"method", "route"})

	httpResponseSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "boba_service",
		Subsystem: "http",
		Name:      "response_size_bytes",
		Help:      "Response body size by route pattern. Order and shop lists grow with the collections.",
		Buckets:   prometheus.ExponentialBuckets(64, 4, 8),
	}, []string{"method", "route"})
)

// Metrics records request counts, latency and response size. Routes are
// labelled by pattern so order and shop ids do not create new series.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httpInFlight.Inc()
		defer httpInFlight.Dec()

		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := routePattern(r)
		httpRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(statusOf(ww))).Inc()
		httpRequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
		httpResponseSize.WithLabelValues(r.Method, route).Observe(float64(ww.BytesWritten()))
	})
}
