// Package observability registers prometheus instruments for the service.
package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	signupsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activities",
		Subsystem: "registry",
		Name:      "signups_total",
		Help:      "Total accepted signups per activity.",
	}, []string{"activity"})

	unregistrationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activities",
		Subsystem: "registry",
		Name:      "unregistrations_total",
		Help:      "Total accepted unregistrations per activity.",
	}, []string{"activity"})

	rejectionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activities",
		Subsystem: "registry",
		Name:      "rejections_total",
		Help:      "Rejected roster mutations by reason.",
	}, []string{"reason"})

	httpRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activities",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests by method, route and status.",
	}, []string{"method", "route", "status"})

	httpRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "activities",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency by method and route.",
	}, []string{"method", "route"})
)

func init() {
	prometheus.MustRegister(
		signupsTotal,
		unregistrationsTotal,
		rejectionsTotal,
		httpRequestsTotal,
		httpRequestDuration,
	)
}

// RecordSignup counts an accepted signup.
func RecordSignup(activity string) {
	signupsTotal.WithLabelValues(activity).Inc()
}

// RecordUnregistration counts an accepted unregistration.
func RecordUnregistration(activity string) {
	unregistrationsTotal.WithLabelValues(activity).Inc()
}

// RecordRejection counts a rejected roster mutation.
func RecordRejection(reason string) {
	rejectionsTotal.WithLabelValues(reason).Inc()
}

// ObserveHTTPRequest records one served request.
func ObserveHTTPRequest(method, route string, status int, dur time.Duration) {
	httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpRequestDuration.WithLabelValues(method, route).Observe(dur.Seconds())
}
