// Package metrics provides Prometheus metric collection for the admin service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector is the interface the service layer records against. Keeping it
// an interface lets tests pass a no-op implementation.
type Collector interface {
	RecordInviteSent()
	RecordInviteRejected(reason string)
	RecordInviteFailed()
	RecordUsersListed(count int)
	RecordHTTPStatus(statusCode int)
	RecordRequestLatency(duration time.Duration)
}

// PromCollector records metrics into a Prometheus registry.
type PromCollector struct {
	invitesSent     prometheus.Counter
	invitesRejected *prometheus.CounterVec
	invitesFailed   prometheus.Counter
	usersListed     prometheus.Counter
	usersCount      prometheus.Gauge
	httpStatus      *prometheus.CounterVec
	requestLatency  prometheus.Histogram
}

// NewPromCollector creates a collector and registers its metrics with reg.
func NewPromCollector(reg prometheus.Registerer) *PromCollector {
	c := &PromCollector{
		invitesSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "admin_invites_sent_total",
			Help: "Total number of invitation emails dispatched successfully.",
		}),
		invitesRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "admin_invites_rejected_total",
			Help: "Total number of invite requests rejected before dispatch.",
		}, []string{"reason"}),
		invitesFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "admin_invites_failed_total",
			Help: "Total number of invite requests that failed during dispatch.",
		}),
		usersListed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "admin_users_listed_total",
			Help: "Total number of user list requests served.",
		}),
		usersCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "admin_users_count",
			Help: "Number of users in the directory as of the last list request.",
		}),
		httpStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "admin_http_status_total",
			Help: "Responses by HTTP status code.",
		}, []string{"status_code"}),
		requestLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "admin_request_latency_seconds",
			Help:    "Latency of admin HTTP requests in seconds.",
			Buckets: prometheus.DefBuckets,
		}),
	}

	reg.MustRegister(
		c.invitesSent,
		c.invitesRejected,
		c.invitesFailed,
		c.usersListed,
		c.usersCount,
		c.httpStatus,
		c.requestLatency,
	)

	return c
}

func (c *PromCollector) RecordInviteSent() { c.invitesSent.Inc() }

func (c *PromCollector) RecordInviteRejected(reason string) {
	c.invitesRejected.WithLabelValues(reason).Inc()
}

func (c *PromCollector) RecordInviteFailed() { c.invitesFailed.Inc() }

func (c *PromCollector) RecordUsersListed(count int) {
	c.usersListed.Inc()
	c.usersCount.Set(float64(count))
}

func (c *PromCollector) RecordHTTPStatus(statusCode int) {
	c.httpStatus.WithLabelValues(strconv.Itoa(statusCode)).Inc()
}

func (c *PromCollector) RecordRequestLatency(duration time.Duration) {
	c.requestLatency.Observe(duration.Seconds())
}

// Noop discards all metrics. Useful in tests.
type Noop struct{}

func (Noop) RecordInviteSent()                  {}
func (Noop) RecordInviteRejected(string)        {}
func (Noop) RecordInviteFailed()                {}
func (Noop) RecordUsersListed(int)              {}
func (Noop) RecordHTTPStatus(int)               {}
func (Noop) RecordRequestLatency(time.Duration) {}

// Handler returns the HTTP handler for Prometheus scrapes.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
