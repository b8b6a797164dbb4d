// Package metrics defines and registers all custom Prometheus metrics for the
// gardens API. It is the single source of truth for metric names, labels, and
// help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "gardens"

// InquiriesCreatedTotal counts accepted inquiry submissions.
// Label:
//   - type: "booking", "event" or "general" for room inquiries; "venue_event"
//     for event venue inquiries
var InquiriesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "inquiries_created_total",
		Help:      "Total number of inquiries accepted, by inquiry type.",
	},
	[]string{"type"},
)

// AuthFailuresTotal counts rejected authentication and authorization attempts.
// Label:
//   - kind: "unauthorized" (no valid identity) or "forbidden" (valid identity,
//     insufficient role)
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of rejected authentication attempts, by kind.",
	},
	[]string{"kind"},
)

// RateLimitRejectionsTotal counts requests rejected by the rate limiter.
// Label:
//   - scope: the name of the exceeded scope (e.g. "login", "inquiries")
var RateLimitRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_limit_rejections_total",
		Help:      "Total number of requests rejected by the rate limiter, by scope.",
	},
	[]string{"scope"},
)

// MailsSentTotal counts outbound notification mails.
// Label:
//   - result: "ok" or "error"
var MailsSentTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "mails_sent_total",
		Help:      "Total number of outbound notification mails, by result.",
	},
	[]string{"result"},
)
