// Package metrics defines all custom Prometheus metrics for the jobdeck
// API. It is the single source of truth for metric names, labels, and help
// strings; registration happens via promauto at package load.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "jobdeck"

// RegistrationsTotal counts successfully registered users.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of successful user registrations.",
	},
)

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success", "failure" (bad username or password), or
//     "throttled" (rejected by the login limiter)
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// RecordsCreatedTotal counts created resource records.
// Label:
//   - resource: "job", "pipeline", or "customer"
var RecordsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "records_created_total",
		Help:      "Total number of resource records created, by resource type.",
	},
	[]string{"resource"},
)

// AuthRejectionsTotal counts requests stopped before reaching a handler.
// Label:
//   - reason: "missing_token", "invalid_token", "user_gone", or "forbidden"
var AuthRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_rejections_total",
		Help:      "Total number of requests rejected by auth middleware, by reason.",
	},
	[]string{"reason"},
)
