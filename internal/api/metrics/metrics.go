// Package metrics defines and registers all custom Prometheus metrics for
// the practice API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "practice"

// ── Authentication metrics ────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// AuthFailuresTotal counts requests rejected by the auth pipeline.
// Label:
//   - reason: "missing_token", "invalid_token", "expired_token",
//     "unknown_user", or "forbidden"
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of requests rejected during authentication or authorization.",
	},
	[]string{"reason"},
)

// ── Practice metrics ──────────────────────────────────────────────────────────

// CasesCreatedTotal counts newly opened cases.
// Label:
//   - case_type: "civil", "criminal", "corporate", or "family"
var CasesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cases_created_total",
		Help:      "Total number of cases created, by case type.",
	},
	[]string{"case_type"},
)

// HearingsScheduledTotal counts newly scheduled hearings.
var HearingsScheduledTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "hearings_scheduled_total",
		Help:      "Total number of hearings scheduled.",
	},
)
