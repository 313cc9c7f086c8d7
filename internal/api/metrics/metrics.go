// Package metrics defines and registers all custom Prometheus metrics for the
// orphanage management API. It is the single source of truth for metric
// names, labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "orphanage"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success", "invalid_credentials", "pending", "disabled", "rate_limited"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by outcome.",
	},
	[]string{"result"},
)

// TokenRefreshesTotal counts refresh-token exchanges by outcome.
var TokenRefreshesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_refreshes_total",
		Help:      "Total number of refresh-token exchanges, by outcome (success/failure).",
	},
	[]string{"result"},
)

// ── Registration workflow metrics ─────────────────────────────────────────────

// RegistrationsSubmittedTotal counts accepted registration submissions.
// Label:
//   - role: the requested role (e.g. "donateur")
var RegistrationsSubmittedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_submitted_total",
		Help:      "Total number of registration requests accepted into the pending set.",
	},
	[]string{"role"},
)

// RegistrationDecisionsTotal counts admin decisions on pending registrations.
// Label:
//   - action: "approve" or "reject"
var RegistrationDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registration_decisions_total",
		Help:      "Total number of admin decisions on pending registrations.",
	},
	[]string{"action"},
)

// ── Donation metrics ──────────────────────────────────────────────────────────

// DonationsCreatedTotal counts recorded donations.
// Label:
//   - type: "ponctuel" or "mensuel"
var DonationsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "donations_created_total",
		Help:      "Total number of donations recorded, by type.",
	},
	[]string{"type"},
)

// ── Notification metrics ──────────────────────────────────────────────────────

// NotificationsSentTotal counts notifications delivered by the dispatcher.
// Label:
//   - kind: notification kind (e.g. "registration_approved")
var NotificationsSentTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_sent_total",
		Help:      "Total number of notifications delivered, by kind.",
	},
	[]string{"kind"},
)

// NotificationsFailedTotal counts notifications whose delivery failed.
var NotificationsFailedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_failed_total",
		Help:      "Total number of notifications whose delivery failed, by kind.",
	},
	[]string{"kind"},
)

// NotificationsQueueDepth tracks the number of notifications waiting in each
// worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var NotificationsQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "notifications_queue_depth",
		Help:      "Current number of notifications pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
