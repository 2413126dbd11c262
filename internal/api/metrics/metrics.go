// Package metrics defines and registers all custom Prometheus metrics for
// the task API. It is the single source of truth for metric names, labels,
// and help strings. Metrics register with the default registry at import
// time via promauto; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "taskapi"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// TokensIssuedTotal counts bearer tokens handed out.
// Label:
//   - flow: "register" or "login"
var TokensIssuedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_issued_total",
		Help:      "Total number of bearer tokens issued, by flow.",
	},
	[]string{"flow"},
)

// GateRejectionsTotal counts requests rejected by the auth gates.
// Label:
//   - reason: "missing_token", "invalid_token", or "not_admin"
var GateRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "gate_rejections_total",
		Help:      "Total number of requests rejected by the auth or admin gate.",
	},
	[]string{"reason"},
)

// ── Task metrics ──────────────────────────────────────────────────────────────

// TasksCreatedTotal counts newly created tasks.
// Label:
//   - priority: "Low", "Medium", or "High"
var TasksCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tasks_created_total",
		Help:      "Total number of tasks created, by priority.",
	},
	[]string{"priority"},
)

// ── Activity trail metrics ────────────────────────────────────────────────────

// ActivityEventsTotal counts activity events that finished processing.
// Label:
//   - outcome: "recorded" or "error"
var ActivityEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activity_events_total",
		Help:      "Total number of task activity events processed, by outcome.",
	},
	[]string{"outcome"},
)

// ActivityQueueDepth tracks events waiting in each dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var ActivityQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "activity_queue_depth",
		Help:      "Current number of activity events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
