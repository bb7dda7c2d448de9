// Package metrics defines all custom Prometheus metrics for the storefront
// SDK and the stub backend. It is the single source of truth for metric
// names, labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "storefront"

// APIRequestsTotal counts gateway requests by backend resource and outcome.
// Labels:
//   - resource: first path segment of the call (e.g. "cart", "orders")
//   - outcome: "ok", or the error kind ("unauthorized", "remote", "transport", ...)
var APIRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "api_requests_total",
		Help:      "Total number of gateway requests, by resource and outcome.",
	},
	[]string{"resource", "outcome"},
)

// APIRequestDuration measures the wall time of one gateway request.
// Label:
//   - resource: first path segment of the call
var APIRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "api_request_duration_seconds",
		Help:      "Duration of gateway requests from send to decode.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"resource"},
)

// CartSyncTotal counts cart mutate-then-refetch cycles.
// Labels:
//   - operation: "add", "update", "remove", "clear"
//   - result: "ok", "mutation_failed", or "stale" (write landed, re-read failed)
var CartSyncTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cart_sync_total",
		Help:      "Total number of cart synchronisation cycles, by operation and result.",
	},
	[]string{"operation", "result"},
)

// ForcedLogoutsTotal counts credential clears triggered by a backend 401/403.
var ForcedLogoutsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "forced_logouts_total",
		Help:      "Total number of sessions dropped after the backend rejected the token.",
	},
)
