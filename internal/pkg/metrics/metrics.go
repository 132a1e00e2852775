// Package metrics defines and registers all custom Prometheus metrics of the
// storefront. It is the single source of truth for metric names, labels and
// help strings.
//
// Metrics are registered with the default registry at package init through
// promauto; the HTTP layer exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "storefront"

// ── Session metrics ───────────────────────────────────────────────────────────

// CartMutationsTotal counts cart operations.
// Label:
//   - op: "add", "remove", "update", "clear"
var CartMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cart_mutations_total",
		Help:      "Total number of cart mutations, by operation.",
	},
	[]string{"op"},
)

// AuthAttemptsTotal counts mock login and register calls.
// Labels:
//   - op: "login" or "register"
//   - result: "ok", "invalid"
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of login/register attempts, by outcome.",
	},
	[]string{"op", "result"},
)

// StorageDecodeFailuresTotal counts persisted values discarded because they
// could not be decoded.
// Label:
//   - key: the storage slot ("shopverse_user", "shopverse_cart")
var StorageDecodeFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "storage_decode_failures_total",
		Help:      "Total number of malformed persisted values discarded on restore.",
	},
	[]string{"key"},
)

// SessionsActive tracks the sessions currently held in memory.
var SessionsActive = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "sessions_active",
		Help:      "Number of sessions resident in memory.",
	},
)

// ── Catalog metrics ───────────────────────────────────────────────────────────

// CatalogQueriesTotal counts listing evaluations.
// Label:
//   - sort: the sort key applied
var CatalogQueriesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "catalog_queries_total",
		Help:      "Total number of catalog listing queries, by sort key.",
	},
	[]string{"sort"},
)

// ── Order metrics ─────────────────────────────────────────────────────────────

// OrdersPlacedTotal counts successful checkouts.
var OrdersPlacedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_placed_total",
		Help:      "Total number of orders placed.",
	},
)

// OrderValueDollars observes the grand total of each placed order.
var OrderValueDollars = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "order_value_dollars",
		Help:      "Grand total of placed orders in USD.",
		Buckets:   []float64{10, 25, 50, 100, 250, 500, 1000},
	},
)
