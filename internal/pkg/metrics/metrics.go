// Package metrics defines and registers the custom Prometheus metrics of the
// commerce API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics are registered with the default registry on package init through
// promauto; HTTP request metrics come from the echoprometheus middleware.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "commerce"

// ── Session metrics ───────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "ok" or "rejected"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// SessionsExpiredTotal counts tokens cleared because their window elapsed.
var SessionsExpiredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_expired_total",
		Help:      "Total number of sessions invalidated on expiry detection.",
	},
)

// ── Query metrics ─────────────────────────────────────────────────────────────

// QueriesTotal counts list queries run through the query pipeline.
// Label:
//   - collection: "products", "users", "customers"
var QueriesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "queries_total",
		Help:      "Total number of list queries, by collection.",
	},
	[]string{"collection"},
)

// ── Checkout metrics ──────────────────────────────────────────────────────────

var CheckoutsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "checkouts_total",
		Help:      "Total number of completed checkouts.",
	},
)

var CheckoutItemsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "checkout_items_total",
		Help:      "Total number of cart items converted into orders.",
	},
)

// ── Persistence metrics ───────────────────────────────────────────────────────

// SnapshotsWrittenTotal counts collection snapshots persisted by the writer.
// Label:
//   - kind: collection name
var SnapshotsWrittenTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "snapshots_written_total",
		Help:      "Total number of collection snapshots persisted.",
	},
	[]string{"kind"},
)

// SnapshotErrorsTotal counts snapshots the writer failed to persist.
var SnapshotErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "snapshot_errors_total",
		Help:      "Total number of collection snapshots that failed to persist.",
	},
	[]string{"kind"},
)

// SnapshotQueueDepth tracks the snapshots waiting in each persistence worker.
// Label:
//   - worker_id: numeric worker index
var SnapshotQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "snapshot_queue_depth",
		Help:      "Current number of collections with an unwritten snapshot, per persistence worker.",
	},
	[]string{"worker_id"},
)

// SnapshotWriteDuration measures a single snapshot write.
var SnapshotWriteDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "snapshot_write_duration_seconds",
		Help:      "Duration of a single collection snapshot write.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"kind"},
)
