// Package metrics defines and registers all custom Prometheus metrics for the
// studio API. It is the single source of truth for metric names, labels, and
// help strings. Metrics register with the default registry at package init;
// the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "studio"

// InquiriesSubmittedTotal counts successfully created inquiries.
// Label:
//   - kind: "product" when a line item was attached, "general" otherwise
var InquiriesSubmittedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "inquiries_submitted_total",
		Help:      "Total number of inquiries created, by kind (product/general).",
	},
	[]string{"kind"},
)

// InquiriesDeletedTotal counts inquiries removed by administrators.
var InquiriesDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "inquiries_deleted_total",
		Help:      "Total number of inquiries deleted.",
	},
)

// AuthDecisionsTotal counts authorization gate outcomes.
// Label:
//   - outcome: "granted", "unauthorized", or "forbidden"
var AuthDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_decisions_total",
		Help:      "Total number of authorization decisions, by outcome.",
	},
	[]string{"outcome"},
)

// CatalogCacheTotal counts catalog cache lookups.
// Label:
//   - result: "hit" or "miss"
var CatalogCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "catalog_cache_total",
		Help:      "Total number of catalog cache lookups, by result (hit/miss).",
	},
	[]string{"result"},
)
