// Package metrics defines the custom Prometheus metrics for the waste
// collection API. It is the single source of truth for metric names,
// labels, and help strings. HTTP-level metrics come from the
// echoprometheus middleware; these cover domain events.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "wastetrack"

// ComplaintsCreatedTotal counts complaints filed by residents.
// Label:
//   - area: the resident's area snapshotted onto the complaint
var ComplaintsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "complaints_created_total",
		Help:      "Total number of complaints filed, by area.",
	},
	[]string{"area"},
)

// ComplaintsAssignedTotal counts admin assignments, including
// re-assignments of already-assigned complaints.
var ComplaintsAssignedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "complaints_assigned_total",
		Help:      "Total number of complaint assignments performed.",
	},
)

// ComplaintStatusUpdatesTotal counts cleaner status updates.
// Label:
//   - status: the status applied (e.g. "collected", "not_collected")
var ComplaintStatusUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "complaint_status_updates_total",
		Help:      "Total number of complaint status updates, by resulting status.",
	},
	[]string{"status"},
)

// RoutesCreatedTotal counts routes scheduled by administrators.
var RoutesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "routes_created_total",
		Help:      "Total number of routes scheduled.",
	},
)

// LoginsTotal counts login attempts across all three principal kinds.
// Labels:
//   - role: "user", "cleaner", or "admin"
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by role and result.",
	},
	[]string{"role", "result"},
)
