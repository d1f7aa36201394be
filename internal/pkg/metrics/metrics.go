// Package metrics registers the service's Prometheus collectors. The
// router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CheckIns counts accepted check-ins by resulting status.
	CheckIns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "smartattend_checkins_total",
		Help: "Accepted check-ins by attendance status.",
	}, []string{"status"})

	// CheckInRejections counts rejected check-in attempts by reason.
	CheckInRejections = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "smartattend_checkin_rejections_total",
		Help: "Rejected check-in attempts by reason.",
	}, []string{"reason"})

	// LedgerTransitions counts leave/permission decisions by kind and
	// terminal status.
	LedgerTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "smartattend_ledger_transitions_total",
		Help: "Leave and permission ledger transitions by kind and status.",
	}, []string{"kind", "status"})
)
