package http

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Transition outcome labels.
const (
	outcomeApplied  = "applied"
	outcomeBlocked  = "blocked"
	outcomeRejected = "rejected"
	outcomeError    = "error"
)

// transitionsTotal counts transition attempts by requested action and
// outcome. "blocked" means a business rule vetoed the transition, "rejected"
// covers structurally invalid requests, "error" everything else.
var transitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "orderflow_transitions_total",
		Help: "Order transition attempts by action and outcome.",
	},
	[]string{"action", "outcome"},
)
