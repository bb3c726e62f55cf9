// Package metrics defines and registers all custom Prometheus metrics for the
// marketplace API. It is the single source of truth for metric names, labels,
// and help strings. Metrics register with the default registry at import time
// via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "nexus"

// ProjectsCreatedTotal counts new project postings.
var ProjectsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "projects_created_total",
		Help:      "Total number of project postings created.",
	},
)

// ApplicationsCreatedTotal counts new application rows.
// Label:
//   - type: "APPLICATION" (consultant-initiated) or "INVITATION" (business-initiated)
var ApplicationsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "applications_created_total",
		Help:      "Total number of applications and invitations created, by type.",
	},
	[]string{"type"},
)

// ApplicationResponsesTotal counts resolved application rows.
// Label:
//   - status: the terminal status applied ("ACCEPTED", "REJECTED", "CANCELLED")
var ApplicationResponsesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "application_responses_total",
		Help:      "Total number of application responses and withdrawals, by resulting status.",
	},
	[]string{"status"},
)

// ReviewsSubmittedTotal counts submitted reviews. Each submission also
// completes its project.
var ReviewsSubmittedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reviews_submitted_total",
		Help:      "Total number of reviews submitted.",
	},
)

// AssistRequestsTotal counts generative assistant calls.
// Labels:
//   - operation: "rank", "refine", or "avatar"
//   - outcome: "ok", "conflict" (already in flight), or "error"
var AssistRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "assist_requests_total",
		Help:      "Total number of assistant requests, by operation and outcome.",
	},
	[]string{"operation", "outcome"},
)
