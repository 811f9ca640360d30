// Package metrics defines and registers all custom Prometheus metrics for
// the gallery service. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at import time; the
// router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "gallery"

// ── Session metrics ───────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Labels:
//   - outcome: "success" or "failure"
//   - role: the authenticated role, or "none" on failure
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by outcome and role.",
	},
	[]string{"outcome", "role"},
)

// RegistrationsTotal counts registration attempts.
// Label:
//   - outcome: "success" or "duplicate_username"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by outcome.",
	},
	[]string{"outcome"},
)

// ── Guard metrics ─────────────────────────────────────────────────────────────

// GuardDecisionsTotal counts access decisions made by the policy guard.
// Labels:
//   - requirement: the view's declared requirement ("public", "authenticated", "role:artist", ...)
//   - decision: "render", "redirect", or "deny"
var GuardDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_decisions_total",
		Help:      "Total number of guard decisions, by requirement and decision.",
	},
	[]string{"requirement", "decision"},
)

// ── Gallery metrics ───────────────────────────────────────────────────────────

// PaintingsCreatedTotal counts newly uploaded paintings.
var PaintingsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "paintings_created_total",
		Help:      "Total number of paintings created.",
	},
)

// RatingsSubmittedTotal counts rating submissions.
// Label:
//   - result: "recorded" or "rejected"
var RatingsSubmittedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ratings_submitted_total",
		Help:      "Total number of rating submissions, by result.",
	},
	[]string{"result"},
)

// CommentsCreatedTotal counts created comments.
var CommentsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "comments_created_total",
		Help:      "Total number of comments created.",
	},
)
