// Package metrics defines and registers all custom Prometheus metrics for the
// mood recipes API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics are registered with the default Prometheus registry on package
// initialisation through promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "moodrecipes"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginAttemptsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials", "invalid_input" or "error"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// AccessDeniedTotal counts requests short-circuited by the access guards.
// Label:
//   - reason: "unauthenticated" or "forbidden"
var AccessDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "access_denied_total",
		Help:      "Total number of requests rejected by the access guards.",
	},
	[]string{"reason"},
)

// IdentitiesCreatedTotal counts identities created, by role.
var IdentitiesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "identities_created_total",
		Help:      "Total number of identities created, by role.",
	},
	[]string{"role"},
)

// PasswordHashDuration measures bcrypt work, including time spent waiting for
// a hashing slot.
// Label:
//   - op: "hash" or "compare"
var PasswordHashDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "password_hash_duration_seconds",
		Help:      "Duration of password hashing and comparison.",
		Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5},
	},
	[]string{"op"},
)

// ── Catalog metrics ───────────────────────────────────────────────────────────

// RecipeTogglesTotal counts committed visibility toggles.
// Label:
//   - visible: the committed value after the toggle ("true" / "false")
var RecipeTogglesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "recipe_visibility_toggles_total",
		Help:      "Total number of recipe visibility toggles, by resulting state.",
	},
	[]string{"visible"},
)

// RecipePicksTotal counts random recipe selections.
// Labels:
//   - mood: the requested mood
//   - result: "hit" or "none_available"
var RecipePicksTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "recipe_picks_total",
		Help:      "Total number of random recipe selections, by mood and result.",
	},
	[]string{"mood", "result"},
)
