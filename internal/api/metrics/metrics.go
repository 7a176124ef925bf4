// Package metrics defines and registers all custom Prometheus metrics for
// the MoviesFlix API. It is the single source of truth for metric names,
// labels, and help strings; registration happens at import time via
// promauto against the default registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "moviesflix"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts successfully created accounts.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts created.",
	},
)

// AuthRejectionsTotal counts bearer-token authentication failures.
// Label:
//   - reason: "missing_header", "malformed_header", "malformed_token",
//     "bad_signature", "expired", "unknown_user"
var AuthRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_rejections_total",
		Help:      "Total number of rejected bearer-token authentications, by internal reason.",
	},
	[]string{"reason"},
)

// FavoriteUpdatesTotal counts favorites mutations.
// Label:
//   - op: "add" or "remove"
var FavoriteUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "favorite_updates_total",
		Help:      "Total number of favorites set mutations, by operation.",
	},
	[]string{"op"},
)

// CatalogLookupsTotal counts catalog reads.
// Label:
//   - kind: "list", "title", "genre", "director", "daily"
var CatalogLookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "catalog_lookups_total",
		Help:      "Total number of movie catalog lookups, by kind.",
	},
	[]string{"kind"},
)
