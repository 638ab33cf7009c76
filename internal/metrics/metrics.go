// Package metrics exports shop activity as Prometheus metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ShopActions counts finished menu actions by outcome.
var ShopActions = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "tabboz",
	Subsystem: "shop",
	Name:      "actions_total",
	Help:      "Phone shop actions by action and outcome.",
}, []string{"action", "outcome"})

// ActiveSessions tracks game sessions held by the API.
var ActiveSessions = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "tabboz",
	Subsystem: "api",
	Name:      "active_sessions",
	Help:      "Game sessions currently held in memory.",
})

// Shop records menu actions into ShopActions.
type Shop struct{}

func (Shop) RecordAction(action, outcome string) {
	ShopActions.WithLabelValues(action, outcome).Inc()
}
