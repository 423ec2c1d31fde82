// Package metrics exposes client-side prometheus counters. They are cheap
// to increment and registered via promauto, so embedding applications can
// scrape them from the default registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// GatewayRequestsTotal counts journal gateway calls by operation and outcome.
	GatewayRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "emojournal_client",
			Name:      "gateway_requests_total",
			Help:      "Journal gateway calls by operation and outcome.",
		},
		[]string{"op", "outcome"},
	)

	// TokenRefreshTotal counts refresh exchanges by outcome.
	TokenRefreshTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "emojournal_client",
			Name:      "token_refresh_total",
			Help:      "Refresh-token exchanges by outcome.",
		},
		[]string{"outcome"},
	)

	// AnalysisFallbackTotal counts analyses that degraded to the local heuristic.
	AnalysisFallbackTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "emojournal_client",
			Name:      "analysis_fallback_total",
			Help:      "Emotion analyses served by the local heuristic.",
		},
		[]string{"kind"},
	)
)
