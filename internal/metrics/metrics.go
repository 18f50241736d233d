package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ChatRequestsTotal counts chat requests by terminal outcome kind
	// ("ok" or the GatewayError kind).
	ChatRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "twin",
			Subsystem: "gateway",
			Name:      "chat_requests_total",
			Help:      "Total chat requests by outcome",
		},
		[]string{"outcome"},
	)

	// ProviderDuration observes the latency of provider completion calls.
	ProviderDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "twin",
			Subsystem: "gateway",
			Name:      "provider_duration_seconds",
			Help:      "Latency of provider completion calls",
			Buckets:   prometheus.DefBuckets,
		},
	)

	// KeyValidationsTotal counts owner key validation probes by result.
	KeyValidationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "twin",
			Subsystem: "gateway",
			Name:      "key_validations_total",
			Help:      "Total owner API key validation probes",
		},
		[]string{"result"},
	)
)
