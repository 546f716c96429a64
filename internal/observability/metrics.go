// Package observability defines the Prometheus metrics exported on /metrics.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal tracks API requests per route and status code.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "txplain_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"route", "method", "status"},
	)

	// HTTPRequestDuration tracks API request latency per route.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "txplain_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route"},
	)

	// ExplanationsTotal tracks generated explanations per rule category.
	ExplanationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "txplain_explanations_total",
			Help: "Total number of explanations generated",
		},
		[]string{"category"},
	)

	// ModelFallbacksTotal tracks scoring calls served by fallback values.
	ModelFallbacksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "txplain_model_fallbacks_total",
			Help: "Total number of scoring calls that used fallback values",
		},
		[]string{"model"},
	)

	// RPCCallsTotal tracks upstream JSON-RPC calls per provider and method.
	RPCCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "txplain_rpc_calls_total",
			Help: "Total number of JSON-RPC calls",
		},
		[]string{"provider", "method"},
	)

	// RPCErrorsTotal tracks upstream JSON-RPC failures per provider.
	RPCErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "txplain_rpc_errors_total",
			Help: "Total number of JSON-RPC errors",
		},
		[]string{"provider", "error_type"},
	)

	// TokenMetadataLookups tracks registry lookups by outcome: static,
	// cache_hit, fetched or miss.
	TokenMetadataLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "txplain_token_metadata_lookups_total",
			Help: "Total number of token metadata lookups by outcome",
		},
		[]string{"outcome"},
	)
)
