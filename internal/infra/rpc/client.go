package rpc

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/vietddude/txplain/internal/observability"
)

// Client is the high-level interface for making RPC calls. It tries each
// configured provider in order, with retry and exponential backoff per
// provider, failing over when a provider is rate limited or unhealthy.
type Client struct {
	providers []Provider
	retry     RetryConfig
	log       *slog.Logger
}

// NewClient creates a client over the given providers.
func NewClient(providers []Provider, log *slog.Logger) *Client {
	return &Client{
		providers: providers,
		retry:     DefaultRetryConfig,
		log:       log,
	}
}

// Call makes an RPC call with automatic retry and failover.
func (c *Client) Call(ctx context.Context, method string, params []any) (any, error) {
	if len(c.providers) == 0 {
		return nil, fmt.Errorf("no rpc providers configured")
	}

	var lastErr error
	for _, p := range c.providers {
		start := time.Now()
		observability.RPCCallsTotal.WithLabelValues(p.GetName(), method).Inc()
		result, err := CallWithRetry(ctx, p, method, params, c.retry)
		if err == nil {
			c.log.Debug("rpc call ok",
				"provider", p.GetName(), "method", method, "latency", time.Since(start))
			return result, nil
		}

		lastErr = err
		observability.RPCErrorsTotal.WithLabelValues(p.GetName(), ClassifyError(err).String()).Inc()
		if ClassifyError(err) == ActionFatal {
			return nil, fmt.Errorf("fatal error from provider %s: %w", p.GetName(), err)
		}
		c.log.Warn("provider failed, trying next",
			"provider", p.GetName(), "method", method, "error", err)
	}

	return nil, fmt.Errorf("all providers failed: %w", lastErr)
}

// Close closes all providers.
func (c *Client) Close() error {
	for _, p := range c.providers {
		_ = p.Close()
	}
	return nil
}
