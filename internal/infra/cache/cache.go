// Package cache provides token-metadata caches. Entries are keyed by
// lowercased contract address and written once; concurrent populates of the
// same key write identical data, so last-write-wins is safe.
package cache

import (
	"context"

	"github.com/vietddude/txplain/internal/core/domain"
)

// TokenCache stores resolved token metadata between requests.
type TokenCache interface {
	// Get returns the cached metadata for a contract address, if present.
	Get(ctx context.Context, address string) (*domain.TokenInfo, bool)

	// Set stores metadata for a contract address.
	Set(ctx context.Context, address string, info *domain.TokenInfo)

	// Close releases cache resources.
	Close() error
}
