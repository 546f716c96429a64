// Package registry maps addresses to semantic roles and token contracts to
// metadata. Static tables are consulted first; unknown token contracts are
// resolved on chain and memoized in an injected cache.
package registry

import (
	"context"
	"log/slog"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/sync/singleflight"

	"github.com/vietddude/txplain/internal/core/domain"
	"github.com/vietddude/txplain/internal/infra/cache"
	"github.com/vietddude/txplain/internal/observability"
)

// MetadataFetcher queries an ERC-20 contract on chain (satisfied by
// chaindata.Client).
type MetadataFetcher interface {
	TokenMetadata(ctx context.Context, address string) (symbol, name string, decimals uint8, err error)
}

// Registry is an explicitly owned, injectable lookup service. Safe for
// concurrent use; concurrent resolutions of the same contract are collapsed
// into one upstream fetch.
type Registry struct {
	fetcher MetadataFetcher
	cache   cache.TokenCache
	group   singleflight.Group
	log     *slog.Logger
}

// New creates a registry. fetcher may be nil, in which case unknown tokens
// resolve to nil without an on-chain query.
func New(fetcher MetadataFetcher, tokenCache cache.TokenCache, log *slog.Logger) *Registry {
	return &Registry{
		fetcher: fetcher,
		cache:   tokenCache,
		log:     log,
	}
}

// KnownAddress returns the semantic annotation for a known address, or nil.
// Pure static lookup, independent of token resolution.
func (r *Registry) KnownAddress(address string) *domain.AddressInfo {
	if info, ok := knownAddresses[strings.ToLower(address)]; ok {
		cp := info
		return &cp
	}
	return nil
}

// TokenInfo resolves token metadata for a contract address: static table,
// then cache, then on-chain query. Returns nil (no error) when the contract
// cannot be resolved; resolution failure degrades, it never aborts a request.
func (r *Registry) TokenInfo(ctx context.Context, address string) *domain.TokenInfo {
	if !common.IsHexAddress(address) {
		return nil
	}
	key := strings.ToLower(address)

	if info, ok := knownTokens[key]; ok {
		observability.TokenMetadataLookups.WithLabelValues("static").Inc()
		cp := info
		return &cp
	}

	if r.cache != nil {
		if info, ok := r.cache.Get(ctx, key); ok {
			observability.TokenMetadataLookups.WithLabelValues("cache_hit").Inc()
			return info
		}
	}

	if r.fetcher == nil {
		return nil
	}

	// Collapse concurrent lookups of the same contract into one fetch.
	v, err, _ := r.group.Do(key, func() (any, error) {
		symbol, name, decimals, err := r.fetcher.TokenMetadata(ctx, key)
		if err != nil {
			return nil, err
		}
		info := &domain.TokenInfo{Symbol: symbol, Name: name, Decimals: decimals}
		if r.cache != nil {
			r.cache.Set(ctx, key, info)
		}
		return info, nil
	})
	if err != nil {
		observability.TokenMetadataLookups.WithLabelValues("miss").Inc()
		r.log.Debug("token metadata unavailable", "address", key, "error", err)
		return nil
	}
	observability.TokenMetadataLookups.WithLabelValues("fetched").Inc()
	return v.(*domain.TokenInfo)
}
