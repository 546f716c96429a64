package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/allegro/bigcache"

	"github.com/vietddude/txplain/internal/core/domain"
)

// MemCache is the default in-process token-metadata cache.
type MemCache struct {
	cache *bigcache.BigCache
	log   *slog.Logger
}

// NewMemCache creates an in-process cache. Entries live for the configured
// TTL; token metadata is effectively immutable so a long TTL is fine.
func NewMemCache(ttl time.Duration, log *slog.Logger) (*MemCache, error) {
	c, err := bigcache.NewBigCache(bigcache.Config{
		Shards:             256,
		LifeWindow:         ttl,
		CleanWindow:        5 * time.Minute,
		MaxEntriesInWindow: 10_000,
		MaxEntrySize:       512,
		Verbose:            false,
		HardMaxCacheSize:   64,
	})
	if err != nil {
		return nil, err
	}
	return &MemCache{cache: c, log: log}, nil
}

func (c *MemCache) Get(_ context.Context, address string) (*domain.TokenInfo, bool) {
	data, err := c.cache.Get(strings.ToLower(address))
	if err != nil {
		return nil, false // miss
	}

	var info domain.TokenInfo
	if err := json.Unmarshal(data, &info); err != nil {
		c.log.Warn("corrupt cache entry dropped", "address", address, "error", err)
		return nil, false
	}
	return &info, true
}

func (c *MemCache) Set(_ context.Context, address string, info *domain.TokenInfo) {
	data, err := json.Marshal(info)
	if err != nil {
		return
	}
	if err := c.cache.Set(strings.ToLower(address), data); err != nil {
		c.log.Warn("cache set failed", "address", address, "error", err)
	}
}

func (c *MemCache) Close() error {
	return c.cache.Close()
}
