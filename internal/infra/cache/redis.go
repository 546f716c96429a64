package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vietddude/txplain/internal/core/domain"
)

// RedisCache shares token metadata between instances through Redis.
type RedisCache struct {
	rdb *redis.Client
	ttl time.Duration
	log *slog.Logger
}

// RedisConfig holds Redis connection configuration.
type RedisConfig struct {
	URL      string        `yaml:"url"`
	Password string        `yaml:"password"`
	TTL      time.Duration `yaml:"ttl"`
}

// NewRedisCache creates a Redis-backed token-metadata cache.
func NewRedisCache(cfg RedisConfig, log *slog.Logger) (*RedisCache, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}
	if cfg.Password != "" {
		opts.Password = cfg.Password
	}

	rdb := redis.NewClient(opts)

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = time.Hour
	}

	return &RedisCache{rdb: rdb, ttl: ttl, log: log}, nil
}

func tokenKey(address string) string {
	return fmt.Sprintf("token_meta:%s", strings.ToLower(address))
}

func (c *RedisCache) Get(ctx context.Context, address string) (*domain.TokenInfo, bool) {
	val, err := c.rdb.Get(ctx, tokenKey(address)).Result()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		c.log.Warn("redis get failed", "address", address, "error", err)
		return nil, false
	}

	var info domain.TokenInfo
	if err := json.Unmarshal([]byte(val), &info); err != nil {
		return nil, false
	}
	return &info, true
}

func (c *RedisCache) Set(ctx context.Context, address string, info *domain.TokenInfo) {
	data, err := json.Marshal(info)
	if err != nil {
		return
	}
	// SetNX keeps the first write when concurrent requests race; the data is
	// identical either way.
	if err := c.rdb.SetNX(ctx, tokenKey(address), data, c.ttl).Err(); err != nil {
		c.log.Warn("redis set failed", "address", address, "error", err)
	}
}

func (c *RedisCache) Close() error {
	return c.rdb.Close()
}
