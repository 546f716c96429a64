package config

import (
	"time"

	"github.com/vietddude/txplain/internal/api"
	"github.com/vietddude/txplain/internal/infra/cache"
	"github.com/vietddude/txplain/internal/scoring"
)

// AppConfig represents the top-level configuration.
type AppConfig struct {
	Server  api.Config     `yaml:"server"`
	Chain   ChainConfig    `yaml:"chain"`
	Models  scoring.Config `yaml:"models"`
	Cache   CacheConfig    `yaml:"cache"`
	Logging LoggingConfig  `yaml:"logging"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, text
}

// ChainConfig holds the upstream chain settings.
type ChainConfig struct {
	Providers  []ProviderConfig `yaml:"providers"`
	RPCTimeout time.Duration    `yaml:"rpc_timeout"`
}

// ProviderConfig holds settings for one JSON-RPC provider. Providers are
// tried in list order.
type ProviderConfig struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// CacheConfig selects the token-metadata cache backend. When Redis.URL is
// set the shared Redis cache is used, otherwise the in-process one.
type CacheConfig struct {
	TTL   time.Duration     `yaml:"ttl"`
	Redis cache.RedisConfig `yaml:"redis"`
}
