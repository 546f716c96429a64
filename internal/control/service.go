// Package control assembles the application: transport, cache, registry,
// scoring models, explanation engine and HTTP server, with one lifecycle.
package control

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vietddude/txplain/internal/api"
	"github.com/vietddude/txplain/internal/core/config"
	"github.com/vietddude/txplain/internal/explain"
	"github.com/vietddude/txplain/internal/explain/decoder"
	"github.com/vietddude/txplain/internal/infra/cache"
	"github.com/vietddude/txplain/internal/infra/chaindata"
	"github.com/vietddude/txplain/internal/infra/rpc"
	"github.com/vietddude/txplain/internal/registry"
	"github.com/vietddude/txplain/internal/scoring"
)

// Service is the assembled application.
type Service struct {
	rpcClient  *rpc.Client
	tokenCache cache.TokenCache
	models     *scoring.Suite
	server     *api.Server
	log        *slog.Logger
}

// NewService wires all components from configuration.
func NewService(ctx context.Context, cfg *config.AppConfig, log *slog.Logger) (*Service, error) {
	// 1. JSON-RPC transport with provider failover
	var providers []rpc.Provider
	for _, p := range cfg.Chain.Providers {
		providers = append(providers, rpc.NewHTTPProvider(p.Name, p.URL, cfg.Chain.RPCTimeout))
	}
	if len(providers) == 0 {
		return nil, fmt.Errorf("no rpc providers configured")
	}
	rpcClient := rpc.NewClient(providers, log)

	chain := chaindata.NewClient(rpcClient, log)

	// 2. Token-metadata cache: shared Redis when configured, in-process
	// otherwise
	var tokenCache cache.TokenCache
	if cfg.Cache.Redis.URL != "" {
		redisCache, err := cache.NewRedisCache(cfg.Cache.Redis, log)
		if err != nil {
			return nil, fmt.Errorf("failed to init redis cache: %w", err)
		}
		tokenCache = redisCache
		log.Info("using redis token cache")
	} else {
		memCache, err := cache.NewMemCache(cfg.Cache.TTL, log)
		if err != nil {
			return nil, fmt.Errorf("failed to init memory cache: %w", err)
		}
		tokenCache = memCache
		log.Info("using in-process token cache")
	}

	reg := registry.New(chain, tokenCache, log)

	// 3. Scoring models (degrade to fallbacks when unreachable)
	models, err := scoring.NewSuite(ctx, cfg.Models, log)
	if err != nil {
		return nil, fmt.Errorf("failed to init scoring suite: %w", err)
	}

	// 4. Explanation pipeline and HTTP front
	engine := explain.NewEngine(chain, decoder.New(reg, log), models, log)
	server := api.NewServer(cfg.Server, engine, chain, reg, models, len(providers) > 0, log)

	return &Service{
		rpcClient:  rpcClient,
		tokenCache: tokenCache,
		models:     models,
		server:     server,
		log:        log,
	}, nil
}

// Start serves HTTP until the listener fails or the context is cancelled.
func (s *Service) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.server.Start()
	}()

	select {
	case <-ctx.Done():
		return nil
	case err := <-errCh:
		return err
	}
}

// Stop drains the HTTP server and releases every held connection.
func (s *Service) Stop(ctx context.Context) error {
	s.log.Info("stopping service")

	if err := s.server.Stop(ctx); err != nil {
		s.log.Warn("http shutdown failed", "error", err)
	}
	if err := s.models.Close(); err != nil {
		s.log.Warn("failed to close model connection", "error", err)
	}
	if err := s.tokenCache.Close(); err != nil {
		s.log.Warn("failed to close token cache", "error", err)
	}
	return s.rpcClient.Close()
}
