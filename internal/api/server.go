// Package api exposes the explanation pipeline over HTTP.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vietddude/txplain/internal/explain"
	"github.com/vietddude/txplain/internal/infra/chaindata"
	"github.com/vietddude/txplain/internal/registry"
	"github.com/vietddude/txplain/internal/scoring"
)

const serviceVersion = "1.0.0"

// Config holds HTTP server settings.
type Config struct {
	Port        int      `yaml:"port"`
	CORSOrigins []string `yaml:"cors_origins"`
}

// Server is the HTTP front of the service.
type Server struct {
	engine  *explain.Engine
	chain   *chaindata.Client
	reg     *registry.Registry
	models  *scoring.Suite
	rpcUp   bool
	log     *slog.Logger
	httpSrv *http.Server
}

// NewServer builds the server and its route table.
func NewServer(cfg Config, engine *explain.Engine, chain *chaindata.Client, reg *registry.Registry, models *scoring.Suite, rpcConfigured bool, log *slog.Logger) *Server {
	s := &Server{
		engine: engine,
		chain:  chain,
		reg:    reg,
		models: models,
		rpcUp:  rpcConfigured,
		log:    log,
	}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /", s.handleRoot)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("POST /api/explain", s.handleExplain)
	mux.HandleFunc("GET /api/explain/{hash}/summary", s.handleQuickSummary)

	mux.HandleFunc("POST /api/decode_tx", s.handleDecodeTx)
	mux.HandleFunc("GET /api/tx/{hash}/features", s.handleTxFeatures)
	mux.HandleFunc("GET /api/address/{address}/stats", s.handleAddressStats)

	mux.HandleFunc("POST /api/predict/fraud", s.handlePredictFraud)
	mux.HandleFunc("POST /api/predict/gas", s.handlePredictGas)
	mux.HandleFunc("POST /api/predict/tx_type", s.handlePredictTxType)

	handler := requestID(log)(cors(cfg.CORSOrigins)(metrics(mux)))

	s.httpSrv = &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: handler,
	}
	return s
}

// Start serves until the listener fails or Stop is called.
func (s *Server) Start() error {
	s.log.Info("http server listening", "addr", s.httpSrv.Addr)
	if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Stop drains in-flight requests and shuts the listener down.
func (s *Server) Stop(ctx context.Context) error {
	return s.httpSrv.Shutdown(ctx)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError mirrors the {"detail": ...} error envelope.
func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}
