package api

import (
	"encoding/json"
	"errors"
	"math/big"
	"net/http"

	"github.com/vietddude/txplain/internal/explain"
	"github.com/vietddude/txplain/internal/explain/classify"
	"github.com/vietddude/txplain/internal/explain/compose"
	"github.com/vietddude/txplain/internal/features"
	"github.com/vietddude/txplain/internal/observability"
)

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "Blockchain Transaction Explainer",
		"version": serviceVersion,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":         "healthy",
		"models":         s.models.Status(),
		"rpc_configured": s.rpcUp,
	})
}

type explainRequest struct {
	TxHash                string `json:"tx_hash"`
	IncludeVisualizations *bool  `json:"include_visualizations"`
	Language              string `json:"language"`
}

func (s *Server) handleExplain(w http.ResponseWriter, r *http.Request) {
	var req explainRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	exp, err := s.engine.Explain(r.Context(), req.TxHash)
	if err != nil {
		writeExplainError(w, err)
		return
	}

	// Visualizations are included unless explicitly disabled.
	if req.IncludeVisualizations != nil && !*req.IncludeVisualizations {
		exp.Visualizations = nil
	}

	observability.ExplanationsTotal.WithLabelValues(exp.Classification.Category).Inc()
	writeJSON(w, http.StatusOK, exp)
}

func (s *Server) handleQuickSummary(w http.ResponseWriter, r *http.Request) {
	hash := r.PathValue("hash")

	tx, err := s.engine.Decode(r.Context(), hash)
	if err != nil {
		writeExplainError(w, err)
		return
	}

	c := classify.Classify(tx)

	writeJSON(w, http.StatusOK, map[string]any{
		"tx_hash":        hash,
		"summary":        compose.QuickSummary(tx),
		"classification": c.Category,
		"value_tier":     c.ValueTier,
	})
}

type hashRequest struct {
	TxHash string `json:"tx_hash"`
}

func (s *Server) handleDecodeTx(w http.ResponseWriter, r *http.Request) {
	var req hashRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tx, err := s.engine.Decode(r.Context(), req.TxHash)
	if err != nil {
		writeExplainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tx)
}

func (s *Server) handleTxFeatures(w http.ResponseWriter, r *http.Request) {
	hash := r.PathValue("hash")

	tx, err := s.engine.Decode(r.Context(), hash)
	if err != nil {
		writeExplainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"tx_hash":  hash,
		"features": features.Extract(tx),
	})
}

// handleAddressStats reports live balance and nonce for an address. Chain
// errors degrade to zeros, matching the lookup's advisory role.
func (s *Server) handleAddressStats(w http.ResponseWriter, r *http.Request) {
	address := r.PathValue("address")

	stats := map[string]any{
		"address":           address,
		"balance_eth":       0.0,
		"transaction_count": uint64(0),
	}

	if balance, err := s.chain.Balance(r.Context(), address); err == nil {
		stats["balance_eth"] = weiToETH(balance)
	}
	if count, err := s.chain.TransactionCount(r.Context(), address); err == nil {
		stats["transaction_count"] = count
	}
	if info := s.reg.KnownAddress(address); info != nil {
		stats["known_info"] = info
	}

	writeJSON(w, http.StatusOK, stats)
}

func writeExplainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, explain.ErrInvalidHash):
		writeError(w, http.StatusBadRequest, explain.ErrInvalidHash.Error())
	case errors.Is(err, explain.ErrTxNotFound):
		writeError(w, http.StatusNotFound, explain.ErrTxNotFound.Error())
	default:
		writeError(w, http.StatusBadGateway, "upstream chain data unavailable")
	}
}

func weiToETH(wei *big.Int) float64 {
	if wei == nil {
		return 0
	}
	f, _ := new(big.Float).Quo(
		new(big.Float).SetInt(wei),
		big.NewFloat(1e18),
	).Float64()
	return f
}
