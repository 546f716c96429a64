package api

import (
	"encoding/json"
	"math"
	"net/http"

	"github.com/vietddude/txplain/internal/features"
	"github.com/vietddude/txplain/internal/scoring"
)

// The standalone prediction endpoints accept caller-supplied feature values
// and require a live model: unlike the explanation pipeline they return 503
// instead of a fallback verdict.

func (s *Server) handlePredictFraud(w http.ResponseWriter, r *http.Request) {
	var req features.WalletFeatures
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !s.models.Fraud.Available() {
		writeError(w, http.StatusServiceUnavailable, "Fraud model not loaded")
		return
	}

	fa := s.models.Fraud.Score(r.Context(), req)
	if !fa.Available {
		writeError(w, http.StatusServiceUnavailable, "Fraud model not loaded")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"risk_score":     fa.RiskScore,
		"risk_level":     fa.RiskLevel,
		"confidence":     fa.Confidence,
		"risk_factors":   fa.RiskFactors,
		"recommendation": scoring.Recommendation(fa.RiskLevel),
	})
}

type gasPredictionRequest struct {
	ValueETH          float64  `json:"value_eth"`
	GasLimit          uint64   `json:"gas_limit"`
	IsContractCall    bool     `json:"is_contract_call"`
	InputDataSize     uint64   `json:"input_data_size"`
	NetworkCongestion *float64 `json:"network_congestion"`
	TimeOfDay         *int     `json:"time_of_day"`
	DayOfWeek         int      `json:"day_of_week"`
}

func (s *Server) handlePredictGas(w http.ResponseWriter, r *http.Request) {
	var req gasPredictionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !s.models.Gas.Available() {
		writeError(w, http.StatusServiceUnavailable, "Gas model not loaded")
		return
	}

	congestion := 0.5
	if req.NetworkCongestion != nil {
		congestion = *req.NetworkCongestion
	}
	timeOfDay := 12
	if req.TimeOfDay != nil {
		timeOfDay = *req.TimeOfDay
	}

	predicted, available := s.models.Gas.Predict(r.Context(), features.GasFeatures{
		ValueETH:          req.ValueETH,
		GasLimit:          float64(req.GasLimit),
		IsContractCall:    boolToFloat(req.IsContractCall),
		InputDataSize:     float64(req.InputDataSize),
		NetworkCongestion: congestion,
		TimeOfDay:         float64(timeOfDay),
		DayOfWeek:         float64(req.DayOfWeek),
	})
	if !available {
		writeError(w, http.StatusServiceUnavailable, "Gas model not loaded")
		return
	}

	// Simple transfers burn intrinsic gas plus calldata cost; contract calls
	// are assumed to use their full limit.
	gasToUse := req.GasLimit
	if !req.IsContractCall {
		if est := 21000 + req.InputDataSize*16; est < gasToUse {
			gasToUse = est
		}
	}
	feeETH := predicted * float64(gasToUse) / 1e9

	var networkStatus, savings string
	switch {
	case congestion < 0.3:
		networkStatus = "Low congestion - Good time to transact"
		savings = "Wait for even lower gas during off-peak hours (UTC 2-6 AM)"
	case congestion < 0.6:
		networkStatus = "Moderate congestion - Normal fees expected"
		savings = "Consider waiting 1-2 hours for potential savings"
	default:
		networkStatus = "High congestion - Elevated fees"
		savings = "Postpone non-urgent transactions if possible"
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"predicted_gas_price_gwei": round2(predicted),
		"predicted_total_fee_eth":  math.Round(feeETH*1e6) / 1e6,
		"confidence_interval": map[string]float64{
			"low":  round2(predicted * 0.85),
			"high": round2(predicted * 1.15),
		},
		"network_status":    networkStatus,
		"savings_potential": savings,
	})
}

type txClassificationRequest struct {
	ValueETH        float64 `json:"value_eth"`
	GasUsed         uint64  `json:"gas_used"`
	InputDataLength uint64  `json:"input_data_length"`
	ToAddressType   string  `json:"to_address_type"`
	FromAddressType string  `json:"from_address_type"`
	MethodID        string  `json:"method_id"`
}

func (s *Server) handlePredictTxType(w http.ResponseWriter, r *http.Request) {
	var req txClassificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !s.models.Classifier.Available() {
		writeError(w, http.StatusServiceUnavailable, "Transaction classifier not loaded")
		return
	}

	ml := s.models.Classifier.Classify(r.Context(), features.TxFeatures{
		ValueETH:        req.ValueETH,
		GasUsed:         float64(req.GasUsed),
		InputDataLength: float64(req.InputDataLength),
		ToAddressType:   features.AddressTypeCode(req.ToAddressType),
		FromAddressType: features.AddressTypeCode(req.FromAddressType),
	})
	if !ml.Available {
		writeError(w, http.StatusServiceUnavailable, "Transaction classifier not loaded")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"category":       ml.Category,
		"subcategory":    nil,
		"confidence":     ml.Confidence,
		"all_categories": ml.AllCategories,
		"description":    scoring.CategoryDescription(ml.Category),
	})
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
