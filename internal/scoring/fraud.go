package scoring

import (
	"context"
	"log/slog"
	"math"

	"github.com/vietddude/txplain/internal/core/domain"
	"github.com/vietddude/txplain/internal/features"
	"github.com/vietddude/txplain/internal/observability"
)

// Fraud fallback applied when the model is unavailable.
const (
	fallbackRiskScore      = 0.15
	fallbackRiskConfidence = 0.5
)

// FraudScorer adapts the fraud model to the wallet-behavior vector.
type FraudScorer struct {
	model Model
	log   *slog.Logger
}

// NewFraudScorer creates a fraud adapter. model may be nil.
func NewFraudScorer(model Model, log *slog.Logger) *FraudScorer {
	return &FraudScorer{model: model, log: log}
}

// Available reports whether a model is wired.
func (s *FraudScorer) Available() bool { return s.model != nil }

// Score runs fraud analysis over the wallet features. Never returns an
// error; an unreachable model yields the documented fallback with
// Available=false.
func (s *FraudScorer) Score(ctx context.Context, wallet features.WalletFeatures) *domain.FraudAnalysis {
	score, err := scoreWithCapability(ctx, s.model, wallet.Vector())
	if err != nil {
		if s.model != nil {
			s.log.Warn("fraud model unavailable, using fallback", "error", err)
		}
		observability.ModelFallbacksTotal.WithLabelValues("fraud").Inc()
		return FraudFallback()
	}

	return &domain.FraudAnalysis{
		RiskScore:   round(score, 4),
		RiskLevel:   domain.RiskLevelForScore(score),
		Confidence:  round(1-math.Abs(0.5-score)*0.5, 2),
		RiskFactors: features.IdentifyRiskFactors(wallet),
		Available:   true,
	}
}

// FraudFallback is the documented default assessment: low risk, half
// confidence, flagged unavailable.
func FraudFallback() *domain.FraudAnalysis {
	return &domain.FraudAnalysis{
		RiskScore:   fallbackRiskScore,
		RiskLevel:   domain.RiskLow,
		Confidence:  fallbackRiskConfidence,
		RiskFactors: []string{"Unable to analyze - using default assessment"},
		Available:   false,
	}
}

// Recommendation returns the action sentence for a risk level, used by the
// standalone prediction endpoint.
func Recommendation(level domain.RiskLevel) string {
	switch level {
	case domain.RiskLow:
		return "Transaction appears safe. Normal activity patterns detected."
	case domain.RiskMedium:
		return "Exercise caution. Some unusual patterns detected in wallet behavior."
	case domain.RiskHigh:
		return "High risk detected. Recommend further investigation before proceeding."
	default:
		return "Critical risk level. Strong indicators of fraudulent activity."
	}
}

func round(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}
