package scoring

import (
	"context"
	"log/slog"
	"math"

	"github.com/vietddude/txplain/internal/features"
	"github.com/vietddude/txplain/internal/observability"
)

// FallbackGasGwei is the documented default gas-price prediction.
const FallbackGasGwei = 25.0

// GasPredictor adapts the gas-price model to the context vector.
type GasPredictor struct {
	model Model
	log   *slog.Logger
}

// NewGasPredictor creates a gas adapter. model may be nil.
func NewGasPredictor(model Model, log *slog.Logger) *GasPredictor {
	return &GasPredictor{model: model, log: log}
}

// Available reports whether a model is wired.
func (p *GasPredictor) Available() bool { return p.model != nil }

// Predict returns the predicted gas price in gwei, clamped to at least
// 1.0. available is false when the fallback constant was substituted.
func (p *GasPredictor) Predict(ctx context.Context, gas features.GasFeatures) (gwei float64, available bool) {
	if p.model == nil {
		observability.ModelFallbacksTotal.WithLabelValues("gas").Inc()
		return FallbackGasGwei, false
	}

	v, err := p.model.Predict(ctx, gas.Vector())
	if err != nil {
		p.log.Warn("gas model unavailable, using fallback", "error", err)
		observability.ModelFallbacksTotal.WithLabelValues("gas").Inc()
		return FallbackGasGwei, false
	}

	return math.Max(v, 1.0), true
}
