// Package scoring adapts the pretrained statistical models (fraud risk, gas
// prediction, transaction classification) behind fixed feature-vector
// contracts. An unavailable model degrades to its documented fallback value;
// scoring never fails a request.
package scoring

import (
	"context"
	"errors"
)

// Model is a black-box scoring function over a fixed feature vector.
type Model interface {
	Predict(ctx context.Context, features []float64) (float64, error)
}

// ProbabilityModel additionally exposes per-class probabilities. Adapters
// prefer this capability when present.
type ProbabilityModel interface {
	Model
	PredictProba(ctx context.Context, features []float64) ([]float64, error)
}

// ErrNoProbabilities is returned by PredictProba when the serving model only
// produces point estimates.
var ErrNoProbabilities = errors.New("model does not expose probabilities")

// ErrModelUnavailable marks a model that is not configured or not reachable.
var ErrModelUnavailable = errors.New("model unavailable")

// scoreWithCapability scores a vector, preferring class probabilities (the
// positive-class probability becomes the score) and falling back to the
// point estimate when the model only supports that.
func scoreWithCapability(ctx context.Context, m Model, vec []float64) (float64, error) {
	if m == nil {
		return 0, ErrModelUnavailable
	}

	if pm, ok := m.(ProbabilityModel); ok {
		probs, err := pm.PredictProba(ctx, vec)
		switch {
		case err == nil && len(probs) > 1:
			return probs[1], nil
		case err == nil && len(probs) == 1:
			return probs[0], nil
		case err != nil && !errors.Is(err, ErrNoProbabilities):
			return 0, err
		}
	}

	return m.Predict(ctx, vec)
}
