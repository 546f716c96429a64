package scoring

import (
	"context"
	"log/slog"

	"github.com/vietddude/txplain/internal/features"
	"github.com/vietddude/txplain/internal/observability"
)

// Categories in model output-index order.
var Categories = []string{
	"Simple Transfer",
	"Token Transfer",
	"DEX Swap",
	"NFT Transaction",
	"Staking/Yield",
	"Bridge Transfer",
	"Contract Deployment",
	"Governance Vote",
	"Lending/Borrowing",
	"Other",
}

var categoryDescriptions = map[string]string{
	"Simple Transfer":     "A basic ETH transfer between two addresses",
	"Token Transfer":      "Transfer of ERC-20 tokens between addresses",
	"DEX Swap":            "Token exchange on a decentralized exchange",
	"NFT Transaction":     "NFT purchase, sale, or transfer",
	"Staking/Yield":       "Staking tokens or yield farming activity",
	"Bridge Transfer":     "Cross-chain asset transfer via bridge",
	"Contract Deployment": "Deployment of a new smart contract",
	"Governance Vote":     "Participation in DAO governance",
	"Lending/Borrowing":   "DeFi lending or borrowing activity",
	"Other":               "Transaction type could not be classified",
}

// CategoryDescription returns the display description for a category.
func CategoryDescription(category string) string {
	if d, ok := categoryDescriptions[category]; ok {
		return d
	}
	return "Unknown transaction type"
}

// MLClassification is the statistical classifier output attached to the
// rule-based Classification as a cross-check.
type MLClassification struct {
	Category      string             `json:"category"`
	Confidence    float64            `json:"confidence"`
	AllCategories map[string]float64 `json:"all_categories"`
	Available     bool               `json:"available"`
}

// TxClassifier adapts the transaction-classification model to the
// transaction-shape vector.
type TxClassifier struct {
	model Model
	log   *slog.Logger
}

// NewTxClassifier creates a classifier adapter. model may be nil.
func NewTxClassifier(model Model, log *slog.Logger) *TxClassifier {
	return &TxClassifier{model: model, log: log}
}

// Available reports whether a model is wired.
func (c *TxClassifier) Available() bool { return c.model != nil }

// Classify runs the statistical classifier. Never returns an error; an
// unreachable model yields "Unknown" with zero confidence.
func (c *TxClassifier) Classify(ctx context.Context, tx features.TxFeatures) MLClassification {
	if c.model == nil {
		observability.ModelFallbacksTotal.WithLabelValues("classifier").Inc()
		return ClassifierFallback()
	}
	vec := tx.Vector()

	if pm, ok := c.model.(ProbabilityModel); ok {
		probs, err := pm.PredictProba(ctx, vec)
		if err == nil && len(probs) > 0 {
			best := 0
			for i, p := range probs {
				if p > probs[best] {
					best = i
				}
			}

			all := make(map[string]float64, len(probs))
			for i, p := range probs {
				all[categoryAt(i)] = round(p, 4)
			}

			return MLClassification{
				Category:      categoryAt(best),
				Confidence:    round(probs[best], 4),
				AllCategories: all,
				Available:     true,
			}
		}
		// fall through to the point estimate
	}

	idx, err := c.model.Predict(ctx, vec)
	if err != nil {
		c.log.Warn("tx classifier unavailable, using fallback", "error", err)
		observability.ModelFallbacksTotal.WithLabelValues("classifier").Inc()
		return ClassifierFallback()
	}

	category := categoryAt(int(idx))
	return MLClassification{
		Category:      category,
		Confidence:    0.8, // point-estimate models carry no calibrated confidence
		AllCategories: map[string]float64{category: 1.0},
		Available:     true,
	}
}

// ClassifierFallback is the documented default when the model is missing.
func ClassifierFallback() MLClassification {
	return MLClassification{
		Category:      "Unknown",
		Confidence:    0.0,
		AllCategories: map[string]float64{},
		Available:     false,
	}
}

func categoryAt(i int) string {
	if i >= 0 && i < len(Categories) {
		return Categories[i]
	}
	return "Other"
}
