// Package gasmeter calibrates actual gas spend against the predicted price
// and buckets the difference into efficiency tiers.
package gasmeter

import (
	"math"

	"github.com/vietddude/txplain/internal/core/domain"
)

// calibratedConfidence is reported when a live prediction backed the
// analysis; fallback predictions report half confidence.
const (
	calibratedConfidence = 0.85
	fallbackConfidence   = 0.5
)

// Calibrate compares the actual gas price against the predicted one and
// returns the tiered analysis. predictedAvailable marks whether the
// prediction came from a live model or the fallback constant.
func Calibrate(tx *domain.DecodedTransaction, predictedGwei float64, predictedAvailable bool) *domain.GasAnalysis {
	actual := tx.GasPriceGwei

	diffPercent := 0.0
	if predictedGwei > 0 {
		diffPercent = (actual - predictedGwei) / predictedGwei * 100
	}

	// Ordered, mutually exclusive tiers over the signed difference.
	var (
		efficiency  domain.GasEfficiency
		explanation string
		status      string
	)
	switch {
	case math.Abs(diffPercent) <= 20:
		efficiency = domain.GasNormal
		explanation = "Gas fees were within normal range for network conditions."
		status = "optimal"
	case diffPercent > 80:
		efficiency = domain.GasCongested
		explanation = "Gas fees were significantly higher than predicted, indicating temporary network congestion or priority execution."
		status = "high"
	case diffPercent > 20:
		efficiency = domain.GasAboveAverage
		explanation = "Gas fees were higher than average, likely due to moderate network activity."
		status = "elevated"
	default:
		efficiency = domain.GasExcellent
		explanation = "Gas fees were lower than predicted - excellent timing!"
		status = "low"
	}

	confidence := calibratedConfidence
	if !predictedAvailable {
		confidence = fallbackConfidence
	}

	return &domain.GasAnalysis{
		PredictedGasGwei:  round(predictedGwei, 2),
		ActualGasGwei:     round(actual, 2),
		DifferencePercent: round(diffPercent, 1),
		Efficiency:        efficiency,
		Explanation:       explanation,
		Status:            status,
		FeeETH:            round(tx.FeeETH, 6),
		FeeUSD:            round(tx.FeeETH*domain.EthPriceUSD, 2),
		GasUsed:           tx.GasUsed,
		Confidence:        confidence,
		Available:         predictedAvailable,
	}
}

func round(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}
