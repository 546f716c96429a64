package domain

// RiskLevel buckets the fraud model output.
type RiskLevel string

const (
	RiskLow      RiskLevel = "LOW"
	RiskMedium   RiskLevel = "MEDIUM"
	RiskHigh     RiskLevel = "HIGH"
	RiskCritical RiskLevel = "CRITICAL"
)

// RiskLevelForScore maps a raw risk score into its discrete level.
func RiskLevelForScore(score float64) RiskLevel {
	switch {
	case score < 0.3:
		return RiskLow
	case score < 0.6:
		return RiskMedium
	case score < 0.8:
		return RiskHigh
	default:
		return RiskCritical
	}
}

// FraudAnalysis holds the fraud model verdict, or the documented fallback
// when the model is unavailable (Available=false).
type FraudAnalysis struct {
	RiskScore   float64   `json:"risk_score"`
	RiskLevel   RiskLevel `json:"risk_level"`
	Confidence  float64   `json:"confidence"`
	RiskFactors []string  `json:"risk_factors"`
	Available   bool      `json:"available"`
}
