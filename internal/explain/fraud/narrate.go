// Package fraud renders the risk verdict as a one-line statement. A
// statement is always produced, including for safe transactions.
package fraud

import "github.com/vietddude/txplain/internal/core/domain"

// Narrate returns the risk sentence for a fraud analysis. The discrete
// level is authoritative; the raw score only decides when the level does
// not match its bucket.
func Narrate(fa *domain.FraudAnalysis) string {
	if fa == nil {
		return "No suspicious wallet behavior detected."
	}

	switch {
	case fa.RiskLevel == domain.RiskLow || fa.RiskScore < 0.3:
		return "No suspicious wallet behavior detected."
	case fa.RiskLevel == domain.RiskMedium || fa.RiskScore < 0.6:
		return "Transaction shows mild anomaly patterns. Exercise normal caution."
	case fa.RiskLevel == domain.RiskHigh || fa.RiskScore < 0.8:
		return "Wallet behavior shows concerning patterns. Verify recipient before proceeding."
	default:
		return "⚠️ Wallet behavior matches known phishing or scam activity patterns."
	}
}
