// Package compose renders the human-facing artifacts of an explanation:
// summaries, the five-paragraph narrative, UI sections, visualization data
// and recommendations.
package compose

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/vietddude/txplain/internal/core/domain"
	"github.com/vietddude/txplain/internal/explain/fraud"
	"github.com/vietddude/txplain/internal/explain/insight"
)

// Summary renders the one-line summary. Token transfers with a decoded
// amount win over the native-value form.
func Summary(tx *domain.DecodedTransaction, c *domain.Classification) string {
	if tx.Token != nil && tx.TokenAmount != nil {
		return fmt.Sprintf("%s: %s %s transferred", tx.Status, groupedAmount(*tx.TokenAmount), tx.Token.Symbol)
	}
	if tx.ValueETH > 0 {
		return fmt.Sprintf("%s: %.4f ETH - %s", tx.Status, tx.ValueETH, c.Category)
	}
	return fmt.Sprintf("%s: %s", tx.Status, c.Category)
}

// QuickSummary is the lightweight variant served without scoring.
func QuickSummary(tx *domain.DecodedTransaction) string {
	if tx.Token != nil && tx.TokenAmount != nil {
		return fmt.Sprintf("%s: Transferred %s %s", tx.Status, groupedAmount(*tx.TokenAmount), tx.Token.Symbol)
	}
	if tx.ContractInteraction {
		method := tx.MethodName
		if method == "" {
			method = "Unknown"
		}
		return fmt.Sprintf("%s: Contract call (%s) with %.4f ETH", tx.Status, method, tx.ValueETH)
	}
	return fmt.Sprintf("%s: Transferred %.4f ETH", tx.Status, tx.ValueETH)
}

// FullText renders the five-paragraph narrative: transfer statement,
// classification, gas verdict, risk statement and context insight, separated
// by blank lines.
func FullText(tx *domain.DecodedTransaction, fa *domain.FraudAnalysis, ga *domain.GasAnalysis, c *domain.Classification) string {
	from := FormatAddress(tx.From)
	toDisplay := FormatAddress(tx.To)
	if tx.ToInfo != nil {
		toDisplay = tx.ToInfo.Name
	}

	var opening string
	switch {
	case tx.Token != nil && tx.TokenAmount != nil:
		opening = fmt.Sprintf("You transferred %s %s from %s to %s.", groupedAmount(*tx.TokenAmount), tx.Token.Symbol, from, toDisplay)
	case tx.ValueETH > 0:
		opening = fmt.Sprintf("You transferred %.4f ETH from %s to %s.", tx.ValueETH, from, toDisplay)
	default:
		opening = fmt.Sprintf("You executed a contract interaction from %s to %s.", from, toDisplay)
	}

	paragraphs := []string{
		opening,
		fmt.Sprintf("This is classified as a %s.", c.Category),
		fmt.Sprintf("%s (Fee: $%.2f USD)", ga.Explanation, ga.FeeUSD),
		fraud.Narrate(fa),
		insight.Derive(tx, c),
	}
	return strings.Join(paragraphs, "\n\n")
}

// Sections builds the four fixed UI blocks. Security importance escalates
// to high only for HIGH or CRITICAL risk.
func Sections(tx *domain.DecodedTransaction, fa *domain.FraudAnalysis, ga *domain.GasAnalysis, c *domain.Classification) []domain.Section {
	valueDisplay := fmt.Sprintf("%.4f ETH", tx.ValueETH)
	if tx.Token != nil && tx.TokenAmount != nil {
		valueDisplay = fmt.Sprintf("%s %s", groupedAmount(*tx.TokenAmount), tx.Token.Symbol)
	}

	securityImportance := "low"
	if fa.RiskLevel == domain.RiskHigh || fa.RiskLevel == domain.RiskCritical {
		securityImportance = "high"
	}

	return []domain.Section{
		{Title: "Transaction Overview", Content: valueDisplay, Importance: "high", Icon: "💰"},
		{Title: "Classification", Content: c.Category, Importance: "medium", Icon: "🏷️"},
		{Title: "Gas Analysis", Content: fmt.Sprintf("$%.2f (%s)", ga.FeeUSD, ga.Efficiency), Importance: "medium", Icon: "⛽"},
		{Title: "Security", Content: fraud.Narrate(fa), Importance: securityImportance, Icon: "🛡️"},
	}
}

// Visualizations projects already-computed values into the four chart
// blocks. No new figures are derived here except the predicted/actual mean.
func Visualizations(tx *domain.DecodedTransaction, fa *domain.FraudAnalysis, ga *domain.GasAnalysis) *domain.Visualizations {
	v := &domain.Visualizations{
		GasChart: domain.GasChart{
			Predicted: ga.PredictedGasGwei,
			Actual:    ga.ActualGasGwei,
			Average:   (ga.PredictedGasGwei + ga.ActualGasGwei) / 2,
			FeeUSD:    ga.FeeUSD,
		},
		FraudGauge: domain.FraudGauge{
			Score:       fa.RiskScore,
			Level:       fa.RiskLevel,
			MaxScore:    1.0,
			Explanation: fraud.Narrate(fa),
		},
		ValueScale: domain.ValueScale{
			ValueETH:    tx.ValueETH,
			ValueUSD:    tx.ValueETH * domain.EthPriceUSD,
			FeeETH:      tx.FeeETH,
			FeeUSD:      tx.FeeETH * domain.EthPriceUSD,
			TokenAmount: tx.TokenAmount,
		},
		FlowDiagram: domain.FlowDiagram{
			From:       tx.From,
			To:         tx.To,
			Value:      tx.ValueETH,
			IsContract: tx.ContractInteraction,
			IsToken:    tx.IsTokenTransfer,
		},
	}

	if tx.Token != nil {
		v.ValueScale.TokenSymbol = tx.Token.Symbol
	}
	if tx.ToInfo != nil {
		v.FlowDiagram.ToName = tx.ToInfo.Name
	}
	return v
}

// Recommendations derives the actionable list. Risk advice precedes gas
// advice; a quiet transaction gets the all-clear line.
func Recommendations(fa *domain.FraudAnalysis, ga *domain.GasAnalysis) []string {
	var recs []string

	switch fa.RiskLevel {
	case domain.RiskHigh:
		recs = append(recs,
			"Consider verifying the recipient address before future transactions.",
			"Check the recipient's transaction history on blockchain explorers.")
	case domain.RiskCritical:
		recs = append(recs,
			"⚠️ Do not proceed with similar transactions until verified.",
			"Report suspicious addresses to community blacklists.")
	}

	if ga.Efficiency == domain.GasCongested || ga.Efficiency == domain.GasAboveAverage {
		recs = append(recs,
			"Consider waiting for lower gas periods (UTC 2-6 AM) for non-urgent transactions.",
			"Use gas tracking tools to identify optimal transaction times.")
	}

	if len(recs) == 0 {
		recs = append(recs, "Transaction completed successfully. No immediate action required.")
	}
	return recs
}

// ConfidenceScore blends the component confidences: fraud and gas at 0.3
// each, classification at 0.4.
func ConfidenceScore(fa *domain.FraudAnalysis, ga *domain.GasAnalysis, c *domain.Classification) float64 {
	score := fa.Confidence*0.3 + ga.Confidence*0.3 + c.Confidence*0.4
	return math.Round(score*1000) / 1000
}

// FormatAddress shortens long hex addresses to first-6...last-4 for
// display. Non-address values such as the contract-creation sentinel pass
// through unchanged.
func FormatAddress(address string) string {
	if address == "" {
		return "Unknown"
	}
	if len(address) < 15 || !strings.HasPrefix(address, "0x") {
		return address
	}
	return address[:6] + "..." + address[len(address)-4:]
}

// groupedAmount formats with two decimals and comma-grouped thousands.
func groupedAmount(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}

	dot := strings.IndexByte(s, '.')
	intPart, frac := s[:dot], s[dot:]

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return sign + b.String() + frac
}
