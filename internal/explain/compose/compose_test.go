package compose

import (
	"strings"
	"testing"

	"github.com/vietddude/txplain/internal/core/domain"
)

func ptr(v float64) *float64 { return &v }

func TestSummary(t *testing.T) {
	tests := []struct {
		name string
		tx   *domain.DecodedTransaction
		c    *domain.Classification
		want string
	}{
		{
			"token transfer",
			&domain.DecodedTransaction{
				Status:      domain.TxStatusSuccess,
				Token:       &domain.TokenInfo{Symbol: "USDC"},
				TokenAmount: ptr(250),
			},
			&domain.Classification{Category: "USDC Transfer"},
			"Success: 250.00 USDC transferred",
		},
		{
			"large token amount gets grouping",
			&domain.DecodedTransaction{
				Status:      domain.TxStatusSuccess,
				Token:       &domain.TokenInfo{Symbol: "SHIB"},
				TokenAmount: ptr(1234567.891),
			},
			&domain.Classification{Category: "SHIB Transfer"},
			"Success: 1,234,567.89 SHIB transferred",
		},
		{
			"eth transfer",
			&domain.DecodedTransaction{Status: domain.TxStatusSuccess, ValueETH: 0.5},
			&domain.Classification{Category: "Small Native ETH Transfer"},
			"Success: 0.5000 ETH - Small Native ETH Transfer",
		},
		{
			"failed zero-value call",
			&domain.DecodedTransaction{Status: domain.TxStatusFailed},
			&domain.Classification{Category: "Contract Interaction"},
			"Failed: Contract Interaction",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Summary(tt.tx, tt.c); got != tt.want {
				t.Errorf("Summary() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestQuickSummary(t *testing.T) {
	tests := []struct {
		name string
		tx   *domain.DecodedTransaction
		want string
	}{
		{
			"token",
			&domain.DecodedTransaction{
				Status:      domain.TxStatusSuccess,
				Token:       &domain.TokenInfo{Symbol: "DAI"},
				TokenAmount: ptr(1000),
			},
			"Success: Transferred 1,000.00 DAI",
		},
		{
			"contract call",
			&domain.DecodedTransaction{
				Status:              domain.TxStatusSuccess,
				ContractInteraction: true,
				MethodName:          "approve",
				ValueETH:            0,
			},
			"Success: Contract call (approve) with 0.0000 ETH",
		},
		{
			"unnamed contract call",
			&domain.DecodedTransaction{
				Status:              domain.TxStatusFailed,
				ContractInteraction: true,
			},
			"Failed: Contract call (Unknown) with 0.0000 ETH",
		},
		{
			"plain transfer",
			&domain.DecodedTransaction{Status: domain.TxStatusSuccess, ValueETH: 1.5},
			"Success: Transferred 1.5000 ETH",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := QuickSummary(tt.tx); got != tt.want {
				t.Errorf("QuickSummary() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFullText_FiveParagraphs(t *testing.T) {
	tx := &domain.DecodedTransaction{
		Status:   domain.TxStatusSuccess,
		From:     "0x742d35cc6634c0532925a3b844bc454e4438f44e",
		To:       "0x28c6c06298d514db089934071355e5743bf21d60",
		ValueETH: 0.5,
	}
	fa := &domain.FraudAnalysis{RiskLevel: domain.RiskLow, RiskScore: 0.1}
	ga := &domain.GasAnalysis{
		Explanation: "Gas fees were within normal range for network conditions.",
		FeeUSD:      1.58,
	}
	c := &domain.Classification{Category: "Small Native ETH Transfer", TxType: domain.TxTypeETHTransfer}

	text := FullText(tx, fa, ga, c)
	paragraphs := strings.Split(text, "\n\n")
	if len(paragraphs) != 5 {
		t.Fatalf("got %d paragraphs, want 5:\n%s", len(paragraphs), text)
	}

	if want := "You transferred 0.5000 ETH from 0x742d...f44e to 0x28c6...1d60."; paragraphs[0] != want {
		t.Errorf("opening = %q, want %q", paragraphs[0], want)
	}
	if want := "This is classified as a Small Native ETH Transfer."; paragraphs[1] != want {
		t.Errorf("classification = %q, want %q", paragraphs[1], want)
	}
	if want := "Gas fees were within normal range for network conditions. (Fee: $1.58 USD)"; paragraphs[2] != want {
		t.Errorf("gas = %q, want %q", paragraphs[2], want)
	}
	if want := "No suspicious wallet behavior detected."; paragraphs[3] != want {
		t.Errorf("risk = %q, want %q", paragraphs[3], want)
	}
	if want := "This is a standard ETH transfer between addresses."; paragraphs[4] != want {
		t.Errorf("insight = %q, want %q", paragraphs[4], want)
	}
}

func TestFullText_KnownDestinationUsesName(t *testing.T) {
	tx := &domain.DecodedTransaction{
		Status:   domain.TxStatusSuccess,
		From:     "0x742d35cc6634c0532925a3b844bc454e4438f44e",
		To:       "0x28c6c06298d514db089934071355e5743bf21d60",
		ToInfo:   &domain.AddressInfo{Name: "Binance", Type: domain.AddressExchange},
		ValueETH: 2,
	}
	fa := &domain.FraudAnalysis{RiskLevel: domain.RiskLow}
	ga := &domain.GasAnalysis{Explanation: "x", FeeUSD: 1}
	c := &domain.Classification{Category: "Medium Native ETH Transfer", TxType: domain.TxTypeETHTransfer}

	text := FullText(tx, fa, ga, c)
	if !strings.Contains(text, "to Binance.") {
		t.Errorf("expected destination name in opening, got:\n%s", text)
	}
}

func TestSections(t *testing.T) {
	tx := &domain.DecodedTransaction{ValueETH: 0.5}
	fa := &domain.FraudAnalysis{RiskLevel: domain.RiskLow}
	ga := &domain.GasAnalysis{FeeUSD: 1.58, Efficiency: domain.GasNormal}
	c := &domain.Classification{Category: "Small Native ETH Transfer"}

	sections := Sections(tx, fa, ga, c)
	if len(sections) != 4 {
		t.Fatalf("got %d sections, want 4", len(sections))
	}

	if sections[0].Content != "0.5000 ETH" || sections[0].Importance != "high" {
		t.Errorf("overview section = %+v", sections[0])
	}
	if sections[2].Content != "$1.58 (NORMAL)" {
		t.Errorf("gas section content = %q", sections[2].Content)
	}
	if sections[3].Importance != "low" {
		t.Errorf("security importance = %q, want low", sections[3].Importance)
	}

	// High risk escalates the security section only.
	fa.RiskLevel = domain.RiskHigh
	sections = Sections(tx, fa, ga, c)
	if sections[3].Importance != "high" {
		t.Errorf("security importance = %q, want high", sections[3].Importance)
	}
}

func TestRecommendations(t *testing.T) {
	quietFraud := &domain.FraudAnalysis{RiskLevel: domain.RiskLow}
	quietGas := &domain.GasAnalysis{Efficiency: domain.GasNormal}

	recs := Recommendations(quietFraud, quietGas)
	if len(recs) != 1 || recs[0] != "Transaction completed successfully. No immediate action required." {
		t.Errorf("quiet recommendations = %v", recs)
	}

	recs = Recommendations(&domain.FraudAnalysis{RiskLevel: domain.RiskHigh}, quietGas)
	if len(recs) != 2 {
		t.Errorf("high risk recommendations = %v", recs)
	}

	recs = Recommendations(&domain.FraudAnalysis{RiskLevel: domain.RiskCritical}, &domain.GasAnalysis{Efficiency: domain.GasCongested})
	if len(recs) != 4 {
		t.Errorf("critical+congested recommendations = %v", recs)
	}
}

func TestConfidenceScore(t *testing.T) {
	fa := &domain.FraudAnalysis{Confidence: 0.5}
	ga := &domain.GasAnalysis{Confidence: 0.85}
	c := &domain.Classification{Confidence: 0.92}

	// 0.5*0.3 + 0.85*0.3 + 0.92*0.4 = 0.773
	if got := ConfidenceScore(fa, ga, c); got != 0.773 {
		t.Errorf("ConfidenceScore() = %v, want 0.773", got)
	}
}

func TestFormatAddress(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "Unknown"},
		{"Contract Creation", "Contract Creation"},
		{"0x742d35cc6634c0532925a3b844bc454e4438f44e", "0x742d...f44e"},
	}

	for _, tt := range tests {
		if got := FormatAddress(tt.in); got != tt.want {
			t.Errorf("FormatAddress(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGroupedAmount(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.00"},
		{250, "250.00"},
		{1000, "1,000.00"},
		{1234567.891, "1,234,567.89"},
	}

	for _, tt := range tests {
		if got := groupedAmount(tt.in); got != tt.want {
			t.Errorf("groupedAmount(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
