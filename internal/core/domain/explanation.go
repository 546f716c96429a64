package domain

import "time"

// Section is one UI block of the rendered explanation.
type Section struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	Importance string `json:"importance"` // high, medium, low
	Icon       string `json:"icon"`
}

// GasChart feeds the predicted-vs-actual gas bar chart.
type GasChart struct {
	Predicted float64 `json:"predicted"`
	Actual    float64 `json:"actual"`
	Average   float64 `json:"average"`
	FeeUSD    float64 `json:"fee_usd"`
}

// FraudGauge feeds the risk dial.
type FraudGauge struct {
	Score       float64   `json:"score"`
	Level       RiskLevel `json:"level"`
	MaxScore    float64   `json:"max_score"`
	Explanation string    `json:"explanation"`
}

// ValueScale feeds the value/fee comparison widget.
type ValueScale struct {
	ValueETH    float64  `json:"value_eth"`
	ValueUSD    float64  `json:"value_usd"`
	FeeETH      float64  `json:"fee_eth"`
	FeeUSD      float64  `json:"fee_usd"`
	TokenAmount *float64 `json:"token_amount,omitempty"`
	TokenSymbol string   `json:"token_symbol,omitempty"`
}

// FlowDiagram feeds the from/to flow rendering.
type FlowDiagram struct {
	From       string  `json:"from"`
	To         string  `json:"to"`
	ToName     string  `json:"to_name,omitempty"`
	Value      float64 `json:"value"`
	IsContract bool    `json:"is_contract"`
	IsToken    bool    `json:"is_token"`
}

// Visualizations bundles the four chart-data blocks. Every field is a pure
// projection of already-computed values.
type Visualizations struct {
	GasChart    GasChart    `json:"gas_chart"`
	FraudGauge  FraudGauge  `json:"fraud_gauge"`
	ValueScale  ValueScale  `json:"value_scale"`
	FlowDiagram FlowDiagram `json:"flow_diagram"`
}

// Explanation is the final artifact returned for a transaction hash.
type Explanation struct {
	TxHash  string `json:"tx_hash"`
	Summary string `json:"summary"`

	Sections       []Section           `json:"sections"`
	Transaction    *DecodedTransaction `json:"transaction"`
	Fraud          *FraudAnalysis      `json:"fraud_analysis"`
	Gas            *GasAnalysis        `json:"gas_analysis"`
	Classification *Classification     `json:"classification"`
	Visualizations *Visualizations     `json:"visualizations,omitempty"`

	NaturalExplanation string   `json:"natural_explanation"`
	ContextInsight     string   `json:"context_insight"`
	Recommendations    []string `json:"recommendations"`

	GeneratedAt     time.Time `json:"generated_at"`
	ConfidenceScore float64   `json:"confidence_score"`
}
