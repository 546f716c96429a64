package domain

// GasEfficiency is the discrete tier derived from the deviation between
// predicted and actual gas price.
type GasEfficiency string

const (
	GasExcellent    GasEfficiency = "EXCELLENT"
	GasNormal       GasEfficiency = "NORMAL"
	GasAboveAverage GasEfficiency = "ABOVE_AVERAGE"
	GasCongested    GasEfficiency = "CONGESTED"
)

// GasAnalysis holds the calibrated gas verdict for a transaction.
type GasAnalysis struct {
	PredictedGasGwei  float64       `json:"predicted_gas_gwei"`
	ActualGasGwei     float64       `json:"actual_gas_gwei"`
	DifferencePercent float64       `json:"difference_percent"`
	Efficiency        GasEfficiency `json:"efficiency"`
	Explanation       string        `json:"explanation"`
	Status            string        `json:"status"`
	FeeETH            float64       `json:"fee_eth"`
	FeeUSD            float64       `json:"fee_usd"`
	GasUsed           uint64        `json:"gas_used"`
	Confidence        float64       `json:"confidence"`
	Available         bool          `json:"available"`
}
