// Package features builds the fixed numeric feature vectors consumed by the
// scoring models. Vector ordering is part of the model contract and must not
// change without retraining.
package features

import "github.com/vietddude/txplain/internal/core/domain"

// WalletFeatures is the wallet-behavior vector for the fraud model.
type WalletFeatures struct {
	TransactionCount       float64 `json:"transaction_count"`
	TotalValueSent         float64 `json:"total_value_sent"`
	TotalValueReceived     float64 `json:"total_value_received"`
	UniqueAddresses        float64 `json:"unique_addresses_interacted"`
	AvgTransactionValue    float64 `json:"avg_transaction_value"`
	MaxTransactionValue    float64 `json:"max_transaction_value"`
	MinTransactionValue    float64 `json:"min_transaction_value"`
	AvgGasPrice            float64 `json:"avg_gas_price"`
	ContractCreationCount  float64 `json:"contract_creation_count"`
	FailedTransactionRatio float64 `json:"failed_transaction_ratio"`
	TimeBetweenTxsAvg      float64 `json:"time_between_txs_avg"`
}

// Vector returns the features in model input order.
func (w WalletFeatures) Vector() []float64 {
	return []float64{
		w.TransactionCount,
		w.TotalValueSent,
		w.TotalValueReceived,
		w.UniqueAddresses,
		w.AvgTransactionValue,
		w.MaxTransactionValue,
		w.MinTransactionValue,
		w.AvgGasPrice,
		w.ContractCreationCount,
		w.FailedTransactionRatio,
		w.TimeBetweenTxsAvg,
	}
}

// GasFeatures is the context vector for the gas-price model.
type GasFeatures struct {
	ValueETH          float64 `json:"value_eth"`
	GasLimit          float64 `json:"gas_limit"`
	IsContractCall    float64 `json:"is_contract_call"`
	InputDataSize     float64 `json:"input_data_size"`
	NetworkCongestion float64 `json:"network_congestion"`
	TimeOfDay         float64 `json:"time_of_day"`
	DayOfWeek         float64 `json:"day_of_week"`
}

// Vector returns the features in model input order.
func (g GasFeatures) Vector() []float64 {
	return []float64{
		g.ValueETH,
		g.GasLimit,
		g.IsContractCall,
		g.InputDataSize,
		g.NetworkCongestion,
		g.TimeOfDay,
		g.DayOfWeek,
	}
}

// TxFeatures is the transaction-shape vector for the classifier.
type TxFeatures struct {
	ValueETH        float64 `json:"value_eth"`
	GasUsed         float64 `json:"gas_used"`
	InputDataLength float64 `json:"input_data_length"`
	ToAddressType   float64 `json:"to_address_type"`
	FromAddressType float64 `json:"from_address_type"`
}

// Vector returns the features in model input order.
func (t TxFeatures) Vector() []float64 {
	return []float64{
		t.ValueETH,
		t.GasUsed,
		t.InputDataLength,
		t.ToAddressType,
		t.FromAddressType,
	}
}

// AddressTypeCode encodes the address-type categorical for the classifier.
func AddressTypeCode(t string) float64 {
	switch t {
	case "contract":
		return 1
	case "exchange":
		return 2
	case "defi":
		return 3
	default: // eoa
		return 0
	}
}

// Set bundles the three per-model vectors for one transaction.
type Set struct {
	Wallet WalletFeatures `json:"wallet_features"`
	Gas    GasFeatures    `json:"gas_features"`
	Tx     TxFeatures     `json:"tx_features"`
}

// Extract builds all feature sets from a decoded transaction.
//
// Wallet history comes from an external indexer in a full deployment; until
// one is wired, the wallet vector is seeded from the current transaction so
// the fraud-model input keeps its contracted shape.
func Extract(tx *domain.DecodedTransaction) Set {
	v := tx.ValueETH

	wallet := WalletFeatures{
		TransactionCount:       50,
		TotalValueSent:         v,
		TotalValueReceived:     v * 0.8,
		UniqueAddresses:        25,
		AvgTransactionValue:    v,
		MaxTransactionValue:    v * 2,
		MinTransactionValue:    v * 0.1,
		AvgGasPrice:            30.0,
		ContractCreationCount:  0,
		FailedTransactionRatio: 0.02,
		TimeBetweenTxsAvg:      3600,
	}

	isCall := 0.0
	if tx.ContractInteraction {
		isCall = 1.0
	}
	gas := GasFeatures{
		ValueETH:          v,
		GasLimit:          float64(tx.GasLimit),
		IsContractCall:    isCall,
		InputDataSize:     float64(len(tx.InputData) / 2),
		NetworkCongestion: 0.5,
		TimeOfDay:         12,
		DayOfWeek:         3,
	}

	toType := "eoa"
	if tx.ContractInteraction {
		toType = "contract"
	}
	txf := TxFeatures{
		ValueETH:        v,
		GasUsed:         float64(tx.GasUsed),
		InputDataLength: float64(len(tx.InputData)),
		ToAddressType:   AddressTypeCode(toType),
		FromAddressType: AddressTypeCode("eoa"),
	}

	return Set{Wallet: wallet, Gas: gas, Tx: txf}
}

// IdentifyRiskFactors lists the wallet-behavior rules triggered by the
// feature values, in rule order.
func IdentifyRiskFactors(w WalletFeatures) []string {
	var factors []string
	if w.FailedTransactionRatio > 0.1 {
		factors = append(factors, "High failed transaction ratio")
	}
	if w.TransactionCount < 5 {
		factors = append(factors, "New wallet with limited history")
	}
	if w.MaxTransactionValue > 100 {
		factors = append(factors, "Large value transactions detected")
	}
	if w.TimeBetweenTxsAvg > 0 && w.TimeBetweenTxsAvg < 60 {
		factors = append(factors, "Rapid transaction frequency")
	}
	if len(factors) == 0 {
		factors = append(factors, "No significant risk factors identified")
	}
	return factors
}
