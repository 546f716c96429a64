package features

import (
	"testing"

	"github.com/vietddude/txplain/internal/core/domain"
)

func TestVectorLengthsAreFixed(t *testing.T) {
	// Vector lengths are part of the model contract.
	if got := len(WalletFeatures{}.Vector()); got != 11 {
		t.Errorf("wallet vector length = %d, want 11", got)
	}
	if got := len(GasFeatures{}.Vector()); got != 7 {
		t.Errorf("gas vector length = %d, want 7", got)
	}
	if got := len(TxFeatures{}.Vector()); got != 5 {
		t.Errorf("tx vector length = %d, want 5", got)
	}
}

func TestExtract_SeedsFromTransaction(t *testing.T) {
	tx := &domain.DecodedTransaction{
		ValueETH:            2.0,
		GasLimit:            100000,
		GasUsed:             80000,
		InputData:           "0xa9059cbb" + "00",
		ContractInteraction: true,
	}

	set := Extract(tx)

	if set.Wallet.TotalValueSent != 2.0 {
		t.Errorf("total_value_sent = %v, want 2.0", set.Wallet.TotalValueSent)
	}
	if set.Wallet.MaxTransactionValue != 4.0 {
		t.Errorf("max_transaction_value = %v, want 4.0", set.Wallet.MaxTransactionValue)
	}
	if set.Gas.GasLimit != 100000 {
		t.Errorf("gas_limit = %v, want 100000", set.Gas.GasLimit)
	}
	if set.Gas.IsContractCall != 1 {
		t.Errorf("is_contract_call = %v, want 1", set.Gas.IsContractCall)
	}
	if set.Tx.GasUsed != 80000 {
		t.Errorf("gas_used = %v, want 80000", set.Tx.GasUsed)
	}
	if set.Tx.ToAddressType != 1 {
		t.Errorf("to_address_type = %v, want contract code 1", set.Tx.ToAddressType)
	}
}

func TestExtract_PlainTransferTargetsEOA(t *testing.T) {
	set := Extract(&domain.DecodedTransaction{ValueETH: 0.5})
	if set.Gas.IsContractCall != 0 {
		t.Errorf("is_contract_call = %v, want 0", set.Gas.IsContractCall)
	}
	if set.Tx.ToAddressType != 0 {
		t.Errorf("to_address_type = %v, want eoa code 0", set.Tx.ToAddressType)
	}
}

func TestAddressTypeCode(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"eoa", 0},
		{"contract", 1},
		{"exchange", 2},
		{"defi", 3},
		{"anything else", 0},
	}

	for _, tt := range tests {
		if got := AddressTypeCode(tt.in); got != tt.want {
			t.Errorf("AddressTypeCode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestIdentifyRiskFactors(t *testing.T) {
	tests := []struct {
		name string
		w    WalletFeatures
		want []string
	}{
		{
			"quiet wallet",
			WalletFeatures{TransactionCount: 50, TimeBetweenTxsAvg: 3600},
			[]string{"No significant risk factors identified"},
		},
		{
			"new wallet",
			WalletFeatures{TransactionCount: 2, TimeBetweenTxsAvg: 3600},
			[]string{"New wallet with limited history"},
		},
		{
			"all rules fire",
			WalletFeatures{
				TransactionCount:       2,
				FailedTransactionRatio: 0.5,
				MaxTransactionValue:    500,
				TimeBetweenTxsAvg:      10,
			},
			[]string{
				"High failed transaction ratio",
				"New wallet with limited history",
				"Large value transactions detected",
				"Rapid transaction frequency",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IdentifyRiskFactors(tt.w)
			if len(got) != len(tt.want) {
				t.Fatalf("factors = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("factor[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}
