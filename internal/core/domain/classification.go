package domain

// TxType tags the shape of a transaction for downstream rule evaluation.
type TxType string

const (
	TxTypeTokenTransfer TxType = "token_transfer"
	TxTypeDEXSwap       TxType = "dex_swap"
	TxTypeLiquidity     TxType = "liquidity"
	TxTypeNFT           TxType = "nft"
	TxTypeDEX           TxType = "dex"
	TxTypeContract      TxType = "contract"
	TxTypeETHTransfer   TxType = "eth_transfer"
)

// ValueTier buckets the transferred value magnitude.
type ValueTier string

const (
	TierSmall  ValueTier = "Small"
	TierMedium ValueTier = "Medium"
	TierHigh   ValueTier = "High Value"
)

// Classification is the rule-based verdict for a decoded transaction.
// MLCategory and AllCategories carry the statistical classifier's
// cross-check when the model is available.
type Classification struct {
	Category     string    `json:"category"`
	TxType       TxType    `json:"tx_type"`
	ValueTier    ValueTier `json:"value_tier"`
	Description  string    `json:"description"`
	ContextLabel string    `json:"context_label,omitempty"`
	Confidence   float64   `json:"confidence"`

	MLCategory    string             `json:"ml_category,omitempty"`
	AllCategories map[string]float64 `json:"all_categories,omitempty"`
}
