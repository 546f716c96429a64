package domain

// ContractCreation is the sentinel to-address used when a transaction
// deploys a contract and therefore has no recipient.
const ContractCreation = "Contract Creation"

// EthPriceUSD is the fixed USD/ETH conversion used for display figures.
// Display only, never used for on-chain math.
const EthPriceUSD = 2500.0

type TxStatus string

const (
	TxStatusSuccess TxStatus = "Success"
	TxStatusFailed  TxStatus = "Failed"
)

// TokenInfo describes ERC-20 token metadata.
type TokenInfo struct {
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Decimals uint8  `json:"decimals"`
}

// AddressType is the semantic role of a known address.
type AddressType string

const (
	AddressExchange AddressType = "exchange"
	AddressDEX      AddressType = "dex"
	AddressNFT      AddressType = "nft"
	AddressUnknown  AddressType = "unknown"
)

// AddressInfo annotates a known contract or wallet address.
type AddressInfo struct {
	Name string      `json:"name"`
	Type AddressType `json:"type"`
}

// DecodedTransaction is the canonical decoded record built once per request.
// ValueETH and FeeETH are derived from the wei fields at construction time
// and never mutated afterwards. TokenAmount and TokenRecipient are only set
// for the two-argument transfer layout; approve and transferFrom carry Token
// without an amount.
type DecodedTransaction struct {
	Hash        string   `json:"hash"`
	BlockNumber uint64   `json:"block_number"`
	Nonce       uint64   `json:"nonce"`
	Status      TxStatus `json:"status"`

	From     string       `json:"from_address"`
	To       string       `json:"to_address"`
	FromInfo *AddressInfo `json:"from_address_info,omitempty"`
	ToInfo   *AddressInfo `json:"to_address_info,omitempty"`

	// ValueWei holds the exact integer as a decimal string, ValueETH is a
	// floating approximation for display only.
	ValueWei string  `json:"value_wei"`
	ValueETH float64 `json:"value_eth"`

	GasLimit     uint64  `json:"gas_limit"`
	GasUsed      uint64  `json:"gas_used"`
	GasPriceGwei float64 `json:"gas_price_gwei"`
	FeeETH       float64 `json:"transaction_fee_eth"`

	InputData           string `json:"input_data"`
	ContractInteraction bool   `json:"contract_interaction"`
	MethodID            string `json:"method_id,omitempty"`
	MethodName          string `json:"method_name,omitempty"`

	IsTokenTransfer bool       `json:"is_token_transfer"`
	Token           *TokenInfo `json:"token_info,omitempty"`
	TokenAmount     *float64   `json:"token_amount,omitempty"`
	TokenRecipient  string     `json:"token_recipient,omitempty"`
}
