package registry

// Method signatures for transaction type detection. Keys are the 4-byte
// selector as "0x"-prefixed hex.
var methodSigs = map[string]string{
	"0xa9059cbb": "transfer",
	"0x23b872dd": "transferFrom",
	"0x095ea7b3": "approve",
	"0x7ff36ab5": "swapExactETHForTokens",
	"0x38ed1739": "swapExactTokensForTokens",
	"0x2e1a7d4d": "withdraw",
	"0xd0e30db0": "deposit",
	"0x42842e0e": "safeTransferFrom",
	"0xb88d4fde": "safeTransferFrom",
	"0xa22cb465": "setApprovalForAll",
	"0xe8e33700": "addLiquidity",
	"0xf305d719": "addLiquidityETH",
}

// ERC-20 selectors that mark a transaction as a token transfer.
var erc20Methods = map[string]struct{}{
	"0xa9059cbb": {}, // transfer
	"0x23b872dd": {}, // transferFrom
	"0x095ea7b3": {}, // approve
}

// MethodTransfer is the selector whose calldata layout the decoder can
// decode into recipient and amount.
const MethodTransfer = "0xa9059cbb"

// MethodName resolves a selector to its function name. A known-length but
// unrecognized selector resolves to "Unknown"; an empty selector to "".
func MethodName(methodID string) string {
	if methodID == "" {
		return ""
	}
	if name, ok := methodSigs[methodID]; ok {
		return name
	}
	return "Unknown"
}

// IsERC20Method reports whether a selector is an ERC-20 transfer-like call.
func IsERC20Method(methodID string) bool {
	_, ok := erc20Methods[methodID]
	return ok
}
