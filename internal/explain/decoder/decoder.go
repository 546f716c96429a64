// Package decoder normalizes raw chain records into the canonical
// DecodedTransaction, enriched with registry lookups and token-transfer
// decoding.
package decoder

import (
	"context"
	"log/slog"
	"math/big"
	"strings"

	"github.com/vietddude/txplain/internal/core/domain"
	"github.com/vietddude/txplain/internal/registry"
)

// Decoder builds DecodedTransaction values. It never fails on malformed but
// present data; every missing field gets its documented default.
type Decoder struct {
	registry *registry.Registry
	log      *slog.Logger
}

// New creates a decoder over the given registry.
func New(reg *registry.Registry, log *slog.Logger) *Decoder {
	return &Decoder{registry: reg, log: log}
}

// Decode builds the canonical record from a raw transaction and an optional
// receipt (nil tolerated, defaults applied).
func (d *Decoder) Decode(ctx context.Context, raw, receipt map[string]any) *domain.DecodedTransaction {
	valueWei := parseHexBig(getString(raw["value"]))
	gasPriceWei := parseHexBig(getString(raw["gasPrice"]))
	gasLimit := parseHexUint(getString(raw["gas"]))

	gasUsed := gasLimit
	status := domain.TxStatusSuccess
	if receipt != nil {
		if gu := getString(receipt["gasUsed"]); gu != "" {
			gasUsed = parseHexUint(gu)
		}
		if getString(receipt["status"]) == "0x0" {
			status = domain.TxStatusFailed
		}
	}

	// fee = gas_used * gas_price_wei, then wei -> ETH
	feeWei := new(big.Int).Mul(new(big.Int).SetUint64(gasUsed), gasPriceWei)

	input := getString(raw["input"])
	if input == "" {
		input = "0x"
	}

	to := strings.ToLower(getString(raw["to"]))
	if to == "" {
		to = domain.ContractCreation
	}

	contractInteraction := len(input) > 2
	methodID := ""
	if contractInteraction && len(input) >= 10 {
		methodID = strings.ToLower(input[:10])
	}

	tx := &domain.DecodedTransaction{
		Hash:        getString(raw["hash"]),
		BlockNumber: parseHexUint(getString(raw["blockNumber"])),
		Nonce:       parseHexUint(getString(raw["nonce"])),
		Status:      status,

		From: strings.ToLower(getString(raw["from"])),
		To:   to,

		ValueWei: valueWei.String(),
		ValueETH: toUnit(valueWei, 18),

		GasLimit:     gasLimit,
		GasUsed:      gasUsed,
		GasPriceGwei: toUnit(gasPriceWei, 9),
		FeeETH:       toUnit(feeWei, 18),

		InputData:           input,
		ContractInteraction: contractInteraction,
		MethodID:            methodID,
		MethodName:          registry.MethodName(methodID),

		IsTokenTransfer: registry.IsERC20Method(methodID),
	}

	// Known-address annotation is a pure lookup, independent of token
	// resolution.
	tx.FromInfo = d.registry.KnownAddress(tx.From)
	if tx.To != domain.ContractCreation {
		tx.ToInfo = d.registry.KnownAddress(tx.To)
	}

	if tx.IsTokenTransfer && tx.To != domain.ContractCreation {
		d.decodeTokenTransfer(ctx, tx)
	}

	return tx
}

// decodeTokenTransfer resolves token metadata for the destination contract
// and, for the two-argument transfer layout, the recipient and amount.
// Failure degrades the token fields to null, never the whole decode.
func (d *Decoder) decodeTokenTransfer(ctx context.Context, tx *domain.DecodedTransaction) {
	info := d.registry.TokenInfo(ctx, tx.To)
	if info == nil {
		return
	}
	tx.Token = info

	recipient, amount, ok := decodeTransferPayload(tx.InputData)
	if !ok {
		return
	}

	tokenAmount := toUnit(amount, int(info.Decimals))
	tx.TokenAmount = &tokenAmount
	tx.TokenRecipient = recipient
}

// decodeTransferPayload extracts recipient and amount from
// transfer(address,uint256) calldata: recipient in hex chars 34-73, amount
// in 74-137. Three-argument transferFrom is not decoded.
func decodeTransferPayload(input string) (recipient string, amount *big.Int, ok bool) {
	if len(input) < 138 {
		return "", nil, false
	}
	if strings.ToLower(input[:10]) != registry.MethodTransfer {
		return "", nil, false
	}

	amount, ok = new(big.Int).SetString(input[74:138], 16)
	if !ok {
		return "", nil, false
	}

	return "0x" + strings.ToLower(input[34:74]), amount, true
}

// toUnit converts an integer amount to its decimal unit (wei->ETH with 18,
// wei->gwei with 9, token base units with the token's decimals).
func toUnit(n *big.Int, decimals int) float64 {
	if n == nil || n.Sign() == 0 {
		return 0
	}
	div := new(big.Float).SetInt(new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil))
	f, _ := new(big.Float).Quo(new(big.Float).SetInt(n), div).Float64()
	return f
}

func getString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

func parseHexUint(hexStr string) uint64 {
	n := parseHexBig(hexStr)
	if !n.IsUint64() {
		return 0
	}
	return n.Uint64()
}

func parseHexBig(hexStr string) *big.Int {
	if hexStr == "" || hexStr == "0x" {
		return new(big.Int)
	}
	n := new(big.Int)
	if _, ok := n.SetString(strings.TrimPrefix(hexStr, "0x"), 16); !ok {
		return new(big.Int)
	}
	return n
}
