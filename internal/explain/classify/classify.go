// Package classify implements the rule-based transaction classifier.
package classify

import (
	"fmt"

	"github.com/vietddude/txplain/internal/core/domain"
)

// ruleConfidence is the fixed confidence of the deterministic rules.
const ruleConfidence = 0.92

// swap and liquidity method names recognized by the router rules.
var (
	swapMethods = map[string]bool{
		"swapExactETHForTokens":    true,
		"swapExactTokensForTokens": true,
	}
	liquidityMethods = map[string]bool{
		"addLiquidity":    true,
		"addLiquidityETH": true,
	}
)

// ValueTier buckets the native value: below 1 ETH is Small, up to and
// including 10 ETH is Medium, above is High Value.
func ValueTier(valueETH float64) domain.ValueTier {
	switch {
	case valueETH < 1:
		return domain.TierSmall
	case valueETH <= 10:
		return domain.TierMedium
	default:
		return domain.TierHigh
	}
}

// Classify applies the priority rules to a decoded transaction. Earlier
// rules win; the result always carries a category and tx_type.
func Classify(tx *domain.DecodedTransaction) *domain.Classification {
	c := &domain.Classification{
		ValueTier:  ValueTier(tx.ValueETH),
		Confidence: ruleConfidence,
	}

	switch {
	case tx.IsTokenTransfer && tx.Token != nil:
		c.Category = fmt.Sprintf("%s Transfer", tx.Token.Symbol)
		c.TxType = domain.TxTypeTokenTransfer
		c.Description = fmt.Sprintf("Transfer of %s tokens", tx.Token.Symbol)

	case tx.ContractInteraction && swapMethods[tx.MethodName]:
		c.Category = "DEX Swap"
		c.TxType = domain.TxTypeDEXSwap
		c.Description = "Token exchange on decentralized exchange"

	case tx.ContractInteraction && liquidityMethods[tx.MethodName]:
		c.Category = "Liquidity Provision"
		c.TxType = domain.TxTypeLiquidity
		c.Description = "Adding liquidity to a pool"

	case tx.ContractInteraction && tx.MethodName == "safeTransferFrom":
		c.Category = "NFT Transfer"
		c.TxType = domain.TxTypeNFT
		c.Description = "NFT token transfer"

	case tx.ContractInteraction && tx.ToInfo != nil && tx.ToInfo.Type == domain.AddressDEX:
		c.Category = "DEX Interaction"
		c.TxType = domain.TxTypeDEX
		c.Description = fmt.Sprintf("Interaction with %s", tx.ToInfo.Name)

	case tx.ContractInteraction && tx.ToInfo != nil && tx.ToInfo.Type == domain.AddressNFT:
		c.Category = "NFT Transaction"
		c.TxType = domain.TxTypeNFT
		c.Description = fmt.Sprintf("Interaction with %s", tx.ToInfo.Name)

	case tx.ContractInteraction:
		c.Category = "Contract Interaction"
		c.TxType = domain.TxTypeContract
		c.Description = "Smart contract execution"

	default:
		c.Category = fmt.Sprintf("%s Native ETH Transfer", c.ValueTier)
		c.TxType = domain.TxTypeETHTransfer
		c.Description = "Direct ETH transfer between addresses"
	}

	// Destination context annotation, independent of the category rules.
	if tx.ToInfo != nil {
		switch tx.ToInfo.Type {
		case domain.AddressExchange:
			c.ContextLabel = fmt.Sprintf("Exchange deposit (%s)", tx.ToInfo.Name)
		case domain.AddressDEX:
			c.ContextLabel = fmt.Sprintf("DEX interaction (%s)", tx.ToInfo.Name)
		}
	}

	return c
}
