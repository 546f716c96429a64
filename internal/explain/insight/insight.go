// Package insight derives the single contextual sentence attached to every
// explanation.
package insight

import (
	"fmt"

	"github.com/vietddude/txplain/internal/core/domain"
)

var stablecoins = map[string]bool{
	"USDT": true,
	"USDC": true,
	"DAI":  true,
}

// Derive walks the insight rules in priority order and returns the first
// matching sentence. Exchange destinations outrank value heuristics, which
// outrank type-specific insights.
func Derive(tx *domain.DecodedTransaction, c *domain.Classification) string {
	if tx.ToInfo != nil && tx.ToInfo.Type == domain.AddressExchange {
		if tx.ValueETH > 10 {
			return fmt.Sprintf("This transaction resembles a large exchange deposit to %s, possibly for trading or liquidation.", tx.ToInfo.Name)
		}
		return fmt.Sprintf("This transaction appears to be a standard deposit to %s.", tx.ToInfo.Name)
	}

	if tx.ValueETH > 100 {
		return "This is a whale-sized transfer, potentially representing institutional movement or large asset reallocation."
	}
	if tx.ValueETH > 50 {
		return "This is a significant transfer that may represent portfolio rebalancing or large-scale trading activity."
	}

	switch c.TxType {
	case domain.TxTypeDEXSwap:
		return "This transaction is a token swap on a decentralized exchange, exchanging one asset for another."

	case domain.TxTypeLiquidity:
		return "This transaction adds liquidity to a trading pool, enabling market making and earning fees."

	case domain.TxTypeTokenTransfer:
		if tx.Token != nil {
			if stablecoins[tx.Token.Symbol] {
				return fmt.Sprintf("This is a stablecoin transfer (%s), commonly used for payments or trading settlements.", tx.Token.Symbol)
			}
			return fmt.Sprintf("This is a %s token transfer between addresses.", tx.Token.Symbol)
		}

	case domain.TxTypeNFT:
		return "This transaction involves NFT (digital collectible) movement, possibly a purchase, sale, or transfer."

	case domain.TxTypeETHTransfer:
		switch {
		case tx.ValueETH > 10:
			return "This transaction resembles a large asset movement or exchange deposit."
		case tx.ValueETH < 0.1:
			return "This is a small ETH transfer, possibly for testing or micro-payments."
		default:
			return "This is a standard ETH transfer between addresses."
		}
	}

	return "Transaction context could not be fully determined."
}
