package registry

import "github.com/vietddude/txplain/internal/core/domain"

// Known token contracts (mainnet). Lookups hit this table before the cache
// or the chain.
var knownTokens = map[string]domain.TokenInfo{
	"0xdac17f958d2ee523a2206206994597c13d831ec7": {Symbol: "USDT", Name: "Tether USD", Decimals: 6},
	"0xa0b86991c6218b36c1d19d4a2e9eb0ce3606eb48": {Symbol: "USDC", Name: "USD Coin", Decimals: 6},
	"0x6b175474e89094c44da98b954eedeac495271d0f": {Symbol: "DAI", Name: "Dai Stablecoin", Decimals: 18},
	"0xc02aaa39b223fe8d0a0e5c4f27ead9083c756cc2": {Symbol: "WETH", Name: "Wrapped Ether", Decimals: 18},
	"0x2260fac5e5542a773aa44fbcfedf7c193bc2c599": {Symbol: "WBTC", Name: "Wrapped BTC", Decimals: 8},
	"0x1f9840a85d5af5bf1d1762f925bdaddc4201f984": {Symbol: "UNI", Name: "Uniswap", Decimals: 18},
	"0x514910771af9ca656af840dff83e8264ecf986ca": {Symbol: "LINK", Name: "Chainlink", Decimals: 18},
	"0x7d1afa7b718fb893db30a3abc0cfc608aacfebb0": {Symbol: "MATIC", Name: "Polygon", Decimals: 18},
	"0x95ad61b0a150d79219dcf64e1e6cc01f0b64c4ce": {Symbol: "SHIB", Name: "Shiba Inu", Decimals: 18},
	"0x4d224452801aced8b2f0aebe155379bb5d594381": {Symbol: "APE", Name: "ApeCoin", Decimals: 18},
}
