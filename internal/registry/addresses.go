package registry

import "github.com/vietddude/txplain/internal/core/domain"

// Known exchange/DeFi addresses (mainnet).
var knownAddresses = map[string]domain.AddressInfo{
	"0x28c6c06298d514db089934071355e5743bf21d60": {Name: "Binance Hot Wallet", Type: domain.AddressExchange},
	"0x21a31ee1afc51d94c2efccaa2092ad1028285549": {Name: "Binance", Type: domain.AddressExchange},
	"0xdfd5293d8e347dfe59e90efd55b2956a1343963d": {Name: "Binance", Type: domain.AddressExchange},
	"0x56eddb7aa87536c09ccc2793473599fd21a8b17f": {Name: "Coinbase", Type: domain.AddressExchange},
	"0x71660c4005ba85c37ccec55d0c4493e66fe775d3": {Name: "Coinbase", Type: domain.AddressExchange},
	"0x7a250d5630b4cf539739df2c5dacb4c659f2488d": {Name: "Uniswap V2 Router", Type: domain.AddressDEX},
	"0x68b3465833fb72a70ecdf485e0e4c7bd8665fc45": {Name: "Uniswap V3 Router", Type: domain.AddressDEX},
	"0xe592427a0aece92de3edee1f18e0157c05861564": {Name: "Uniswap V3", Type: domain.AddressDEX},
	"0x7be8076f4ea4a4ad08075c2508e481d6c946d12b": {Name: "OpenSea", Type: domain.AddressNFT},
	"0x00000000006c3852cbef3e08e8df289169ede581": {Name: "Seaport", Type: domain.AddressNFT},
}
