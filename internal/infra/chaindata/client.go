// Package chaindata implements the chain-data collaborator: raw transaction,
// receipt, token metadata and address lookups over Ethereum JSON-RPC.
package chaindata

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Caller abstracts the JSON-RPC transport (satisfied by rpc.Client).
type Caller interface {
	Call(ctx context.Context, method string, params []any) (any, error)
}

// Client fetches raw chain data. Absent records are returned as nil maps,
// never as errors; only transport failures surface as errors.
type Client struct {
	rpc Caller
	log *slog.Logger
}

// NewClient creates a chain-data client over the given transport.
func NewClient(rpc Caller, log *slog.Logger) *Client {
	return &Client{rpc: rpc, log: log}
}

// Transaction fetches a raw transaction by hash. Returns nil when the
// transaction does not exist on chain.
func (c *Client) Transaction(ctx context.Context, hash string) (map[string]any, error) {
	result, err := c.rpc.Call(ctx, "eth_getTransactionByHash", []any{hash})
	if err != nil {
		return nil, fmt.Errorf("eth_getTransactionByHash failed: %w", err)
	}
	if result == nil {
		return nil, nil
	}

	raw, ok := result.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("invalid transaction format")
	}
	return raw, nil
}

// Receipt fetches a transaction receipt. A nil receipt is tolerated by the
// decoder, which applies documented defaults.
func (c *Client) Receipt(ctx context.Context, hash string) (map[string]any, error) {
	result, err := c.rpc.Call(ctx, "eth_getTransactionReceipt", []any{hash})
	if err != nil {
		return nil, fmt.Errorf("eth_getTransactionReceipt failed: %w", err)
	}
	if result == nil {
		return nil, nil
	}

	receipt, ok := result.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("invalid receipt format")
	}
	return receipt, nil
}

// ERC-20 constant-function selectors.
const (
	selName     = "0x06fdde03" // name()
	selSymbol   = "0x95d89b41" // symbol()
	selDecimals = "0x313ce567" // decimals()
)

// TokenMetadata queries an ERC-20 contract for symbol, name and decimals.
func (c *Client) TokenMetadata(ctx context.Context, address string) (symbol, name string, decimals uint8, err error) {
	symData, err := c.callConstant(ctx, address, selSymbol)
	if err != nil {
		return "", "", 0, fmt.Errorf("symbol() call failed: %w", err)
	}
	nameData, err := c.callConstant(ctx, address, selName)
	if err != nil {
		return "", "", 0, fmt.Errorf("name() call failed: %w", err)
	}
	decData, err := c.callConstant(ctx, address, selDecimals)
	if err != nil {
		return "", "", 0, fmt.Errorf("decimals() call failed: %w", err)
	}

	symbol = decodeABIString(symData)
	name = decodeABIString(nameData)
	if symbol == "" {
		return "", "", 0, fmt.Errorf("contract %s returned no symbol", address)
	}
	// even uint8 is ABI-encoded in 32 bytes
	if len(decData) >= 32 {
		decimals = decData[31]
	}
	return symbol, name, decimals, nil
}

// Balance fetches the current balance of an address in wei.
func (c *Client) Balance(ctx context.Context, address string) (*big.Int, error) {
	result, err := c.rpc.Call(ctx, "eth_getBalance", []any{address, "latest"})
	if err != nil {
		return nil, fmt.Errorf("eth_getBalance failed: %w", err)
	}
	hex, ok := result.(string)
	if !ok {
		return nil, fmt.Errorf("invalid balance response")
	}
	return hexutil.DecodeBig(hex)
}

// TransactionCount fetches the nonce (sent-transaction count) of an address.
func (c *Client) TransactionCount(ctx context.Context, address string) (uint64, error) {
	result, err := c.rpc.Call(ctx, "eth_getTransactionCount", []any{address, "latest"})
	if err != nil {
		return 0, fmt.Errorf("eth_getTransactionCount failed: %w", err)
	}
	hex, ok := result.(string)
	if !ok {
		return 0, fmt.Errorf("invalid transaction count response")
	}
	return hexutil.DecodeUint64(hex)
}

func (c *Client) callConstant(ctx context.Context, to, data string) ([]byte, error) {
	result, err := c.rpc.Call(ctx, "eth_call", []any{
		map[string]any{"to": to, "data": data},
		"latest",
	})
	if err != nil {
		return nil, err
	}
	hex, ok := result.(string)
	if !ok {
		return nil, fmt.Errorf("invalid eth_call response")
	}
	return hexutil.Decode(hex)
}

// decodeABIString decodes a single string return value from ABI format.
func decodeABIString(data []byte) string {
	if len(data) < 64 {
		return ""
	}

	offset := new(big.Int).SetBytes(data[:32]).Uint64() + 32
	if offset > uint64(len(data)) || offset < 32 {
		return ""
	}
	length := new(big.Int).SetBytes(data[offset-32 : offset]).Uint64()
	if offset+length > uint64(len(data)) {
		return ""
	}

	return string(data[offset : offset+length])
}
