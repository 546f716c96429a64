package cache

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vietddude/txplain/internal/core/domain"
)

func TestMemCache_RoundTrip(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	c, err := NewMemCache(time.Minute, log)
	require.NoError(t, err)
	defer c.Close()

	ctx := context.Background()
	addr := "0x6982508145454Ce325dDbE47a25d4ec3d2311933"

	_, ok := c.Get(ctx, addr)
	require.False(t, ok, "unexpected hit on empty cache")

	c.Set(ctx, addr, &domain.TokenInfo{Symbol: "PEPE", Name: "Pepe", Decimals: 18})

	// Lookups are case-insensitive on the address.
	info, ok := c.Get(ctx, "0x6982508145454ce325ddbe47a25d4ec3d2311933")
	require.True(t, ok, "expected hit after set")
	require.Equal(t, "PEPE", info.Symbol)
	require.Equal(t, uint8(18), info.Decimals)
}
