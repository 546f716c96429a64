package explain

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/vietddude/txplain/internal/core/domain"
	"github.com/vietddude/txplain/internal/explain/decoder"
	"github.com/vietddude/txplain/internal/infra/chaindata"
	"github.com/vietddude/txplain/internal/registry"
	"github.com/vietddude/txplain/internal/scoring"
)

const testHash = "0xabababababababababababababababababababababababababababababababab"

// fakeChain serves canned JSON-RPC responses for the two fetch methods.
type fakeChain struct {
	tx         map[string]any
	receipt    map[string]any
	receiptErr error
}

func (f *fakeChain) Call(ctx context.Context, method string, params []any) (any, error) {
	switch method {
	case "eth_getTransactionByHash":
		if f.tx == nil {
			return nil, nil
		}
		return f.tx, nil
	case "eth_getTransactionReceipt":
		if f.receiptErr != nil {
			return nil, f.receiptErr
		}
		if f.receipt == nil {
			return nil, nil
		}
		return f.receipt, nil
	}
	return nil, fmt.Errorf("unexpected method %s", method)
}

// newTestEngine wires the pipeline with no models so every scorer runs its
// fallback path.
func newTestEngine(chain *fakeChain) *Engine {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	reg := registry.New(nil, nil, log)
	dec := decoder.New(reg, log)
	models := scoring.NewSuiteWithModels(nil, nil, nil, log)
	return NewEngine(chaindata.NewClient(chain, log), dec, models, log)
}

func rawETHTransfer() map[string]any {
	return map[string]any{
		"hash":        testHash,
		"blockNumber": "0x11a5a20",
		"from":        "0x742d35cc6634c0532925a3b844bc454e4438f44e",
		"to":          "0x8ba1f109551bd432803012645ac136ddd64dba72",
		"value":       "0x6f05b59d3b20000", // 0.5 ETH
		"gas":         "0x5208",
		"gasPrice":    "0x6fc23ac00", // 30 gwei
		"nonce":       "0x64",
		"input":       "0x",
	}
}

func TestExplain_NativeTransferEndToEnd(t *testing.T) {
	e := newTestEngine(&fakeChain{
		tx:      rawETHTransfer(),
		receipt: map[string]any{"status": "0x1", "gasUsed": "0x5208"},
	})

	exp, err := e.Explain(context.Background(), testHash)
	if err != nil {
		t.Fatalf("Explain failed: %v", err)
	}

	if exp.Summary != "Success: 0.5000 ETH - Small Native ETH Transfer" {
		t.Errorf("summary = %q", exp.Summary)
	}
	if !strings.Contains(exp.ContextInsight, "standard ETH transfer") {
		t.Errorf("context_insight = %q", exp.ContextInsight)
	}
	if len(exp.Sections) != 4 {
		t.Errorf("sections = %d, want 4", len(exp.Sections))
	}
	if exp.TxHash != testHash {
		t.Errorf("tx_hash = %q", exp.TxHash)
	}
	if exp.GeneratedAt.IsZero() {
		t.Error("generated_at not set")
	}
	if len(exp.Recommendations) == 0 {
		t.Error("recommendations missing")
	}
}

func TestExplain_DegradesWithAllModelsDown(t *testing.T) {
	e := newTestEngine(&fakeChain{
		tx:      rawETHTransfer(),
		receipt: map[string]any{"status": "0x1", "gasUsed": "0x5208"},
	})

	exp, err := e.Explain(context.Background(), testHash)
	if err != nil {
		t.Fatalf("Explain failed: %v", err)
	}

	if exp.Fraud == nil || exp.Fraud.Available {
		t.Errorf("fraud = %+v, want unavailable fallback", exp.Fraud)
	}
	if exp.Fraud.RiskScore != 0.15 || exp.Fraud.RiskLevel != domain.RiskLow {
		t.Errorf("fraud fallback = %+v", exp.Fraud)
	}
	if exp.Gas == nil || exp.Gas.Available {
		t.Errorf("gas = %+v, want unavailable fallback", exp.Gas)
	}
	if exp.Gas.PredictedGasGwei != scoring.FallbackGasGwei {
		t.Errorf("predicted gas = %v, want fallback %v", exp.Gas.PredictedGasGwei, scoring.FallbackGasGwei)
	}
	// 30 actual vs 25 fallback is a +20% difference, still normal range.
	if exp.Gas.Efficiency != domain.GasNormal {
		t.Errorf("efficiency = %v, want normal", exp.Gas.Efficiency)
	}
	if exp.Classification == nil || exp.Classification.MLCategory != "" {
		t.Errorf("classification = %+v, want no ML attachment", exp.Classification)
	}
	// 0.5*0.3 + 0.5*0.3 + 0.92*0.4
	if exp.ConfidenceScore != 0.668 {
		t.Errorf("confidence_score = %v, want 0.668", exp.ConfidenceScore)
	}
}

func TestExplain_TokenTransfer(t *testing.T) {
	raw := rawETHTransfer()
	raw["to"] = "0xa0b86991c6218b36c1d19d4a2e9eb0ce3606eb48" // USDC
	raw["value"] = "0x0"
	raw["input"] = fmt.Sprintf("0xa9059cbb%064s%064x",
		"8ba1f109551bd432803012645ac136ddd64dba72", uint64(250_000_000))

	e := newTestEngine(&fakeChain{
		tx:      raw,
		receipt: map[string]any{"status": "0x1", "gasUsed": "0xcf08"},
	})

	exp, err := e.Explain(context.Background(), testHash)
	if err != nil {
		t.Fatalf("Explain failed: %v", err)
	}

	if exp.Summary != "Success: 250.00 USDC transferred" {
		t.Errorf("summary = %q", exp.Summary)
	}
	if exp.Classification.TxType != domain.TxTypeTokenTransfer {
		t.Errorf("tx_type = %v", exp.Classification.TxType)
	}
	if !strings.Contains(exp.ContextInsight, "USDC") {
		t.Errorf("context_insight = %q", exp.ContextInsight)
	}
}

func TestExplain_InvalidHash(t *testing.T) {
	e := newTestEngine(&fakeChain{})

	for _, hash := range []string{"", "0x123", "not-a-hash", testHash + "ff"} {
		if _, err := e.Explain(context.Background(), hash); !errors.Is(err, ErrInvalidHash) {
			t.Errorf("Explain(%q) error = %v, want ErrInvalidHash", hash, err)
		}
	}
}

func TestExplain_NotFound(t *testing.T) {
	e := newTestEngine(&fakeChain{tx: nil})

	if _, err := e.Explain(context.Background(), testHash); !errors.Is(err, ErrTxNotFound) {
		t.Errorf("error = %v, want ErrTxNotFound", err)
	}
}

func TestDecode_ReceiptFailureTolerated(t *testing.T) {
	e := newTestEngine(&fakeChain{
		tx:         rawETHTransfer(),
		receiptErr: errors.New("upstream timeout"),
	})

	tx, err := e.Decode(context.Background(), testHash)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if tx.Status != domain.TxStatusSuccess {
		t.Errorf("status = %v, want success default", tx.Status)
	}
	if tx.GasUsed != tx.GasLimit {
		t.Errorf("gas_used = %v, want gas limit %v", tx.GasUsed, tx.GasLimit)
	}
}

func TestQuickSummary(t *testing.T) {
	e := newTestEngine(&fakeChain{
		tx:      rawETHTransfer(),
		receipt: map[string]any{"status": "0x1", "gasUsed": "0x5208"},
	})

	summary, err := e.QuickSummary(context.Background(), testHash)
	if err != nil {
		t.Fatalf("QuickSummary failed: %v", err)
	}
	if !strings.Contains(summary, "0.5000 ETH") {
		t.Errorf("summary = %q", summary)
	}
}
