// Package explain orchestrates the full pipeline: fetch, decode, score in
// parallel, then compose the final explanation.
package explain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vietddude/txplain/internal/core/domain"
	"github.com/vietddude/txplain/internal/explain/classify"
	"github.com/vietddude/txplain/internal/explain/compose"
	"github.com/vietddude/txplain/internal/explain/decoder"
	"github.com/vietddude/txplain/internal/explain/gasmeter"
	"github.com/vietddude/txplain/internal/explain/insight"
	"github.com/vietddude/txplain/internal/features"
	"github.com/vietddude/txplain/internal/infra/chaindata"
	"github.com/vietddude/txplain/internal/scoring"
)

var hashRe = regexp.MustCompile(`^0x[0-9a-fA-F]{64}$`)

var (
	// ErrInvalidHash rejects input that is not a 32-byte hex hash.
	ErrInvalidHash = errors.New("invalid transaction hash format")
	// ErrTxNotFound marks a well-formed hash with no on-chain record.
	ErrTxNotFound = errors.New("transaction not found")
)

// Engine runs the explanation pipeline. The three model calls run
// concurrently and individually degrade to fallbacks, so a complete
// explanation is produced even with every model down.
type Engine struct {
	chain   *chaindata.Client
	decoder *decoder.Decoder
	models  *scoring.Suite
	log     *slog.Logger
}

// NewEngine wires the pipeline collaborators.
func NewEngine(chain *chaindata.Client, dec *decoder.Decoder, models *scoring.Suite, log *slog.Logger) *Engine {
	return &Engine{chain: chain, decoder: dec, models: models, log: log}
}

// Decode fetches and decodes a transaction without running the models.
func (e *Engine) Decode(ctx context.Context, hash string) (*domain.DecodedTransaction, error) {
	if !hashRe.MatchString(hash) {
		return nil, ErrInvalidHash
	}

	raw, err := e.chain.Transaction(ctx, hash)
	if err != nil {
		return nil, fmt.Errorf("fetch transaction: %w", err)
	}
	if raw == nil {
		return nil, ErrTxNotFound
	}

	// A missing or unreachable receipt degrades to documented defaults.
	receipt, err := e.chain.Receipt(ctx, hash)
	if err != nil {
		e.log.Warn("receipt fetch failed, using defaults", "hash", hash, "error", err)
		receipt = nil
	}

	return e.decoder.Decode(ctx, raw, receipt), nil
}

// Explain produces the full explanation for a transaction hash.
func (e *Engine) Explain(ctx context.Context, hash string) (*domain.Explanation, error) {
	start := time.Now()

	tx, err := e.Decode(ctx, hash)
	if err != nil {
		return nil, err
	}

	feats := features.Extract(tx)

	// Fan out the three model calls. None of them returns an error; each
	// adapter substitutes its fallback on failure.
	var (
		fa       *domain.FraudAnalysis
		gasGwei  float64
		gasAvail bool
		ml       scoring.MLClassification
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		fa = e.models.Fraud.Score(gctx, feats.Wallet)
		return nil
	})
	g.Go(func() error {
		gasGwei, gasAvail = e.models.Gas.Predict(gctx, feats.Gas)
		return nil
	})
	g.Go(func() error {
		ml = e.models.Classifier.Classify(gctx, feats.Tx)
		return nil
	})
	_ = g.Wait()

	c := classify.Classify(tx)
	if ml.Available {
		c.MLCategory = ml.Category
		c.AllCategories = ml.AllCategories
	}

	ga := gasmeter.Calibrate(tx, gasGwei, gasAvail)

	exp := &domain.Explanation{
		TxHash:  tx.Hash,
		Summary: compose.Summary(tx, c),

		Sections:       compose.Sections(tx, fa, ga, c),
		Transaction:    tx,
		Fraud:          fa,
		Gas:            ga,
		Classification: c,
		Visualizations: compose.Visualizations(tx, fa, ga),

		NaturalExplanation: compose.FullText(tx, fa, ga, c),
		ContextInsight:     insight.Derive(tx, c),
		Recommendations:    compose.Recommendations(fa, ga),

		GeneratedAt:     time.Now().UTC(),
		ConfidenceScore: compose.ConfidenceScore(fa, ga, c),
	}

	e.log.Info("explanation generated",
		"hash", tx.Hash,
		"category", c.Category,
		"risk_level", fa.RiskLevel,
		"duration", time.Since(start))

	return exp, nil
}

// QuickSummary produces the lightweight one-line summary without any model
// calls.
func (e *Engine) QuickSummary(ctx context.Context, hash string) (string, error) {
	tx, err := e.Decode(ctx, hash)
	if err != nil {
		return "", err
	}
	return compose.QuickSummary(tx), nil
}
