package scoring

import (
	"context"
	"log/slog"
	"time"

	"google.golang.org/grpc"
)

// Model-server method names.
const (
	methodPredictFraud = "/txplain.v1.Models/PredictFraud"
	methodPredictGas   = "/txplain.v1.Models/PredictGas"
	methodClassifyTx   = "/txplain.v1.Models/ClassifyTransaction"
)

// Config holds model-server connection settings. An empty endpoint disables
// the models; every adapter then serves its fallback.
type Config struct {
	Endpoint string        `yaml:"endpoint"`
	Timeout  time.Duration `yaml:"timeout"`
}

// Suite bundles the three scoring adapters behind one lifecycle.
type Suite struct {
	Fraud      *FraudScorer
	Gas        *GasPredictor
	Classifier *TxClassifier

	conn *grpc.ClientConn
}

// NewSuite wires the adapters to the model server, or to nil models when no
// endpoint is configured.
func NewSuite(ctx context.Context, cfg Config, log *slog.Logger) (*Suite, error) {
	s := &Suite{}

	var fraudModel, gasModel, txModel Model
	if cfg.Endpoint != "" {
		conn, err := DialModelServer(ctx, cfg.Endpoint)
		if err != nil {
			// Degraded availability, not fatal: all adapters fall back.
			log.Warn("model server unreachable, scoring degraded", "endpoint", cfg.Endpoint, "error", err)
		} else {
			s.conn = conn
			fraudModel = NewGRPCModel(conn, methodPredictFraud, cfg.Timeout)
			gasModel = NewGRPCModel(conn, methodPredictGas, cfg.Timeout)
			txModel = NewGRPCModel(conn, methodClassifyTx, cfg.Timeout)
		}
	}

	s.Fraud = NewFraudScorer(fraudModel, log)
	s.Gas = NewGasPredictor(gasModel, log)
	s.Classifier = NewTxClassifier(txModel, log)
	return s, nil
}

// NewSuiteWithModels builds a suite over explicit models, used by tests and
// embedders.
func NewSuiteWithModels(fraud, gas, tx Model, log *slog.Logger) *Suite {
	return &Suite{
		Fraud:      NewFraudScorer(fraud, log),
		Gas:        NewGasPredictor(gas, log),
		Classifier: NewTxClassifier(tx, log),
	}
}

// Status reports per-model availability for the health endpoint.
func (s *Suite) Status() map[string]bool {
	return map[string]bool{
		"fraud_model":   s.Fraud.Available(),
		"gas_model":     s.Gas.Available(),
		"tx_classifier": s.Classifier.Available(),
	}
}

// Close releases the model-server connection.
func (s *Suite) Close() error {
	if s.conn != nil {
		return s.conn.Close()
	}
	return nil
}
