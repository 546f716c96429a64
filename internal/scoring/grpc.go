package scoring

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// GRPCModel calls one prediction method on a model server. The wire contract
// is schemaless: the request carries {"features": [...]} and the response
// carries {"score": n} and optionally {"probabilities": [...]}.
type GRPCModel struct {
	conn       *grpc.ClientConn
	fullMethod string
	timeout    time.Duration
}

// DialModelServer connects to the model-serving endpoint.
func DialModelServer(ctx context.Context, endpoint string) (*grpc.ClientConn, error) {
	dialCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	conn, err := grpc.DialContext(dialCtx, endpoint,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to dial model server %s: %w", endpoint, err)
	}
	return conn, nil
}

// NewGRPCModel wraps one prediction method, e.g.
// "/txplain.v1.Models/PredictFraud".
func NewGRPCModel(conn *grpc.ClientConn, fullMethod string, timeout time.Duration) *GRPCModel {
	if timeout == 0 {
		timeout = 5 * time.Second
	}
	return &GRPCModel{conn: conn, fullMethod: fullMethod, timeout: timeout}
}

func (m *GRPCModel) Predict(ctx context.Context, features []float64) (float64, error) {
	resp, err := m.invoke(ctx, features)
	if err != nil {
		return 0, err
	}

	score, ok := resp.Fields["score"]
	if !ok {
		return 0, fmt.Errorf("model response missing score field")
	}
	return score.GetNumberValue(), nil
}

func (m *GRPCModel) PredictProba(ctx context.Context, features []float64) ([]float64, error) {
	resp, err := m.invoke(ctx, features)
	if err != nil {
		return nil, err
	}

	list := resp.Fields["probabilities"].GetListValue()
	if list == nil || len(list.Values) == 0 {
		return nil, ErrNoProbabilities
	}

	probs := make([]float64, len(list.Values))
	for i, v := range list.Values {
		probs[i] = v.GetNumberValue()
	}
	return probs, nil
}

func (m *GRPCModel) invoke(ctx context.Context, features []float64) (*structpb.Struct, error) {
	vals := make([]any, len(features))
	for i, f := range features {
		vals[i] = f
	}

	req, err := structpb.NewStruct(map[string]any{"features": vals})
	if err != nil {
		return nil, fmt.Errorf("build model request: %w", err)
	}

	callCtx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	reply := &structpb.Struct{}
	if err := m.conn.Invoke(callCtx, m.fullMethod, req, reply); err != nil {
		if status.Code(err) == codes.Unavailable {
			return nil, fmt.Errorf("%w: %v", ErrModelUnavailable, err)
		}
		return nil, fmt.Errorf("model call %s: %w", m.fullMethod, err)
	}
	return reply, nil
}
