package service

import (
	"context"

	"github.com/shopspring/decimal"
	logger "github.com/sirupsen/logrus"

	"fraudapi/src/decision"
	"fraudapi/src/faults"
	"fraudapi/src/features"
	"fraudapi/src/inference"
	"fraudapi/src/metrics"
	"fraudapi/src/model"
)

// logAppender is the slice of the repository the service needs.
type logAppender interface {
	Append(ctx context.Context, entry *model.PredictionLog) error
}

// Publisher receives each successfully appended log entry, e.g. for the
// live stream. May be nil.
type Publisher interface {
	Publish(entry model.PredictionLog)
}

// Result is the scoring response body.
type Result struct {
	Prediction  int     `json:"prediction"`
	Probability float64 `json:"probability"`
	FraudLikely bool    `json:"fraud_likely"`
	Threshold   float64 `json:"threshold"`
	LogID       *uint   `json:"log_id"`
	Message     string  `json:"message"`
}

// PredictionService orchestrates one scoring request:
// normalize -> preprocess -> classify -> decide -> log.
// All dependencies are loaded once at startup and shared read-only, so a
// single instance serves concurrent requests.
type PredictionService struct {
	schema      *features.Schema
	transformer inference.Transformer
	classifier  inference.Classifier
	logs        logAppender
	publisher   Publisher
	threshold   float64
}

func NewPredictionService(
	schema *features.Schema,
	transformer inference.Transformer,
	classifier inference.Classifier,
	logs logAppender,
	publisher Publisher,
	threshold float64,
) *PredictionService {
	return &PredictionService{
		schema:      schema,
		transformer: transformer,
		classifier:  classifier,
		logs:        logs,
		publisher:   publisher,
		threshold:   threshold,
	}
}

// Predict scores one transaction. Client-input faults come back typed so
// the handler can map them to 4xx. A failed audit-log write does not fail
// the scoring: the result is returned with LogID nil and the failure is
// logged and counted server-side.
func (s *PredictionService) Predict(
	ctx context.Context,
	input *model.TransactionInput,
) (*Result, error) {

	if err := input.Validate(); err != nil {
		metrics.PredictionFailuresTotal.WithLabelValues(string(faults.KindOf(err))).Inc()
		return nil, err
	}

	row, err := features.Expand(input.Fields(), s.schema)
	if err != nil {
		metrics.PredictionFailuresTotal.WithLabelValues(string(faults.KindOf(err))).Inc()
		return nil, err
	}

	vector, err := s.transformer.Transform(row)
	if err != nil {
		metrics.PredictionFailuresTotal.WithLabelValues(string(faults.KindOf(err))).Inc()
		return nil, err
	}

	probability, err := s.classifier.PredictProbability(vector)
	if err != nil {
		metrics.PredictionFailuresTotal.WithLabelValues(string(faults.KindOf(err))).Inc()
		return nil, err
	}

	fraud := decision.Decide(probability, s.threshold)
	verdict := 0
	if fraud {
		verdict = 1
	}
	metrics.PredictionsTotal.WithLabelValues(verdictLabel(fraud)).Inc()

	snapshot, err := input.Snapshot()
	if err != nil {
		metrics.PredictionFailuresTotal.WithLabelValues(string(faults.Persistence)).Inc()
		return nil, faults.New(faults.Persistence, "service.Predict", err)
	}

	entry := &model.PredictionLog{
		InputData:   snapshot,
		Prediction:  verdict,
		Probability: probability,
		FraudLikely: fraud,
	}

	result := &Result{
		Prediction:  verdict,
		Probability: roundProbability(probability),
		FraudLikely: fraud,
		Threshold:   s.threshold,
		Message:     "Prediction completed successfully",
	}

	if err := s.logs.Append(ctx, entry); err != nil {
		logger.WithError(err).Error("prediction scored but audit log write failed")
		metrics.LogAppendFailuresTotal.Inc()
		result.Message = "Prediction completed; audit log unavailable"
		return result, nil
	}

	result.LogID = &entry.ID

	if s.publisher != nil {
		s.publisher.Publish(*entry)
	}

	logger.WithFields(map[string]interface{}{
		"log_id":      entry.ID,
		"prediction":  verdict,
		"probability": result.Probability,
	}).Info("Prediction completed")

	return result, nil
}

// Threshold returns the fixed operating point in use.
func (s *PredictionService) Threshold() float64 {
	return s.threshold
}

// roundProbability rounds to 4 decimal places for the response body; the
// stored entry keeps the full value.
func roundProbability(p float64) float64 {
	rounded, _ := decimal.NewFromFloat(p).Round(4).Float64()
	return rounded
}

func verdictLabel(fraud bool) string {
	if fraud {
		return "fraud"
	}
	return "legit"
}
